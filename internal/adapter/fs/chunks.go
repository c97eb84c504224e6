package fs

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"textstats/internal/domain"
)

// DefaultChunkSize is the number of lines per chunk when none is configured.
const DefaultChunkSize = 1000

// ChunkIterator yields consecutive blocks of up to size raw lines from a
// file. Line terminators are kept, so joining every chunk in order gives
// back the file contents byte for byte.
type ChunkIterator struct {
	file   *os.File
	reader *bufio.Reader
	size   int

	chunk string
	lines int
	index int

	eof  bool
	err  error
	done bool
}

// Chunks opens path and returns an iterator over its line chunks.
func Chunks(path string, size int) (*ChunkIterator, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w (got %d)", domain.ErrInvalidChunkSize, size)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &ChunkIterator{
		file:   f,
		reader: bufio.NewReader(f),
		size:   size,
		index:  -1,
	}, nil
}

// Next reads the next chunk. It never yields an empty chunk.
func (it *ChunkIterator) Next() bool {
	if it.done {
		return false
	}
	if it.eof {
		it.finish(nil)
		return false
	}

	var b strings.Builder
	n := 0
	for n < it.size {
		raw, err := readLine(it.reader)
		if raw != "" {
			b.WriteString(raw)
			n++
		}
		if err == io.EOF {
			it.eof = true
			break
		}
		if err != nil {
			it.finish(fmt.Errorf("failed to read %s: %w", it.file.Name(), err))
			return false
		}
	}

	if n == 0 {
		it.finish(nil)
		return false
	}

	it.chunk = b.String()
	it.lines = n
	it.index++
	return true
}

// Text returns the current chunk.
func (it *ChunkIterator) Text() string {
	return it.chunk
}

// Lines returns the number of lines in the current chunk.
func (it *ChunkIterator) Lines() int {
	return it.lines
}

// Index returns the zero-based position of the current chunk.
func (it *ChunkIterator) Index() int {
	return it.index
}

// Err returns the first read or close error, if any.
func (it *ChunkIterator) Err() error {
	return it.err
}

// Close releases the file. Safe to call repeatedly.
func (it *ChunkIterator) Close() error {
	it.done = true
	if it.file == nil {
		return nil
	}
	err := it.file.Close()
	it.file = nil
	return err
}

// All adapts the iterator to a range-over-func sequence that closes the
// file when the loop ends.
func (it *ChunkIterator) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		defer it.Close()
		for it.Next() {
			if !yield(it.Text(), nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			yield("", err)
		}
	}
}

func (it *ChunkIterator) finish(err error) {
	it.chunk = ""
	it.lines = 0
	if cerr := it.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if it.err == nil {
		it.err = err
	}
}
