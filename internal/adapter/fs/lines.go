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

// LineIterator yields trimmed lines from literal text or a file, one per
// call to Next. A file-backed iterator holds its file open until the lines
// run out, a read fails, or Close is called, whichever comes first.
type LineIterator struct {
	file    *os.File
	reader  *bufio.Reader
	pending []string
	line    string
	err     error
	done    bool
}

// Lines returns a line iterator over src. File sources are opened
// immediately so a missing or unreadable path fails here.
func Lines(src domain.Source) (*LineIterator, error) {
	switch src.Kind {
	case domain.SourceText:
		return &LineIterator{pending: strings.Split(src.Value, "\n")}, nil
	case domain.SourceFile:
		f, err := os.Open(src.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", src.Value, err)
		}
		return &LineIterator{file: f, reader: bufio.NewReader(f)}, nil
	default:
		return nil, fmt.Errorf("%w (got kind %s)", domain.ErrInvalidSource, src.Kind)
	}
}

// Next advances to the next line. It returns false once the input is
// exhausted or an error occurred; check Err afterwards.
func (it *LineIterator) Next() bool {
	if it.done {
		return false
	}

	if it.reader == nil {
		if len(it.pending) == 0 {
			it.finish(nil)
			return false
		}
		it.line = strings.TrimSpace(it.pending[0])
		it.pending = it.pending[1:]
		return true
	}

	raw, err := readLine(it.reader)
	if err != nil && err != io.EOF {
		it.finish(fmt.Errorf("failed to read %s: %w", it.file.Name(), err))
		return false
	}
	if raw == "" {
		it.finish(nil)
		return false
	}
	it.line = strings.TrimSpace(raw)
	return true
}

// Text returns the current line.
func (it *LineIterator) Text() string {
	return it.line
}

// Err returns the first read or close error, if any.
func (it *LineIterator) Err() error {
	return it.err
}

// Close releases the underlying file. It is safe to call more than once and
// on text-backed iterators.
func (it *LineIterator) Close() error {
	it.done = true
	it.pending = nil
	if it.file == nil {
		return nil
	}
	err := it.file.Close()
	it.file = nil
	return err
}

// All adapts the iterator to a range-over-func sequence. The iterator is
// closed when the loop ends, including on break.
func (it *LineIterator) All() iter.Seq2[string, error] {
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

func (it *LineIterator) finish(err error) {
	it.line = ""
	if cerr := it.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if it.err == nil {
		it.err = err
	}
}
