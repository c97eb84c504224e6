package usecase

import (
	"fmt"

	"textstats/internal/adapter/fs"
)

// ApplyToChunks runs fn over every chunk of path, in file order, and returns
// the results once the whole file has been read. The first error from fn
// stops the scan; the file is closed and no partial results are returned.
func ApplyToChunks[T any](path string, fn func(chunk string) (T, error), chunkSize int) ([]T, error) {
	it, err := fs.Chunks(path, chunkSize)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	results := make([]T, 0)
	for it.Next() {
		r, err := fn(it.Text())
		if err != nil {
			return nil, fmt.Errorf("chunk %d of %s: %w", it.Index(), path, err)
		}
		results = append(results, r)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
