package usecase

import (
	"fmt"
	"log/slog"

	"textstats/internal/adapter/fs"
	"textstats/internal/domain"
)

// CorpusUseCase aggregates token frequencies over every matching file in a
// directory tree.
type CorpusUseCase struct {
	walker *fs.Walker
	stats  *StatsUseCase
	logger *slog.Logger
}

// NewCorpusUseCase creates a new corpus use case.
func NewCorpusUseCase(walker *fs.Walker, stats *StatsUseCase, logger *slog.Logger) *CorpusUseCase {
	return &CorpusUseCase{
		walker: walker,
		stats:  stats,
		logger: logger,
	}
}

// CorpusResult contains the results of a corpus scan.
type CorpusResult struct {
	Table       domain.FrequencyTable
	FilesRead   int
	FilesFailed int
	TotalTokens int
	Errors      []string
}

// ProgressFunc is called after each file with the number of files handled
// so far.
type ProgressFunc func(processed, total int, currentFile string)

// Frequency walks root and sums the frequency tables of every matched file.
// A file that cannot be read is recorded in Errors and skipped. keep filters
// the final table the same way StatsUseCase.Frequency does.
func (u *CorpusUseCase) Frequency(root string, keep func(token string) bool, progress ProgressFunc) (*CorpusResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	u.logger.Debug("corpus walk complete", "root", root, "files", len(files))

	result := &CorpusResult{Table: make(domain.FrequencyTable)}

	for i, file := range files {
		freq, err := u.stats.Frequency(domain.File(file.Path), nil)
		if err != nil {
			u.logger.Warn("skipping unreadable file", "path", file.Path, "error", err)
			result.FilesFailed++
			result.Errors = append(result.Errors, err.Error())
		} else {
			result.Table.Merge(freq)
			result.FilesRead++
		}

		if progress != nil {
			progress(i+1, len(files), file.Path)
		}
	}

	result.TotalTokens = result.Table.Total()
	if keep != nil {
		result.Table = filterFrequency(result.Table, keep)
	}

	return result, nil
}
