package usecase

import (
	"fmt"

	"textstats/internal/adapter/fs"
	"textstats/internal/domain"
	"textstats/internal/port"
)

// DefaultWindow is the co-occurrence window used when none is configured.
const DefaultWindow = 2

// StatsUseCase computes token statistics for a single source.
type StatsUseCase struct {
	tokenizer port.Tokenizer
}

// NewStatsUseCase creates a new stats use case.
func NewStatsUseCase(tokenizer port.Tokenizer) *StatsUseCase {
	return &StatsUseCase{tokenizer: tokenizer}
}

// Tokens resolves src and returns its token sequence. File sources are read
// in full.
func (u *StatsUseCase) Tokens(src domain.Source) ([]string, error) {
	switch src.Kind {
	case domain.SourceText:
		return u.tokenizer.Tokenize(src.Value), nil
	case domain.SourceFile:
		content, err := fs.ReadFile(src.Value)
		if err != nil {
			return nil, err
		}
		return u.tokenizer.Tokenize(content), nil
	default:
		return nil, fmt.Errorf("%w (got kind %s)", domain.ErrInvalidSource, src.Kind)
	}
}

// Frequency counts every token in src. When keep is non-nil only tokens it
// accepts are reported; their counts are still the full occurrence counts.
func (u *StatsUseCase) Frequency(src domain.Source, keep func(token string) bool) (domain.FrequencyTable, error) {
	tokens, err := u.Tokens(src)
	if err != nil {
		return nil, err
	}

	freq := make(domain.FrequencyTable)
	for _, tok := range tokens {
		freq[tok]++
	}

	if keep == nil {
		return freq, nil
	}
	return filterFrequency(freq, keep), nil
}

// UniqueTokens returns the set of distinct tokens in src.
func (u *StatsUseCase) UniqueTokens(src domain.Source) (map[string]struct{}, error) {
	tokens, err := u.Tokens(src)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set, nil
}

// Cooccurrence counts ordered pairs (tokens[i], tokens[i+j]) for every
// 1 <= j < window. A window of 1 yields an empty table.
func (u *StatsUseCase) Cooccurrence(src domain.Source, window int) (domain.CooccurrenceTable, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w (got %d)", domain.ErrInvalidWindow, window)
	}

	tokens, err := u.Tokens(src)
	if err != nil {
		return nil, err
	}

	return countPairs(tokens, window), nil
}

func countPairs(tokens []string, window int) domain.CooccurrenceTable {
	table := make(domain.CooccurrenceTable)
	for i, first := range tokens {
		for j := 1; j < window && i+j < len(tokens); j++ {
			table[domain.Pair{First: first, Second: tokens[i+j]}]++
		}
	}
	return table
}

func filterFrequency(freq domain.FrequencyTable, keep func(token string) bool) domain.FrequencyTable {
	filtered := make(domain.FrequencyTable, len(freq))
	for tok, count := range freq {
		if keep(tok) {
			filtered[tok] = count
		}
	}
	return filtered
}
