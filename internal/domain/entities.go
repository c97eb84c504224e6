package domain

import "sort"

// SourceKind tells how a Source value is interpreted.
type SourceKind int

const (
	sourceInvalid SourceKind = iota
	SourceText
	SourceFile
)

func (k SourceKind) String() string {
	switch k {
	case SourceText:
		return "text"
	case SourceFile:
		return "file"
	default:
		return "invalid"
	}
}

// Source is either literal text or a path to a file on disk. The caller
// picks the variant; nothing is inferred from the filesystem.
type Source struct {
	Kind  SourceKind
	Value string
}

// Text wraps literal text.
func Text(s string) Source {
	return Source{Kind: SourceText, Value: s}
}

// File wraps a file path.
func File(path string) Source {
	return Source{Kind: SourceFile, Value: path}
}

// Valid reports whether the source has a known kind.
func (s Source) Valid() bool {
	return s.Kind == SourceText || s.Kind == SourceFile
}

// Pair is an ordered token pair. (a, b) and (b, a) are distinct keys.
type Pair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// FrequencyTable maps a token to the number of times it occurs.
type FrequencyTable map[string]int

// TokenCount is a single FrequencyTable entry.
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Total returns the sum of all counts.
func (t FrequencyTable) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// Top returns up to n entries ordered by count descending, then token
// ascending. n <= 0 returns every entry.
func (t FrequencyTable) Top(n int) []TokenCount {
	entries := make([]TokenCount, 0, len(t))
	for tok, c := range t {
		entries = append(entries, TokenCount{Token: tok, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Merge adds every count from other into t.
func (t FrequencyTable) Merge(other FrequencyTable) {
	for tok, c := range other {
		t[tok] += c
	}
}

// CooccurrenceTable maps an ordered token pair to how often the second
// token followed the first within the window.
type CooccurrenceTable map[Pair]int

// PairCount is a single CooccurrenceTable entry.
type PairCount struct {
	Pair  Pair `json:"pair"`
	Count int  `json:"count"`
}

// Top returns up to n entries ordered by count descending, then pair
// ascending. n <= 0 returns every entry.
func (t CooccurrenceTable) Top(n int) []PairCount {
	entries := make([]PairCount, 0, len(t))
	for p, c := range t {
		entries = append(entries, PairCount{Pair: p, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Pair.First != b.Pair.First {
			return a.Pair.First < b.Pair.First
		}
		return a.Pair.Second < b.Pair.Second
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
