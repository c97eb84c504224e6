package port

// Tokenizer turns text into an ordered sequence of tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}
