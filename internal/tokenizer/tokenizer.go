package tokenizer

// Tokenizer is the core interface for text tokenization.
//
// All tokenizer implementations must implement this interface.
type Tokenizer interface {
	// Encode converts text to token IDs.
	Encode(text string) ([]int32, error)

	// Decode converts token IDs back to text.
	Decode(tokens []int32) (string, error)

	// VocabSize returns the total vocabulary size.
	VocabSize() int
}

// Trainable is a Tokenizer whose vocabulary is learned from a corpus.
type Trainable interface {
	Tokenizer

	// Train learns the vocabulary from text. vocabSize must be at
	// least 256 (the base byte tokens); vocabSize-256 merges are
	// learned, fewer if no mergeable pair remains.
	Train(text string, vocabSize int) error
}
