package tokenizer

import "errors"

var (
	// ErrInvalidVocabSize is returned when a requested vocabulary size
	// is smaller than the 256 base byte tokens.
	ErrInvalidVocabSize = errors.New("vocab size must be at least 256")

	// ErrUnknownToken is returned when Decode encounters a token ID
	// that is not present in the vocabulary.
	ErrUnknownToken = errors.New("unknown token ID")

	// ErrCorruptModel is returned when a persisted model file contains
	// a line that does not parse as three integers, or whose rules
	// reference tokens no earlier rule introduced.
	ErrCorruptModel = errors.New("corrupt model file")
)
