package tokenizer

import "fmt"

// ByteTokenizer is the byte-level baseline: text maps to its raw UTF-8
// byte values (IDs 0-255) and back. Its token stream is a valid subset
// of every BPE token stream built on top of it.
type ByteTokenizer struct {
	model
}

// NewByteTokenizer creates a byte-level tokenizer.
func NewByteTokenizer() *ByteTokenizer {
	return &ByteTokenizer{model: newModel()}
}

// Train validates vocabSize and returns. The byte-level vocabulary is
// fully determined by the 256 byte identities, so there is nothing to
// learn.
func (t *ByteTokenizer) Train(text string, vocabSize int) error {
	if vocabSize < numBaseTokens {
		return fmt.Errorf("%w: got %d", ErrInvalidVocabSize, vocabSize)
	}
	return nil
}

// Encode converts text to one token per UTF-8 byte.
func (t *ByteTokenizer) Encode(text string) ([]int32, error) {
	return byteIDs(text), nil
}

// byteIDs converts text to its raw UTF-8 byte values.
func byteIDs(text string) []int32 {
	ids := make([]int32, len(text))
	for i := 0; i < len(text); i++ {
		ids[i] = int32(text[i])
	}
	return ids
}
