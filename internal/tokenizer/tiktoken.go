package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const (
	// encodingCL100kBase is the encoding name for GPT-4 and GPT-3.5-turbo.
	encodingCL100kBase = "cl100k_base"
	// encodingP50kBase is the encoding name for GPT-3.
	encodingP50kBase = "p50k_base"
	// encodingR50kBase is the encoding name for older GPT-3 models.
	encodingR50kBase = "r50k_base"
)

// TikToken exposes the pretrained OpenAI BPE encodings behind the
// Tokenizer interface. It is not Trainable: its vocabulary is fixed.
type TikToken struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewTikToken creates a TikToken tokenizer with the specified
// encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func NewTikToken(encodingName string) (*TikToken, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}
	return &TikToken{encoding: encoding, name: encodingName}, nil
}

// NewTikTokenForModel creates a TikToken tokenizer for a specific
// model.
//
// Example models: "gpt-4", "gpt-3.5-turbo", "text-embedding-ada-002".
func NewTikTokenForModel(modelName string) (*TikToken, error) {
	encoding, err := tiktoken.EncodingForModel(modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken for model %q: %w", modelName, err)
	}
	return &TikToken{encoding: encoding, name: modelName}, nil
}

// Encode converts text to token IDs.
func (t *TikToken) Encode(text string) ([]int32, error) {
	tokens := t.encoding.Encode(text, nil, nil)
	result := make([]int32, len(tokens))
	for i, tok := range tokens {
		result[i] = int32(tok) //nolint:gosec // G115: token IDs fit in int32, vocab size < 2^31.
	}
	return result, nil
}

// Decode converts token IDs back to text.
func (t *TikToken) Decode(tokens []int32) (string, error) {
	intTokens := make([]int, len(tokens))
	for i, tok := range tokens {
		intTokens[i] = int(tok)
	}
	return t.encoding.Decode(intTokens), nil
}

// VocabSize returns the total vocabulary size.
func (t *TikToken) VocabSize() int {
	// tiktoken-go doesn't expose vocab size directly.
	switch t.name {
	case encodingCL100kBase:
		return 100256
	case encodingP50kBase, encodingR50kBase:
		return 50257
	default:
		return 100000 // conservative default
	}
}

// Name returns the encoding or model name the tokenizer was built
// from.
func (t *TikToken) Name() string {
	return t.name
}
