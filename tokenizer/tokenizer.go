// Package tokenizer provides byte-level BPE text tokenization for
// toyGPT.
//
// This package wraps the internal tokenizer implementations and
// provides a clean public API for tokenization tasks.
//
// Supported tokenizers:
//   - Byte: raw UTF-8 bytes, IDs 0-255
//   - BPE: Byte Pair Encoding trained over one contiguous byte stream
//   - Regex BPE: BPE over regex-segmented chunks (GPT-4 split pattern)
//   - TikToken: pretrained OpenAI encodings (cl100k_base, p50k_base)
//
// Example usage:
//
//	import "github.com/mandal13/toyGPT/tokenizer"
//
//	tok, err := tokenizer.NewRegexBPETokenizer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Learn the vocabulary
//	if err := tok.Train(corpus, 512); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Encode text
//	ids, err := tok.Encode("Hello, world!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Decode tokens
//	text, err := tok.Decode(ids)
//	if err != nil {
//	    log.Fatal(err)
//	}
package tokenizer

import (
	"github.com/mandal13/toyGPT/internal/tokenizer"
)

// Tokenizer is the core interface for text tokenization.
//
// All tokenizer implementations must implement this interface.
type Tokenizer = tokenizer.Tokenizer

// Trainable is a Tokenizer whose vocabulary is learned from a corpus.
type Trainable = tokenizer.Trainable

// ByteTokenizer is the raw UTF-8 byte baseline.
type ByteTokenizer = tokenizer.ByteTokenizer

// BPETokenizer trains and applies Byte Pair Encoding.
type BPETokenizer = tokenizer.BPETokenizer

// MergeRule records one learned merge in training order.
type MergeRule = tokenizer.MergeRule

// Pair is an ordered pair of adjacent token IDs.
type Pair = tokenizer.Pair

// GPT4SplitPattern is the pre-tokenization pattern used by
// NewRegexBPETokenizer.
const GPT4SplitPattern = tokenizer.GPT4SplitPattern

// Sentinel errors surfaced by train, decode and load.
var (
	ErrInvalidVocabSize = tokenizer.ErrInvalidVocabSize
	ErrUnknownToken     = tokenizer.ErrUnknownToken
	ErrCorruptModel     = tokenizer.ErrCorruptModel
)

// NewByteTokenizer creates a byte-level tokenizer.
func NewByteTokenizer() *ByteTokenizer {
	return tokenizer.NewByteTokenizer()
}

// NewBPETokenizer creates a BPE tokenizer that trains over the input
// as one contiguous byte sequence.
func NewBPETokenizer() *BPETokenizer {
	return tokenizer.NewBPETokenizer()
}

// NewRegexBPETokenizer creates a BPE tokenizer that pre-splits input
// with the GPT-4 pattern before training and encoding.
func NewRegexBPETokenizer() (*BPETokenizer, error) {
	return tokenizer.NewRegexBPETokenizer()
}

// NewRegexBPETokenizerWithPattern creates a BPE tokenizer that
// pre-splits input with a custom regexp2 pattern.
func NewRegexBPETokenizerWithPattern(pattern string) (*BPETokenizer, error) {
	return tokenizer.NewRegexBPETokenizerWithPattern(pattern)
}

// NewTikToken creates a tokenizer for a pretrained OpenAI encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func NewTikToken(encodingName string) (Tokenizer, error) {
	return tokenizer.NewTikToken(encodingName)
}

// NewTikTokenForModel creates a tokenizer for a specific OpenAI model.
//
// Example models: "gpt-4", "gpt-3.5-turbo", "text-embedding-ada-002".
func NewTikTokenForModel(modelName string) (Tokenizer, error) {
	return tokenizer.NewTikTokenForModel(modelName)
}

// BuildVocab derives the full vocabulary from an ordered merge rule
// table.
func BuildVocab(rules []MergeRule) (map[int32][]byte, error) {
	return tokenizer.BuildVocab(rules)
}

// WriteHFTokenizerJSON serializes a trained BPE tokenizer to the
// HuggingFace tokenizer.json format.
func WriteHFTokenizerJSON(path string, t *BPETokenizer) error {
	return tokenizer.WriteHFTokenizerJSON(path, t)
}
