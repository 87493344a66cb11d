package tokenizer

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// GPT4SplitPattern is the pre-tokenization pattern used by
// NewRegexBPETokenizer. It isolates contractions, letter runs with an
// optional leading non-letter, digit runs of at most three, punctuation
// runs with trailing newlines, and whitespace, with trailing whitespace
// kept apart from a following non-whitespace run. Splitting on it
// keeps merges from spanning e.g. a word and its punctuation.
//
// regexp2 does not support possessive quantifiers, so the published
// PCRE pattern is expressed with atomic groups instead.
const GPT4SplitPattern = `'(?i:[sdmt]|ll|ve|re)|(?>[^\r\n\p{L}\p{N}]?)\p{L}+|\p{N}{1,3}| ?(?>[^\s\p{L}\p{N}]+)[\r\n]*|\s*[\r\n]|\s+(?!\S)|\s+`

// splitter segments text before BPE is applied within each segment.
type splitter interface {
	split(text string) ([]string, error)
}

// wholeText is the no-op strategy: the entire input is one segment.
type wholeText struct{}

func (wholeText) split(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	return []string{text}, nil
}

// regexSplitter segments text with a Unicode-aware regex. Matches are
// returned in input order and cover the whole input: every byte
// belongs to exactly one segment.
type regexSplitter struct {
	pattern  string
	compiled *regexp2.Regexp
}

func newRegexSplitter(pattern string) (*regexSplitter, error) {
	compiled, err := regexp2.Compile(pattern, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to compile split pattern: %w", err)
	}
	return &regexSplitter{pattern: pattern, compiled: compiled}, nil
}

func (s *regexSplitter) split(text string) ([]string, error) {
	var segments []string
	m, err := s.compiled.FindStringMatch(text)
	if err != nil {
		return nil, fmt.Errorf("split pattern failed: %w", err)
	}
	for m != nil {
		segments = append(segments, m.String())
		m, err = s.compiled.FindNextMatch(m)
		if err != nil {
			return nil, fmt.Errorf("split pattern failed: %w", err)
		}
	}
	return segments, nil
}
