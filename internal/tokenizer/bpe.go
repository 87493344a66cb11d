package tokenizer

import (
	"fmt"

	"github.com/mandal13/toyGPT/internal/parallel"
)

// BPETokenizer trains and applies Byte Pair Encoding.
//
// The contiguous variant (NewBPETokenizer) treats the whole input as
// one byte sequence. The regex variant (NewRegexBPETokenizer) splits
// the input into segments first and trains each segment independently
// at the byte level while accumulating merges into one shared
// vocabulary, so a merge can never span a segment boundary.
type BPETokenizer struct {
	model
	split splitter
}

// NewBPETokenizer creates a tokenizer that trains over the input as
// one contiguous byte sequence.
func NewBPETokenizer() *BPETokenizer {
	return &BPETokenizer{model: newModel(), split: wholeText{}}
}

// NewRegexBPETokenizer creates a tokenizer that pre-splits input with
// GPT4SplitPattern.
func NewRegexBPETokenizer() (*BPETokenizer, error) {
	return NewRegexBPETokenizerWithPattern(GPT4SplitPattern)
}

// NewRegexBPETokenizerWithPattern creates a tokenizer that pre-splits
// input with the given regexp2 pattern. The pattern must cover its
// input: every byte has to fall into some match.
func NewRegexBPETokenizerWithPattern(pattern string) (*BPETokenizer, error) {
	s, err := newRegexSplitter(pattern)
	if err != nil {
		return nil, err
	}
	return &BPETokenizer{model: newModel(), split: s}, nil
}

// Pattern returns the pre-tokenization pattern, or "" for the
// contiguous variant.
func (t *BPETokenizer) Pattern() string {
	if s, ok := t.split.(*regexSplitter); ok {
		return s.pattern
	}
	return ""
}

// Train learns vocabSize-256 merges from text, replacing any
// previously learned vocabulary. Per iteration, pair frequencies are
// accumulated across all segments into one table, the most frequent
// pair wins (frequency ties go to the lexicographically smallest
// pair), and the merge is applied to every segment. Training stops
// early when no adjacent pair remains, which callers should treat as
// normal convergence, not a failure.
func (t *BPETokenizer) Train(text string, vocabSize int) error {
	if vocabSize < numBaseTokens {
		return fmt.Errorf("%w: got %d", ErrInvalidVocabSize, vocabSize)
	}

	segments, err := t.split.split(text)
	if err != nil {
		return err
	}
	seqs := make([][]int32, len(segments))
	for i, seg := range segments {
		seqs[i] = byteIDs(seg)
	}

	t.model = newModel()
	numMerges := vocabSize - numBaseTokens
	cfg := parallel.DefaultConfig()

	for i := 0; i < numMerges; i++ {
		stats := countPairs(seqs, cfg)
		best, ok := maxPair(stats)
		if !ok {
			break // converged: nothing left to merge
		}
		newID := int32(numBaseTokens + i)
		for j := range seqs {
			seqs[j] = Merge(seqs[j], best, newID)
		}
		t.record(best, newID)
	}
	return nil
}

// countPairs accumulates pair frequencies across all segments into one
// shared table. Counting is sharded over workers when there are enough
// segments; selecting and applying the winning merge stays sequential,
// so every run observes the same sequence state per iteration.
func countPairs(seqs [][]int32, cfg parallel.Config) map[Pair]int {
	chunks := parallel.NumChunks(len(seqs), cfg)
	if chunks == 1 {
		stats := make(map[Pair]int)
		for _, seq := range seqs {
			stats = PairStats(seq, stats)
		}
		return stats
	}

	locals := make([]map[Pair]int, chunks)
	parallel.ForChunks(len(seqs), cfg, func(chunk, start, end int) {
		stats := make(map[Pair]int)
		for _, seq := range seqs[start:end] {
			stats = PairStats(seq, stats)
		}
		locals[chunk] = stats
	})

	stats := locals[0]
	for _, local := range locals[1:] {
		for p, c := range local {
			stats[p] += c
		}
	}
	return stats
}

// maxPair selects the most frequent pair. Frequency ties are broken by
// the lexicographically smallest pair, so training is deterministic
// regardless of map iteration order.
func maxPair(stats map[Pair]int) (Pair, bool) {
	var best Pair
	bestCount := 0
	for p, c := range stats {
		if c > bestCount || (c == bestCount && p.less(best)) {
			best, bestCount = p, c
		}
	}
	return best, bestCount > 0
}

// Encode converts text to token IDs: each segment is reduced
// independently by the learned merges and the per-segment streams are
// concatenated in segment order.
func (t *BPETokenizer) Encode(text string) ([]int32, error) {
	segments, err := t.split.split(text)
	if err != nil {
		return nil, err
	}
	ids := []int32{}
	for _, seg := range segments {
		ids = append(ids, t.encodeSegment(byteIDs(seg))...)
	}
	return ids, nil
}

// encodeSegment repeatedly applies the present pair with the lowest
// recorded rank until no recorded pair remains, re-scanning after
// every merge. This reproduces exactly the token sequence the
// training merge order implies.
func (t *BPETokenizer) encodeSegment(ids []int32) []int32 {
	for len(ids) >= 2 {
		var best Pair
		bestRank := int32(-1)
		for i := 0; i+1 < len(ids); i++ {
			p := Pair{ids[i], ids[i+1]}
			if rank, ok := t.ranks[p]; ok && (bestRank < 0 || rank < bestRank) {
				best, bestRank = p, rank
			}
		}
		if bestRank < 0 {
			break // no present pair has a recorded merge
		}
		// The recorded ID is the merge's rank, so it is also the
		// replacement token.
		ids = Merge(ids, best, bestRank)
	}
	return ids
}
