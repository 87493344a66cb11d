package tokenizer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// WriteHFTokenizerJSON serializes a trained BPE tokenizer to the
// HuggingFace tokenizer.json format so Transformers-family consumers
// can load the learned vocabulary directly.
//
// Token bytes are rendered with the GPT-2 byte-to-unicode table, and
// the split pattern (if any) is emitted as a Split pre-tokenizer ahead
// of the ByteLevel one.
func WriteHFTokenizerJSON(path string, t *BPETokenizer) error {
	encoder := hfByteEncoder()
	ranks := t.MergeableRanks()
	vocab := make(map[string]int32, len(ranks))
	idToToken := make(map[int32]string, len(ranks))
	for _, entry := range ranks {
		token := hfEncodeBytes(encoder, entry.Bytes)
		vocab[token] = entry.ID
		idToToken[entry.ID] = token
	}

	merges := make([]string, 0, t.NumMerges())
	for _, r := range t.rules {
		merges = append(merges, idToToken[r.Left]+" "+idToToken[r.Right])
	}

	byteLevel := map[string]any{
		"type":             "ByteLevel",
		"add_prefix_space": false,
		"trim_offsets":     false,
		"use_regex":        false,
	}

	var preTokenizer any = byteLevel
	if pattern := t.Pattern(); pattern != "" {
		preTokenizer = map[string]any{
			"type": "Sequence",
			"pretokenizers": []any{
				map[string]any{
					"type":     "Split",
					"pattern":  map[string]any{"Regex": hfCompatiblePattern(pattern)},
					"behavior": "Isolated",
					"invert":   false,
				},
				byteLevel,
			},
		}
	}

	tokenizerJSON := map[string]any{
		"version":       "1.0",
		"truncation":    nil,
		"padding":       nil,
		"added_tokens":  []any{},
		"normalizer":    nil,
		"pre_tokenizer": preTokenizer,
		"post_processor": nil,
		"decoder": map[string]any{
			"type":             "ByteLevel",
			"add_prefix_space": false,
			"trim_offsets":     false,
		},
		"model": map[string]any{
			"type":                     "BPE",
			"dropout":                  nil,
			"unk_token":                nil,
			"continuing_subword_prefix": "",
			"end_of_word_suffix":       "",
			"vocab":                    vocab,
			"merges":                   merges,
			"fuse_unk":                 false,
			"byte_fallback":            false,
		},
	}

	encoded, err := json.MarshalIndent(tokenizerJSON, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tokenizer.json: %w", err)
	}
	encoded = append(encoded, '\n')
	return os.WriteFile(path, encoded, 0o644)
}

// hfByteEncoder builds the GPT-2 byte-to-unicode table: printable
// bytes map to themselves, the rest to code points starting at 256.
func hfByteEncoder() [256]rune {
	var bs []int
	for i := 33; i <= 126; i++ {
		bs = append(bs, i)
	}
	for i := 161; i <= 172; i++ {
		bs = append(bs, i)
	}
	for i := 174; i <= 255; i++ {
		bs = append(bs, i)
	}

	var used [256]bool
	for _, b := range bs {
		used[b] = true
	}

	cs := make([]int, len(bs))
	copy(cs, bs)
	n := 0
	for b := 0; b < 256; b++ {
		if !used[b] {
			bs = append(bs, b)
			cs = append(cs, 256+n)
			n++
		}
	}

	var encoder [256]rune
	for i, b := range bs {
		encoder[byte(b)] = rune(cs[i])
	}
	return encoder
}

func hfEncodeBytes(encoder [256]rune, data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, v := range data {
		b.WriteRune(encoder[v])
	}
	return b.String()
}

// hfCompatiblePattern rewrites regexp2 atomic groups into plain groups
// so the pattern stays loadable by JS-based consumers.
func hfCompatiblePattern(pattern string) string {
	replacer := strings.NewReplacer(
		"(?>", "(?:",
		"'(?i:[sdmt]|ll|ve|re)", "(?i:'s|'t|'re|'ve|'m|'ll|'d)",
	)
	return replacer.Replace(pattern)
}
