package tokenizer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hfFile struct {
	Version      string `json:"version"`
	PreTokenizer struct {
		Type string `json:"type"`
	} `json:"pre_tokenizer"`
	Model struct {
		Type   string           `json:"type"`
		Vocab  map[string]int32 `json:"vocab"`
		Merges []string         `json:"merges"`
	} `json:"model"`
}

func writeAndParseHF(t *testing.T, tok *BPETokenizer) hfFile {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tokenizer.json")
	require.NoError(t, WriteHFTokenizerJSON(path, tok))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed hfFile
	require.NoError(t, json.Unmarshal(data, &parsed))
	return parsed
}

func TestWriteHFTokenizerJSON(t *testing.T) {
	tok := mustRegexBPE()
	require.NoError(t, tok.Train(unicodeSample, 300))

	parsed := writeAndParseHF(t, tok)

	assert.Equal(t, "1.0", parsed.Version)
	assert.Equal(t, "BPE", parsed.Model.Type)
	assert.Len(t, parsed.Model.Vocab, tok.VocabSize())
	assert.Len(t, parsed.Model.Merges, tok.NumMerges())

	// Segmented tokenizers carry their split pattern as a pre-tokenizer.
	assert.Equal(t, "Sequence", parsed.PreTokenizer.Type)
}

func TestWriteHFTokenizerJSON_Contiguous(t *testing.T) {
	tok := NewBPETokenizer()
	require.NoError(t, tok.Train("aaabdaaabac", 259))

	parsed := writeAndParseHF(t, tok)

	assert.Len(t, parsed.Model.Vocab, 259)
	require.Len(t, parsed.Model.Merges, 3)
	// First merge is "aa": byte 97 maps to "a" in the GPT-2 table.
	assert.Equal(t, "a a", parsed.Model.Merges[0])

	// No split pattern, so only the ByteLevel pre-tokenizer remains.
	assert.Equal(t, "ByteLevel", parsed.PreTokenizer.Type)
}

func TestHFByteEncoder_Bijective(t *testing.T) {
	encoder := hfByteEncoder()

	seen := make(map[rune]bool, 256)
	for b := 0; b < 256; b++ {
		r := encoder[byte(b)]
		assert.False(t, seen[r], "rune %q mapped twice", r)
		seen[r] = true
	}

	// Printable ASCII maps to itself.
	assert.Equal(t, 'a', encoder['a'])
	// Space does not (it is remapped above 256).
	assert.NotEqual(t, ' ', encoder[' '])
}
