package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTikToken_Roundtrip(t *testing.T) {
	tok, err := NewTikToken("cl100k_base")
	if err != nil {
		// The encoding is fetched on first use; skip when offline.
		t.Skipf("tiktoken encoding unavailable: %v", err)
	}

	tests := []struct {
		name string
		text string
	}{
		{name: "simple text", text: "Hello, world!"},
		{name: "unicode", text: "héllo wörld 😄"},
		{name: "empty", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := tok.Encode(tt.text)
			require.NoError(t, err)

			decoded, err := tok.Decode(ids)
			require.NoError(t, err)
			assert.Equal(t, tt.text, decoded)
		})
	}
}

func TestTikToken_InvalidEncoding(t *testing.T) {
	tok, err := NewTikToken("invalid_encoding_xyz")
	assert.Error(t, err)
	assert.Nil(t, tok)
}

func TestTikToken_VocabSize(t *testing.T) {
	tok, err := NewTikToken("cl100k_base")
	if err != nil {
		t.Skipf("tiktoken encoding unavailable: %v", err)
	}

	assert.Equal(t, 100256, tok.VocabSize())
	assert.Equal(t, "cl100k_base", tok.Name())
}
