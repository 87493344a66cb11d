package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteTokenizer_Encode(t *testing.T) {
	tok := NewByteTokenizer()

	tests := []struct {
		name string
		text string
		want []int32
	}{
		{
			name: "ascii",
			text: "ab",
			want: []int32{97, 98},
		},
		{
			name: "empty string",
			text: "",
			want: []int32{},
		},
		{
			name: "multi-byte rune",
			text: "é",
			want: []int32{0xc3, 0xa9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := tok.Encode(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestByteTokenizer_Decode(t *testing.T) {
	tok := NewByteTokenizer()

	t.Run("single byte", func(t *testing.T) {
		text, err := tok.Decode([]int32{97})
		require.NoError(t, err)
		assert.Equal(t, "a", text)
	})

	t.Run("empty", func(t *testing.T) {
		text, err := tok.Decode([]int32{})
		require.NoError(t, err)
		assert.Equal(t, "", text)
	})

	t.Run("unknown token ID", func(t *testing.T) {
		_, err := tok.Decode([]int32{9999})
		assert.ErrorIs(t, err, ErrUnknownToken)
	})

	t.Run("malformed UTF-8 replaced, not rejected", func(t *testing.T) {
		text, err := tok.Decode([]int32{104, 105, 0xff})
		require.NoError(t, err)
		assert.Equal(t, "hi�", text)
	})
}

func TestByteTokenizer_RoundTrip(t *testing.T) {
	tok := NewByteTokenizer()

	for _, text := range []string{
		"hello world",
		"Ｕｎｉｃｏｄｅ! 🅤🅝🅘🅒🅞🅓🅔‽ 😄",
		"tabs\tand\nnewlines",
	} {
		ids, err := tok.Encode(text)
		require.NoError(t, err)
		decoded, err := tok.Decode(ids)
		require.NoError(t, err)
		assert.Equal(t, text, decoded)
	}
}

func TestByteTokenizer_Train(t *testing.T) {
	tok := NewByteTokenizer()

	assert.ErrorIs(t, tok.Train("text", 255), ErrInvalidVocabSize)
	assert.NoError(t, tok.Train("text", 300))
	assert.Equal(t, 256, tok.VocabSize())
}
