package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairStats(t *testing.T) {
	tests := []struct {
		name string
		ids  []int32
		want map[Pair]int
	}{
		{
			name: "repeated pairs",
			ids:  []int32{1, 2, 1, 2, 1, 3},
			want: map[Pair]int{
				{1, 2}: 2,
				{2, 1}: 2,
				{1, 3}: 1,
			},
		},
		{
			name: "empty sequence",
			ids:  nil,
			want: map[Pair]int{},
		},
		{
			name: "single element",
			ids:  []int32{42},
			want: map[Pair]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PairStats(tt.ids, nil))
		})
	}
}

func TestPairStats_Accumulator(t *testing.T) {
	stats := map[Pair]int{{1, 2}: 1}

	got := PairStats([]int32{1, 2, 1}, stats)

	want := map[Pair]int{
		{1, 2}: 2,
		{2, 1}: 1,
	}
	assert.Equal(t, want, got)
	// The accumulator is updated in place, not copied.
	assert.Equal(t, want, stats)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		ids   []int32
		pair  Pair
		newID int32
		want  []int32
	}{
		{
			name:  "multiple occurrences",
			ids:   []int32{1, 2, 3, 1, 2, 4},
			pair:  Pair{1, 2},
			newID: 99,
			want:  []int32{99, 3, 99, 4},
		},
		{
			name:  "overlapping run merges greedily left to right",
			ids:   []int32{7, 7, 7},
			pair:  Pair{7, 7},
			newID: 99,
			want:  []int32{99, 7},
		},
		{
			name:  "pair absent",
			ids:   []int32{1, 3, 5},
			pair:  Pair{1, 2},
			newID: 99,
			want:  []int32{1, 3, 5},
		},
		{
			name:  "empty sequence",
			ids:   nil,
			pair:  Pair{1, 2},
			newID: 99,
			want:  []int32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.ids, tt.pair, tt.newID))
		})
	}
}

func TestMerge_InputIntact(t *testing.T) {
	ids := []int32{1, 2, 1, 2}

	got := Merge(ids, Pair{1, 2}, 99)

	assert.Equal(t, []int32{99, 99}, got)
	assert.Equal(t, []int32{1, 2, 1, 2}, ids)
}
