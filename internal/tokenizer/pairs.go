package tokenizer

// Pair is an ordered pair of adjacent token IDs.
type Pair struct {
	Left  int32
	Right int32
}

// less orders pairs by (Left, Right).
func (p Pair) less(q Pair) bool {
	if p.Left != q.Left {
		return p.Left < q.Left
	}
	return p.Right < q.Right
}

// PairStats counts each adjacent pair (ids[i], ids[i+1]) in ids. If
// stats is non-nil the counts are added into it, which lets callers
// aggregate frequencies across many independent segments without
// concatenating them. The input slice is never modified.
func PairStats(ids []int32, stats map[Pair]int) map[Pair]int {
	if stats == nil {
		stats = make(map[Pair]int)
	}
	for i := 0; i+1 < len(ids); i++ {
		stats[Pair{ids[i], ids[i+1]}]++
	}
	return stats
}

// Merge returns a copy of ids with every non-overlapping occurrence of
// pair replaced by newID, scanning greedily left to right. The input
// slice is left intact: training reuses the pre-merge statistics
// computed from it in the same pass.
func Merge(ids []int32, pair Pair, newID int32) []int32 {
	out := make([]int32, 0, len(ids))
	for i := 0; i < len(ids); {
		if i+1 < len(ids) && ids[i] == pair.Left && ids[i+1] == pair.Right {
			out = append(out, newID)
			i += 2
		} else {
			out = append(out, ids[i])
			i++
		}
	}
	return out
}
