package poker

// HandValue is the ranked value of a five-card hand. Tiebreakers holds rank
// indices (0-12) in descending significance; its layout depends on Rank
// (e.g. [quadRank, kicker] for four of a kind, all five sorted ranks for a
// flush). CardIndexes holds the positions of the five cards in the original
// input, so callers can map the hand back onto whatever they displayed.
type HandValue struct {
	Rank        HandRank
	Tiebreakers []uint8
	CardIndexes []int
}

// Compare returns 1 if hv is the stronger hand, -1 if other is, 0 on a tie.
// Rank decides first; equal ranks fall through to element-wise tiebreaker
// comparison, treating a missing element as 0. This is the single source of
// truth for "hand A beats hand B".
func (hv HandValue) Compare(other HandValue) int {
	if hv.Rank != other.Rank {
		if hv.Rank > other.Rank {
			return 1
		}
		return -1
	}

	n := len(hv.Tiebreakers)
	if len(other.Tiebreakers) > n {
		n = len(other.Tiebreakers)
	}
	for i := 0; i < n; i++ {
		a := tiebreakerAt(hv.Tiebreakers, i)
		b := tiebreakerAt(other.Tiebreakers, i)
		if a != b {
			if a > b {
				return 1
			}
			return -1
		}
	}
	return 0
}

func tiebreakerAt(tb []uint8, i int) uint8 {
	if i >= len(tb) {
		return 0
	}
	return tb[i]
}

// CompareHands compares two hand values and returns 1 if a wins, -1 if b
// wins, 0 for a tie
func CompareHands(a, b HandValue) int {
	return a.Compare(b)
}
