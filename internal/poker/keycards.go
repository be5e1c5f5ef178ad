package poker

// KeyCardIndexes filters a hand's five contributing positions down to the
// cards causally responsible for the rank, excluding pure kickers. This is
// what the UI highlights; it never changes the hand's rank or tiebreakers.
func KeyCardIndexes(hv HandValue, cards []Card) []int {
	switch hv.Rank {
	case RoyalFlush, StraightFlush, Straight, Flush, FullHouse:
		return append([]int(nil), hv.CardIndexes...)
	case FourOfAKind, ThreeOfAKind, OnePair:
		return indexesWithRanks(hv, cards, hv.Tiebreakers[0])
	case TwoPair:
		return indexesWithRanks(hv, cards, hv.Tiebreakers[0], hv.Tiebreakers[1])
	default:
		// High card: just the single strongest card
		for _, idx := range hv.CardIndexes {
			if cards[idx].Rank() == hv.Tiebreakers[0] {
				return []int{idx}
			}
		}
		return nil
	}
}

// indexesWithRanks returns the contributing positions whose card rank
// matches any of the wanted ranks, preserving contribution order
func indexesWithRanks(hv HandValue, cards []Card, wanted ...uint8) []int {
	var out []int
	for _, idx := range hv.CardIndexes {
		r := cards[idx].Rank()
		for _, w := range wanted {
			if r == w {
				out = append(out, idx)
				break
			}
		}
	}
	return out
}
