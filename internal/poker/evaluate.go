package poker

import (
	"errors"
	"fmt"
)

// ErrInvalidCardCount is returned when the evaluator is given fewer than 5
// or more than 7 cards.
var ErrInvalidCardCount = errors.New("evaluation requires 5 to 7 cards")

// Evaluated is the display projection of the best hand: the rank, its
// rendered name and description, and the key cards that make the hand
// (kickers excluded) both as positions in the input and as card codes.
type Evaluated struct {
	Rank        HandRank
	RankName    string
	Description string
	CardIndexes []int
	Cards       []Card
	Value       HandValue
}

// Evaluate finds the best five-card hand in 5 to 7 cards and projects it
// for display. The input card codes are trusted; only the count is checked.
func Evaluate(cards []Card) (Evaluated, error) {
	value, err := BestHand(cards)
	if err != nil {
		return Evaluated{}, err
	}

	keyIdx := KeyCardIndexes(value, cards)
	keyCards := make([]Card, len(keyIdx))
	for i, idx := range keyIdx {
		keyCards[i] = cards[idx]
	}

	return Evaluated{
		Rank:        value.Rank,
		RankName:    value.Rank.String(),
		Description: Describe(value),
		CardIndexes: keyIdx,
		Cards:       keyCards,
		Value:       value,
	}, nil
}

// BestHand returns the value of the strongest five-card hand contained in
// 5 to 7 cards. For more than five cards every five-card subset is ranked
// and the maximum kept; subsets are enumerated in lexicographic index
// order and ties keep the earliest subset, so CardIndexes is deterministic
// but not canonical when two subsets tie.
func BestHand(cards []Card) (HandValue, error) {
	n := len(cards)
	if n < 5 || n > 7 {
		return HandValue{}, fmt.Errorf("%w: got %d", ErrInvalidCardCount, n)
	}

	if n == 5 {
		return rankFive(cards, [5]int{0, 1, 2, 3, 4}), nil
	}

	var best HandValue
	first := true
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						hv := rankFive(cards, [5]int{a, b, c, d, e})
						if first || hv.Compare(best) > 0 {
							best = hv
							first = false
						}
					}
				}
			}
		}
	}
	return best, nil
}

// rankFive classifies the five cards at the picked positions and builds the
// tiebreaker vector for the classification.
func rankFive(cards []Card, picks [5]int) HandValue {
	var ranks [5]uint8
	isFlush := true
	suit := cards[picks[0]].Suit()
	for i, p := range picks {
		ranks[i] = cards[p].Rank()
		if cards[p].Suit() != suit {
			isFlush = false
		}
	}

	sorted := ranks
	sortRanksDesc(sorted[:])

	isStraight, straightHigh := checkStraight(sorted)

	var counts [13]uint8
	for _, r := range ranks {
		counts[r]++
	}

	hv := HandValue{CardIndexes: []int{picks[0], picks[1], picks[2], picks[3], picks[4]}}

	switch {
	case isFlush && isStraight && straightHigh == Ace:
		hv.Rank = RoyalFlush
		hv.Tiebreakers = sorted[:]
	case isFlush && isStraight:
		hv.Rank = StraightFlush
		hv.Tiebreakers = []uint8{straightHigh}
	case hasCount(counts, 4):
		quad := findCount(counts, 4)
		hv.Rank = FourOfAKind
		hv.Tiebreakers = append([]uint8{quad}, findKickers(counts, []uint8{quad}, 1)...)
	case hasCount(counts, 3) && hasCount(counts, 2):
		hv.Rank = FullHouse
		hv.Tiebreakers = []uint8{findCount(counts, 3), findCount(counts, 2)}
	case isFlush:
		hv.Rank = Flush
		hv.Tiebreakers = sorted[:]
	case isStraight:
		hv.Rank = Straight
		hv.Tiebreakers = []uint8{straightHigh}
	case hasCount(counts, 3):
		trip := findCount(counts, 3)
		hv.Rank = ThreeOfAKind
		hv.Tiebreakers = append([]uint8{trip}, findKickers(counts, []uint8{trip}, 2)...)
	case countPairs(counts) == 2:
		high := findCount(counts, 2)
		low := findCountBelow(counts, 2, high)
		hv.Rank = TwoPair
		hv.Tiebreakers = append([]uint8{high, low}, findKickers(counts, []uint8{high, low}, 1)...)
	case countPairs(counts) == 1:
		pair := findCount(counts, 2)
		hv.Rank = OnePair
		hv.Tiebreakers = append([]uint8{pair}, findKickers(counts, []uint8{pair}, 3)...)
	default:
		hv.Rank = HighCard
		hv.Tiebreakers = sorted[:]
	}

	return hv
}

// checkStraight reports whether five descending-sorted ranks are
// consecutive and returns the straight's high rank. The wheel (A-5-4-3-2)
// is a straight with high card Five; the ace never plays high in it.
func checkStraight(sorted [5]uint8) (bool, uint8) {
	if sorted == [5]uint8{Ace, Five, Four, Three, Two} {
		return true, Five
	}
	for i := 1; i < 5; i++ {
		if sorted[i] != sorted[0]-uint8(i) {
			return false, 0
		}
	}
	return true, sorted[0]
}

// hasCount reports whether any rank appears exactly n times
func hasCount(counts [13]uint8, n uint8) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

// findCount finds the highest rank that appears exactly n times
func findCount(counts [13]uint8, n uint8) uint8 {
	for rank := 12; rank >= 0; rank-- {
		if counts[rank] == n {
			return uint8(rank)
		}
	}
	return 0
}

// findCountBelow finds the highest rank below limit that appears exactly n times
func findCountBelow(counts [13]uint8, n, limit uint8) uint8 {
	for rank := int(limit) - 1; rank >= 0; rank-- {
		if counts[rank] == n {
			return uint8(rank)
		}
	}
	return 0
}

// countPairs counts how many ranks appear exactly twice
func countPairs(counts [13]uint8) int {
	pairs := 0
	for _, c := range counts {
		if c == 2 {
			pairs++
		}
	}
	return pairs
}

// findKickers finds the top n kickers in descending order, excluding used ranks
func findKickers(counts [13]uint8, used []uint8, n int) []uint8 {
	isUsed := [13]bool{}
	for _, r := range used {
		isUsed[r] = true
	}

	kickers := make([]uint8, 0, n)
	for rank := 12; rank >= 0 && len(kickers) < n; rank-- {
		if isUsed[rank] || counts[rank] == 0 {
			continue
		}
		for i := uint8(0); i < counts[rank] && len(kickers) < n; i++ {
			kickers = append(kickers, uint8(rank))
		}
	}
	return kickers
}

// sortRanksDesc sorts a small rank slice in place, highest first
func sortRanksDesc(ranks []uint8) {
	for i := 1; i < len(ranks); i++ {
		v := ranks[i]
		j := i - 1
		for j >= 0 && ranks[j] < v {
			ranks[j+1] = ranks[j]
			j--
		}
		ranks[j+1] = v
	}
}
