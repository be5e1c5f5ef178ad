package poker

import "fmt"

// rankWords maps rank 0-12 to its English word, used in hand descriptions
var rankWords = [13]string{
	"Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

// rankPlurals maps rank 0-12 to its plural word ("Kings full of Twos")
var rankPlurals = [13]string{
	"Twos", "Threes", "Fours", "Fives", "Sixes", "Sevens",
	"Eights", "Nines", "Tens", "Jacks", "Queens", "Kings", "Aces",
}

// Describe renders a human-readable label for a ranked hand, e.g.
// "Full House, Kings full of Twos" or "Straight, Five high". A wheel is
// always described as "Five high", never "Ace high".
func Describe(hv HandValue) string {
	tb := hv.Tiebreakers
	switch hv.Rank {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s high", rankWords[tb[0]])
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", rankPlurals[tb[0]])
	case FullHouse:
		return fmt.Sprintf("Full House, %s full of %s", rankPlurals[tb[0]], rankPlurals[tb[1]])
	case Flush:
		return fmt.Sprintf("Flush, %s high", rankWords[tb[0]])
	case Straight:
		return fmt.Sprintf("Straight, %s high", rankWords[tb[0]])
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", rankPlurals[tb[0]])
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", rankPlurals[tb[0]], rankPlurals[tb[1]])
	case OnePair:
		return fmt.Sprintf("Pair of %s", rankPlurals[tb[0]])
	default:
		return fmt.Sprintf("%s high", rankWords[tb[0]])
	}
}
