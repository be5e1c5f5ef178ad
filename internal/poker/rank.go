package poker

// HandRank classifies a five-card hand, ordered from weakest to strongest.
// The ordinal values are part of the display contract (0-9).
type HandRank uint8

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable hand rank name
func (hr HandRank) String() string {
	switch hr {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Emoji returns the glyph shown next to live partial-board results
func (hr HandRank) Emoji() string {
	switch hr {
	case OnePair:
		return "👍"
	case TwoPair:
		return "✌️"
	case ThreeOfAKind:
		return "🎰"
	case Straight:
		return "📶"
	case Flush:
		return "💧"
	case FullHouse:
		return "🏠"
	case FourOfAKind:
		return "💣"
	case StraightFlush:
		return "🌊"
	case RoyalFlush:
		return "👑"
	default:
		return "🃏"
	}
}
