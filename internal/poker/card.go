package poker

import (
	"fmt"
	"strings"
)

// Card is a single playing card encoded as an integer in [0,51].
// rank = card / 4 (0=Two through 12=Ace), suit = card % 4.
// This is the wire encoding the table contract uses for revealed cards.
type Card uint8

// Suit constants (card % 4)
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

// rankNames maps rank 0-12 to the display symbol.
var rankNames = [13]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// suitGlyphs maps suit 0-3 to the display glyph.
var suitGlyphs = [4]string{"♣", "♦", "♥", "♠"}

// NewCard creates a card from rank (0-12) and suit (0-3)
func NewCard(rank, suit uint8) Card {
	return Card(rank*4 + suit)
}

// Rank returns the rank of the card (0-12)
func (c Card) Rank() uint8 {
	return uint8(c) / 4
}

// Suit returns the suit of the card (0-3)
func (c Card) Suit() uint8 {
	return uint8(c) % 4
}

// Valid reports whether the card code is within [0,51]. Evaluation does not
// validate card codes; callers that accept untrusted codes should.
func (c Card) Valid() bool {
	return c <= 51
}

// IsRed returns true if the card is red (Hearts or Diamonds)
func (c Card) IsRed() bool {
	s := c.Suit()
	return s == Hearts || s == Diamonds
}

// Name returns the display name with a suit glyph (e.g. "A♠", "10♥")
func (c Card) Name() string {
	if !c.Valid() {
		return "??"
	}
	return rankNames[c.Rank()] + suitGlyphs[c.Suit()]
}

// String returns the compact notation (e.g. "As", "Th")
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	ranks := "23456789TJQKA"
	suits := "cdhs"
	return string(ranks[c.Rank()]) + string(suits[c.Suit()])
}

// ParseCard parses compact notation like "As" or "Th" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}

	var rank uint8
	switch s[0] {
	case '2':
		rank = Two
	case '3':
		rank = Three
	case '4':
		rank = Four
	case '5':
		rank = Five
	case '6':
		rank = Six
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return 0, fmt.Errorf("invalid rank: %c", s[0])
	}

	var suit uint8
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a run of compact card notation, with or without spaces
// (e.g. "AsKsQsJsTs" or "As Ks Qs Js Ts").
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("invalid card at position %d: %w", i, err)
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

// Codes converts raw integer card codes into Cards. Codes outside [0,51]
// are rejected so garbage never reaches a display surface unnoticed.
func Codes(codes []int) ([]Card, error) {
	cards := make([]Card, len(codes))
	for i, code := range codes {
		if code < 0 || code > 51 {
			return nil, fmt.Errorf("invalid card code %d at position %d", code, i)
		}
		cards[i] = Card(code)
	}
	return cards, nil
}
