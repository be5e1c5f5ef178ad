package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyCards(t *testing.T, s string) ([]Card, Evaluated) {
	t.Helper()
	cards := MustParseCards(s)
	ev, err := Evaluate(cards)
	require.NoError(t, err)
	return cards, ev
}

func TestKeyCardsPair(t *testing.T) {
	cards, ev := keyCards(t, "JsJh8d6c2s")
	assert.Equal(t, OnePair, ev.Rank)
	require.Len(t, ev.CardIndexes, 2)
	for _, idx := range ev.CardIndexes {
		assert.Equal(t, Jack, cards[idx].Rank())
	}
}

func TestKeyCardsTwoPairExcludesKicker(t *testing.T) {
	cards, ev := keyCards(t, "QsQhJdJcAs")
	assert.Equal(t, TwoPair, ev.Rank)
	require.Len(t, ev.CardIndexes, 4)
	for _, idx := range ev.CardIndexes {
		r := cards[idx].Rank()
		assert.True(t, r == Queen || r == Jack, "ace kicker must not be key")
	}
}

func TestKeyCardsTrips(t *testing.T) {
	cards, ev := keyCards(t, "7s7h7dKcQs")
	assert.Equal(t, ThreeOfAKind, ev.Rank)
	require.Len(t, ev.CardIndexes, 3)
	for _, idx := range ev.CardIndexes {
		assert.Equal(t, Seven, cards[idx].Rank())
	}
}

func TestKeyCardsQuads(t *testing.T) {
	cards, ev := keyCards(t, "9s9h9d9cAs")
	assert.Equal(t, FourOfAKind, ev.Rank)
	require.Len(t, ev.CardIndexes, 4)
	for _, idx := range ev.CardIndexes {
		assert.Equal(t, Nine, cards[idx].Rank())
	}
}

func TestKeyCardsHighCard(t *testing.T) {
	cards, ev := keyCards(t, "2sAh9dJc7s")
	assert.Equal(t, HighCard, ev.Rank)
	require.Len(t, ev.CardIndexes, 1)
	assert.Equal(t, Ace, cards[ev.CardIndexes[0]].Rank())
}

func TestKeyCardsWholeHandRanks(t *testing.T) {
	for _, s := range []string{
		"9s8h7d6c5s", // straight
		"KdJd9d6d3d", // flush
		"KsKhKd2c2s", // full house
		"9h8h7h6h5h", // straight flush
		"AsKsQsJsTs", // royal flush
	} {
		_, ev := keyCards(t, s)
		assert.Len(t, ev.CardIndexes, 5, "all five cards are key in %s", s)
	}
}

// Key cards must come from the winning subset, not just anywhere in a
// seven-card input.
func TestKeyCardsFromSevenCardInput(t *testing.T) {
	cards := MustParseCards("2c2d QsQhJdJcAs")
	ev, err := Evaluate(cards)
	require.NoError(t, err)
	assert.Equal(t, TwoPair, ev.Rank)
	require.Len(t, ev.CardIndexes, 4)
	for _, idx := range ev.CardIndexes {
		r := cards[idx].Rank()
		assert.True(t, r == Queen || r == Jack)
	}
	assert.Equal(t, len(ev.CardIndexes), len(ev.Cards))
	for i, idx := range ev.CardIndexes {
		assert.Equal(t, cards[idx], ev.Cards[i])
	}
}
