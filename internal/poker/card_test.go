package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCodec(t *testing.T) {
	// card = rank*4 + suit
	c := Card(48) // Ace of clubs
	assert.Equal(t, Ace, c.Rank())
	assert.Equal(t, Clubs, c.Suit())
	assert.Equal(t, "A♣", c.Name())
	assert.Equal(t, "Ac", c.String())

	c = Card(0) // Two of clubs
	assert.Equal(t, Two, c.Rank())
	assert.Equal(t, Clubs, c.Suit())
	assert.Equal(t, "2♣", c.Name())

	c = NewCard(Ten, Hearts)
	assert.Equal(t, Card(8*4+2), c)
	assert.Equal(t, "10♥", c.Name())
	assert.Equal(t, "Th", c.String())
	assert.True(t, c.IsRed())

	assert.False(t, Card(51).IsRed()) // Ace of spades
	assert.Equal(t, "A♠", Card(51).Name())
}

func TestCardCodecRoundTrip(t *testing.T) {
	for code := 0; code < 52; code++ {
		c := Card(code)
		assert.Equal(t, c, NewCard(c.Rank(), c.Suit()))
		assert.True(t, c.Valid())
	}
	assert.False(t, Card(52).Valid())
	assert.Equal(t, "??", Card(52).Name())
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("AsKsQsJsTs")
	require.NoError(t, err)
	require.Len(t, cards, 5)
	assert.Equal(t, NewCard(Ace, Spades), cards[0])
	assert.Equal(t, NewCard(Ten, Spades), cards[4])

	// Spaces are tolerated
	cards, err = ParseCards("Ah 2c 3d")
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, NewCard(Two, Clubs), cards[1])

	_, err = ParseCards("Axy")
	assert.Error(t, err)

	_, err = ParseCards("Zs")
	assert.Error(t, err)
}

func TestParseCardRoundTrip(t *testing.T) {
	for code := 0; code < 52; code++ {
		c := Card(code)
		parsed, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestCodes(t *testing.T) {
	cards, err := Codes([]int{48, 1, 6, 11, 12})
	require.NoError(t, err)
	assert.Equal(t, []Card{48, 1, 6, 11, 12}, cards)

	_, err = Codes([]int{0, 52})
	assert.Error(t, err)

	_, err = Codes([]int{-1})
	assert.Error(t, err)
}
