package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockdeck/handview/internal/poker"
)

func TestParseCardArgs(t *testing.T) {
	// Compact notation, one card per argument
	cards, err := parseCardArgs([]string{"As", "Kd", "Qh"})
	require.NoError(t, err)
	assert.Equal(t, poker.MustParseCards("AsKdQh"), cards)

	// Run of cards in a single argument
	cards, err = parseCardArgs([]string{"AsKdQh"})
	require.NoError(t, err)
	assert.Len(t, cards, 3)

	// Raw integer codes, as the contract encodes them
	cards, err = parseCardArgs([]string{"48", "44", "40", "36", "32"})
	require.NoError(t, err)
	assert.Equal(t, []poker.Card{48, 44, 40, 36, 32}, cards)

	// Mixed notation and codes
	cards, err = parseCardArgs([]string{"48", "Kd"})
	require.NoError(t, err)
	assert.Equal(t, []poker.Card{48, poker.NewCard(poker.King, poker.Diamonds)}, cards)

	_, err = parseCardArgs([]string{"52"})
	assert.Error(t, err)

	_, err = parseCardArgs([]string{"Zx"})
	assert.Error(t, err)
}
