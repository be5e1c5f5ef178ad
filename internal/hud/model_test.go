package hud

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockdeck/handview/internal/poker"
)

func testModel(t *testing.T) Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return NewModel(DefaultTheme(), logger)
}

func TestModelWaitsForCards(t *testing.T) {
	m := testModel(t)
	assert.Contains(t, m.View(), "waiting for cards")
}

func TestModelShowsQuickResultOnFlop(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(BoardMsg{
		TableID:   "0xabc123",
		Hole:      poker.MustParseCards("AsAh"),
		Community: poker.MustParseCards("Ad7c2s"),
	})
	model, ok := updated.(Model)
	require.True(t, ok)

	view := model.View()
	assert.Contains(t, view, "0xabc123")
	assert.Contains(t, view, "A♠")
	assert.Contains(t, view, "Three of a Kind, Aces")
}

func TestModelShowsFullEvaluationOnRiver(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(BoardMsg{
		Hole:      poker.MustParseCards("KsKh"),
		Community: poker.MustParseCards("KdKc9s9h2d"),
	})
	view := updated.(Model).View()
	assert.Contains(t, view, "Four of a Kind, Kings")
}

func TestModelPreflopStillWaiting(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(BoardMsg{Hole: poker.MustParseCards("AsKh")})
	view := updated.(Model).View()
	assert.Contains(t, view, "board incomplete")
}

func TestModelSurfacesFeedErrors(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(BoardMsg{
		Hole:      poker.MustParseCards("AsAh"),
		Community: poker.MustParseCards("Ad7c2s"),
	})
	updated, _ = updated.(Model).Update(FeedErrorMsg{Err: errors.New("connection reset")})
	view := updated.(Model).View()
	assert.Contains(t, view, "connection reset")
	// Last known board stays visible
	assert.Contains(t, view, "Three of a Kind, Aces")
}

func TestModelQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestThemeHighlightsKeyCards(t *testing.T) {
	theme := DefaultTheme()
	cards := poker.MustParseCards("JsJh8d6c2s")
	ev, err := poker.Evaluate(cards)
	require.NoError(t, err)

	out := theme.Result(cards, ev)
	assert.Contains(t, out, "J♠")
	assert.Contains(t, out, "Pair of Jacks")
}
