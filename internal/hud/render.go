package hud

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/blockdeck/handview/internal/poker"
)

// Theme holds the styles used to render cards and hand summaries
type Theme struct {
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	KeyCard   lipgloss.Style
	Kicker    lipgloss.Style
	RankName  lipgloss.Style
	Detail    lipgloss.Style
}

// DefaultTheme builds a theme suited to the terminal's background
func DefaultTheme() Theme {
	red := lipgloss.Color("9")
	black := lipgloss.Color("15")
	if !termenv.HasDarkBackground() {
		black = lipgloss.Color("0")
	}

	return Theme{
		RedCard:   lipgloss.NewStyle().Foreground(red),
		BlackCard: lipgloss.NewStyle().Foreground(black),
		KeyCard:   lipgloss.NewStyle().Bold(true).Underline(true),
		Kicker:    lipgloss.NewStyle().Faint(true),
		RankName:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// Card renders a single card, emphasized when it is a key card
func (t Theme) Card(c poker.Card, key bool) string {
	style := t.BlackCard
	if c.IsRed() {
		style = t.RedCard
	}
	if key {
		style = style.Inherit(t.KeyCard)
	} else {
		style = style.Inherit(t.Kicker)
	}
	return style.Render(c.Name())
}

// Cards renders a card row, highlighting the positions in keyIdx
func (t Theme) Cards(cards []poker.Card, keyIdx []int) string {
	key := make(map[int]bool, len(keyIdx))
	for _, idx := range keyIdx {
		key[idx] = true
	}

	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = t.Card(c, key[i])
	}
	return strings.Join(parts, " ")
}

// Result renders a full evaluation: the cards with key-card emphasis,
// then the rank name and description.
func (t Theme) Result(cards []poker.Card, ev poker.Evaluated) string {
	var b strings.Builder
	b.WriteString(t.Cards(cards, ev.CardIndexes))
	b.WriteString("\n")
	b.WriteString(t.RankName.Render(ev.RankName))
	if ev.Description != ev.RankName {
		b.WriteString(t.Detail.Render(" · " + ev.Description))
	}
	return b.String()
}

// Quick renders a partial-board result on a single line
func (t Theme) Quick(res poker.QuickResult) string {
	return res.Emoji + " " + t.RankName.Render(res.Name) + t.Detail.Render(" · "+res.Description)
}
