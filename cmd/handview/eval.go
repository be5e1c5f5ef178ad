package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blockdeck/handview/internal/hud"
	"github.com/blockdeck/handview/internal/poker"
)

// EvalCmd evaluates a complete hand and prints the best five-card result
// with the key cards highlighted.
type EvalCmd struct {
	Cards []string `arg:"" help:"5-7 cards as notation ('As Kd ...') or integer codes 0-51" required:""`
}

func (cmd *EvalCmd) Run() error {
	cards, err := parseCardArgs(cmd.Cards)
	if err != nil {
		return err
	}

	ev, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}

	theme := hud.DefaultTheme()
	fmt.Println(theme.Result(cards, ev))
	return nil
}

// parseCardArgs accepts either compact notation ("As", "AsKd") or raw
// integer card codes, mixed freely.
func parseCardArgs(args []string) ([]poker.Card, error) {
	var cards []poker.Card
	for _, arg := range args {
		for _, field := range strings.Fields(arg) {
			if code, err := strconv.Atoi(field); err == nil {
				parsed, err := poker.Codes([]int{code})
				if err != nil {
					return nil, err
				}
				cards = append(cards, parsed...)
				continue
			}
			parsed, err := poker.ParseCards(field)
			if err != nil {
				return nil, fmt.Errorf("bad card %q: %w", field, err)
			}
			cards = append(cards, parsed...)
		}
	}
	return cards, nil
}
