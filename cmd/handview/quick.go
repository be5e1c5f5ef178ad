package main

import (
	"fmt"

	"github.com/blockdeck/handview/internal/hud"
	"github.com/blockdeck/handview/internal/poker"
)

// QuickCmd shows the live partial-board result for two hole cards.
type QuickCmd struct {
	Hole  string `arg:"" help:"Two hole cards (e.g. 'AsKd')" required:""`
	Board string `arg:"" optional:"" help:"Known community cards (e.g. 'Td7s8h')"`
}

func (cmd *QuickCmd) Run() error {
	hole, err := parseCardArgs([]string{cmd.Hole})
	if err != nil {
		return err
	}
	var board []poker.Card
	if cmd.Board != "" {
		board, err = parseCardArgs([]string{cmd.Board})
		if err != nil {
			return err
		}
	}

	res, ok := poker.QuickEvaluate(hole, board)
	if !ok {
		fmt.Println("no made hand yet")
		return nil
	}

	theme := hud.DefaultTheme()
	fmt.Println(theme.Quick(res))
	return nil
}
