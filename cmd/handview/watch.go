package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"

	"github.com/blockdeck/handview/cmd/handview/shared"
	"github.com/blockdeck/handview/internal/feed"
	"github.com/blockdeck/handview/internal/hud"
)

// WatchCmd connects to a card feed and shows the live hand in a TUI.
type WatchCmd struct {
	URL    string `short:"u" help:"Feed URL (overrides config)"`
	Config string `short:"c" default:"handview.hcl" help:"Path to config file"`
	Debug  bool   `short:"d" help:"Enable debug logging"`
}

func (cmd *WatchCmd) Run() error {
	config, err := feed.LoadConfig(cmd.Config)
	if err != nil {
		return err
	}
	if cmd.URL != "" {
		config.Feed.URL = cmd.URL
	}

	// The TUI owns the terminal, so logs go to a file
	logger, closeLog := shared.SetupFileLogger(config.UI.LogFile, cmd.Debug || config.UI.LogLevel == "debug")
	defer closeLog()

	staleAfter := time.Duration(config.Feed.StaleSeconds) * time.Second
	client := feed.NewClient(config.Feed.URL, logger, quartz.NewReal(), staleAfter)
	if err := client.Connect(); err != nil {
		return err
	}
	defer client.Close()

	model := hud.NewModel(hud.DefaultTheme(), logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	client.OnBoard(func(state feed.BoardState) {
		program.Send(hud.BoardMsg{
			TableID:   state.TableID,
			Hole:      state.Hole,
			Community: state.Community,
		})
	})
	client.OnError(func(err error) {
		program.Send(hud.FeedErrorMsg{Err: err})
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feedDone := make(chan error, 1)
	go func() {
		err := client.Run(ctx)
		if err != nil {
			program.Send(hud.FeedErrorMsg{Err: err})
		}
		feedDone <- err
	}()

	if _, err := program.Run(); err != nil {
		return err
	}

	cancel()
	<-feedDone
	return nil
}
