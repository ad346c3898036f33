package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"game-hub/internal/app"
	"game-hub/internal/core"
	"game-hub/internal/tictactoe"
	"game-hub/internal/tui"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup always happens.
func run() int {
	cfg := app.NewConfig()
	mode := flag.String("mode", "single", "single (against the computer) or multi")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The terminal owns stdout, so logs only go to -log.
	logger, closeLog, err := cfg.OpenLogger(io.Discard)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	player, closeSound := cfg.OpenSound(logger)
	defer closeSound()

	m := tictactoe.Single
	if *mode == "multi" {
		m = tictactoe.Multi
	}
	seed := cfg.ResolveSeed()
	logger.Info("tic-tac-toe starting", "mode", m, "seed", seed)
	table := tictactoe.NewTable(m, tictactoe.RandomStrategy(core.NewRNG(seed)), logger)

	p := tea.NewProgram(tui.NewModel(table, player), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tic-tac-toe stopped", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
