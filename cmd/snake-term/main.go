package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"game-hub/internal/app"
	"game-hub/internal/hub"
	"game-hub/internal/snake"
	"game-hub/internal/term"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup always happens.
func run() int {
	cfg := app.NewConfig()
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		return 1
	}

	logger.Info("snake starting", "seed", cfg.ResolveSeed())
	drv := snake.NewDriver(cfg.SnakeConfig(), snake.WithLogger(logger), snake.WithListener(hub.SnakeListener(player)))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = term.NewRunner(screen, drv, logger).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("snake stopped", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
