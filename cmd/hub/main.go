//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"game-hub/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup always happens.
func run() int {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, closeLog, err := cfg.OpenLogger(os.Stderr)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer closeLog()

	player, closeSound := cfg.OpenSound(logger)
	defer closeSound()

	game := app.New(cfg, logger, player)
	w, h := game.Size()

	ebiten.SetWindowTitle("Game Hub")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	logger.Info("hub starting", "game", cfg.Game, "seed", cfg.ResolveSeed())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("hub stopped", "err", err)
		return 1
	}
	return 0
}
