//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of the game hub requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/hub`, or try ./cmd/snake-term and ./cmd/tictactoe-term.")
	os.Exit(2)
}
