package tictactoe

import "errors"

// Mark is the state of one board cell, and also names a player.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing player.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Board is a 3x3 board stored row-major.
type Board [9]Mark

// EmptyCells lists the free indices in ascending order.
func (b Board) EmptyCells() []int {
	out := make([]int, 0, len(b))
	for i, m := range b {
		if m == Empty {
			out = append(out, i)
		}
	}
	return out
}

// Lines are the eight winning rows, columns and diagonals.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Errors returned by Play and Table.Click.
var (
	ErrOutOfBounds  = errors.New("out of bounds")
	ErrOccupied     = errors.New("cell occupied")
	ErrGameOver     = errors.New("game over")
	ErrComputerTurn = errors.New("computer to move")
)

// Game holds the state of one match.
type Game struct {
	Board  Board
	Turn   Mark
	Winner Mark
	Over   bool
	Moves  int
	// Line is the winning line; only meaningful when Winner != Empty.
	Line [3]int
}

// New returns a new game with X to move.
func New() Game {
	return Game{Turn: X}
}

// Play places the current player's mark at idx (0..8, row-major).
func (g *Game) Play(idx int) error {
	if g.Over {
		return ErrGameOver
	}
	if idx < 0 || idx >= len(g.Board) {
		return ErrOutOfBounds
	}
	if g.Board[idx] != Empty {
		return ErrOccupied
	}

	g.Board[idx] = g.Turn
	g.Moves++

	if line, ok := winningLine(g.Board, g.Turn); ok {
		g.Winner = g.Turn
		g.Line = line
		g.Over = true
		return nil
	}
	if g.Moves == len(g.Board) {
		g.Winner = Empty
		g.Over = true
		return nil
	}
	g.Turn = g.Turn.Other()
	return nil
}

// Draw reports whether the game ended without a winner.
func (g Game) Draw() bool { return g.Over && g.Winner == Empty }

// InLine reports whether idx is part of the winning line.
func (g Game) InLine(idx int) bool {
	if g.Winner == Empty {
		return false
	}
	return g.Line[0] == idx || g.Line[1] == idx || g.Line[2] == idx
}

func winningLine(b Board, side Mark) ([3]int, bool) {
	for _, ln := range Lines {
		if b[ln[0]] == side && b[ln[1]] == side && b[ln[2]] == side {
			return ln, true
		}
	}
	return [3]int{}, false
}
