package snake

import (
	"strconv"
	"strings"
	"time"

	"game-hub/internal/core"
)

// Boundary selects what happens when the head leaves the grid.
type Boundary uint8

const (
	// Walls ends the session when the head leaves the grid.
	Walls Boundary = iota
	// Wrap re-enters the head on the opposite edge.
	Wrap
)

func (b Boundary) String() string {
	if b == Wrap {
		return "wrap"
	}
	return "walls"
}

// ParseBoundary accepts "walls" or "wrap".
func ParseBoundary(s string) (Boundary, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "walls", "wall", "solid":
		return Walls, true
	case "wrap", "torus":
		return Wrap, true
	}
	return Walls, false
}

// Config controls a snake session.
type Config struct {
	GridSize int
	CellSize int

	// InitialLength segments are laid out leftwards from Start, head at Start.
	InitialLength int
	Start         core.Cell

	Boundary     Boundary
	AppleChance  float64
	TickInterval time.Duration

	Seed int64
}

// DefaultConfig returns the standard 20×20 configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:      core.DefaultGridSize,
		CellSize:      core.DefaultCellSize,
		InitialLength: 1,
		Start:         core.Cell{Col: 9, Row: 10},
		Boundary:      Walls,
		AppleChance:   DefaultAppleChance,
		TickInterval:  150 * time.Millisecond,
		Seed:          42,
	}
}

// Grid returns the grid model described by the config.
func (c Config) Grid() core.Grid { return core.NewGrid(c.GridSize, c.CellSize) }

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["grid"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 4 {
			c.GridSize = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["length"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.InitialLength = parsed
		}
	}
	if v, ok := cfg["start_col"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Start.Col = parsed
		}
	}
	if v, ok := cfg["start_row"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Start.Row = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, ok := ParseBoundary(v); ok {
			c.Boundary = parsed
		}
	}
	if v, ok := cfg["apple_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.AppleChance = parsed
		}
	}
	if v, ok := cfg["tick_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TickInterval = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c.normalized()
}

// normalized keeps the start position and initial body inside the grid.
func (c Config) normalized() Config {
	g := c.Grid()
	c.GridSize, c.CellSize = g.N, g.CellSize
	if c.Start.Col >= g.N {
		c.Start.Col = g.N - 1
	}
	if c.Start.Row >= g.N {
		c.Start.Row = g.N - 1
	}
	if c.Start.Col < 0 {
		c.Start.Col = 0
	}
	if c.Start.Row < 0 {
		c.Start.Row = 0
	}
	if c.InitialLength < 1 {
		c.InitialLength = 1
	}
	if c.InitialLength > c.Start.Col+1 {
		c.InitialLength = c.Start.Col + 1
	}
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultConfig().TickInterval
	}
	c.AppleChance = clampChance(c.AppleChance)
	return c
}
