package snake

import "game-hub/internal/core"

// Kind distinguishes food types.
type Kind uint8

const (
	Coin Kind = iota + 1
	Apple
)

// Points is the score awarded for eating the food kind.
func (k Kind) Points() int {
	switch k {
	case Apple:
		return 2
	case Coin:
		return 1
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case Apple:
		return "apple"
	case Coin:
		return "coin"
	default:
		return "none"
	}
}

// Food is a single food item on the grid.
type Food struct {
	Cell core.Cell
	Kind Kind
}

// DefaultAppleChance is the probability that a spawned food is an apple.
const DefaultAppleChance = 0.3

// Spawner places food on random free cells.
type Spawner struct {
	grid        core.Grid
	rng         *core.RNG
	appleChance float64
	maxAttempts int
}

// NewSpawner returns a spawner over grid. Rejection sampling gives up after
// 4*N*N attempts and falls back to scanning for free cells.
func NewSpawner(grid core.Grid, rng *core.RNG, appleChance float64) *Spawner {
	return &Spawner{
		grid:        grid,
		rng:         rng,
		appleChance: clampChance(appleChance),
		maxAttempts: 4 * grid.Total(),
	}
}

// SetAppleChance changes the apple probability for later spawns.
func (s *Spawner) SetAppleChance(p float64) { s.appleChance = clampChance(p) }

// AppleChance reports the current apple probability.
func (s *Spawner) AppleChance() float64 { return s.appleChance }

// Spawn picks a cell not occupied by body. It reports false when the body
// covers the whole grid.
func (s *Spawner) Spawn(body *Body) (Food, bool) {
	n := s.grid.N
	for i := 0; i < s.maxAttempts; i++ {
		c := core.Cell{Col: s.rng.IntN(n), Row: s.rng.IntN(n)}
		kind := s.kind()
		if !body.Occupies(c) {
			return Food{Cell: c, Kind: kind}, true
		}
	}

	occupied := make([]bool, s.grid.Total())
	for _, c := range body.Cells() {
		if s.grid.InBounds(c) {
			occupied[s.grid.Index(c)] = true
		}
	}
	free := make([]int, 0, len(occupied))
	for idx, taken := range occupied {
		if !taken {
			free = append(free, idx)
		}
	}
	if len(free) == 0 {
		return Food{}, false
	}
	c := s.grid.CellAt(free[s.rng.IntN(len(free))])
	return Food{Cell: c, Kind: s.kind()}, true
}

func (s *Spawner) kind() Kind {
	if s.rng.Chance(s.appleChance) {
		return Apple
	}
	return Coin
}

func clampChance(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
