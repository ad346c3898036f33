package snake

import (
	"github.com/google/uuid"

	"game-hub/internal/core"
)

// Outcome classifies the result of a tick.
type Outcome uint8

const (
	Continue Outcome = iota
	Ate
	GameOver
	// Cleared means the snake filled the board and no food could be placed.
	Cleared
)

func (o Outcome) String() string {
	switch o {
	case Ate:
		return "ate"
	case GameOver:
		return "game_over"
	case Cleared:
		return "cleared"
	default:
		return "continue"
	}
}

// TickResult reports what one tick did.
type TickResult struct {
	Outcome Outcome
	// Points awarded this tick; only set when food was eaten.
	Points int
	// PopX, PopY is the pixel centre of the eaten cell.
	PopX, PopY float64
}

// Display buffer values produced by Session.Cells.
const (
	CellLight uint8 = iota
	CellDark
	CellBody
	CellTail
	CellHead
)

// Session is the authoritative simulation state of one snake game.
type Session struct {
	ID string

	cfg     Config
	grid    core.Grid
	rng     *core.RNG
	spawner *Spawner

	body    *Body
	food    Food
	heading Heading

	score     int
	highScore int
	restarts  int
	started   bool
	gameOver  bool
	cleared   bool

	display []uint8
}

// NewSession builds a session and resets it with the configured seed.
func NewSession(cfg Config) *Session {
	cfg = cfg.normalized()
	grid := cfg.Grid()
	rng := core.NewRNG(cfg.Seed)
	s := &Session{
		cfg:     cfg,
		grid:    grid,
		rng:     rng,
		spawner: NewSpawner(grid, rng, cfg.AppleChance),
		display: make([]uint8, grid.Total()),
	}
	s.Reset(cfg.Seed)
	return s
}

// Reset restarts the session. The high score survives; everything else
// returns to its initial value. A zero seed keeps the current RNG stream.
func (s *Session) Reset(seed int64) {
	if seed != 0 {
		s.rng.Reseed(seed)
	}
	if s.started {
		s.restarts++
	}
	s.started = true
	s.ID = uuid.NewString()

	cells := make([]core.Cell, s.cfg.InitialLength)
	for i := range cells {
		cells[i] = s.cfg.Start.Add(-i, 0)
	}
	s.body = NewBody(cells...)
	s.heading = Right
	s.score = 0
	s.gameOver = false
	s.cleared = false
	if food, ok := s.spawner.Spawn(s.body); ok {
		s.food = food
	} else {
		s.food = Food{}
		s.cleared = true
	}
}

// Tick advances the snake one cell in heading h. Once the session is over
// it keeps reporting the terminal outcome without changing state.
func (s *Session) Tick(h Heading) TickResult {
	if s.gameOver {
		return TickResult{Outcome: GameOver}
	}
	if s.cleared {
		return TickResult{Outcome: Cleared}
	}
	if h == NoHeading {
		h = s.heading
	}

	dc, dr := h.Delta()
	candidate := s.body.Head().Add(dc, dr)
	if !s.grid.InBounds(candidate) {
		if s.cfg.Boundary == Walls {
			return s.end()
		}
		candidate = s.grid.Wrap(candidate)
	}
	// Strict check: the tail counts even though it would move this tick.
	if s.body.Occupies(candidate) {
		return s.end()
	}
	s.heading = h

	if s.food.Kind != 0 && candidate == s.food.Cell {
		s.body.Advance(candidate, true)
		points := s.food.Kind.Points()
		s.score += points
		s.raiseHighScore()
		x, y := s.grid.Center(candidate)
		res := TickResult{Outcome: Ate, Points: points, PopX: x, PopY: y}
		food, ok := s.spawner.Spawn(s.body)
		if !ok {
			s.food = Food{}
			s.cleared = true
			res.Outcome = Cleared
			return res
		}
		s.food = food
		return res
	}

	s.body.Advance(candidate, false)
	return TickResult{Outcome: Continue}
}

func (s *Session) end() TickResult {
	s.raiseHighScore()
	s.gameOver = true
	return TickResult{Outcome: GameOver}
}

func (s *Session) raiseHighScore() {
	if s.score > s.highScore {
		s.highScore = s.score
	}
}

// PlaceFood overrides the current food item.
func (s *Session) PlaceFood(f Food) { s.food = f }

// SetAppleChance changes the probability of apples for later spawns.
func (s *Session) SetAppleChance(p float64) {
	s.cfg.AppleChance = clampChance(p)
	s.spawner.SetAppleChance(p)
}

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Grid returns the grid model.
func (s *Session) Grid() core.Grid { return s.grid }

// Body returns the snake body.
func (s *Session) Body() *Body { return s.body }

// Food returns the current food item.
func (s *Session) Food() Food { return s.food }

// Heading returns the heading applied by the last successful tick.
func (s *Session) Heading() Heading { return s.heading }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score seen in this process.
func (s *Session) HighScore() int { return s.highScore }

// Restarts counts how many times the session was reset after creation.
func (s *Session) Restarts() int { return s.restarts }

// GameOver reports whether the snake crashed.
func (s *Session) GameOver() bool { return s.gameOver }

// Cleared reports whether the snake filled the board.
func (s *Session) Cleared() bool { return s.cleared }

// Over reports whether the session has ended either way.
func (s *Session) Over() bool { return s.gameOver || s.cleared }

// Cells rebuilds and exposes the display buffer: a checkerboard background
// with body, tail and head segments. Food is not part of the buffer.
func (s *Session) Cells() []uint8 {
	for i := range s.display {
		c := s.grid.CellAt(i)
		if (c.Col+c.Row)%2 == 0 {
			s.display[i] = CellLight
		} else {
			s.display[i] = CellDark
		}
	}
	cells := s.body.Cells()
	for i := len(cells) - 1; i >= 0; i-- {
		c := cells[i]
		if !s.grid.InBounds(c) {
			continue
		}
		v := CellBody
		switch {
		case i == 0:
			v = CellHead
		case i == len(cells)-1:
			v = CellTail
		}
		s.display[s.grid.Index(c)] = v
	}
	return s.display
}
