package snake

import (
	"slices"
	"testing"
	"time"

	"game-hub/internal/core"
)

func newTestSession(t *testing.T, mutate func(*Config)) *Session {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewSession(cfg)
}

func TestEatAdjacentFood(t *testing.T) {
	s := newTestSession(t, nil)
	if s.Body().Head() != (core.Cell{Col: 9, Row: 10}) {
		t.Fatalf("unexpected start head %+v", s.Body().Head())
	}
	s.PlaceFood(Food{Cell: core.Cell{Col: 10, Row: 10}, Kind: Apple})

	res := s.Tick(Right)
	if res.Outcome != Ate {
		t.Fatalf("expected eat, got %v", res.Outcome)
	}
	if s.Score() != Apple.Points() || res.Points != Apple.Points() {
		t.Fatalf("score %d points %d, want %d", s.Score(), res.Points, Apple.Points())
	}
	if s.Body().Len() != 2 {
		t.Fatalf("expected length 2, got %d", s.Body().Len())
	}
	if s.Body().Occupies(s.Food().Cell) {
		t.Fatalf("new food %+v spawned on the snake", s.Food().Cell)
	}
	wantX, wantY := s.Grid().Center(core.Cell{Col: 10, Row: 10})
	if res.PopX != wantX || res.PopY != wantY {
		t.Fatalf("pop at (%v,%v), want (%v,%v)", res.PopX, res.PopY, wantX, wantY)
	}
}

func TestTickWithoutFoodKeepsLength(t *testing.T) {
	s := newTestSession(t, func(c *Config) { c.InitialLength = 3 })
	s.PlaceFood(Food{Cell: core.Cell{Col: 0, Row: 0}, Kind: Coin})
	res := s.Tick(Right)
	if res.Outcome != Continue {
		t.Fatalf("expected continue, got %v", res.Outcome)
	}
	want := []core.Cell{{Col: 10, Row: 10}, {Col: 9, Row: 10}, {Col: 8, Row: 10}}
	if !slices.Equal(s.Body().Cells(), want) {
		t.Fatalf("body %+v, want %+v", s.Body().Cells(), want)
	}
	if s.Score() != 0 {
		t.Fatalf("score changed to %d", s.Score())
	}
}

func TestLengthThreeTurnLeft(t *testing.T) {
	s := newTestSession(t, nil)
	s.body = NewBody(core.Cell{Col: 7, Row: 10}, core.Cell{Col: 8, Row: 10}, core.Cell{Col: 9, Row: 10})
	s.heading = Left
	s.PlaceFood(Food{Cell: core.Cell{Col: 0, Row: 0}, Kind: Coin})

	res := s.Tick(NoHeading)
	if res.Outcome != Continue {
		t.Fatalf("expected continue, got %v", res.Outcome)
	}
	if s.Body().Head() != (core.Cell{Col: 6, Row: 10}) {
		t.Fatalf("head %+v, want (6,10)", s.Body().Head())
	}
}

func TestSelfCollisionLeavesBodyUntouched(t *testing.T) {
	cases := map[string][]core.Cell{
		"body": {{Col: 5, Row: 5}, {Col: 6, Row: 5}, {Col: 6, Row: 6}, {Col: 5, Row: 6}, {Col: 4, Row: 6}},
		// The tail would move away this tick but still counts.
		"tail": {{Col: 5, Row: 5}, {Col: 6, Row: 5}, {Col: 6, Row: 6}, {Col: 5, Row: 6}},
	}
	for name, cells := range cases {
		t.Run(name, func(t *testing.T) {
			s := newTestSession(t, nil)
			s.body = NewBody(cells...)
			s.heading = Left
			s.PlaceFood(Food{Cell: core.Cell{Col: 0, Row: 0}, Kind: Coin})
			before := slices.Clone(s.Body().Cells())

			res := s.Tick(Down)
			if res.Outcome != GameOver {
				t.Fatalf("expected game over, got %v", res.Outcome)
			}
			if !s.GameOver() {
				t.Fatal("session not flagged as over")
			}
			if !slices.Equal(before, s.Body().Cells()) {
				t.Fatalf("body changed on collision: %+v -> %+v", before, s.Body().Cells())
			}
		})
	}
}

func TestWallsEndSession(t *testing.T) {
	s := newTestSession(t, func(c *Config) { c.Start = core.Cell{Col: 19, Row: 3} })
	s.PlaceFood(Food{Cell: core.Cell{Col: 0, Row: 0}, Kind: Coin})
	if res := s.Tick(Right); res.Outcome != GameOver {
		t.Fatalf("expected game over at wall, got %v", res.Outcome)
	}
	if s.Body().Head() != (core.Cell{Col: 19, Row: 3}) {
		t.Fatalf("head moved through wall: %+v", s.Body().Head())
	}
	// Terminal sessions stay put.
	if res := s.Tick(Up); res.Outcome != GameOver {
		t.Fatalf("expected terminal outcome, got %v", res.Outcome)
	}
}

func TestWrapKeepsHeadInBounds(t *testing.T) {
	s := newTestSession(t, func(c *Config) {
		c.Boundary = Wrap
		c.Start = core.Cell{Col: 19, Row: 0}
	})
	s.PlaceFood(Food{Cell: core.Cell{Col: 10, Row: 10}, Kind: Coin})

	if res := s.Tick(Right); res.Outcome != Continue {
		t.Fatalf("expected continue, got %v", res.Outcome)
	}
	if s.Body().Head() != (core.Cell{Col: 0, Row: 0}) {
		t.Fatalf("head %+v, want (0,0)", s.Body().Head())
	}
	if res := s.Tick(Up); res.Outcome != Continue {
		t.Fatalf("expected continue, got %v", res.Outcome)
	}
	if s.Body().Head() != (core.Cell{Col: 0, Row: 19}) {
		t.Fatalf("head %+v, want (0,19)", s.Body().Head())
	}

	// Random walk: every head stays inside the grid.
	rng := core.NewRNG(5)
	headings := []Heading{Up, Down, Left, Right}
	for i := 0; i < 500 && !s.Over(); i++ {
		h := headings[rng.IntN(len(headings))]
		if h == s.Heading().Opposite() {
			continue
		}
		s.Tick(h)
		if !s.Grid().InBounds(s.Body().Head()) {
			t.Fatalf("tick %d: head %+v out of bounds", i, s.Body().Head())
		}
	}
}

func TestHighScoreSurvivesRestart(t *testing.T) {
	s := newTestSession(t, func(c *Config) { c.Boundary = Wrap })
	high := 0
	for round := 0; round < 3; round++ {
		for i := 0; i < 5; i++ {
			head := s.Body().Head()
			s.PlaceFood(Food{Cell: s.Grid().Wrap(head.Add(1, 0)), Kind: Coin})
			s.Tick(Right)
			if s.HighScore() < high {
				t.Fatalf("high score dropped from %d to %d", high, s.HighScore())
			}
			high = s.HighScore()
		}
		s.Reset(0)
		if s.HighScore() != high {
			t.Fatalf("restart changed high score %d -> %d", high, s.HighScore())
		}
	}
	if high != 5 {
		t.Fatalf("expected high score 5, got %d", high)
	}
	if s.Restarts() != 3 {
		t.Fatalf("expected 3 restarts, got %d", s.Restarts())
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s := newTestSession(t, func(c *Config) { c.InitialLength = 3 })
	firstID := s.ID
	s.PlaceFood(Food{Cell: core.Cell{Col: 10, Row: 10}, Kind: Coin})
	s.Tick(Right)
	s.PlaceFood(Food{Cell: core.Cell{Col: 0, Row: 0}, Kind: Coin})
	s.Tick(Up)
	for !s.Over() {
		s.Tick(Up)
	}

	s.Reset(0)
	want := []core.Cell{{Col: 9, Row: 10}, {Col: 8, Row: 10}, {Col: 7, Row: 10}}
	if !slices.Equal(s.Body().Cells(), want) {
		t.Fatalf("body %+v, want %+v", s.Body().Cells(), want)
	}
	if s.Heading() != Right || s.Score() != 0 || s.GameOver() {
		t.Fatalf("reset state heading=%v score=%d over=%v", s.Heading(), s.Score(), s.GameOver())
	}
	if s.HighScore() != 1 {
		t.Fatalf("high score lost: %d", s.HighScore())
	}
	if s.ID == firstID {
		t.Fatal("reset must assign a fresh session id")
	}
}

func TestResetDeterministic(t *testing.T) {
	s := newTestSession(t, nil)
	s.Reset(99)
	first := s.Food()
	s.Reset(99)
	if s.Food() != first {
		t.Fatalf("reseeded food %+v, want %+v", s.Food(), first)
	}
}

func TestClearingTheBoard(t *testing.T) {
	s := newTestSession(t, func(c *Config) {
		c.GridSize = 2
		c.InitialLength = 2
		c.Start = core.Cell{Col: 1, Row: 0}
	})
	s.PlaceFood(Food{Cell: core.Cell{Col: 1, Row: 1}, Kind: Coin})

	if res := s.Tick(Down); res.Outcome != Ate {
		t.Fatalf("expected eat, got %v", res.Outcome)
	}
	if s.Food().Cell != (core.Cell{Col: 0, Row: 1}) {
		t.Fatalf("food %+v, want the last free cell", s.Food().Cell)
	}
	res := s.Tick(Left)
	if res.Outcome != Cleared {
		t.Fatalf("expected cleared, got %v", res.Outcome)
	}
	if !s.Cleared() || !s.Over() || s.GameOver() {
		t.Fatal("cleared board must end the session as a win")
	}
	if s.Body().Len() != 4 {
		t.Fatalf("expected full body, got %d", s.Body().Len())
	}
}

func TestSpawnNeverOnSnake(t *testing.T) {
	grid := core.NewGrid(5, 10)
	rng := core.NewRNG(3)
	sp := NewSpawner(grid, rng, 0.5)
	all := make([]core.Cell, 0, grid.Total())
	for i := 0; i < grid.Total(); i++ {
		all = append(all, grid.CellAt(i))
	}
	// Grow the occupied prefix up to capacity - 1.
	for n := 1; n < len(all); n++ {
		body := NewBody(all[:n]...)
		for k := 0; k < 10; k++ {
			food, ok := sp.Spawn(body)
			if !ok {
				t.Fatalf("n=%d: spawn failed with free cells left", n)
			}
			if body.Occupies(food.Cell) || !grid.InBounds(food.Cell) {
				t.Fatalf("n=%d: bad food cell %+v", n, food.Cell)
			}
			if food.Kind != Coin && food.Kind != Apple {
				t.Fatalf("n=%d: unexpected kind %v", n, food.Kind)
			}
		}
	}
	if _, ok := sp.Spawn(NewBody(all...)); ok {
		t.Fatal("spawn on a full board must fail")
	}
}

func TestAppleChanceExtremes(t *testing.T) {
	grid := core.NewGrid(10, 10)
	body := NewBody(core.Cell{})
	sp := NewSpawner(grid, core.NewRNG(1), 0)
	for i := 0; i < 50; i++ {
		if f, _ := sp.Spawn(body); f.Kind != Coin {
			t.Fatalf("apple spawned at chance 0")
		}
	}
	sp.SetAppleChance(2)
	if sp.AppleChance() != 1 {
		t.Fatalf("chance not clamped: %v", sp.AppleChance())
	}
	for i := 0; i < 50; i++ {
		if f, _ := sp.Spawn(body); f.Kind != Apple {
			t.Fatalf("coin spawned at chance 1")
		}
	}
}

func TestControllerRejectsReversal(t *testing.T) {
	c := NewController()
	if c.Request(Left) {
		t.Fatal("reversal from RIGHT must be rejected")
	}
	if c.Heading() != Right {
		t.Fatalf("heading changed to %v", c.Heading())
	}
	if !c.Request(Up) {
		t.Fatal("UP must be accepted while heading RIGHT")
	}
	if c.Request(Down) {
		t.Fatal("DOWN must be rejected after UP")
	}
	if !c.Request(Up) || !c.Request(Left) {
		t.Fatal("same and perpendicular headings must be accepted")
	}
	if c.Request(NoHeading) {
		t.Fatal("NoHeading is not a request")
	}
	c.Reset()
	if c.Heading() != Right {
		t.Fatalf("reset heading %v", c.Heading())
	}
}

func TestParseHeading(t *testing.T) {
	cases := []struct {
		in   string
		want Heading
		ok   bool
	}{
		{"up", Up, true},
		{" Down ", Down, true},
		{"LEFT", Left, true},
		{"right", Right, true},
		{"north", NoHeading, false},
		{"", NoHeading, false},
	}
	for _, tc := range cases {
		got, ok := ParseHeading(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseHeading(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
	for _, h := range []Heading{Up, Down, Left, Right} {
		if got, ok := ParseHeading(h.String()); !ok || got != h {
			t.Errorf("ParseHeading(%v.String()) = %v, %v", h, got, ok)
		}
	}
}

func TestBodyHeadAndTail(t *testing.T) {
	b := NewBody(core.Cell{Col: 5, Row: 5}, core.Cell{Col: 4, Row: 5}, core.Cell{Col: 3, Row: 5})
	if b.Head() != (core.Cell{Col: 5, Row: 5}) || b.Tail() != (core.Cell{Col: 3, Row: 5}) {
		t.Fatalf("head %v tail %v", b.Head(), b.Tail())
	}
	b.Advance(core.Cell{Col: 6, Row: 5}, false)
	if b.Tail() != (core.Cell{Col: 4, Row: 5}) || b.Len() != 3 {
		t.Fatalf("after move: tail %v len %d", b.Tail(), b.Len())
	}
	b.Advance(core.Cell{Col: 7, Row: 5}, true)
	if b.Tail() != (core.Cell{Col: 4, Row: 5}) || b.Len() != 4 {
		t.Fatalf("after growth: tail %v len %d", b.Tail(), b.Len())
	}

	single := NewBody(core.Cell{Col: 1, Row: 1})
	if single.Head() != single.Tail() {
		t.Fatal("a one-cell body is its own tail")
	}
}

func TestCellsBuffer(t *testing.T) {
	s := newTestSession(t, func(c *Config) { c.InitialLength = 3 })
	cells := s.Cells()
	g := s.Grid()
	if got := cells[g.Index(core.Cell{Col: 9, Row: 10})]; got != CellHead {
		t.Fatalf("head cell %d", got)
	}
	if got := cells[g.Index(core.Cell{Col: 8, Row: 10})]; got != CellBody {
		t.Fatalf("body cell %d", got)
	}
	if got := cells[g.Index(core.Cell{Col: 7, Row: 10})]; got != CellTail {
		t.Fatalf("tail cell %d", got)
	}
	if cells[0] != CellLight || cells[1] != CellDark {
		t.Fatalf("checkerboard %d %d", cells[0], cells[1])
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"grid":         "12",
		"length":       "3",
		"start_col":    "40",
		"boundary":     "wrap",
		"apple_chance": "0.5",
		"tick_ms":      "90",
		"seed":         "7",
		"cell":         "bogus",
	})
	if cfg.GridSize != 12 || cfg.CellSize != core.DefaultCellSize {
		t.Fatalf("grid %d cell %d", cfg.GridSize, cfg.CellSize)
	}
	if cfg.Start.Col != 11 {
		t.Fatalf("start col not clamped: %d", cfg.Start.Col)
	}
	if cfg.Boundary != Wrap || cfg.AppleChance != 0.5 || cfg.Seed != 7 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.TickInterval != 90*time.Millisecond || cfg.InitialLength != 3 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestDriverLifecycle(t *testing.T) {
	var events []EventKind
	d := NewDriver(DefaultConfig(), WithListener(func(e Event) { events = append(events, e.Kind) }))
	t0 := time.Unix(1000, 0)

	if _, ticked := d.Frame(t0); ticked {
		t.Fatal("stopped driver must not tick")
	}
	d.Start()
	if d.Phase() != Running {
		t.Fatalf("phase %v", d.Phase())
	}
	d.Session().PlaceFood(Food{Cell: core.Cell{Col: 0, Row: 0}, Kind: Coin})

	ticks := 0
	for i := 0; i <= 60; i++ {
		if _, ticked := d.Frame(t0.Add(time.Duration(i) * time.Second / 60)); ticked {
			ticks++
		}
	}
	// One second at 150ms per tick.
	if ticks != 6 {
		t.Fatalf("expected 6 ticks in one second, got %d", ticks)
	}

	d.Stop()
	d.Stop()
	if d.Phase() != Stopped {
		t.Fatalf("phase %v after stop", d.Phase())
	}
	want := []EventKind{EventStarted, EventStopped}
	if !slices.Equal(events, want) {
		t.Fatalf("events %v, want %v", events, want)
	}
}

func TestDriverGameOverAndRestart(t *testing.T) {
	var last Event
	d := NewDriver(DefaultConfig(), WithListener(func(e Event) { last = e }))
	d.Start()
	d.Session().PlaceFood(Food{Cell: core.Cell{Col: 10, Row: 10}, Kind: Apple})

	now := time.Unix(0, 0)
	d.Frame(now)
	step := d.Session().Config().TickInterval
	for d.Phase() == Running {
		now = now.Add(step)
		d.Frame(now)
		if d.Session().Score() > 0 {
			d.Session().PlaceFood(Food{Cell: core.Cell{Col: 0, Row: 0}, Kind: Coin})
		}
	}
	if d.Phase() != Over || last.Kind != EventGameOver {
		t.Fatalf("phase %v event %v", d.Phase(), last.Kind)
	}
	if last.HighScore != 2 {
		t.Fatalf("high score %d", last.HighScore)
	}
	if d.Steer(Up) {
		t.Fatal("steering a finished game must be ignored")
	}
	if pops := d.FX().Pops(now); len(pops) != 0 {
		t.Fatalf("pops outlived their lifetime: %v", pops)
	}

	d.Restart()
	if d.Phase() != Running || d.Session().Score() != 0 || d.Session().HighScore() != 2 {
		t.Fatal("restart must zero the score and keep the high score")
	}
	if d.Heading() != Right {
		t.Fatalf("heading %v after restart", d.Heading())
	}
}

func TestDriverStartAfterStoppedGameOverRestarts(t *testing.T) {
	var events []EventKind
	d := NewDriver(DefaultConfig(), WithListener(func(e Event) { events = append(events, e.Kind) }))
	d.Start()
	d.Session().PlaceFood(Food{Cell: core.Cell{Col: 0, Row: 0}, Kind: Coin})

	now := time.Unix(0, 0)
	step := d.Session().Config().TickInterval
	d.Frame(now)
	for d.Phase() == Running {
		now = now.Add(step)
		d.Frame(now)
	}
	d.Stop()
	d.Start()
	if d.Phase() != Running || d.Session().Over() {
		t.Fatalf("start after a stopped game over must begin a new game, phase %v over %v", d.Phase(), d.Session().Over())
	}
	d.Session().PlaceFood(Food{Cell: core.Cell{Col: 0, Row: 0}, Kind: Coin})
	for i := 0; i < 2; i++ {
		now = now.Add(step)
		d.Frame(now)
	}
	want := []EventKind{EventStarted, EventGameOver, EventStopped, EventStarted}
	if !slices.Equal(events, want) {
		t.Fatalf("events %v, want %v", events, want)
	}
	if d.Session().Restarts() != 1 {
		t.Fatalf("restarts %d", d.Session().Restarts())
	}
}

func TestDriverSteerUsesLatestValidRequest(t *testing.T) {
	d := NewDriver(DefaultConfig())
	d.Start()
	d.Session().PlaceFood(Food{Cell: core.Cell{Col: 0, Row: 0}, Kind: Coin})
	d.Steer(Up)
	d.Steer(Down)
	d.Steer(Left)

	now := time.Unix(0, 0)
	d.Frame(now)
	if _, ticked := d.Frame(now.Add(d.Session().Config().TickInterval)); !ticked {
		t.Fatal("expected a tick")
	}
	if d.Session().Body().Head() != (core.Cell{Col: 8, Row: 10}) {
		t.Fatalf("head %+v, want (8,10)", d.Session().Body().Head())
	}
}

func TestDriverParameters(t *testing.T) {
	d := NewDriver(DefaultConfig())
	if !d.SetIntParameter("tick_ms", 10) {
		t.Fatal("tick_ms must be adjustable")
	}
	if got := d.Session().Config().TickInterval; got != 50*time.Millisecond {
		t.Fatalf("tick interval not clamped: %v", got)
	}
	d.SetIntParameter("apple_pct", 100)
	if d.Session().Config().AppleChance != 1 {
		t.Fatalf("apple chance %v", d.Session().Config().AppleChance)
	}
	if d.SetIntParameter("unknown", 1) {
		t.Fatal("unknown key accepted")
	}

	snap := d.Parameters()
	if p, ok := snap.Lookup("tick_ms"); !ok || p.Value != "50" {
		t.Fatalf("tick_ms param %+v", p)
	}
	if p, ok := snap.Lookup("state"); !ok || p.Value != "stopped" {
		t.Fatalf("state param %+v", p)
	}
}

func TestFXAnimation(t *testing.T) {
	var f FX
	t0 := time.Unix(0, 0)
	f.Advance(t0)
	f.Emit(TickResult{Outcome: Ate, Points: 2, PopX: 5, PopY: 6}, t0)
	if len(f.Pops(t0.Add(200*time.Millisecond))) != 1 {
		t.Fatal("pop should be alive at 200ms")
	}
	if len(f.Pops(t0.Add(PopLifetime))) != 0 {
		t.Fatal("pop should expire after its lifetime")
	}
	f.Advance(t0.Add(500 * time.Millisecond))
	if f.Rotation <= 0 || f.Pulse <= 0 {
		t.Fatalf("animation did not advance: %+v", f)
	}
	if len(f.Pops(t0.Add(200*time.Millisecond))) != 0 {
		t.Fatal("advance should drop expired pops")
	}
	if age := (ScorePop{Born: t0}).Age(t0.Add(PopLifetime / 2)); age != 0.5 {
		t.Fatalf("age %v", age)
	}
}

func TestRegistered(t *testing.T) {
	e, ok := core.Lookup("snake")
	if !ok || e.Title == "" {
		t.Fatalf("snake not registered: %+v", e)
	}
}

func TestDriverAdvanceUsesClock(t *testing.T) {
	now := time.Unix(50, 0)
	d := NewDriver(DefaultConfig(), WithClock(func() time.Time { return now }))
	d.Start()
	d.Session().PlaceFood(Food{Cell: core.Cell{Col: 0, Row: 0}, Kind: Coin})
	if _, ticked := d.Advance(); ticked {
		t.Fatal("first frame after start must not tick")
	}
	now = now.Add(d.Session().Config().TickInterval)
	if _, ticked := d.Advance(); !ticked {
		t.Fatal("expected a tick one interval later")
	}
}
