package snake

import (
	"io"
	"log/slog"
	"math"
	"strconv"
	"time"

	"game-hub/internal/core"
)

// Phase is the lifecycle state of a Driver.
type Phase uint8

const (
	Stopped Phase = iota
	Running
	Over
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Over:
		return "over"
	default:
		return "stopped"
	}
}

// EventKind identifies a Driver notification.
type EventKind uint8

const (
	EventStarted EventKind = iota + 1
	EventAte
	EventGameOver
	EventCleared
	EventStopped
)

// Event is delivered to the listener synchronously from Driver methods.
type Event struct {
	Kind      EventKind
	SessionID string
	Score     int
	HighScore int
	Points    int
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.log = l
		}
	}
}

// WithListener registers a callback for lifecycle and scoring events.
func WithListener(fn func(Event)) Option {
	return func(d *Driver) { d.listener = fn }
}

// WithClock replaces time.Now for Advance.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		if now != nil {
			d.now = now
		}
	}
}

// Driver owns a session and runs it from a per-frame callback, throttled to
// the configured tick interval.
type Driver struct {
	session *Session
	input   *Controller
	fx      FX
	step    *core.FixedStep
	phase   Phase

	log      *slog.Logger
	listener func(Event)
	now      func() time.Time
}

// NewDriver builds a stopped driver around a fresh session.
func NewDriver(cfg Config, opts ...Option) *Driver {
	s := NewSession(cfg)
	d := &Driver{
		session: s,
		input:   NewController(),
		step:    core.NewFixedInterval(s.Config().TickInterval),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Session exposes the simulation state for rendering.
func (d *Driver) Session() *Session { return d.session }

// FX exposes the presentation state for rendering.
func (d *Driver) FX() *FX { return &d.fx }

// Phase reports the lifecycle state.
func (d *Driver) Phase() Phase { return d.phase }

// Heading reports the heading the next tick will use.
func (d *Driver) Heading() Heading { return d.input.Heading() }

// Start begins ticking a stopped driver. Starting a finished session
// restarts it, even when it was stopped after ending.
func (d *Driver) Start() {
	if d.phase == Running {
		return
	}
	if d.phase == Over || d.session.Over() {
		d.Restart()
		return
	}
	d.phase = Running
	d.step.Reset()
	d.log.Info("snake started", "session", d.session.ID, "high_score", d.session.HighScore())
	d.emit(EventStarted, 0)
}

// Stop halts ticking. It is safe to call repeatedly and from any phase.
func (d *Driver) Stop() {
	if d.phase == Stopped {
		return
	}
	d.phase = Stopped
	d.step.Reset()
	d.log.Info("snake stopped", "session", d.session.ID, "score", d.session.Score())
	d.emit(EventStopped, 0)
}

// Restart resets the session, input and effects and resumes ticking. The
// high score is kept.
func (d *Driver) Restart() {
	d.session.Reset(0)
	d.input.Reset()
	d.fx.Reset()
	d.phase = Running
	d.step.Reset()
	d.log.Info("snake restarted", "session", d.session.ID, "restarts", d.session.Restarts(), "high_score", d.session.HighScore())
	d.emit(EventStarted, 0)
}

// Steer forwards a heading request while the game is running.
func (d *Driver) Steer(h Heading) bool {
	if d.phase != Running {
		return false
	}
	return d.input.Request(h)
}

// Frame is the per-frame callback. Effects always advance; the simulation
// ticks at most once, when the throttle says a tick is due.
func (d *Driver) Frame(now time.Time) (TickResult, bool) {
	d.fx.Advance(now)
	if d.phase != Running {
		return TickResult{}, false
	}
	if !d.step.ShouldStepAt(now) {
		return TickResult{}, false
	}
	res := d.session.Tick(d.input.Heading())
	switch res.Outcome {
	case Ate:
		d.fx.Emit(res, now)
		d.emit(EventAte, res.Points)
	case GameOver:
		d.finish()
		d.log.Info("snake game over", "session", d.session.ID, "score", d.session.Score(), "high_score", d.session.HighScore())
		d.emit(EventGameOver, 0)
	case Cleared:
		d.fx.Emit(res, now)
		d.finish()
		d.log.Info("snake board cleared", "session", d.session.ID, "score", d.session.Score())
		d.emit(EventCleared, res.Points)
	}
	return res, true
}

// Advance is Frame at the driver clock's current time.
func (d *Driver) Advance() (TickResult, bool) { return d.Frame(d.now()) }

func (d *Driver) finish() {
	d.phase = Over
	d.step.Reset()
}

func (d *Driver) emit(kind EventKind, points int) {
	if d.listener == nil {
		return
	}
	d.listener(Event{
		Kind:      kind,
		SessionID: d.session.ID,
		Score:     d.session.Score(),
		HighScore: d.session.HighScore(),
		Points:    points,
	})
}

// ParameterControls lists the HUD-adjustable settings.
func (d *Driver) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "tick_ms", Label: "Tick ms", Step: 10, Min: 50, Max: 500},
		{Key: "apple_pct", Label: "Apple %", Step: 10, Min: 0, Max: 100},
	}
}

// SetIntParameter applies a HUD adjustment.
func (d *Driver) SetIntParameter(key string, value int) bool {
	for _, ctrl := range d.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "tick_ms":
			interval := time.Duration(value) * time.Millisecond
			d.session.cfg.TickInterval = interval
			d.step.SetInterval(interval)
		case "apple_pct":
			d.session.SetAppleChance(float64(value) / 100)
		}
		d.log.Debug("snake parameter changed", "key", key, "value", value)
		return true
	}
	return false
}

// Parameters returns the HUD snapshot: session stats plus the adjustable
// settings.
func (d *Driver) Parameters() core.ParameterSnapshot {
	s := d.session
	cfg := s.Config()
	state := d.phase.String()
	if s.Cleared() {
		state = "cleared"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Session",
			Params: []core.Parameter{
				core.IntParam("score", "Score", s.Score()),
				core.IntParam("high_score", "High", s.HighScore()),
				core.IntParam("length", "Length", s.Body().Len()),
				core.IntParam("restarts", "Restarts", s.Restarts()),
				core.TextParam("heading", "Heading", d.input.Heading().String()),
				core.TextParam("state", "State", state),
			},
		},
		{
			Name: "Settings",
			Params: []core.Parameter{
				core.IntParam("tick_ms", "Tick ms", int(cfg.TickInterval/time.Millisecond)),
				core.IntParam("apple_pct", "Apple %", int(math.Round(cfg.AppleChance*100))),
				core.TextParam("boundary", "Edges", cfg.Boundary.String()),
				core.TextParam("grid", "Grid", strconv.Itoa(cfg.GridSize)+"x"+strconv.Itoa(cfg.GridSize)),
			},
		},
	}}
}
