package snake

import (
	"math"
	"time"
)

const (
	// PopLifetime is how long a score-pop stays visible.
	PopLifetime = 400 * time.Millisecond
	// RotationSpeed spins the coin, in radians per second.
	RotationSpeed = math.Pi
	// PulseSpeed is the apple pulse frequency in Hz.
	PulseSpeed = 1.5
	// PulseDepth is the relative size swing of the pulse.
	PulseDepth = 0.12
)

// ScorePop is a transient "+N" indicator at the cell where food was eaten.
type ScorePop struct {
	Points int
	X, Y   float64
	Born   time.Time
}

// Age returns the fraction of the pop lifetime elapsed at now, in [0,1].
func (p ScorePop) Age(now time.Time) float64 {
	age := float64(now.Sub(p.Born)) / float64(PopLifetime)
	if age < 0 {
		return 0
	}
	if age > 1 {
		return 1
	}
	return age
}

// FX holds decorative animation state. It is advanced once per rendered
// frame by wall time and is never read by the simulation.
type FX struct {
	Rotation float64
	Pulse    float64

	last time.Time
	pops []ScorePop
}

// Advance moves the animation clocks to now and drops expired pops.
func (f *FX) Advance(now time.Time) {
	if !f.last.IsZero() {
		dt := now.Sub(f.last).Seconds()
		if dt > 0 {
			f.Rotation = math.Mod(f.Rotation+RotationSpeed*dt, 2*math.Pi)
			f.Pulse = math.Mod(f.Pulse+PulseSpeed*dt, 1)
		}
	}
	f.last = now

	live := f.pops[:0]
	for _, p := range f.pops {
		if now.Sub(p.Born) < PopLifetime {
			live = append(live, p)
		}
	}
	f.pops = live
}

// Emit starts a score-pop for the given tick result.
func (f *FX) Emit(res TickResult, now time.Time) {
	if res.Points <= 0 {
		return
	}
	f.pops = append(f.pops, ScorePop{Points: res.Points, X: res.PopX, Y: res.PopY, Born: now})
}

// Pops returns the pops still alive at now.
func (f *FX) Pops(now time.Time) []ScorePop {
	out := make([]ScorePop, 0, len(f.pops))
	for _, p := range f.pops {
		if now.Sub(p.Born) < PopLifetime {
			out = append(out, p)
		}
	}
	return out
}

// PulseScale is the current size multiplier of pulsing food.
func (f *FX) PulseScale() float64 {
	return 1 + PulseDepth*math.Sin(2*math.Pi*f.Pulse)
}

// Reset clears all animation state.
func (f *FX) Reset() {
	*f = FX{}
}
