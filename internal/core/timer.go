package core

import "time"

// FixedStep throttles a per-frame callback down to a steady tick interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedInterval constructs a FixedStep that fires once per interval. The
// first call to ShouldStepAt fires immediately.
func NewFixedInterval(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the tick interval. Non-positive intervals fall back to
// 60 ticks per second.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	f.step = interval
}

// Interval reports the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset forgets accumulated time. The next tick fires one full interval
// after the first frame that follows.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = 0
}

// ShouldStepAt reports whether a tick is due at the frame timestamp now.
// At most one tick fires per call; the backlog is capped at one interval so a stalled
// frame does not cause a burst of catch-up ticks.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
