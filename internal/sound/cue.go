// Package sound plays the short synthesized cues of the hub.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue names a sound effect.
type Cue uint8

const (
	Click Cue = iota + 1
	ComputerClick
	Start
	Win
	Draw
	Eat
	GameOver
)

func (c Cue) String() string {
	switch c {
	case Click:
		return "click"
	case ComputerClick:
		return "computer_click"
	case Start:
		return "start"
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Eat:
		return "eat"
	case GameOver:
		return "game_over"
	default:
		return "none"
	}
}

// Note is one tone of a cue. A zero frequency is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

var cueNotes = map[Cue][]Note{
	Click:         {{Freq: 1046.50, Dur: 30 * time.Millisecond}},
	ComputerClick: {{Freq: 783.99, Dur: 30 * time.Millisecond}},
	Start: {
		{Freq: 523.25, Dur: 80 * time.Millisecond},
		{Freq: 659.25, Dur: 80 * time.Millisecond},
		{Freq: 783.99, Dur: 120 * time.Millisecond},
	},
	Win: {
		{Freq: 523.25, Dur: 100 * time.Millisecond},
		{Freq: 659.25, Dur: 100 * time.Millisecond},
		{Freq: 783.99, Dur: 100 * time.Millisecond},
		{Freq: 1046.50, Dur: 250 * time.Millisecond},
	},
	Draw: {
		{Freq: 440.00, Dur: 150 * time.Millisecond},
		{Dur: 50 * time.Millisecond},
		{Freq: 440.00, Dur: 150 * time.Millisecond},
	},
	Eat: {
		{Freq: 987.77, Dur: 50 * time.Millisecond},
		{Freq: 1318.51, Dur: 70 * time.Millisecond},
	},
	GameOver: {
		{Freq: 392.00, Dur: 150 * time.Millisecond},
		{Freq: 311.13, Dur: 150 * time.Millisecond},
		{Freq: 261.63, Dur: 300 * time.Millisecond},
	},
}

// Notes returns the note sequence of c, or nil for an unknown cue.
func Notes(c Cue) []Note {
	return cueNotes[c]
}

// Duration is the total length of c.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.Dur
	}
	return d
}

// Build renders c as a finite streamer at rate, scaled by volume in [0,1].
func Build(c Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes := Notes(c)
	if len(notes) == 0 {
		return nil, fmt.Errorf("sound: unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := rate.N(n.Dur)
		if n.Freq <= 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(rate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("sound: %s tone %.2fHz: %w", c, n.Freq, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume maps a linear gain onto effects.Volume. Zero is silent since
// log2(0) is undefined.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	if vol > 1 {
		vol = 1
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
