package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain reads st to its end.
func drain(st beep.Streamer) [][2]float64 {
	var out [][2]float64
	chunk := make([][2]float64, 512)
	for {
		n, ok := st.Stream(chunk)
		out = append(out, chunk[:n]...)
		if !ok {
			return out
		}
	}
}

var allCues = []Cue{Click, ComputerClick, Start, Win, Draw, Eat, GameOver}

func TestEveryCueHasNotes(t *testing.T) {
	for _, c := range allCues {
		notes := Notes(c)
		if len(notes) == 0 {
			t.Fatalf("%s: no notes", c)
		}
		for i, n := range notes {
			if n.Dur <= 0 {
				t.Fatalf("%s note %d: non-positive duration", c, i)
			}
			if n.Freq < 0 || n.Freq >= float64(SampleRate)/2 {
				t.Fatalf("%s note %d: frequency %v out of range", c, i, n.Freq)
			}
		}
	}
	if Notes(Cue(0)) != nil {
		t.Fatal("unknown cue should have no notes")
	}
	if Duration(Click) >= 100*time.Millisecond {
		t.Fatalf("click should be short, got %v", Duration(Click))
	}
}

func TestBuildLength(t *testing.T) {
	for _, c := range allCues {
		rendered, err := Render(c, 0.5)
		if err != nil {
			t.Fatalf("%s: %v", c, err)
		}
		want := 0
		for _, n := range Notes(c) {
			want += SampleRate.N(n.Dur)
		}
		if rendered.Len() != want {
			t.Fatalf("%s: buffered %d samples, want %d", c, rendered.Len(), want)
		}
		buf := drain(rendered.Streamer(0, rendered.Len()))
		if len(buf) != want {
			t.Fatalf("%s: rendered %d samples, want %d", c, len(buf), want)
		}
		for i, s := range buf {
			if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
				t.Fatalf("%s sample %d out of range: %v", c, i, s)
			}
		}
	}
}

func TestBuildMuted(t *testing.T) {
	st, err := Build(Win, SampleRate, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range drain(st) {
		if s != [2]float64{} {
			t.Fatalf("sample %d not silent: %v", i, s)
		}
	}
}

func TestBuildUnknownCue(t *testing.T) {
	if _, err := Build(Cue(99), SampleRate, 1); err == nil {
		t.Fatal("expected error for unknown cue")
	}
}

func TestRenderedCueReplays(t *testing.T) {
	buf, err := Render(Eat, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	first := drain(buf.Streamer(0, buf.Len()))
	second := drain(buf.Streamer(0, buf.Len()))
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("replays yielded %d and %d samples", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs between replays", i)
		}
	}
	if _, err := Render(Cue(99), 1); err == nil {
		t.Fatal("expected error for unknown cue")
	}
	var p Player = Nop{}
	p.Play(Click)
}
