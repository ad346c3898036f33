package sound

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// Player plays cues. Playback is fire-and-forget.
type Player interface {
	Play(Cue)
}

// Nop discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// Speaker plays cues on the default audio device.
type Speaker struct {
	mu     sync.Mutex
	volume float64
	cache  map[Cue]*beep.Buffer
	log    *slog.Logger
	closed bool
}

// NewSpeaker opens the audio device. Failure to open it is returned so the
// caller can fall back to Nop.
func NewSpeaker(volume float64, log *slog.Logger) (*Speaker, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}
	return &Speaker{volume: volume, cache: make(map[Cue]*beep.Buffer), log: log}, nil
}

// Play queues c on the device mixer. Errors are logged and dropped.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	buf, ok := s.cache[c]
	if !ok {
		var err error
		buf, err = Render(c, s.volume)
		if err != nil {
			s.log.Warn("sound cue unavailable", "cue", c.String(), "err", err)
			return
		}
		s.cache[c] = buf
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// Format is the layout of pre-rendered cues.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Render builds c and drains it into a buffer that can be replayed any
// number of times.
func Render(c Cue, volume float64) (*beep.Buffer, error) {
	st, err := Build(c, SampleRate, volume)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(Format)
	buf.Append(st)
	return buf, nil
}
