package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"game-hub/internal/snake"
	"game-hub/internal/sound"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Game     string
	TPS      int
	Seed     int64
	Boundary string
	TickMS   int
	Mute     bool
	Volume   float64
	LogLevel string
	LogFile  string
	Sets     kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{TPS: 60, Boundary: "walls", TickMS: 150, Volume: 0.5, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Game, "game", c.Game, "open this game directly instead of the hub (snake, tictactoe)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement and the computer player (0 picks one from the clock)")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "snake edge policy: walls or wrap")
	fs.IntVar(&c.TickMS, "tick-ms", c.TickMS, "snake tick interval in milliseconds")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "sound volume in [0,1]")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file")
	fs.Var(&c.Sets, "set", "snake parameter override in key=value form (repeatable)")
}

// ResolveSeed returns the seed for this run. A zero seed is replaced once by
// one taken from the clock, so every caller sees the same value.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

// SnakeConfig merges the flags and -set overrides into a snake.Config.
// Explicit -set values win over the dedicated flags.
func (c *Config) SnakeConfig() snake.Config {
	m := map[string]string{
		"seed":     strconv.FormatInt(c.ResolveSeed(), 10),
		"boundary": c.Boundary,
		"tick_ms":  strconv.Itoa(c.TickMS),
	}
	for k, v := range c.Sets.Map() {
		m[k] = v
	}
	return snake.FromMap(m)
}

// NewLogger builds the text logger for w at the configured level.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// OpenLogger returns the logger for -log and -log-level. Without -log the
// output goes to fallback. The returned close func is never nil.
func (c *Config) OpenLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	w, closeFn := fallback, func() error { return nil }
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		w, closeFn = f, f.Close
	}
	log, err := c.NewLogger(w)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return log, closeFn, nil
}

// OpenSound returns the speaker, or a silent player when muted or when no
// audio device is available.
func (c *Config) OpenSound(log *slog.Logger) (sound.Player, func()) {
	if c.Mute {
		return sound.Nop{}, func() {}
	}
	sp, err := sound.NewSpeaker(c.Volume, log)
	if err != nil {
		if log == nil {
			log = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		log.Warn("sound disabled", "err", err)
		return sound.Nop{}, func() {}
	}
	return sp, sp.Close
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys override earlier ones.
func (l kvList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}
