package snake

import "strings"

// Heading is the snake's direction of motion.
type Heading uint8

const (
	NoHeading Heading = iota
	Up
	Down
	Left
	Right
)

// Opposite returns the reverse direction.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return NoHeading
	}
}

// Delta returns the one-cell offset for the heading. Rows grow downwards.
func (h Heading) Delta() (dc, dr int) {
	switch h {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "NONE"
	}
}

// ParseHeading accepts the direction names case-insensitively.
func ParseHeading(s string) (Heading, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UP":
		return Up, true
	case "DOWN":
		return Down, true
	case "LEFT":
		return Left, true
	case "RIGHT":
		return Right, true
	}
	return NoHeading, false
}
