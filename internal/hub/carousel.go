// Package hub implements the game-selection carousel shown at start-up.
package hub

import "game-hub/internal/core"

// Carousel cycles through the registered games.
type Carousel struct {
	items []core.Entry
	index int
}

// NewCarousel returns a carousel over entries, in the given order, with the
// first entry selected.
func NewCarousel(entries []core.Entry) *Carousel {
	return &Carousel{items: append([]core.Entry(nil), entries...)}
}

// Len reports the number of entries.
func (c *Carousel) Len() int { return len(c.items) }

// Index reports the selected position.
func (c *Carousel) Index() int { return c.index }

// Items exposes the entries. Callers must not modify the slice.
func (c *Carousel) Items() []core.Entry { return c.items }

// Current returns the selected entry. It reports false for an empty carousel.
func (c *Carousel) Current() (core.Entry, bool) {
	if len(c.items) == 0 {
		return core.Entry{}, false
	}
	return c.items[c.index], true
}

// Next selects the following entry, wrapping past the end.
func (c *Carousel) Next() {
	if len(c.items) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.items)
}

// Prev selects the preceding entry, wrapping before the start.
func (c *Carousel) Prev() {
	if len(c.items) == 0 {
		return
	}
	c.index = (c.index - 1 + len(c.items)) % len(c.items)
}

// Select jumps to i. Out-of-range indices are ignored.
func (c *Carousel) Select(i int) bool {
	if i < 0 || i >= len(c.items) {
		return false
	}
	c.index = i
	return true
}
