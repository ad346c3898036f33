package snake

// Controller turns directional input into the heading read by the next tick.
// Requests are checked against the current heading at the moment they
// arrive, so several inputs between two ticks resolve to the latest valid
// one.
type Controller struct {
	heading Heading
}

// NewController returns a controller heading Right.
func NewController() *Controller { return &Controller{heading: Right} }

// Heading returns the heading the next tick will use.
func (c *Controller) Heading() Heading { return c.heading }

// Request sets the heading unless h is the exact reverse of the current
// heading. Rejected requests are dropped; the result is informational.
func (c *Controller) Request(h Heading) bool {
	if h == NoHeading || h == c.heading.Opposite() {
		return false
	}
	c.heading = h
	return true
}

// Reset points the controller Right again.
func (c *Controller) Reset() { c.heading = Right }
