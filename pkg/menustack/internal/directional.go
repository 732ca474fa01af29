package internal

import (
	"time"

	"github.com/oxport/menustack/pkg/menustack/constants"
)

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionFor maps a virtual button onto a direction.
func DirectionFor(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonLeft:
		return DirectionLeft
	case constants.VirtualButtonRight:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// Cursor tracks a selected index in a list of Size entries, plus the held
// direction so a screen can auto-repeat movement from its Think.
// Repeats are driven cooperatively: nothing happens unless Think is called.
type Cursor struct {
	Index int
	Size  int
	Wrap  bool

	held           Direction
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewCursor creates a wrapping Cursor with default repeat timing.
func NewCursor(size int) *Cursor {
	return &Cursor{
		Size:           size,
		Wrap:           true,
		repeatDelay:    constants.DefaultRepeatDelay,
		repeatInterval: constants.DefaultRepeatInterval,
		now:            time.Now,
	}
}

// SetClock replaces the time source.
func (c *Cursor) SetClock(now func() time.Time) {
	c.now = now
	c.lastRepeatTime = now()
}

// Press handles a direction press: moves immediately and starts the repeat window.
// Returns the direction that was applied, DirectionNone for non-directional buttons.
func (c *Cursor) Press(button constants.VirtualButton) Direction {
	d := DirectionFor(button)
	if d == DirectionNone {
		return DirectionNone
	}
	c.held = d
	c.hasRepeated = false
	c.lastRepeatTime = c.now()
	c.move(d)
	return d
}

// Release stops repeating if button is the held direction.
func (c *Cursor) Release(button constants.VirtualButton) {
	if DirectionFor(button) == c.held {
		c.held = DirectionNone
		c.hasRepeated = false
	}
}

// Think fires a repeat if the held direction has been held long enough.
// The first repeat occurs after the repeat delay, subsequent repeats after the interval.
func (c *Cursor) Think() Direction {
	if c.held == DirectionNone {
		return DirectionNone
	}

	threshold := c.repeatInterval
	if !c.hasRepeated {
		threshold = c.repeatDelay
	}

	if c.now().Sub(c.lastRepeatTime) < threshold {
		return DirectionNone
	}

	c.lastRepeatTime = c.now()
	c.hasRepeated = true
	c.move(c.held)
	return c.held
}

// Held returns the direction currently held.
func (c *Cursor) Held() Direction {
	return c.held
}

// Reset clears the held direction, keeping the index.
func (c *Cursor) Reset() {
	c.held = DirectionNone
	c.hasRepeated = false
}

// Only vertical movement changes the index; left/right are left to the screen.
func (c *Cursor) move(d Direction) {
	if c.Size <= 0 {
		return
	}
	switch d {
	case DirectionUp:
		c.Index--
		if c.Index < 0 {
			if c.Wrap {
				c.Index = c.Size - 1
			} else {
				c.Index = 0
			}
		}
	case DirectionDown:
		c.Index++
		if c.Index >= c.Size {
			if c.Wrap {
				c.Index = 0
			} else {
				c.Index = c.Size - 1
			}
		}
	}
}
