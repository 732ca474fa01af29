package menustack

import (
	"fmt"

	"github.com/oxport/menustack/pkg/menustack/input"
)

// Screen is one navigable UI context.
//
// Init runs every time the screen becomes the top of the stack: when first pushed
// and each time it is exposed again after a screen above it was popped. Think runs
// once per tick while the screen is visible. Handle runs once per pending input
// event, in arrival order, and only for the top screen. None of them may block.
type Screen interface {
	Init()
	Think()
	Handle(ev input.Event)
	Resize(dx, dy int)

	// FullScreen reports whether the screen covers the whole display.
	// Overlays return false and leave the screens beneath visible.
	FullScreen() bool
}

// Destroyer is implemented by screens that hold resources. Destroy is called
// exactly once, after the screen has been removed from the stack.
type Destroyer interface {
	Destroy()
}

// Named is implemented by screens that want a readable name in logs.
type Named interface {
	Name() string
}

// Factory builds a screen. It runs during the apply phase, never inside another
// screen's callback. nav is the new screen's own handle for requesting transitions.
// A non-nil error aborts the pending Push or Replace.
type Factory func(nav Navigator) (Screen, error)

// ErrorFactory builds the factory for an error dialog showing message.
type ErrorFactory func(message string) Factory

// Navigator is the capability handle a screen uses to request transitions.
// Every method only queues a request; the stack changes between ticks.
type Navigator interface {
	// Push places a new screen above the current top.
	Push(f Factory)
	// Pop removes the current top. Popping the last screen fires the root transition.
	Pop()
	// Replace swaps the current top for a new screen in one step.
	Replace(f Factory)
	// Quit stops the controller after the current tick.
	Quit()
	// ShowError pushes a modal error dialog carrying message.
	ShowError(message string)
}

// Renderer draws the visible screens, bottom to top.
type Renderer interface {
	Render(screens []Screen)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(screens []Screen)

func (f RendererFunc) Render(screens []Screen) { f(screens) }

// Base provides default lifecycle hooks. Embed it and override what you need.
type Base struct {
	Overlay bool // Screen leaves the one beneath visible
	DX, DY  int  // Accumulated resize deltas
}

func (b *Base) Init()                 {}
func (b *Base) Think()                {}
func (b *Base) Handle(ev input.Event) {}

// Resize accumulates the layout delta so the screen can recentre on its next draw.
func (b *Base) Resize(dx, dy int) {
	b.DX += dx
	b.DY += dy
}

func (b *Base) FullScreen() bool {
	return !b.Overlay
}

// Static returns a factory that always yields s. It ignores the navigator,
// so it suits screens that never request transitions.
func Static(s Screen) Factory {
	return func(Navigator) (Screen, error) {
		return s, nil
	}
}

// Failing returns a factory that always fails with err.
func Failing(err error) Factory {
	return func(Navigator) (Screen, error) {
		return nil, err
	}
}

func nameOf(s Screen) string {
	if s == nil {
		return ""
	}
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", s)
}
