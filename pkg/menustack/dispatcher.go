package menustack

import (
	"log/slog"

	"github.com/oxport/menustack/pkg/menustack/input"
)

// Dispatcher delivers one tick's events and think calls to the stack.
//
// Order per tick: every event is routed in arrival order, then every visible
// screen thinks, bottom to top. Only the top screen receives Handle; resize
// events reach every screen on the stack; quit events become a Quit request.
type Dispatcher struct {
	width, height int
	logger        *slog.Logger
}

// NewDispatcher creates a dispatcher that assumes the given display size.
func NewDispatcher(width, height int, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{width: width, height: height, logger: logger}
}

// Size returns the last known display size.
func (d *Dispatcher) Size() (int, int) {
	return d.width, d.height
}

// Dispatch runs one tick against stack. quit is called for every quit event.
// The stack is only read here; requests raised by screens wait in the queue.
func (d *Dispatcher) Dispatch(stack *Stack, events []input.Event, quit func()) {
	top := stack.Peek()
	if top == nil {
		return
	}

	for _, ev := range events {
		switch ev.Kind {
		case input.KindResize:
			d.resize(stack, ev.Width, ev.Height)
		case input.KindQuit:
			quit()
		default:
			top.Screen.Handle(ev)
		}
	}

	for _, s := range stack.Visible() {
		s.Think()
	}
}

func (d *Dispatcher) resize(stack *Stack, width, height int) {
	dx, dy := width-d.width, height-d.height
	d.width, d.height = width, height
	if dx == 0 && dy == 0 {
		return
	}

	d.logger.Debug("display resized", "width", width, "height", height, "dx", dx, "dy", dy)

	for _, s := range stack.Screens() {
		s.Resize(dx, dy)
	}
}
