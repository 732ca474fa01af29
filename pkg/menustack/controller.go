package menustack

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/input"
	"github.com/oxport/menustack/pkg/menustack/internal"
)

// ErrNilScreen is the construction error for a factory that returned neither a screen nor an error.
var ErrNilScreen = errors.New("menustack: factory returned nil screen")

// ControllerSettings configures a Controller.
type ControllerSettings struct {
	// Root builds the screen that replaces the last one when it is popped.
	// Nil means popping the last screen is ignored.
	Root Factory

	// Error builds the dialog shown for construction failures and ShowError.
	// Nil, or a factory that fails, falls back to MessageScreen.
	Error ErrorFactory

	Source       input.Source  // Polled once per tick; nil means no input
	Renderer     Renderer      // Called after the apply phase; nil means headless
	TickInterval time.Duration // Run's tick period (default: constants.DefaultTickInterval)
	Width        int           // Initial display width (default: constants.DefaultDisplayWidth)
	Height       int           // Initial display height (default: constants.DefaultDisplayHeight)
	Debug        bool          // Panic on contract violations instead of returning errors
	Logger       *slog.Logger  // Default: the framework's internal logger
}

// Controller owns the screen stack and mediates all mutation of it.
//
// It is single threaded: Start, Tick, Run and Close must be called from the
// same goroutine, and screens only ever touch it through their Navigator.
type Controller struct {
	settings    ControllerSettings
	stack       *Stack
	queue       Queue
	dispatcher  *Dispatcher
	logger      *slog.Logger
	started     bool
	quitting    bool
	dispatching bool
	ticks       uint64
}

// New creates a Controller. Call Start to push the first screen.
func New(settings ControllerSettings) *Controller {
	if settings.TickInterval <= 0 {
		settings.TickInterval = constants.DefaultTickInterval
	}
	if settings.Width <= 0 {
		settings.Width = constants.DefaultDisplayWidth
	}
	if settings.Height <= 0 {
		settings.Height = constants.DefaultDisplayHeight
	}

	logger := settings.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	return &Controller{
		settings:   settings,
		stack:      NewStack(),
		dispatcher: NewDispatcher(settings.Width, settings.Height, logger),
		logger:     logger,
	}
}

// Start builds the first screen, pushes it and calls its Init.
func (c *Controller) Start(first Factory) error {
	if c.started {
		return ErrAlreadyStarted
	}

	screen, nav, err := c.construct(first, Request{OriginName: "start"})
	if err != nil {
		return err
	}

	c.started = true
	entry := c.push(screen, nav)
	c.logger.Info("controller started", "screen", entry.Name)

	c.guarded(screen.Init)
	return nil
}

// Tick runs one frame: poll input, Handle on the top screen, Think on the
// visible screens, apply queued transitions, render.
// After Quit was applied Tick does nothing.
func (c *Controller) Tick() error {
	if c.dispatching {
		if c.settings.Debug {
			panic(ErrReentrantTick)
		}
		c.logger.Error("reentrant tick rejected")
		return ErrReentrantTick
	}
	if !c.started {
		return ErrNotStarted
	}
	if c.quitting {
		return nil
	}

	var events []input.Event
	if c.settings.Source != nil {
		events = c.settings.Source.Poll()
	}

	c.guarded(func() {
		c.dispatcher.Dispatch(c.stack, events, func() {
			c.queue.Enqueue(Request{Kind: RequestQuit, OriginName: "input"})
		})
	})

	c.apply()

	if c.settings.Renderer != nil {
		c.settings.Renderer.Render(c.stack.Visible())
	}

	c.ticks++
	return nil
}

// Run ticks on a timer until Quit is applied or ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	if !c.started {
		return ErrNotStarted
	}

	ticker := time.NewTicker(c.settings.TickInterval)
	defer ticker.Stop()

	for c.Running() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.Tick(); err != nil {
				return err
			}
		}
	}

	c.logger.Info("controller stopped", "ticks", c.ticks)
	return nil
}

// Close destroys every screen, top to bottom. The controller cannot be used afterwards.
func (c *Controller) Close() {
	for _, entry := range c.stack.Clear() {
		c.destroy(&entry)
	}
	c.quitting = true
}

// Running reports whether the controller was started and has not quit.
func (c *Controller) Running() bool {
	return c.started && !c.quitting
}

// Top returns the active screen, nil before Start.
func (c *Controller) Top() Screen {
	if top := c.stack.Peek(); top != nil {
		return top.Screen
	}
	return nil
}

// Len returns the stack depth.
func (c *Controller) Len() int {
	return c.stack.Len()
}

// Screens returns the stack, bottom to top.
func (c *Controller) Screens() []Screen {
	return c.stack.Screens()
}

// Pending returns the number of requests waiting for the next apply phase.
func (c *Controller) Pending() int {
	return c.queue.Len()
}

// Ticks returns the number of completed ticks.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// Size returns the last display size reported by a resize event.
func (c *Controller) Size() (int, int) {
	return c.dispatcher.Size()
}

// apply consumes the queued requests strictly in order. Each request acts on
// the stack as left by the previous one. The final top gets Init once if it
// is not the screen that was on top before the batch.
func (c *Controller) apply() {
	batch := c.queue.Drain()
	if len(batch) == 0 {
		return
	}

	before := c.stack.Peek().ID

	for i, req := range batch {
		if c.quitting {
			c.logger.Debug("dropping requests queued after quit", "dropped", len(batch)-i)
			break
		}

		c.logger.Debug("applying request", "kind", req.Kind, "origin", req.OriginName, "depth", c.stack.Len())

		switch req.Kind {
		case RequestPush:
			c.applyPush(req)
		case RequestPop:
			c.applyPop(req)
		case RequestReplace:
			c.applyReplace(req)
		case RequestQuit:
			c.quitting = true
			c.logger.Info("quit requested", "origin", req.OriginName)
		}
	}

	if top := c.stack.Peek(); top != nil && top.ID != before && !c.quitting {
		c.logger.Debug("init", "screen", top.Name, "id", top.ID)
		c.guarded(top.Screen.Init)
	}
}

func (c *Controller) applyPush(req Request) {
	screen, nav, err := c.construct(req.Factory, req)
	if err != nil {
		c.showConstructionError(err)
		return
	}
	c.push(screen, nav)
}

func (c *Controller) applyPop(req Request) {
	if c.stack.Len() > 1 {
		c.destroy(c.stack.Pop())
		return
	}

	if c.settings.Root == nil {
		c.logger.Warn("pop of last screen ignored", "screen", c.stack.Peek().Name, "origin", req.OriginName)
		return
	}

	c.logger.Info("last screen popped, returning to root", "screen", c.stack.Peek().Name)
	c.replaceTop(c.settings.Root, req)
}

func (c *Controller) applyReplace(req Request) {
	c.replaceTop(req.Factory, req)
}

// replaceTop builds first so a failing factory leaves the stack untouched.
func (c *Controller) replaceTop(f Factory, req Request) {
	screen, nav, err := c.construct(f, req)
	if err != nil {
		c.showConstructionError(err)
		return
	}
	old := c.stack.Pop()
	c.push(screen, nav)
	c.destroy(old)
}

func (c *Controller) construct(f Factory, req Request) (Screen, *navigator, error) {
	if f == nil {
		return nil, nil, &ConstructionError{Screen: req.OriginName, Err: ErrNilFactory}
	}

	nav := &navigator{c: c}

	var screen Screen
	var err error
	c.guarded(func() {
		screen, err = f(nav)
	})
	if err == nil && screen == nil {
		err = ErrNilScreen
	}
	if err != nil {
		nav.detached = true
		return nil, nil, &ConstructionError{Screen: req.OriginName, Err: err}
	}

	return screen, nav, nil
}

func (c *Controller) push(screen Screen, nav *navigator) StackEntry {
	entry := c.stack.Push(screen, nav)
	nav.id, nav.name = entry.ID, entry.Name
	c.logger.Debug("screen pushed", "screen", entry.Name, "id", entry.ID, "depth", c.stack.Len())
	return entry
}

func (c *Controller) destroy(entry *StackEntry) {
	if entry == nil {
		return
	}
	if entry.nav != nil {
		entry.nav.detached = true
	}
	if d, ok := entry.Screen.(Destroyer); ok {
		c.guarded(d.Destroy)
	}
	c.logger.Debug("screen destroyed", "screen", entry.Name, "id", entry.ID)
}

func (c *Controller) showConstructionError(err error) {
	c.logger.Error("screen construction failed", "error", err)

	message := err.Error()
	var ce *ConstructionError
	if errors.As(err, &ce) {
		message = ce.Err.Error()
	}

	// The dialog factory cannot fail: it falls back to MessageScreen.
	screen, nav, _ := c.construct(c.errorDialog(message), Request{OriginName: "error"})
	c.push(screen, nav)
}

func (c *Controller) errorDialog(message string) Factory {
	return func(nav Navigator) (Screen, error) {
		if c.settings.Error != nil {
			if f := c.settings.Error(message); f != nil {
				screen, err := f(nav)
				if err == nil && screen != nil {
					return screen, nil
				}
				c.logger.Error("error dialog construction failed", "error", err)
			} else {
				c.logger.Error("error dialog construction failed", "error", ErrNilFactory)
			}
		}
		return NewMessageScreen(nav, message), nil
	}
}

// guarded runs a screen callback with reentrancy detection enabled.
func (c *Controller) guarded(fn func()) {
	if c.dispatching {
		fn()
		return
	}
	c.dispatching = true
	defer func() { c.dispatching = false }()
	fn()
}

// navigator is the per-screen Navigator. Once its screen is destroyed it is
// detached and drops further requests.
type navigator struct {
	c        *Controller
	id       uint64
	name     string
	detached bool
}

func (n *navigator) Push(f Factory) {
	n.enqueue(Request{Kind: RequestPush, Factory: f})
}

func (n *navigator) Pop() {
	n.enqueue(Request{Kind: RequestPop})
}

func (n *navigator) Replace(f Factory) {
	n.enqueue(Request{Kind: RequestReplace, Factory: f})
}

func (n *navigator) Quit() {
	n.enqueue(Request{Kind: RequestQuit})
}

func (n *navigator) ShowError(message string) {
	n.enqueue(Request{Kind: RequestPush, Factory: n.c.errorDialog(message)})
}

func (n *navigator) enqueue(r Request) {
	if n.detached {
		n.c.logger.Warn("request from destroyed screen dropped", "screen", n.name, "kind", r.Kind)
		return
	}
	r.OriginID, r.OriginName = n.id, n.name
	n.c.queue.Enqueue(r)
}
