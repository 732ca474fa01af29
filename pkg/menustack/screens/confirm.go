package screens

import (
	"errors"
	"time"

	"github.com/oxport/menustack/pkg/menustack"
	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/input"
	"github.com/oxport/menustack/pkg/menustack/locale"
)

// ErrNoChoices is the construction error of a Confirm without choices.
var ErrNoChoices = errors.New("screens: confirm dialog has no choices")

// Choice is one horizontally selectable answer of a Confirm.
type Choice struct {
	// Label is the text shown to the user
	Label string
	// OnSelect runs after the dialog has requested its own Pop, so transitions
	// it requests apply beneath the closing dialog. May be nil.
	OnSelect func(nav menustack.Navigator)
}

// ConfirmSettings configures a Confirm overlay.
type ConfirmSettings struct {
	Message string
	Choices []Choice

	// InitialSelection is the index of the initially selected choice (default: 0)
	InitialSelection int
	// ConfirmButton selects the highlighted choice (default: VirtualButtonA)
	ConfirmButton constants.VirtualButton
	// BackButton closes the dialog without selecting (default: VirtualButtonB)
	BackButton constants.VirtualButton
	// DisableBackButton ignores the back button
	DisableBackButton bool

	// Timeout, when positive, counts down in whole seconds and then selects TimeoutChoice.
	Timeout       time.Duration
	TimeoutChoice int
}

// Confirm is an overlay asking the user to pick one of several choices with
// left/right and confirm.
type Confirm struct {
	menustack.Base
	settings  ConfirmSettings
	selected  int
	remaining int

	env     *Env
	nav     menustack.Navigator
	timer   *menustack.Timer
	closing bool
}

// NewConfirm returns a factory for a confirmation overlay.
func NewConfirm(env *Env, settings ConfirmSettings) menustack.Factory {
	return func(nav menustack.Navigator) (menustack.Screen, error) {
		if len(settings.Choices) == 0 {
			return nil, ErrNoChoices
		}

		if settings.ConfirmButton == constants.VirtualButtonUnassigned {
			settings.ConfirmButton = constants.VirtualButtonA
		}
		if settings.BackButton == constants.VirtualButtonUnassigned {
			settings.BackButton = constants.VirtualButtonB
		}
		if settings.InitialSelection < 0 || settings.InitialSelection >= len(settings.Choices) {
			settings.InitialSelection = 0
		}
		if settings.TimeoutChoice < 0 || settings.TimeoutChoice >= len(settings.Choices) {
			settings.TimeoutChoice = 0
		}

		c := &Confirm{
			Base:     menustack.Base{Overlay: true},
			settings: settings,
			selected: settings.InitialSelection,
			env:      env,
			nav:      nav,
		}

		if settings.Timeout > 0 {
			c.remaining = int((settings.Timeout + time.Second - 1) / time.Second)
			c.timer = menustack.NewTimer(time.Second, c.countdown)
			c.timer.SetClock(env.now())
		}
		return c, nil
	}
}

func (c *Confirm) Name() string { return "confirm" }

// Init starts the countdown the first time the dialog is shown. A countdown
// interrupted by a screen pushed above resumes where it was.
func (c *Confirm) Init() {
	if c.timer != nil && !c.timer.Running() && !c.closing {
		c.timer.Start()
	}
}

func (c *Confirm) Think() {
	if c.timer != nil {
		c.timer.Think()
	}
}

func (c *Confirm) Handle(ev input.Event) {
	if c.closing || ev.Kind != input.KindPress {
		return
	}

	switch ev.Button {
	case constants.VirtualButtonLeft:
		c.selected--
		if c.selected < 0 {
			c.selected = len(c.settings.Choices) - 1
		}
	case constants.VirtualButtonRight:
		c.selected++
		if c.selected >= len(c.settings.Choices) {
			c.selected = 0
		}
	case c.settings.ConfirmButton, constants.VirtualButtonStart:
		c.choose(c.selected)
	case c.settings.BackButton:
		if !c.settings.DisableBackButton {
			c.close()
		}
	}
}

// Selected returns the index of the highlighted choice.
func (c *Confirm) Selected() int {
	return c.selected
}

// Remaining returns the seconds left on the countdown, 0 without one.
func (c *Confirm) Remaining() int {
	return c.remaining
}

func (c *Confirm) View() []string {
	lines := []string{c.settings.Message}

	row := ""
	for i, choice := range c.settings.Choices {
		if i > 0 {
			row += "  "
		}
		if i == c.selected {
			row += "< " + choice.Label + " >"
		} else {
			row += choice.Label
		}
	}
	lines = append(lines, row)

	if c.timer != nil && c.env.Locale != nil {
		lines = append(lines, c.env.Locale.Plural(locale.MsgCountdown, "Seconds", c.remaining))
	}
	return lines
}

func (c *Confirm) countdown() {
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.choose(c.settings.TimeoutChoice)
	}
}

func (c *Confirm) choose(i int) {
	if c.closing {
		return
	}
	c.selected = i
	c.close()
	if cb := c.settings.Choices[i].OnSelect; cb != nil {
		cb(c.nav)
	}
}

func (c *Confirm) close() {
	c.closing = true
	if c.timer != nil {
		c.timer.Stop()
	}
	c.nav.Pop()
}
