package screens

import (
	"errors"

	"github.com/oxport/menustack/pkg/menustack"
	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/input"
	"github.com/oxport/menustack/pkg/menustack/internal"
	"github.com/oxport/menustack/pkg/menustack/locale"
)

// ErrNoGame is shown when New Game is chosen with neither an intro nor a game screen.
var ErrNoGame = errors.New("screens: no game screen configured")

// MainMenu is the root screen: a vertical list of entries navigated with
// up/down, activated with A or Start. B asks to quit.
type MainMenu struct {
	menustack.Base
	Items []MenuItem

	env    *Env
	nav    menustack.Navigator
	cursor *internal.Cursor
}

// NewMainMenu returns the factory for the main menu. Use it both to start the
// controller and as its Root, so popping the last screen comes back here.
func NewMainMenu(env *Env) menustack.Factory {
	return func(nav menustack.Navigator) (menustack.Screen, error) {
		m := &MainMenu{
			Items: []MenuItem{
				{MessageID: locale.MsgMainNewGame, Action: MenuActionNewGame},
				{MessageID: locale.MsgMainLoadGame, Action: MenuActionLoadGame, Disabled: env.LoadGame == nil},
				{MessageID: locale.MsgMainOptions, Action: MenuActionOptions},
				{MessageID: locale.MsgMainQuit, Action: MenuActionQuit},
			},
			env: env,
			nav: nav,
		}
		m.cursor = internal.NewCursor(len(m.Items))
		m.cursor.SetClock(env.now())
		return m, nil
	}
}

func (m *MainMenu) Name() string { return "main-menu" }

// Init relabels the entries, since the language may have changed on the
// options screen, and drops any direction held when the menu was covered.
func (m *MainMenu) Init() {
	for i := range m.Items {
		m.Items[i].Text = m.env.T(m.Items[i].MessageID, nil)
	}
	m.cursor.Reset()
	m.focus()
}

func (m *MainMenu) Think() {
	if m.cursor.Think() != internal.DirectionNone {
		m.focus()
	}
}

func (m *MainMenu) Handle(ev input.Event) {
	switch ev.Kind {
	case input.KindRelease:
		m.cursor.Release(ev.Button)
	case input.KindPress:
		if m.cursor.Press(ev.Button) != internal.DirectionNone {
			m.focus()
			return
		}
		switch ev.Button {
		case constants.VirtualButtonA, constants.VirtualButtonStart:
			m.activate(m.Items[m.cursor.Index])
		case constants.VirtualButtonB:
			m.activate(MenuItem{Action: MenuActionQuit})
		}
	}
}

// Focused returns the index of the focused entry.
func (m *MainMenu) Focused() int {
	return m.cursor.Index
}

func (m *MainMenu) View() []string {
	lines := make([]string, 0, len(m.Items))
	for _, item := range m.Items {
		switch {
		case item.Focused:
			lines = append(lines, "> "+item.Text)
		case item.Disabled:
			lines = append(lines, "  ("+item.Text+")")
		default:
			lines = append(lines, "  "+item.Text)
		}
	}
	return lines
}

func (m *MainMenu) focus() {
	for i := range m.Items {
		m.Items[i].Focused = i == m.cursor.Index
	}
}

func (m *MainMenu) activate(item MenuItem) {
	if item.Disabled {
		return
	}
	m.env.logger().Debug("main menu action", "action", item.Action.String())
	// Releases go to whatever is pushed next, so a held direction would keep
	// repeating under an overlay.
	m.cursor.Reset()

	switch item.Action {
	case MenuActionNewGame:
		m.nav.Push(m.newGame())
	case MenuActionLoadGame:
		m.nav.Push(NewLoading(m.env, "load-game", m.env.LoadGame, func(next menustack.Factory) menustack.Factory {
			return next
		}))
	case MenuActionOptions:
		m.nav.Push(NewOptionsScreen(m.env))
	case MenuActionQuit:
		m.nav.Push(NewConfirm(m.env, ConfirmSettings{
			Message: m.env.T(locale.MsgConfirmQuit, nil),
			Choices: []Choice{
				{Label: m.env.T(locale.MsgYes, nil), OnSelect: func(nav menustack.Navigator) { nav.Quit() }},
				{Label: m.env.T(locale.MsgNo, nil)},
			},
			InitialSelection: 1,
		}))
	}
}

// newGame plays the intro when enabled, then shows Env.NewGame.
func (m *MainMenu) newGame() menustack.Factory {
	showIntro := len(m.env.Intro) > 0
	if showIntro && m.env.Options != nil {
		showIntro = m.env.Options.Get().Game.ShowIntro
	}
	if showIntro {
		return NewSlideshow(m.env, m.env.Intro, m.env.NewGame)
	}
	if m.env.NewGame != nil {
		return m.env.NewGame
	}
	return menustack.Failing(ErrNoGame)
}
