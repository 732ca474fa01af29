package screens

import (
	"github.com/oxport/menustack/pkg/menustack"
	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/input"
	"github.com/oxport/menustack/pkg/menustack/locale"
)

// ErrorDialog is a modal overlay showing an error message with a single OK button.
type ErrorDialog struct {
	menustack.Base
	Title   string
	Message string
	OK      string

	env     *Env
	nav     menustack.Navigator
	closing bool
}

// NewErrorDialog returns a factory for a dialog showing message.
func NewErrorDialog(env *Env, message string) menustack.Factory {
	return func(nav menustack.Navigator) (menustack.Screen, error) {
		return &ErrorDialog{
			Base:    menustack.Base{Overlay: true},
			Message: message,
			env:     env,
			nav:     nav,
		}, nil
	}
}

func (d *ErrorDialog) Name() string { return "error-dialog" }

func (d *ErrorDialog) Init() {
	d.Title = d.env.T(locale.MsgErrorTitle, nil)
	d.OK = d.env.T(locale.MsgOK, nil)
}

func (d *ErrorDialog) Handle(ev input.Event) {
	if d.closing || !ev.IsPress(constants.VirtualButtonA, constants.VirtualButtonB, constants.VirtualButtonStart) {
		return
	}
	d.closing = true
	d.nav.Pop()
}

func (d *ErrorDialog) View() []string {
	return []string{d.Title, d.Message, "[" + d.OK + "]"}
}
