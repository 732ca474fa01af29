package menustack

import (
	"github.com/oxport/menustack/pkg/menustack/input"
)

// MessageScreen is the built-in modal dialog used when no ErrorFactory is
// configured, or when the configured one fails. Any button press dismisses it.
type MessageScreen struct {
	Base
	Message string

	nav     Navigator
	closing bool
}

// NewMessageScreen creates an overlay dialog showing message.
func NewMessageScreen(nav Navigator, message string) *MessageScreen {
	return &MessageScreen{
		Base:    Base{Overlay: true},
		Message: message,
		nav:     nav,
	}
}

func (m *MessageScreen) Name() string { return "message" }

func (m *MessageScreen) Handle(ev input.Event) {
	if ev.Kind != input.KindPress || m.closing {
		return
	}
	m.closing = true
	m.nav.Pop()
}

// View returns the text lines to draw.
func (m *MessageScreen) View() []string {
	return []string{m.Message}
}
