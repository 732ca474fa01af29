// Package input defines the events routed to screens and the sources they are polled from.
//
// Sources are polled once per tick on the tick thread. Devices that deliver
// events from their own goroutine post into a Queue, which is drained by Poll.
package input

import (
	"fmt"

	"github.com/oxport/menustack/pkg/menustack/constants"
)

// Kind classifies an Event. The controller only looks at the kind; payloads
// are interpreted by screens.
type Kind int

const (
	KindPress Kind = iota
	KindRelease
	KindText
	KindResize
	KindQuit
)

func (k Kind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindRelease:
		return "release"
	case KindText:
		return "text"
	case KindResize:
		return "resize"
	case KindQuit:
		return "quit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is a discrete input event.
type Event struct {
	Kind   Kind
	Button constants.VirtualButton // KindPress, KindRelease
	Text   string                  // KindText
	Width  int                     // KindResize: new display width
	Height int                     // KindResize: new display height
	Device string                  // Originating device, informational
}

// Press builds a KindPress event.
func Press(button constants.VirtualButton) Event {
	return Event{Kind: KindPress, Button: button}
}

// Release builds a KindRelease event.
func Release(button constants.VirtualButton) Event {
	return Event{Kind: KindRelease, Button: button}
}

// Text builds a KindText event.
func Text(text string) Event {
	return Event{Kind: KindText, Text: text}
}

// Resize builds a KindResize event for the new display size.
func Resize(width, height int) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

// Quit builds a KindQuit event.
func Quit() Event {
	return Event{Kind: KindQuit}
}

// IsPress reports whether e is a press of one of buttons.
func (e Event) IsPress(buttons ...constants.VirtualButton) bool {
	if e.Kind != KindPress {
		return false
	}
	for _, b := range buttons {
		if e.Button == b {
			return true
		}
	}
	return false
}
