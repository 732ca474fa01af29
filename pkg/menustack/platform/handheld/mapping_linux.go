//go:build linux

package handheld

import (
	"github.com/holoplot/go-evdev"

	"github.com/oxport/menustack/pkg/menustack/constants"
)

// DefaultMapping is the button layout of common Linux handhelds.
// Face buttons follow the Nintendo layout: east confirms, south cancels.
var DefaultMapping = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_UP:         constants.VirtualButtonUp,
	evdev.KEY_DOWN:       constants.VirtualButtonDown,
	evdev.KEY_LEFT:       constants.VirtualButtonLeft,
	evdev.KEY_RIGHT:      constants.VirtualButtonRight,
	evdev.BTN_DPAD_UP:    constants.VirtualButtonUp,
	evdev.BTN_DPAD_DOWN:  constants.VirtualButtonDown,
	evdev.BTN_DPAD_LEFT:  constants.VirtualButtonLeft,
	evdev.BTN_DPAD_RIGHT: constants.VirtualButtonRight,
	evdev.KEY_ENTER:      constants.VirtualButtonA,
	evdev.KEY_ESC:        constants.VirtualButtonB,
	evdev.BTN_EAST:       constants.VirtualButtonA,
	evdev.BTN_SOUTH:      constants.VirtualButtonB,
	evdev.BTN_NORTH:      constants.VirtualButtonX,
	evdev.BTN_WEST:       constants.VirtualButtonY,
	evdev.BTN_TL:         constants.VirtualButtonL1,
	evdev.BTN_TR:         constants.VirtualButtonR1,
	evdev.BTN_SELECT:     constants.VirtualButtonSelect,
	evdev.BTN_START:      constants.VirtualButtonStart,
	evdev.BTN_MODE:       constants.VirtualButtonMenu,
	evdev.KEY_POWER:      constants.VirtualButtonPower,
}

// Translate maps one key event to a virtual button. Autorepeat and unmapped
// codes report ok = false; the menu repeats held directions itself.
func Translate(mapping map[evdev.EvCode]constants.VirtualButton, ev *evdev.InputEvent) (button constants.VirtualButton, pressed bool, ok bool) {
	if ev.Type != evdev.EV_KEY || ev.Value == valueRepeat {
		return constants.VirtualButtonUnassigned, false, false
	}
	button, ok = mapping[ev.Code]
	if !ok {
		return constants.VirtualButtonUnassigned, false, false
	}
	return button, ev.Value == valuePress, true
}
