// Package handheld reads buttons straight from Linux input devices, for
// handheld consoles where the game pad is an evdev device rather than
// something SDL sees.
//
// A Device reads on its own goroutine and posts into an input.Queue, which the
// controller drains on the tick thread.
package handheld

import "errors"

// ErrUnsupported is returned by Open on platforms without evdev.
var ErrUnsupported = errors.New("handheld: evdev input is only available on linux")

// Key event values.
const (
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)
