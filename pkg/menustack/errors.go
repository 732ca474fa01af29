package menustack

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Controller.
var (
	// ErrNotStarted is returned by Tick and Run before Start pushed a first screen.
	ErrNotStarted = errors.New("menustack: controller not started")

	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("menustack: controller already started")

	// ErrReentrantTick is returned when Tick is called from inside a screen callback.
	// This is a programming error; with ControllerSettings.Debug it panics instead.
	ErrReentrantTick = errors.New("menustack: tick called during dispatch")

	// ErrNilFactory is the construction error for a Push or Replace without a factory.
	ErrNilFactory = errors.New("menustack: nil screen factory")
)

// ConstructionError reports that a screen factory failed. The pending
// Push/Replace was aborted and an error dialog shown instead.
type ConstructionError struct {
	Screen string // Name of the requesting screen, if known
	Err    error  // Error returned by the factory
}

func (e *ConstructionError) Error() string {
	if e.Screen != "" {
		return fmt.Sprintf("menustack: building screen requested by %s: %v", e.Screen, e.Err)
	}
	return fmt.Sprintf("menustack: building screen: %v", e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// IsConstructionError checks if an error is a screen construction failure.
func IsConstructionError(err error) bool {
	var ce *ConstructionError
	return errors.As(err, &ce)
}
