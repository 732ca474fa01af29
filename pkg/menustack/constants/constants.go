// Package constants defines shared constants, types, and configuration values
// used throughout the menustack screen framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the framework.
const (
	EnvironmentEnvVar = "ENVIRONMENT"
	DebugEnvVar       = "MENUSTACK_DEBUG"
	LogLevelEnvVar    = "MENUSTACK_LOG_LEVEL"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// IsDebug returns true when MENUSTACK_DEBUG is set to any non-empty value.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// Input sources translate keyboard, controller and evdev codes into these.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

var buttonNames = [...]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonR1:         "R1",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
	VirtualButtonPower:      "Power",
}

// String implements fmt.Stringer so buttons log by name.
func (vb VirtualButton) String() string {
	if vb < 0 || int(vb) >= len(buttonNames) {
		return "Unknown"
	}
	return buttonNames[vb]
}

// Default timing constants.
const (
	DefaultTickInterval   = 16 * time.Millisecond  // ~60 ticks per second
	DefaultRepeatDelay    = 300 * time.Millisecond // Held direction delay before first repeat
	DefaultRepeatInterval = 80 * time.Millisecond  // Held direction repeat rate
	DefaultSlideDuration  = 4 * time.Second        // Slideshow time per slide
)

// Default display size used before the platform reports a real one.
const (
	DefaultDisplayWidth  = 640
	DefaultDisplayHeight = 400
)
