// Package screens contains the menu screens built on the menustack controller:
// main menu, options, confirmation and error dialogs, a background loading
// screen and an intro slideshow.
//
// Layout and drawing belong to the platform renderer. Screens expose what to
// draw through View (text lines) and, for the slideshow, Frame.
package screens

import (
	"context"
	"log/slog"
	"time"

	"github.com/oxport/menustack/pkg/menustack"
	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/internal"
	"github.com/oxport/menustack/pkg/menustack/jobs"
	"github.com/oxport/menustack/pkg/menustack/locale"
	"github.com/oxport/menustack/pkg/menustack/options"
)

// Env is the shared context injected into every screen at construction.
// Screens read it; only the options screen writes, through Options.Commit.
type Env struct {
	Locale  *locale.Translator
	Options *options.Store
	Jobs    *jobs.Runner

	// LoadGame runs on a job goroutine and returns the screen to show once loaded.
	// Nil disables the Load Game entry.
	LoadGame func(ctx context.Context) (menustack.Factory, error)

	// NewGame is shown after the intro. Nil returns to the main menu.
	NewGame menustack.Factory

	Intro []Slide

	// Size reports the live display size, normally Controller.Size. Without it
	// the configured window size from Options is used.
	Size func() (int, int)

	Clock  func() time.Time
	Logger *slog.Logger
}

// T localizes id, or returns it unchanged without a translator.
func (e *Env) T(id string, data map[string]any) string {
	if e.Locale == nil {
		return id
	}
	return e.Locale.T(id, data)
}

func (e *Env) now() func() time.Time {
	if e.Clock != nil {
		return e.Clock
	}
	return time.Now
}

func (e *Env) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return internal.GetLogger()
}

func (e *Env) displaySize() (int, int) {
	if e.Size != nil {
		if w, h := e.Size(); w > 0 && h > 0 {
			return w, h
		}
	}
	if e.Options == nil {
		return constants.DefaultDisplayWidth, constants.DefaultDisplayHeight
	}
	d := e.Options.Get().Display
	return d.Width, d.Height
}

// ErrorFactory plugs ErrorDialog into the controller's error path.
func ErrorFactory(env *Env) menustack.ErrorFactory {
	return func(message string) menustack.Factory {
		return NewErrorDialog(env, message)
	}
}
