package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/oxport/menustack/pkg/menustack"
	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/input"
	"github.com/oxport/menustack/pkg/menustack/screens"
)

//go:embed intro/*.svg
var introFS embed.FS

// Save is the demo's saved game.
type Save struct {
	Base string `toml:"base"`
	Turn int    `toml:"turn"`
}

// loadGame reads the save file on a job goroutine. The pause stands in for
// loading the rest of the game's data.
func loadGame(path string) func(ctx context.Context) (menustack.Factory, error) {
	return func(ctx context.Context) (menustack.Factory, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(750 * time.Millisecond):
		}

		var save Save
		if _, err := toml.DecodeFile(path, &save); err != nil {
			return nil, err
		}
		if save.Base == "" {
			return nil, fmt.Errorf("%s: no base in save", path)
		}
		return newGame(save), nil
	}
}

func newGame(save Save) menustack.Factory {
	return func(nav menustack.Navigator) (menustack.Screen, error) {
		return &gameScreen{save: save, nav: nav}, nil
	}
}

// gameScreen stands in for the game. B leaves it, returning to the main menu.
type gameScreen struct {
	menustack.Base
	save Save
	nav  menustack.Navigator
}

func (g *gameScreen) Name() string { return "game" }

func (g *gameScreen) Handle(ev input.Event) {
	if ev.IsPress(constants.VirtualButtonB) {
		g.nav.Pop()
	}
}

func (g *gameScreen) View() []string {
	return []string{
		fmt.Sprintf("Base %s, turn %d", g.save.Base, g.save.Turn),
		"B: back to menu",
	}
}

func introSlides() ([]screens.Slide, error) {
	files, err := fs.Glob(introFS, "intro/*.svg")
	if err != nil {
		return nil, err
	}

	slides := make([]screens.Slide, 0, len(files))
	for _, f := range files {
		data, err := introFS.ReadFile(f)
		if err != nil {
			return nil, err
		}
		slides = append(slides, screens.Slide{SVG: string(data)})
	}
	return slides, nil
}
