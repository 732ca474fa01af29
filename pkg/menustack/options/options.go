// Package options holds the player-facing settings shared by the menu screens.
//
// The Store is loaded once at process start and written back when the options
// screen commits. It is owned by the tick thread: screens read a copy with Get
// and hand a modified copy to Commit.
package options

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/oxport/menustack/pkg/menustack/internal"
)

// MaxVolume is the top of the music and sound volume range.
const MaxVolume = 128

// Options is the persisted settings document.
type Options struct {
	Language string  `toml:"language"`
	Display  Display `toml:"display"`
	Audio    Audio   `toml:"audio"`
	Game     Game    `toml:"game"`
	Mods     []Mod   `toml:"mods"`
}

type Display struct {
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Fullscreen bool `toml:"fullscreen"`
	FPS        int  `toml:"fps"`
}

type Audio struct {
	Music int `toml:"music"`
	Sound int `toml:"sound"`
}

type Game struct {
	ShowIntro bool `toml:"show_intro"`
	Autosave  bool `toml:"autosave"`
}

// Mod is one entry of the mod load order.
type Mod struct {
	ID     string `toml:"id"`
	Active bool   `toml:"active"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Options {
	return Options{
		Language: "en",
		Display: Display{
			Width:  640,
			Height: 400,
			FPS:    60,
		},
		Audio: Audio{
			Music: MaxVolume / 2,
			Sound: MaxVolume / 2,
		},
		Game: Game{
			ShowIntro: true,
			Autosave:  true,
		},
		Mods: []Mod{{ID: "xcom1", Active: true}},
	}
}

// Clone returns a deep copy.
func (o Options) Clone() Options {
	o.Mods = slices.Clone(o.Mods)
	return o
}

// ValidationError lists every invalid field of an Options value.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "options: invalid settings: " + strings.Join(e.Problems, "; ")
}

// Validate reports all out-of-range fields.
func (o Options) Validate() error {
	var problems []string

	if o.Language == "" {
		problems = append(problems, "language is empty")
	}
	if o.Display.Width < 320 || o.Display.Height < 200 {
		problems = append(problems, fmt.Sprintf("display %dx%d is smaller than 320x200", o.Display.Width, o.Display.Height))
	}
	if o.Display.FPS < 1 || o.Display.FPS > 240 {
		problems = append(problems, fmt.Sprintf("fps %d out of range 1-240", o.Display.FPS))
	}
	if o.Audio.Music < 0 || o.Audio.Music > MaxVolume {
		problems = append(problems, fmt.Sprintf("music volume %d out of range 0-%d", o.Audio.Music, MaxVolume))
	}
	if o.Audio.Sound < 0 || o.Audio.Sound > MaxVolume {
		problems = append(problems, fmt.Sprintf("sound volume %d out of range 0-%d", o.Audio.Sound, MaxVolume))
	}

	seen := map[string]bool{}
	for _, m := range o.Mods {
		if m.ID == "" {
			problems = append(problems, "mod with empty id")
			continue
		}
		if seen[m.ID] {
			problems = append(problems, fmt.Sprintf("mod %q listed twice", m.ID))
		}
		seen[m.ID] = true
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Store is the loaded settings plus the file they persist to.
type Store struct {
	path    string
	current Options
	logger  *slog.Logger
}

// Load reads path. A missing file yields the defaults; an unreadable or
// invalid file is an error. Keys this version does not know are logged and ignored.
func Load(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	s := &Store{path: path, current: Defaults(), logger: logger}

	// Start from defaults so keys absent from the file keep their default value.
	opts := Defaults()
	opts.Mods = nil
	md, err := toml.DecodeFile(path, &opts)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("no options file, using defaults", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("options: reading %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		logger.Warn("unknown options key ignored", "path", path, "key", key.String())
	}

	if !md.IsDefined("mods") {
		opts.Mods = Defaults().Mods
	}

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("options: %s: %w", path, err)
	}

	s.current = opts
	return s, nil
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Get returns a copy of the current settings.
func (s *Store) Get() Options {
	return s.current.Clone()
}

// Commit validates opts, writes them to disk and makes them current.
// On error the current settings and the file are left unchanged.
func (s *Store) Commit(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(opts); err != nil {
		return fmt.Errorf("options: encoding: %w", err)
	}

	if err := writeFileAtomic(s.path, buf.Bytes()); err != nil {
		return fmt.Errorf("options: writing %s: %w", s.path, err)
	}

	s.current = opts.Clone()
	s.logger.Info("options saved", "path", s.path)
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
