package screens

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/oxport/menustack/pkg/menustack"
	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/input"
	"github.com/oxport/menustack/pkg/menustack/internal"
	"github.com/oxport/menustack/pkg/menustack/locale"
	"github.com/oxport/menustack/pkg/menustack/options"
)

// ErrNoOptions is the construction error of an options screen without a store.
var ErrNoOptions = errors.New("screens: no options store")

// VolumeStep is how much one left/right press changes a volume.
const VolumeStep = 8

type optionKind int

const (
	optionLanguage optionKind = iota
	optionMusic
	optionSound
	optionFullscreen
	optionIntro
	optionAutosave
	optionMod
)

type optionRow struct {
	kind      optionKind
	messageID string
	label     string
	mod       int // index into Draft.Mods for optionMod rows
}

// OptionsScreen edits a draft copy of the options. A or Start saves the draft
// and closes; B closes without saving. A failed save keeps the screen open
// and shows an error dialog.
type OptionsScreen struct {
	menustack.Base
	Title string
	Draft options.Options

	env     *Env
	nav     menustack.Navigator
	rows    []optionRow
	cursor  *internal.Cursor
	closing bool
}

// NewOptionsScreen returns a factory for the options screen.
func NewOptionsScreen(env *Env) menustack.Factory {
	return func(nav menustack.Navigator) (menustack.Screen, error) {
		if env.Options == nil {
			return nil, ErrNoOptions
		}
		o := &OptionsScreen{
			env: env,
			nav: nav,
			rows: []optionRow{
				{kind: optionLanguage, messageID: locale.MsgOptionLanguage},
				{kind: optionMusic, messageID: locale.MsgOptionMusic},
				{kind: optionSound, messageID: locale.MsgOptionSound},
				{kind: optionFullscreen, messageID: locale.MsgOptionFullscreen},
				{kind: optionIntro, messageID: locale.MsgOptionIntro},
				{kind: optionAutosave, messageID: locale.MsgOptionAutosave},
			},
			Draft: env.Options.Get(),
		}
		// One toggle per mod, in load order.
		for i := range o.Draft.Mods {
			o.rows = append(o.rows, optionRow{kind: optionMod, messageID: locale.MsgOptionMod, mod: i})
		}
		o.cursor = internal.NewCursor(len(o.rows))
		o.cursor.SetClock(env.now())
		return o, nil
	}
}

func (o *OptionsScreen) Name() string { return "options" }

// Init relabels the rows. The draft survives an error dialog on top so the
// user can retry the save.
func (o *OptionsScreen) Init() {
	o.Title = o.env.T(locale.MsgOptionsTitle, nil)
	for i, row := range o.rows {
		var data map[string]any
		if row.kind == optionMod {
			data = map[string]any{"ID": o.Draft.Mods[row.mod].ID}
		}
		o.rows[i].label = o.env.T(row.messageID, data)
	}
	o.cursor.Reset()
}

func (o *OptionsScreen) Think() {
	o.cursor.Think()
}

func (o *OptionsScreen) Handle(ev input.Event) {
	if o.closing {
		return
	}

	switch ev.Kind {
	case input.KindRelease:
		o.cursor.Release(ev.Button)
	case input.KindPress:
		switch ev.Button {
		case constants.VirtualButtonUp, constants.VirtualButtonDown:
			o.cursor.Press(ev.Button)
		case constants.VirtualButtonLeft:
			o.adjust(-1)
		case constants.VirtualButtonRight:
			o.adjust(1)
		case constants.VirtualButtonA, constants.VirtualButtonStart:
			o.commit()
		case constants.VirtualButtonB:
			o.closing = true
			o.nav.Pop()
		}
	}
}

// Focused returns the index of the focused row.
func (o *OptionsScreen) Focused() int {
	return o.cursor.Index
}

func (o *OptionsScreen) View() []string {
	lines := []string{o.Title}
	for i, row := range o.rows {
		prefix := "  "
		if i == o.cursor.Index {
			prefix = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%s: %s", prefix, row.label, o.value(row)))
	}
	return lines
}

func (o *OptionsScreen) value(row optionRow) string {
	switch row.kind {
	case optionLanguage:
		tag, err := language.Parse(o.Draft.Language)
		if err != nil {
			return o.Draft.Language
		}
		return locale.DisplayName(tag)
	case optionMusic:
		return fmt.Sprintf("%d", o.Draft.Audio.Music)
	case optionSound:
		return fmt.Sprintf("%d", o.Draft.Audio.Sound)
	case optionFullscreen:
		return o.onOff(o.Draft.Display.Fullscreen)
	case optionIntro:
		return o.onOff(o.Draft.Game.ShowIntro)
	case optionAutosave:
		return o.onOff(o.Draft.Game.Autosave)
	case optionMod:
		return o.onOff(o.Draft.Mods[row.mod].Active)
	}
	return ""
}

func (o *OptionsScreen) onOff(b bool) string {
	if b {
		return o.env.T(locale.MsgOn, nil)
	}
	return o.env.T(locale.MsgOff, nil)
}

func (o *OptionsScreen) adjust(delta int) {
	row := o.rows[o.cursor.Index]
	switch row.kind {
	case optionLanguage:
		o.Draft.Language = o.cycleLanguage(delta)
	case optionMusic:
		o.Draft.Audio.Music = clampVolume(o.Draft.Audio.Music + delta*VolumeStep)
	case optionSound:
		o.Draft.Audio.Sound = clampVolume(o.Draft.Audio.Sound + delta*VolumeStep)
	case optionFullscreen:
		o.Draft.Display.Fullscreen = !o.Draft.Display.Fullscreen
	case optionIntro:
		o.Draft.Game.ShowIntro = !o.Draft.Game.ShowIntro
	case optionAutosave:
		o.Draft.Game.Autosave = !o.Draft.Game.Autosave
	case optionMod:
		o.Draft.Mods[row.mod].Active = !o.Draft.Mods[row.mod].Active
	}
}

func (o *OptionsScreen) cycleLanguage(delta int) string {
	if o.env.Locale == nil {
		return o.Draft.Language
	}
	tags := o.env.Locale.Languages()
	if len(tags) == 0 {
		return o.Draft.Language
	}

	current := 0
	for i, tag := range tags {
		if tag.String() == o.Draft.Language {
			current = i
			break
		}
	}
	next := (current + delta + len(tags)) % len(tags)
	return tags[next].String()
}

func (o *OptionsScreen) commit() {
	if err := o.env.Options.Commit(o.Draft); err != nil {
		o.env.logger().Error("saving options failed", "error", err)
		o.cursor.Reset()
		o.nav.ShowError(o.env.T(locale.MsgSaveFailed, map[string]any{"Reason": err.Error()}))
		return
	}
	if o.env.Locale != nil {
		o.env.Locale.SetLanguage(o.Draft.Language)
	}
	o.closing = true
	o.nav.Pop()
}

func clampVolume(v int) int {
	return max(0, min(options.MaxVolume, v))
}
