// Package locale translates the strings shown by the menu screens.
//
// Message catalogues are embedded TOML files (messages/active.<lang>.toml).
// English is the fallback for any message a catalogue lacks.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Message IDs.
const (
	MsgErrorTitle       = "ErrorTitle"
	MsgOK               = "Ok"
	MsgYes              = "Yes"
	MsgNo               = "No"
	MsgLoading          = "Loading"
	MsgLoadFailed       = "LoadFailed"
	MsgSaveFailed       = "SaveFailed"
	MsgMainNewGame      = "MainNewGame"
	MsgMainLoadGame     = "MainLoadGame"
	MsgMainOptions      = "MainOptions"
	MsgMainQuit         = "MainQuit"
	MsgConfirmQuit      = "ConfirmQuit"
	MsgCountdown        = "Countdown"
	MsgOptionsTitle     = "OptionsTitle"
	MsgOptionLanguage   = "OptionLanguage"
	MsgOptionMusic      = "OptionMusic"
	MsgOptionSound      = "OptionSound"
	MsgOptionFullscreen = "OptionFullscreen"
	MsgOptionIntro      = "OptionIntro"
	MsgOptionAutosave   = "OptionAutosave"
	MsgOptionMod        = "OptionMod"
	MsgOn               = "On"
	MsgOff              = "Off"
)

// Translator localizes message IDs for the current language.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	fallback  *i18n.Localizer // English
	tag       language.Tag
}

// New loads the embedded catalogues and selects lang (a BCP 47 tag such as "de").
// An unknown or malformed tag selects English.
func New(lang string) (*Translator, error) {
	return load(messageFS, lang)
}

func load(fsys fs.FS, lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(fsys, "messages/*.toml")
	if err != nil {
		return nil, fmt.Errorf("locale: listing catalogues: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, f); err != nil {
			return nil, fmt.Errorf("locale: loading %s: %w", path.Base(f), err)
		}
	}

	t := &Translator{
		bundle:   bundle,
		fallback: i18n.NewLocalizer(bundle, language.English.String()),
	}
	t.SetLanguage(lang)
	return t, nil
}

// SetLanguage switches the active language. Unsupported languages resolve to
// the closest catalogue, or English.
func (t *Translator) SetLanguage(lang string) {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	matcher := language.NewMatcher(t.bundle.LanguageTags())
	_, idx, _ := matcher.Match(tag)
	t.tag = t.bundle.LanguageTags()[idx]
	t.localizer = i18n.NewLocalizer(t.bundle, t.tag.String())
}

// Language returns the active catalogue's tag.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// Languages returns the tags of all loaded catalogues.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// T localizes id with optional template data. A missing message yields the ID itself
// so a broken catalogue never blanks out a button.
func (t *Translator) T(id string, data map[string]any) string {
	return t.localize(id, &i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
}

// Plural localizes a message with plural forms selected by count. count is also
// passed to the template as both .Count and the given key.
func (t *Translator) Plural(id string, key string, count int) string {
	return t.localize(id, &i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: map[string]any{key: count, "Count": count},
	})
}

func (t *Translator) localize(id string, cfg *i18n.LocalizeConfig) string {
	msg, err := t.localizer.Localize(cfg)
	var notFound *i18n.MessageNotFoundErr
	if errors.As(err, &notFound) {
		msg, err = t.fallback.Localize(cfg)
	}
	if err != nil {
		return id
	}
	return msg
}

// DisplayName returns the language's name in that language, e.g. "Deutsch".
func DisplayName(tag language.Tag) string {
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}
