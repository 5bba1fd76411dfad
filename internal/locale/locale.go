// Package locale holds the UI strings. English is always loaded; other
// languages only need to carry the messages they translate.
package locale

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/zhubert/songbook/internal/logger"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message ids.
const (
	WelcomeHeading    = "welcome_heading"
	WelcomeSubheading = "welcome_subheading"
	WelcomeOpen       = "welcome_open"
	WelcomeFooter     = "welcome_footer"
	PaneSongs         = "pane_songs"
	PaneLyrics        = "pane_lyrics"
	SongNumber        = "song_number"
	VariantPrimary    = "variant_primary"
	VariantAlternate  = "variant_alternate"
	LyricsMissing     = "lyrics_missing"
	AlternateMissing  = "alternate_missing"
	FilterPlaceholder = "filter_placeholder"
	NoMatches         = "no_matches"
	ExitTitle         = "exit_title"
	ExitConfirm       = "exit_confirm"
	ExitCancel        = "exit_cancel"
	FlashCopied       = "flash_copied"
	FlashExported     = "flash_exported"
)

// Translator resolves message ids for one language.
type Translator struct {
	localizer *i18n.Localizer
	lang      string
}

var (
	bundle     *i18n.Bundle
	bundleErr  error
	bundleOnce sync.Once
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		files, err := fs.Glob(localeFS, "locales/*.toml")
		if err != nil {
			bundleErr = err
			return
		}
		for _, f := range files {
			if _, err := b.LoadMessageFileFS(localeFS, f); err != nil {
				bundleErr = err
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// New returns a translator for lang, falling back to English for missing
// messages or unknown languages.
func New(lang string) *Translator {
	b, err := loadBundle()
	if err != nil {
		logger.WithComponent("locale").Error("failed to load locale bundle", "error", err)
		return &Translator{lang: lang}
	}
	return &Translator{localizer: i18n.NewLocalizer(b, lang, "en"), lang: lang}
}

// Lang returns the requested language tag.
func (t *Translator) Lang() string {
	return t.lang
}

// T localizes id. data fills template fields such as {{.ID}}. A missing
// message comes back as its id so gaps are visible rather than blank.
func (t *Translator) T(id string, data ...map[string]any) string {
	if t == nil || t.localizer == nil {
		return id
	}
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	s, err := t.localizer.Localize(cfg)
	if err != nil {
		return id
	}
	return s
}
