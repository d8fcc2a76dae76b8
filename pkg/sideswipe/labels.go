package sideswipe

import (
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/internal"
)

// Preset labels go through go-i18n so embedding applications can ship
// translations. Without any loaded translation the English defaults from the
// preset table apply, so the model layer works without Init.
var (
	labelsMu  sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	localizer = i18n.NewLocalizer(bundle, language.English.String())
}

// LoadTranslations loads a go-i18n message file (e.g. active.it.toml) into
// the label bundle.
func LoadTranslations(path string) error {
	labelsMu.Lock()
	defer labelsMu.Unlock()
	if _, err := bundle.LoadMessageFile(path); err != nil {
		return err
	}
	return nil
}

// SetLocales sets the preferred locales for preset labels, most preferred
// first. English remains the fallback.
func SetLocales(locales ...string) {
	labelsMu.Lock()
	defer labelsMu.Unlock()
	locales = append(locales, language.English.String())
	localizer = i18n.NewLocalizer(bundle, locales...)
}

func presetLabel(id, fallback string) string {
	labelsMu.RLock()
	l := localizer
	labelsMu.RUnlock()

	msg, err := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil {
		internal.GetInternalLogger().Debug("label localization failed", "id", id, "error", err)
		return fallback
	}
	return msg
}
