package i18n

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"scaffolddemo/pkg/logging"
)

//go:embed locales/*.toml
var localeFS embed.FS

const localeDir = "locales"

var (
	mu      sync.RWMutex
	current *translator
)

type translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// Init loads the embedded message files and selects locale, falling back to English
// for any message the locale does not translate.
func Init(locale string) error {
	tag := language.English
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		tag = parsed
	}

	bundle, err := newBundle()
	if err != nil {
		return err
	}

	mu.Lock()
	current = &translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}
	mu.Unlock()
	return nil
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list message files: %w", err)
	}
	for _, entry := range entries {
		name := path.Join(localeDir, entry.Name())
		content, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read message file %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(content, entry.Name()); err != nil {
			return nil, fmt.Errorf("failed to parse message file %s: %w", name, err)
		}
	}
	return bundle, nil
}

// Languages returns the tags that have an embedded message file.
func Languages() []language.Tag {
	t := get()
	if t == nil {
		return nil
	}
	return t.bundle.LanguageTags()
}

// Current returns the active locale.
func Current() language.Tag {
	t := get()
	if t == nil {
		return language.English
	}
	return t.tag
}

func get() *translator {
	mu.RLock()
	t := current
	mu.RUnlock()
	if t != nil {
		return t
	}
	// Lazily default to English so packages can localize before the app bootstraps.
	if err := Init(""); err != nil {
		return nil
	}
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func localize(cfg *i18n.LocalizeConfig) string {
	t := get()
	if t == nil {
		return cfg.MessageID
	}
	// A message missing from the locale comes back in English along with a
	// MessageNotFoundErr, so only an empty result falls back to the id.
	msg, err := t.localizer.Localize(cfg)
	if msg == "" {
		if err != nil {
			logging.Debug("i18n", "No text for %s: %v", cfg.MessageID, err)
		}
		return cfg.MessageID
	}
	return msg
}

// T returns the localized text for id, or id itself when no file defines it.
func T(id string) string {
	return localize(&i18n.LocalizeConfig{MessageID: id})
}

// TData is T with template data.
func TData(id string, data map[string]interface{}) string {
	return localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// TPlural picks the plural form for count. Count is also available to the template.
func TPlural(id string, count int) string {
	return localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: map[string]interface{}{"Count": count},
	})
}
