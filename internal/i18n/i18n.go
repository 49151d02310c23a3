// Package i18n renders catalog translation keys and negotiates the request
// locale.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
)

const DefaultLocale = "en"

// Locales are the supported site locales in routing order.
var Locales = []string{"en", "es", "de", "fr", "nl", "pl"}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
	language.German,
	language.French,
	language.Dutch,
	language.Polish,
})

//go:embed messages/*.json
var bundled embed.FS

type Translator interface {
	T(locale, key string) string
}

// MapTranslator looks a key up in the requested locale, then the fallback
// locale, and finally returns the key itself.
type MapTranslator struct {
	fallback string
	messages map[string]map[string]string
}

func NewMapTranslator(fallback string, messages map[string]map[string]string) *MapTranslator {
	if fallback == "" {
		fallback = DefaultLocale
	}
	if messages == nil {
		messages = map[string]map[string]string{}
	}
	return &MapTranslator{fallback: fallback, messages: messages}
}

// Bundled loads the message files compiled into the binary.
func Bundled(fallback string) (*MapTranslator, error) {
	return Load(bundled, "messages", fallback)
}

// Load reads <locale>.json files holding flat key/message objects from dir.
func Load(fsys fs.FS, dir, fallback string) (*MapTranslator, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read messages dir: %w", err)
	}

	messages := make(map[string]map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}

		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		messages[strings.TrimSuffix(e.Name(), ".json")] = m
	}

	return NewMapTranslator(fallback, messages), nil
}

func (t *MapTranslator) T(locale, key string) string {
	if msg, ok := t.messages[locale][key]; ok && msg != "" {
		return msg
	}
	if msg, ok := t.messages[t.fallback][key]; ok && msg != "" {
		return msg
	}
	return key
}

// Func binds a locale so callers can pass a plain key renderer around.
func Func(t Translator, locale string) func(key string) string {
	return func(key string) string { return t.T(locale, key) }
}

// Negotiate picks a supported locale. An explicit locale wins over the
// Accept-Language header; anything unsupported falls back to DefaultLocale.
func Negotiate(explicit, acceptLanguage string) string {
	var tags []language.Tag
	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			tags = append(tags, tag)
		}
	}
	if acceptLanguage != "" {
		if parsed, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			tags = append(tags, parsed...)
		}
	}
	if len(tags) == 0 {
		return DefaultLocale
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return Locales[idx]
}

func Supported(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}
