// Package i18n resolves display strings for admin templates from embedded
// locale dictionaries. English is the fallback locale.
package i18n

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLang is used when a request carries no usable language.
const DefaultLang = "en"

var (
	loadOnce sync.Once
	tables   map[string]map[string]string
	loadErr  error
)

func load() {
	tables = make(map[string]map[string]string)
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		loadErr = fmt.Errorf("i18n: read locales: %w", err)
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") {
			continue
		}
		lang := strings.TrimSuffix(name, ".yaml")
		raw, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			loadErr = fmt.Errorf("i18n: read %s: %w", name, err)
			return
		}
		dict := make(map[string]string)
		if err := yaml.Unmarshal(raw, &dict); err != nil {
			loadErr = fmt.Errorf("i18n: parse %s: %w", name, err)
			return
		}
		tables[lang] = dict
	}
}

// T resolves key for the given language, falling back to English and finally
// to the key itself so missing entries stay visible rather than failing.
func T(lang, key string) string {
	loadOnce.Do(load)
	if loadErr != nil {
		return key
	}
	lang = Normalize(lang)
	if dict, ok := tables[lang]; ok {
		if value, ok := dict[key]; ok && value != "" {
			return value
		}
	}
	if lang != DefaultLang {
		if value, ok := tables[DefaultLang][key]; ok && value != "" {
			return value
		}
	}
	return key
}

// Normalize reduces a language tag to a supported locale identifier.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	switch lang {
	case "ja":
		return "ja"
	default:
		return DefaultLang
	}
}
