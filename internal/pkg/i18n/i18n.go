package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type Translations map[string]string

var (
	locales       = make(map[string]Translations)
	defaultLocale = "ro"
	mu            sync.RWMutex

	matcher     language.Matcher
	matcherTags []string
)

// LoadTranslations reads <localePath>/<locale>/messages.yaml for every
// locale directory found.
func LoadTranslations(localePath string) error {
	mu.Lock()
	defer mu.Unlock()

	entries, err := os.ReadDir(localePath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			locale := entry.Name()
			filePath := filepath.Join(localePath, locale, "messages.yaml")

			data, err := os.ReadFile(filePath)
			if err != nil {
				continue
			}

			trans, err := parse(data)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", filePath, err)
			}

			locales[locale] = trans
		}
	}

	rebuildMatcher()
	return nil
}

// Register installs translations for a locale directly, replacing any
// previously loaded ones.
func Register(locale string, data []byte) error {
	trans, err := parse(data)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	locales[locale] = trans
	rebuildMatcher()
	return nil
}

func parse(data []byte) (Translations, error) {
	var config struct {
		Messages Translations `yaml:"MESSAGES"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return config.Messages, nil
}

func SetDefaultLocale(locale string) {
	mu.Lock()
	defer mu.Unlock()
	defaultLocale = locale
	rebuildMatcher()
}

// rebuildMatcher must be called with mu held. The default locale is listed
// first so it wins ties.
func rebuildMatcher() {
	names := make([]string, 0, len(locales))
	for name := range locales {
		if name != defaultLocale {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := locales[defaultLocale]; ok {
		names = append([]string{defaultLocale}, names...)
	}

	tags := make([]language.Tag, 0, len(names))
	matcherTags = matcherTags[:0]
	for _, name := range names {
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		matcherTags = append(matcherTags, name)
	}

	matcher = nil
	if len(tags) > 0 {
		matcher = language.NewMatcher(tags)
	}
}

// Resolve picks the loaded locale that best fits an Accept-Language header,
// honouring q-weights. Unknown or malformed headers get the default locale.
func Resolve(acceptLanguage string) string {
	mu.RLock()
	defer mu.RUnlock()

	if matcher == nil {
		return defaultLocale
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return defaultLocale
	}

	_, index, confidence := matcher.Match(prefs...)
	if confidence == language.No {
		return defaultLocale
	}
	return matcherTags[index]
}

func Translate(locale, key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if trans, ok := locales[locale]; ok {
		if val, ok := trans[key]; ok {
			return val
		}
	}

	if locale != defaultLocale {
		if trans, ok := locales[defaultLocale]; ok {
			if val, ok := trans[key]; ok {
				return val
			}
		}
	}

	return key
}

// TranslateOr returns fallbackKey's message when key has no translation.
func TranslateOr(locale, key, fallbackKey string) string {
	if msg := Translate(locale, key); msg != key {
		return msg
	}
	return Translate(locale, fallbackKey)
}
