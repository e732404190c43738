package i18n

import (
	"fmt"
	"maps"
	"slices"
)

// DefaultLang is the fallback language when none is configured.
const DefaultLang = "pt-BR"

// I18n holds message catalogs keyed by language and namespace.
// It is immutable after New returns and safe for concurrent use.
type I18n struct {
	// Key format: "lang:namespace:key.path"
	translations map[string]string

	defaultLang string

	// Default language first, the rest sorted.
	languages []string

	missingKeyHandler func(lang, namespace, key string)
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates an I18n instance from the given options.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, fmt.Errorf("default language cannot be empty")
	}

	i.languages = i.buildLanguages()

	return i, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages declares supported languages in addition to the ones that
// have translations loaded.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		for _, lang := range langs {
			if lang != "" {
				i.languages = append(i.languages, lang)
			}
		}
		return nil
	}
}

// WithMissingKeyHandler registers a callback for keys missing in both the
// requested and the default language.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithTranslations loads a catalog for one language and namespace.
// Nested maps are flattened into dot-separated keys.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		if namespace == "" {
			return fmt.Errorf("namespace cannot be empty")
		}

		for key, value := range flatten(translations, "") {
			i.translations[buildKey(lang, namespace, key)] = value
		}
		i.languages = append(i.languages, lang)

		return nil
	}
}

// T returns the message for key with placeholders substituted.
// Lookup order: the requested language, the closest supported language,
// then the default language. The key itself is returned when nothing matches.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	for _, candidate := range i.lookupOrder(lang) {
		if msg, ok := i.translations[buildKey(candidate, namespace, key)]; ok {
			return ReplacePlaceholders(msg, merge(placeholders...))
		}
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
	return key
}

// Has reports whether key resolves in lang or one of its fallbacks.
func (i *I18n) Has(lang, namespace, key string) bool {
	for _, candidate := range i.lookupOrder(lang) {
		if _, ok := i.translations[buildKey(candidate, namespace, key)]; ok {
			return true
		}
	}
	return false
}

// Match returns the supported language that best fits an Accept-Language
// style preference list such as "pt-BR,pt;q=0.9,en;q=0.5".
func (i *I18n) Match(preference string) string {
	return ParseAcceptLanguage(preference, i.languages)
}

// Languages returns the supported languages, default first.
func (i *I18n) Languages() []string {
	return slices.Clone(i.languages)
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

func (i *I18n) lookupOrder(lang string) []string {
	order := make([]string, 0, 3)
	if lang != "" {
		order = append(order, lang)
		if matched := i.Match(lang); matched != lang {
			order = append(order, matched)
		}
	}
	if !slices.Contains(order, i.defaultLang) {
		order = append(order, i.defaultLang)
	}
	return order
}

func (i *I18n) buildLanguages() []string {
	others := make([]string, 0, len(i.languages))
	for _, lang := range i.languages {
		if lang != i.defaultLang && !slices.Contains(others, lang) {
			others = append(others, lang)
		}
	}
	slices.Sort(others)
	return append([]string{i.defaultLang}, others...)
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flatten(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string, len(data))
	for key, value := range data {
		if prefix != "" {
			key = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			result[key] = v
		case map[string]any:
			maps.Copy(result, flatten(v, key))
		case map[string]string:
			for sub, s := range v {
				result[key+"."+sub] = s
			}
		default:
			result[key] = fmt.Sprintf("%v", v)
		}
	}
	return result
}

func merge(placeholders ...M) M {
	switch len(placeholders) {
	case 0:
		return nil
	case 1:
		return placeholders[0]
	}
	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return merged
}
