package i18n

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the preference string handed to the parser.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage returns the entry of available that best matches an
// Accept-Language style preference list. A single tag ("pt", "en-US") is a
// valid list. Regional variants match their base language and vice versa.
// Returns available[0] when nothing matches, and "" when available is empty.
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}

	header = strings.TrimSpace(header)
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	requested, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(requested) == 0 {
		return available[0]
	}

	supported := make([]language.Tag, len(available))
	for i, lang := range available {
		supported[i] = language.Make(lang)
	}

	_, idx, confidence := language.NewMatcher(supported).Match(requested...)
	if confidence == language.No || idx < 0 || idx >= len(available) {
		return available[0]
	}
	return available[idx]
}

// ReplacePlaceholders substitutes %{name} placeholders with values from the
// map. Unknown placeholders are left untouched.
//
// Example:
//
//	ReplacePlaceholders("O '%{value}' é um CPF inválido", M{"value": "123"})
//	// "O '123' é um CPF inválido"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "%{") {
		return template
	}

	keys := make([]string, 0, len(placeholders))
	for k := range placeholders {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "%{"+k+"}", fmt.Sprintf("%v", placeholders[k]))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
