// Package i18n provides immutable message catalogs with %{name} placeholder
// substitution and language fallback.
//
// Catalogs are loaded at construction time, so an *I18n is safe for
// concurrent use once New returns. Language matching (regional variants,
// Accept-Language preference lists) is delegated to golang.org/x/text/language.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/brdoc/core/i18n"
//
//	catalog, err := i18n.New(
//		i18n.WithDefaultLanguage("pt-BR"),
//		i18n.WithTranslations("pt-BR", "validator", map[string]any{
//			"validation": map[string]any{
//				"cpf": "O '%{value}' é um CPF inválido",
//			},
//		}),
//		i18n.WithTranslations("en", "validator", map[string]any{
//			"validation": map[string]any{
//				"cpf": "'%{value}' is not a valid CPF",
//			},
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	catalog.T("en", "validator", "validation.cpf", i18n.M{"value": "123"})
//	// "'123' is not a valid CPF"
//
// # Fallback
//
// T looks a key up in the requested language, then in the closest supported
// language ("pt" resolves to "pt-BR", "en-US" to "en"), then in the default
// language. If none has it, the key itself is returned and the optional
// missing-key handler is called.
//
// # Translators
//
// A Translator fixes language and namespace:
//
//	tr := i18n.NewTranslator(catalog, "en-US,en;q=0.9", "validator")
//	tr.Language() // "en"
//	tr.T("validation.cpf", i18n.M{"value": "123"})
package i18n
