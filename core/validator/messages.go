package validator

import (
	"sync"

	"github.com/dmitrymomot/brdoc/core/i18n"
)

// Namespace is the i18n namespace holding validation messages.
const Namespace = "validator"

// DefaultLanguage is the language of the default messages.
const DefaultLanguage = "pt-BR"

// Translation keys for the built-in rules.
const (
	KeyRequired = "validation.required"
	KeyLen      = "validation.len"
	KeyNumeric  = "validation.numeric"
	KeyCPF      = "validation.cpf"
	KeyCNPJ     = "validation.cnpj"
	KeyDocument = "validation.document"
)

// Messages returns the built-in catalogs keyed by language, ready to be
// passed to i18n.WithTranslations under Namespace. Placeholders: %{field},
// %{value}, %{kind} and %{length}.
func Messages() map[string]map[string]any {
	return map[string]map[string]any{
		"pt-BR": {
			"validation": map[string]any{
				"required": "O campo '%{field}' é obrigatório",
				"len":      "O campo '%{field}' deve ter exatamente %{length} caracteres",
				"numeric":  "O campo '%{field}' deve conter apenas dígitos",
				"cpf":      "O '%{value}' é um CPF inválido",
				"cnpj":     "O '%{value}' é um CNPJ inválido",
				"document": "O '%{value}' é um %{kind} inválido",
			},
		},
		"en": {
			"validation": map[string]any{
				"required": "The field '%{field}' is required",
				"len":      "The field '%{field}' must be exactly %{length} characters",
				"numeric":  "The field '%{field}' must contain only digits",
				"cpf":      "'%{value}' is not a valid CPF",
				"cnpj":     "'%{value}' is not a valid CNPJ",
				"document": "'%{value}' is not a valid %{kind}",
			},
		},
		"es": {
			"validation": map[string]any{
				"required": "El campo '%{field}' es obligatorio",
				"len":      "El campo '%{field}' debe tener exactamente %{length} caracteres",
				"numeric":  "El campo '%{field}' debe contener solo dígitos",
				"cpf":      "'%{value}' no es un CPF válido",
				"cnpj":     "'%{value}' no es un CNPJ válido",
				"document": "'%{value}' no es un %{kind} válido",
			},
		},
	}
}

// TranslationOptions returns i18n options loading the built-in catalogs, for
// callers assembling their own I18n instance.
func TranslationOptions() []i18n.Option {
	msgs := Messages()
	opts := make([]i18n.Option, 0, len(msgs))
	for lang, catalog := range msgs {
		opts = append(opts, i18n.WithTranslations(lang, Namespace, catalog))
	}
	return opts
}

var defaultCatalog = sync.OnceValue(func() *i18n.I18n {
	opts := append([]i18n.Option{i18n.WithDefaultLanguage(DefaultLanguage)}, TranslationOptions()...)
	c, err := i18n.New(opts...)
	if err != nil {
		panic("validator: default catalog: " + err.Error())
	}
	return c
})

// DefaultCatalog returns the shared I18n instance holding the built-in messages.
func DefaultCatalog() *i18n.I18n {
	return defaultCatalog()
}

// NewTranslator returns a translator over the built-in messages for the
// given language preference ("en", "pt", "es-MX,es;q=0.9", ...).
func NewTranslator(lang string) *i18n.Translator {
	return i18n.NewTranslator(DefaultCatalog(), lang, Namespace)
}

var defaultTranslator = sync.OnceValue(func() *i18n.Translator {
	return NewTranslator(DefaultLanguage)
})
