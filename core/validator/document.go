package validator

import (
	"context"
	"strings"

	"github.com/dmitrymomot/brdoc/core/i18n"
	"github.com/dmitrymomot/brdoc/pkg/async"
	"github.com/dmitrymomot/brdoc/pkg/document"
)

// DocumentValidator checks values against one document kind and renders the
// failure message. It is immutable and safe for concurrent use.
type DocumentValidator struct {
	spec       *document.Spec
	key        string
	message    string
	translator *i18n.Translator
}

// DocumentOption configures a DocumentValidator.
type DocumentOption func(*DocumentValidator)

// WithMessage replaces the default failure message. The template is returned
// verbatim after substituting %{field}, %{value} and %{kind}.
// An empty template keeps the default.
func WithMessage(template string) DocumentOption {
	return func(v *DocumentValidator) {
		v.message = template
	}
}

// WithTranslator renders default messages with tr instead of the built-in
// pt-BR catalog.
func WithTranslator(tr *i18n.Translator) DocumentOption {
	return func(v *DocumentValidator) {
		if tr != nil {
			v.translator = tr
		}
	}
}

// NewDocumentValidator creates a validator for spec. The translation key is
// "validation.<lowercase kind>"; kinds without a catalog entry fall back to
// the generic "validation.document" message.
func NewDocumentValidator(spec *document.Spec, opts ...DocumentOption) *DocumentValidator {
	if spec == nil {
		panic("validator: document spec is nil")
	}
	v := &DocumentValidator{
		spec: spec,
		key:  "validation." + strings.ToLower(spec.Name()),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.translator == nil {
		v.translator = defaultTranslator()
	}
	return v
}

// CPF returns a validator for individual taxpayer numbers.
func CPF(opts ...DocumentOption) *DocumentValidator {
	return NewDocumentValidator(document.CPF, opts...)
}

// CNPJ returns a validator for legal entity numbers.
func CNPJ(opts ...DocumentOption) *DocumentValidator {
	return NewDocumentValidator(document.CNPJ, opts...)
}

// Spec returns the document kind.
func (v *DocumentValidator) Spec() *document.Spec {
	return v.spec
}

// Validate reports whether value is a valid document.
func (v *DocumentValidator) Validate(value string) bool {
	return v.spec.Validate(value)
}

// ValidateAsync runs Validate on its own goroutine for callers that expect a
// non-blocking contract. The work is bounded and never observes ctx after it
// starts.
func (v *DocumentValidator) ValidateAsync(ctx context.Context, value string) *async.Future[bool] {
	return async.Async(ctx, value, func(_ context.Context, s string) (bool, error) {
		return v.Validate(s), nil
	})
}

// Message renders the failure message for field and value.
func (v *DocumentValidator) Message(field, value string) string {
	values := v.placeholders(field, value)
	if v.message != "" {
		return i18n.ReplacePlaceholders(v.message, values)
	}
	if v.translator.Has(v.key) {
		return v.translator.T(v.key, values)
	}
	return v.translator.T(KeyDocument, values)
}

// Rule returns a Rule checking value, for use with Apply.
func (v *DocumentValidator) Rule(field, value string) Rule {
	key := v.key
	if v.message != "" {
		// A custom message has no catalog entry; Translate keeps Message.
		key = ""
	}
	return Rule{
		Check: func() bool {
			return v.Validate(value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           v.Message(field, value),
			TranslationKey:    key,
			TranslationValues: v.placeholders(field, value),
		},
	}
}

func (v *DocumentValidator) placeholders(field, value string) map[string]any {
	return map[string]any{
		"field": field,
		"value": value,
		"kind":  v.spec.Name(),
	}
}

// ValidCPF checks value as a CPF. An optional non-empty message replaces the
// default one.
func ValidCPF(field, value string, message ...string) Rule {
	return CPF(messageOption(message)...).Rule(field, value)
}

// ValidCNPJ checks value as a CNPJ. An optional non-empty message replaces the
// default one.
func ValidCNPJ(field, value string, message ...string) Rule {
	return CNPJ(messageOption(message)...).Rule(field, value)
}

func messageOption(message []string) []DocumentOption {
	if len(message) == 0 || message[0] == "" {
		return nil
	}
	return []DocumentOption{WithMessage(message[0])}
}
