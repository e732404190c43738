package validator

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/brdoc/core/i18n"
)

// ErrValidation matches any ValidationErrors value with errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError describes one failed rule.
// TranslationKey and TranslationValues let callers render the message in
// another language; Message is the already rendered fallback.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Translate renders the error with tr. It falls back to Message when there
// is no translation key or tr does not know it.
func (e ValidationError) Translate(tr *i18n.Translator) string {
	if tr == nil || e.TranslationKey == "" || !tr.Has(e.TranslationKey) {
		return e.Message
	}
	return tr.T(e.TranslationKey, e.TranslationValues)
}

// ValidationErrors is a list of failures that satisfies the error interface.
type ValidationErrors []ValidationError

// Error joins all messages.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Is reports whether target is ErrValidation.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Add appends a failure.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// IsEmpty reports whether there are no failures.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether field has at least one failure.
func (e ValidationErrors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (e ValidationErrors) Get(field string) []string {
	var msgs []string
	for _, err := range e {
		if err.Field == field {
			msgs = append(msgs, err.Message)
		}
	}
	return msgs
}

// GetErrors returns the failures recorded for field.
func (e ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range e {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields returns the failing field names in first-seen order.
func (e ValidationErrors) Fields() []string {
	seen := make(map[string]struct{}, len(e))
	fields := make([]string, 0, len(e))
	for _, err := range e {
		if _, ok := seen[err.Field]; ok {
			continue
		}
		seen[err.Field] = struct{}{}
		fields = append(fields, err.Field)
	}
	return fields
}

// Translate renders every failure with tr, grouped by field.
func (e ValidationErrors) Translate(tr *i18n.Translator) map[string][]string {
	out := make(map[string][]string, len(e))
	for _, err := range e {
		out[err.Field] = append(out[err.Field], err.Translate(tr))
	}
	return out
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}

// IsValidationError reports whether err carries validation failures.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
