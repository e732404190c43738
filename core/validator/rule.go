package validator

import "strings"

// Rule pairs a deferred check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and collects the failures.
// Returns nil when all rules pass, ValidationErrors otherwise.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if rule.Check != nil && !rule.Check() {
			errs.Add(rule.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Required fails for empty or whitespace-only strings.
// Document rules treat empty input as invalid too; use Required when the
// caller needs a distinct "missing" message.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
