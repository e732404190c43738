package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dmitrymomot/brdoc/pkg/document"
)

// ValidatorFunc builds a Rule for a struct field. value is the field's
// dereferenced value; a nil pointer arrives as the zero reflect.Value.
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"len":      lenValidator,
		"numeric":  numericValidator,
		"cpf":      cpfValidator,
		"cnpj":     cnpjValidator,
		"document": documentValidator,
	}
)

// RegisterValidator adds or replaces a tag validator.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates the exported fields of the struct v points to,
// using `validate:"rule;rule:param"` tags. Nested structs without a tag are
// walked and their fields reported as "Parent.Child".
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	var errs ValidationErrors
	validateStructRecursive(rv, "", &errs)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStructRecursive(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		path := sf.Name
		if prefix != "" {
			path = prefix + "." + sf.Name
		}

		field := rv.Field(i)
		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				if tag != "" {
					validateField(path, reflect.Value{}, tag, errs)
				}
				continue
			}
			field = field.Elem()
		}

		if tag == "" {
			if field.Kind() == reflect.Struct {
				validateStructRecursive(field, path, errs)
			}
			continue
		}
		validateField(path, field, tag, errs)
	}
}

func validateField(path string, value reflect.Value, tag string, errs *ValidationErrors) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, raw := range strings.Split(tag, ";") {
		name, params := parseRule(raw)
		if name == "" {
			continue
		}
		fn, ok := registry[name]
		if !ok {
			continue
		}
		rule := fn(path, value, params)
		if rule.Check != nil && !rule.Check() {
			errs.Add(rule.Error)
		}
	}
}

func parseRule(raw string) (string, []string) {
	name, paramStr, _ := strings.Cut(strings.TrimSpace(raw), ":")
	name = strings.TrimSpace(name)
	paramStr = strings.TrimSpace(paramStr)
	if paramStr == "" {
		return name, nil
	}
	params := strings.Split(paramStr, ",")
	for i := range params {
		params[i] = strings.TrimSpace(params[i])
	}
	return name, params
}

// stringValue returns the field as a string. Nil pointers and non-string
// kinds yield "".
func stringValue(value reflect.Value) string {
	if !value.IsValid() || value.Kind() != reflect.String {
		return ""
	}
	return value.String()
}

func requiredValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool {
			if !value.IsValid() {
				return false
			}
			switch value.Kind() {
			case reflect.String:
				return strings.TrimSpace(value.String()) != ""
			case reflect.Slice, reflect.Map, reflect.Array:
				return value.Len() > 0
			default:
				return !value.IsZero()
			}
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: KeyRequired,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func lenValidator(field string, value reflect.Value, params []string) Rule {
	want := -1
	if len(params) > 0 {
		if n, err := strconv.Atoi(params[0]); err == nil {
			want = n
		}
	}
	return Rule{
		Check: func() bool {
			return want >= 0 && utf8.RuneCountInString(stringValue(value)) == want
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d characters", want),
			TranslationKey: KeyLen,
			TranslationValues: map[string]any{
				"field":  field,
				"length": want,
			},
		},
	}
}

func numericValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool {
			s := stringValue(value)
			if s == "" {
				return false
			}
			for i := 0; i < len(s); i++ {
				if s[i] < '0' || s[i] > '9' {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only digits",
			TranslationKey: KeyNumeric,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func cpfValidator(field string, value reflect.Value, _ []string) Rule {
	return CPF().Rule(field, stringValue(value))
}

func cnpjValidator(field string, value reflect.Value, _ []string) Rule {
	return CNPJ().Rule(field, stringValue(value))
}

// documentValidator accepts any known kind. "document:cpf,cnpj" restricts
// the accepted kinds; without params the kind is detected from the value.
// Unknown kind names are ignored, and a restriction naming no known kind
// rejects every value.
func documentValidator(field string, value reflect.Value, params []string) Rule {
	s := stringValue(value)

	var allowed []*document.Spec
	for _, name := range params {
		if spec, ok := document.Lookup(name); ok {
			allowed = append(allowed, spec)
		}
	}

	kind := kindNames(allowed)
	switch {
	case len(allowed) > 0:
	case len(params) > 0:
		kind = strings.Join(params, "/")
	default:
		if spec, ok := document.Detect(s); ok {
			allowed = []*document.Spec{spec}
			kind = spec.Name()
		}
	}

	for _, spec := range allowed {
		if spec.Validate(s) {
			return Rule{Check: func() bool { return true }}
		}
	}

	values := map[string]any{"field": field, "value": s, "kind": kind}
	return Rule{
		Check: func() bool { return false },
		Error: ValidationError{
			Field:             field,
			Message:           defaultTranslator().T(KeyDocument, values),
			TranslationKey:    KeyDocument,
			TranslationValues: values,
		},
	}
}

func kindNames(specs []*document.Spec) string {
	if len(specs) == 0 {
		specs = []*document.Spec{document.CPF, document.CNPJ}
	}
	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name()
	}
	return strings.Join(names, "/")
}
