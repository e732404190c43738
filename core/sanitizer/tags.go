package sanitizer

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        Trim,
		"upper":       ToUpper,
		"single_line": SingleLine,
		"no_spaces":   RemoveExtraWhitespace,
		"no_control":  RemoveControlChars,
		"digits":      KeepDigits,

		// Document sanitizers
		"cpf":      MaskCPF,
		"cnpj":     MaskCNPJ,
		"document": MaskDocument,
		"unmask":   UnmaskDocument,
	}
)

// RegisterSanitizer adds a custom sanitizer function to the registry
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// SanitizeStruct applies the comma-separated sanitizers named in each
// field's `sanitize` tag, in order. String, *string and []string fields are
// rewritten in place; nested structs are always walked.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("sanitizer: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.New("sanitizer: must pass a pointer to struct")
	}

	sanitizeStructRecursive(rv)
	return nil
}

func sanitizeStructRecursive(rv reflect.Value) {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}
			field = field.Elem()
		}

		switch field.Kind() {
		case reflect.String:
			if tag != "" {
				field.SetString(applySanitizers(field.String(), tag))
			}

		case reflect.Struct:
			sanitizeStructRecursive(field)

		case reflect.Slice:
			if tag != "" && field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					elem := field.Index(j)
					elem.SetString(applySanitizers(elem.String(), tag))
				}
			}
		}
	}
}

func applySanitizers(value string, tag string) string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := value
	for _, name := range strings.Split(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		// max:N truncates to N runes.
		if limit, ok := strings.CutPrefix(name, "max:"); ok {
			if n, err := strconv.Atoi(limit); err == nil && n > 0 {
				result = MaxLength(result, n)
			}
			continue
		}

		if fn, ok := registry[name]; ok {
			result = fn(result)
		}
	}

	return result
}
