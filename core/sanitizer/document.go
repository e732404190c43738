package sanitizer

import "github.com/dmitrymomot/brdoc/pkg/document"

// MaskCPF formats a valid CPF as ###.###.###-##. Invalid input is returned
// trimmed but otherwise untouched so a later validation step can report it.
func MaskCPF(s string) string {
	return mask(document.CPF, s)
}

// MaskCNPJ formats a valid CNPJ as ##.###.###/####-##. Invalid input is
// returned trimmed but otherwise untouched.
func MaskCNPJ(s string) string {
	return mask(document.CNPJ, s)
}

// MaskDocument detects the kind of s and formats it. Invalid input is
// returned trimmed.
func MaskDocument(s string) string {
	spec, ok := document.Detect(Trim(s))
	if !ok {
		return Trim(s)
	}
	return mask(spec, s)
}

// UnmaskDocument returns the bare digits of a well-formed CPF or CNPJ,
// masked or not. Anything else is returned trimmed.
func UnmaskDocument(s string) string {
	s = Trim(s)
	spec, ok := document.Detect(s)
	if !ok {
		return s
	}
	digits, _ := spec.Normalize(s)
	return digits
}

func mask(spec *document.Spec, s string) string {
	s = Trim(s)
	formatted, err := spec.Format(s)
	if err != nil {
		return s
	}
	return formatted
}
