// Package sanitizer cleans user input before validation.
//
// Besides general string helpers (Trim, KeepDigits, SingleLine, ...) it
// formats Brazilian taxpayer documents: MaskCPF and MaskCNPJ render a valid
// number in its punctuated layout, UnmaskDocument reduces a well-formed CPF
// or CNPJ to bare digits. Invalid documents pass through trimmed so that the
// validator still sees, and reports, what the user typed.
//
// # Struct tags
//
// SanitizeStruct applies the sanitizers listed in a `sanitize` tag from left
// to right:
//
//	type Signup struct {
//		Name  string  `sanitize:"trim,single_line,max:120"`
//		CPF   string  `sanitize:"cpf"`
//		CNPJ  *string `sanitize:"trim,unmask"`
//		Payer string  `sanitize:"document"`
//	}
//
//	if err := sanitizer.SanitizeStruct(&form); err != nil {
//		return err
//	}
//
// Built-in names: trim, upper, single_line, no_spaces, no_control, digits,
// cpf, cnpj, document, unmask and max:N. Add more with RegisterSanitizer.
// A field tagged "-" is skipped.
package sanitizer
