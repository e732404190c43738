// Package document validates Brazilian registry numbers: CPF (individual
// taxpayer, 11 digits) and CNPJ (legal entity, 14 digits).
//
// Both kinds share one algorithm parameterized by a Spec: a punctuation
// layout, the expected digit count and two weight tables used to derive the
// two trailing check digits with the modulo-11 rule. CPF and CNPJ are just
// two package-level Spec values; there is no per-kind logic.
//
// # Validation
//
// A candidate is accepted when all of the following hold, checked in order:
//
//  1. it is made only of ASCII digits, or it matches the kind's layout exactly
//     (for example "123.123.123-87" or "51.673.426/0001-47");
//  2. after stripping punctuation it has exactly Length digits;
//  3. not every digit is the same ("00000000000" is never issued);
//  4. the last two digits equal the check digits computed from the others.
//
// Usage:
//
//	import "github.com/dmitrymomot/brdoc/pkg/document"
//
//	document.IsCPF("123.123.123-87")    // true
//	document.IsCPF("12312312387")       // true
//	document.IsCNPJ("51.673.426/0001-47") // true
//	document.IsCNPJ("51673426000148")   // false, wrong check digit
//
// # Value objects
//
// Parse returns a Number that is known to be valid and can be rendered in
// either form:
//
//	n, err := document.CPF.Parse("12312312387")
//	if err != nil {
//		// errors.Is(err, document.ErrInvalidDocument)
//	}
//	n.Digits() // "12312312387"
//	n.Masked() // "123.123.123-87"
//
// # Custom kinds
//
// NewSpec validates its configuration eagerly, so a weight table that does
// not match the length is reported at construction time, never during
// validation:
//
//	spec, err := document.NewSpec("X", "####-##", 6,
//		[]int{5, 4, 3, 2},
//		[]int{6, 5, 4, 3, 2},
//	)
//
// # Concurrency
//
// A Spec is immutable after construction. Validate and friends only read it
// and work on call-local data, so one Spec can serve any number of goroutines.
package document
