package document

import "strings"

var (
	// CPF is the individual taxpayer registry number: 11 digits,
	// presented as 000.000.000-00.
	CPF = MustSpec("CPF", "###.###.###-##", 11,
		[]int{10, 9, 8, 7, 6, 5, 4, 3, 2},
		[]int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2},
	)

	// CNPJ is the legal entity registry number: 14 digits,
	// presented as 00.000.000/0000-00.
	CNPJ = MustSpec("CNPJ", "##.###.###/####-##", 14,
		[]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
		[]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
	)
)

var kinds = []*Spec{CPF, CNPJ}

// IsCPF reports whether s is a valid CPF, masked or bare.
func IsCPF(s string) bool {
	return CPF.Validate(s)
}

// IsCNPJ reports whether s is a valid CNPJ, masked or bare.
func IsCNPJ(s string) bool {
	return CNPJ.Validate(s)
}

// Lookup returns the built-in kind with the given name, case-insensitively.
func Lookup(name string) (*Spec, bool) {
	for _, k := range kinds {
		if strings.EqualFold(k.name, strings.TrimSpace(name)) {
			return k, true
		}
	}
	return nil, false
}

// Detect picks the built-in kind whose format and length fit s.
// The checksum is not evaluated; call Validate on the result.
func Detect(s string) (*Spec, bool) {
	for _, k := range kinds {
		if _, ok := k.Normalize(s); ok {
			return k, true
		}
	}
	return nil, false
}
