package document

// Number is a validated document number.
//
// Invariants:
//   - digits holds exactly spec.Length() ASCII digits
//   - the check digits match
type Number struct {
	spec   *Spec
	digits string
}

// Parse validates candidate and returns it as a Number.
// Returns ErrInvalidDocument on any validation failure.
func (s *Spec) Parse(candidate string) (Number, error) {
	if !s.Validate(candidate) {
		return Number{}, ErrInvalidDocument
	}
	digits, _ := s.Normalize(candidate)
	return Number{spec: s, digits: digits}, nil
}

// MustParse is like Parse but panics on error.
// Use only in tests or for values known to be valid.
func (s *Spec) MustParse(candidate string) Number {
	n, err := s.Parse(candidate)
	if err != nil {
		panic(err)
	}
	return n
}

// Kind returns the name of the document kind, or "" for the zero value.
func (n Number) Kind() string {
	if n.spec == nil {
		return ""
	}
	return n.spec.name
}

// Spec returns the kind the number was parsed with.
func (n Number) Spec() *Spec {
	return n.spec
}

// Digits returns the number without punctuation.
func (n Number) Digits() string {
	return n.digits
}

// Masked returns the number in its punctuated layout.
func (n Number) Masked() string {
	if n.spec == nil {
		return ""
	}
	return n.spec.applyLayout(n.digits)
}

// String returns the bare digits.
func (n Number) String() string {
	return n.digits
}

// IsZero reports whether n is the zero value.
func (n Number) IsZero() bool {
	return n.digits == ""
}

// Equal reports whether both numbers are of the same kind and have the same digits.
func (n Number) Equal(other Number) bool {
	return n.spec == other.spec && n.digits == other.digits
}
