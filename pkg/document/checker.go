package document

import (
	"fmt"
	"strings"
)

// Validate reports whether candidate is a valid document of this kind, either
// as bare digits or in the exact punctuated layout.
// The empty string is never valid.
func (s *Spec) Validate(candidate string) bool {
	digits, ok := s.digits(candidate)
	if !ok {
		return false
	}
	if allEqual(digits) {
		return false
	}

	d1, d2 := s.checkDigits(digits[:s.length-2])
	return digits[s.length-2] == d1 && digits[s.length-1] == d2
}

// Normalize strips punctuation from an acceptably formatted candidate and
// returns its digits. It checks format and length only, not the checksum.
func (s *Spec) Normalize(candidate string) (string, bool) {
	digits, ok := s.digits(candidate)
	if !ok {
		return "", false
	}
	return digitString(digits), true
}

// CheckDigits computes the two check digits for base, the leading Length-2
// digits of a document.
func (s *Spec) CheckDigits(base []int) (int, int, error) {
	if len(base) != s.length-2 {
		return 0, 0, fmt.Errorf("%w: got %d digits, want %d", ErrInvalidDigits, len(base), s.length-2)
	}
	for i, d := range base {
		if d < 0 || d > 9 {
			return 0, 0, fmt.Errorf("%w: value %d at position %d", ErrInvalidDigits, d, i)
		}
	}
	d1, d2 := s.checkDigits(base)
	return d1, d2, nil
}

// Format renders a valid candidate in the punctuated layout.
func (s *Spec) Format(candidate string) (string, error) {
	if !s.Validate(candidate) {
		return "", ErrInvalidDocument
	}
	digits, _ := s.Normalize(candidate)
	return s.applyLayout(digits), nil
}

// digits runs the format and length checks and returns the digit values.
func (s *Spec) digits(candidate string) ([]int, bool) {
	if !isDigits(candidate) && !s.pattern.MatchString(candidate) {
		return nil, false
	}

	digits := make([]int, 0, s.length)
	for i := 0; i < len(candidate); i++ {
		if c := candidate[i]; c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))
		}
	}
	if len(digits) != s.length {
		return nil, false
	}
	return digits, true
}

// checkDigits assumes len(base) == s.length-2 with values in 0-9.
// The second sum runs over base followed by the first check digit.
func (s *Spec) checkDigits(base []int) (int, int) {
	sum := 0
	for i, w := range s.firstWeights {
		sum += w * base[i]
	}
	d1 := mod11(sum)

	sum = 0
	for i, w := range s.secondWeights {
		d := d1
		if i < len(base) {
			d = base[i]
		}
		sum += w * d
	}
	return d1, mod11(sum)
}

func (s *Spec) applyLayout(digits string) string {
	var b strings.Builder
	b.Grow(len(s.layout))

	i := 0
	for _, r := range s.layout {
		if r == DigitSlot {
			b.WriteByte(digits[i])
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// mod11 collapses remainders 0 and 1 to zero.
func mod11(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allEqual(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func digitString(digits []int) string {
	b := make([]byte, len(digits))
	for i, d := range digits {
		b[i] = byte('0' + d)
	}
	return string(b)
}
