package document

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// DigitSlot marks a digit position in a Spec layout.
const DigitSlot = '#'

// Spec describes one document kind. It is immutable once built and safe for
// concurrent use.
type Spec struct {
	name          string
	layout        string
	pattern       *regexp.Regexp
	length        int
	firstWeights  []int
	secondWeights []int
}

// NewSpec builds a Spec for a document kind.
//
// The layout is the punctuated presentation with DigitSlot at every digit
// position, e.g. "###.###.###-##". Its digit slots must add up to length.
// firstWeights applies to the leading length-2 digits and secondWeights to the
// leading length-1 digits (the first check digit included), so their sizes
// must be length-2 and length-1.
func NewSpec(name, layout string, length int, firstWeights, secondWeights []int) (*Spec, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is empty", ErrInvalidSpec)
	}
	if length < 3 {
		return nil, fmt.Errorf("%w: length %d is too short", ErrInvalidSpec, length)
	}
	if slots := strings.Count(layout, string(DigitSlot)); slots != length {
		return nil, fmt.Errorf("%w: layout %q has %d digit slots, want %d", ErrInvalidSpec, layout, slots, length)
	}
	if len(firstWeights) != length-2 {
		return nil, fmt.Errorf("%w: %d first weights, want %d", ErrInvalidSpec, len(firstWeights), length-2)
	}
	if len(secondWeights) != length-1 {
		return nil, fmt.Errorf("%w: %d second weights, want %d", ErrInvalidSpec, len(secondWeights), length-1)
	}

	pattern, err := compileLayout(layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	return &Spec{
		name:          name,
		layout:        layout,
		pattern:       pattern,
		length:        length,
		firstWeights:  slices.Clone(firstWeights),
		secondWeights: slices.Clone(secondWeights),
	}, nil
}

// MustSpec is like NewSpec but panics on error.
// Use only for package-level kinds whose configuration is known to be valid.
func MustSpec(name, layout string, length int, firstWeights, secondWeights []int) *Spec {
	s, err := NewSpec(name, layout, length, firstWeights, secondWeights)
	if err != nil {
		panic(err)
	}
	return s
}

// compileLayout turns "###.###-##" into ^\d{3}\.\d{3}-\d{2}$.
func compileLayout(layout string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteByte('^')

	run := 0
	flush := func() {
		if run > 0 {
			fmt.Fprintf(&b, `\d{%d}`, run)
			run = 0
		}
	}
	for _, r := range layout {
		if r == DigitSlot {
			run++
			continue
		}
		flush()
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	flush()
	b.WriteByte('$')

	return regexp.Compile(b.String())
}

// Name returns the kind label, e.g. "CPF".
func (s *Spec) Name() string {
	return s.name
}

// Layout returns the punctuation template with DigitSlot at digit positions.
func (s *Spec) Layout() string {
	return s.layout
}

// Pattern returns the anchored expression matching the punctuated form.
func (s *Spec) Pattern() *regexp.Regexp {
	return s.pattern
}

// Length returns the number of digits, check digits included.
func (s *Spec) Length() int {
	return s.length
}

// FirstWeights returns a copy of the weights used for the first check digit.
func (s *Spec) FirstWeights() []int {
	return slices.Clone(s.firstWeights)
}

// SecondWeights returns a copy of the weights used for the second check digit.
func (s *Spec) SecondWeights() []int {
	return slices.Clone(s.secondWeights)
}

// String implements fmt.Stringer.
func (s *Spec) String() string {
	return s.name
}
