package document

import "errors"

var (
	// ErrInvalidSpec is returned by NewSpec when the layout, length and weight
	// tables do not agree with each other.
	ErrInvalidSpec = errors.New("document: invalid spec")

	// ErrInvalidDocument is returned when a candidate fails format, length,
	// repetition or checksum validation. The cause is intentionally not
	// distinguished.
	ErrInvalidDocument = errors.New("document: invalid document")

	// ErrInvalidDigits is returned by CheckDigits when the base has the wrong
	// length or holds values outside 0-9.
	ErrInvalidDigits = errors.New("document: invalid base digits")
)
