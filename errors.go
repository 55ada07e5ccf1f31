package fixnum

import "github.com/cockroachdb/errors"

var (
	// ErrDivisionByZero is returned by every division and remainder operation
	// when the divisor is zero.
	ErrDivisionByZero = errors.New("fixnum: division by zero")

	// ErrInvalidDigit is returned by ParseInt (and the text unmarshalers) for
	// any character that is not a digit, a leading sign, or a digit-group
	// separator.
	ErrInvalidDigit = errors.New("fixnum: invalid digit character")

	// ErrEmpty is returned when parsing an input with no digits.
	ErrEmpty = errors.New("fixnum: no digits")

	// ErrInvalidLength is returned by UnmarshalBinary when the input length
	// does not match the width.
	ErrInvalidLength = errors.New("fixnum: invalid binary length")
)
