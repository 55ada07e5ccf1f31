package fixnum

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
)

// ParseInt creates an Int from a decimal string.
//
// The string may start with a '+' or '-' sign. Digits may be grouped with
// '_' or '\'' separators, each of which must sit between two digits.
//
// The digits are accumulated by multiplying by ten and adding, so values
// too large for S wrap around like any other arithmetic on an Int. Every
// in-range value, including Min, parses exactly.
func ParseInt[S Storage](s string) (out Int[S], err error) {
	body := s
	neg := false
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		neg = body[0] == '-'
		body = body[1:]
	}
	if len(body) == 0 {
		return out, errors.Wrapf(ErrEmpty, "fixnum: parse %q", s)
	}

	start := len(s) - len(body)
	ten := FromInt[S](10)

	for idx := 0; idx < len(body); idx++ {
		c := body[idx]
		if isSeparator(c) {
			if idx == 0 || idx == len(body)-1 || !isDigit(body[idx-1]) || !isDigit(body[idx+1]) {
				return Int[S]{}, invalidDigit(s, start+idx)
			}
			continue
		}
		if !isDigit(c) {
			return Int[S]{}, invalidDigit(s, start+idx)
		}
		out.MulAssign(ten)
		out.AddAssign(FromInt[S](c - '0'))
	}

	if neg {
		out.Negate()
	}
	return out, nil
}

func isDigit(c byte) bool     { return c >= '0' && c <= '9' }
func isSeparator(c byte) bool { return c == '_' || c == '\'' }

func invalidDigit(s string, offset int) error {
	return errors.Mark(
		errors.Newf("fixnum: invalid character %q at offset %d in %q", s[offset], offset, s),
		ErrInvalidDigit)
}

// String returns i in base 10.
func (i Int[S]) String() string {
	if i.IsInt64() {
		return strconv.FormatInt(i.AsInt64(), 10)
	}

	// Abs(Min) is Min, but divided as unsigned it is the right magnitude.
	mag := i.Abs()
	ten := FromInt[S](10)

	var digits []byte
	for !mag.IsZero() {
		var r Int[S]
		mag, r = quoRemMagnitude(mag, ten)
		digits = append(digits, '0'+r.raw[0])
	}
	if i.IsNegative() {
		digits = append(digits, '-')
	}
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}
	return string(digits)
}

// Format implements fmt.Formatter with the same verbs as big.Int.
func (i Int[S]) Format(s fmt.State, c rune) {
	// FIXME: hand-roll %x/%o/%b over the cells so this doesn't need a big.Int.
	i.AsBigInt().Format(s, c)
}
