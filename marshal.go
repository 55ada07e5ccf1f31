package fixnum

import (
	"github.com/cockroachdb/errors"
)

func (i Int[S]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int[S]) UnmarshalText(bts []byte) (err error) {
	v, err := ParseInt[S](string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int[S]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string or a bare JSON number. A JSON
// null leaves i unchanged.
func (i *Int[S]) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Newf("fixnum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := ParseInt[S](string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalBinary encodes i as exactly Width() little-endian bytes.
func (i Int[S]) MarshalBinary() ([]byte, error) {
	return i.Bytes(), nil
}

// UnmarshalBinary decodes the output of MarshalBinary. The input must be
// exactly Width() bytes long.
func (i *Int[S]) UnmarshalBinary(bts []byte) error {
	if len(bts) != len(i.raw) {
		return errors.Wrapf(ErrInvalidLength, "fixnum: got %d bytes, want %d", len(bts), len(i.raw))
	}
	for k := 0; k < len(i.raw); k++ {
		i.raw[k] = bts[k]
	}
	return nil
}
