package field

import (
	"math/big"

	"github.com/calebcase/oops"
)

// ErrUninitialized is returned when decoding into a zero Field.
var ErrUninitialized = Error.New("uninitialized field")

// MarshalBinary implements encoding.BinaryMarshaler. The bit pattern is
// written most significant byte first in ceil(width/8) bytes.
func (f *Field) MarshalBinary() (data []byte, err error) {
	if f.storage == nil {
		return nil, oops.Trace(ErrUninitialized)
	}

	data = make([]byte, (f.schema.Bits+7)/8)

	return f.BigSequence().FillBytes(data), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The field keeps its
// schema; data must hold exactly ceil(width/8) bytes and bits beyond the width
// are dropped.
func (f *Field) UnmarshalBinary(data []byte) (err error) {
	if f.storage == nil {
		return oops.Trace(ErrUninitialized)
	}

	if want := (f.schema.Bits + 7) / 8; len(data) != want {
		return oops.Trace(Error.New("invalid length: got=%d want=%d", len(data), want))
	}

	f.SetBig(new(big.Int).SetBytes(data))

	return nil
}
