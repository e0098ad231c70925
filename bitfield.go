package bitfield

import (
	"github.com/calebcase/bitfield/field"
	"github.com/calebcase/bitfield/pack"
)

// Sign selects how a field's bits are read.
type Sign = field.Sign

// Signs
const (
	Unsigned = field.Unsigned
	Signed   = field.Signed
)

// Make returns a field of width bits holding trim(initial). It panics if width
// is not positive.
func Make(width int, sign Sign, initial int64) *field.Field {
	return field.Must(field.Schema{Bits: width, Sign: sign}, initial)
}

// Compose returns a pack borrowing segments, first segment most significant.
// Release the pack when done with it.
func Compose(segments ...pack.Segment) *pack.Pack {
	return pack.Compose(segments...)
}

// Reserve returns a gap of width unused bits.
func Reserve(width int) pack.Gap {
	return pack.Reserve(width)
}

// Read returns the concatenated bit sequence of segments.
func Read(segments ...pack.Segment) uint64 {
	return pack.Read(segments...)
}

// Write distributes bits over segments.
func Write(bits uint64, segments ...pack.Segment) {
	pack.Write(bits, segments...)
}

// Assign writes src's bit sequence into dst.
func Assign(dst, src pack.Segment) {
	pack.Assign(dst, src)
}
