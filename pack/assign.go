package pack

import (
	"math/big"
)

// Assign writes src's bit sequence into dst. Segment boundaries on the two
// sides need not line up. Widths are not compared: a wider src loses its high
// bits and a narrower src is zero extended.
func Assign(dst, src Segment) {
	if dst.Width() > 64 || src.Width() > 64 {
		dst.SetBigSequence(src.BigSequence())

		return
	}

	dst.SetSequence(src.Sequence())
}

// AssignExact is like Assign but returns an error if the widths differ.
func AssignExact(dst, src Segment) (err error) {
	if dst.Width() != src.Width() {
		return WidthError.New("dst=%d src=%d", dst.Width(), src.Width())
	}

	Assign(dst, src)

	return nil
}

// Borrow composes segments, calls fn with the pack and releases it when fn
// returns.
func Borrow(fn func(p *Pack) error, segments ...Segment) (err error) {
	p, err := New(segments...)
	if err != nil {
		return err
	}
	defer p.Release()

	return fn(p)
}

// Read returns the sequence of segments composed for this call only.
func Read(segments ...Segment) uint64 {
	p := Compose(segments...)
	defer p.Release()

	return p.Sequence()
}

// Write distributes bits over segments composed for this call only.
func Write(bits uint64, segments ...Segment) {
	p := Compose(segments...)
	defer p.Release()

	p.SetSequence(bits)
}

// ReadBig is like Read for sequences of any width.
func ReadBig(segments ...Segment) *big.Int {
	p := Compose(segments...)
	defer p.Release()

	return p.BigSequence()
}

// WriteBig is like Write for sequences of any width.
func WriteBig(bits *big.Int, segments ...Segment) {
	p := Compose(segments...)
	defer p.Release()

	p.SetBigSequence(bits)
}
