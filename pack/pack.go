package pack

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/bitfield/capacity"
	"github.com/calebcase/bitfield/field"
)

// Error is the class of pack errors.
var Error = errs.Class("pack")

// WidthError is the class of width mismatches between assigned segments.
var WidthError = errs.Class("width mismatch")

// ErrReleased is the panic value when a released pack is used.
var ErrReleased = Error.New("pack used after release")

// Segment is a run of bits inside a pack.
type Segment interface {
	Width() int

	// Sequence returns the low 64 bits of the segment's bit pattern.
	Sequence() uint64
	SetSequence(bits uint64)

	BigSequence() *big.Int
	SetBigSequence(bits *big.Int)
}

var (
	_ Segment = (*field.Field)(nil)
	_ Segment = Gap{}
	_ Segment = (*Pack)(nil)
)

// Pack is an ordered view over segments read and written as one bit
// sequence. The first segment holds the most significant bits.
//
// A pack borrows its fields: writes through the pack land in the fields and
// reads see their current values. The borrow lasts until Release. Using a
// released pack panics with ErrReleased. A pack has no locking; do not write
// the same field through two packs at once.
type Pack struct {
	segments []Segment
	width    int
	released bool
}

// New returns a pack over segments.
func New(segments ...Segment) (p *Pack, err error) {
	if len(segments) == 0 {
		return nil, Error.New("no segments")
	}

	p = &Pack{
		segments: make([]Segment, len(segments)),
	}

	for i, s := range segments {
		if s == nil {
			return nil, Error.New("nil segment: index=%d", i)
		}

		w := s.Width()
		if w <= 0 {
			return nil, Error.New("invalid segment width: index=%d width=%d", i, w)
		}

		p.segments[i] = s
		p.width += w
	}

	return p, nil
}

// Compose is like New but panics on configuration errors.
func Compose(segments ...Segment) *Pack {
	p, err := New(segments...)
	if err != nil {
		panic(err)
	}

	return p
}

func (p *Pack) live() {
	if p.released {
		panic(ErrReleased)
	}
}

// Release ends the borrow of the pack's fields.
func (p *Pack) Release() {
	p.released = true
}

// Released returns true once Release has been called.
func (p *Pack) Released() bool {
	return p.released
}

// Width returns the sum of the segment widths.
func (p *Pack) Width() int {
	p.live()

	return p.width
}

// Capacity returns the smallest storage able to hold the pack's sequence. It
// depends only on the total width.
func (p *Pack) Capacity() capacity.Capacity {
	p.live()

	return capacity.MustResolve(p.width)
}

// Sequence concatenates the segment patterns. Packs wider than 64 bits
// return the low 64 bits.
func (p *Pack) Sequence() (v uint64) {
	p.live()

	// Shifting by 64 or more clears v, so the low word stays exact for any
	// total width.
	for _, s := range p.segments {
		v = v<<uint(s.Width()) | s.Sequence()
	}

	return v
}

// SetSequence distributes bits over the segments, last segment first. Each
// segment receives its own slice; packs wider than 64 bits see zeros above
// bit 63.
func (p *Pack) SetSequence(bits uint64) {
	p.live()

	for i := len(p.segments) - 1; i >= 0; i-- {
		s := p.segments[i]
		s.SetSequence(bits)
		bits >>= uint(s.Width())
	}
}

// BigSequence concatenates the segment patterns.
func (p *Pack) BigSequence() *big.Int {
	p.live()

	v := new(big.Int)
	for _, s := range p.segments {
		v.Lsh(v, uint(s.Width()))
		v.Or(v, s.BigSequence())
	}

	return v
}

// SetBigSequence distributes bits over the segments, last segment first.
func (p *Pack) SetBigSequence(bits *big.Int) {
	p.live()

	m := new(big.Int).Lsh(big.NewInt(1), uint(p.width))
	m.Sub(m, big.NewInt(1))

	r := new(big.Int).And(bits, m)
	for i := len(p.segments) - 1; i >= 0; i-- {
		s := p.segments[i]
		s.SetBigSequence(r)
		r.Rsh(r, uint(s.Width()))
	}
}

// Value returns an unsigned field as wide as the pack holding its sequence.
func (p *Pack) Value() *field.Field {
	p.live()

	f := field.Must(field.Schema{Bits: p.width}, 0)

	if p.width <= 64 {
		return f.SetUint(p.Sequence())
	}

	return f.SetBig(p.BigSequence())
}

// String implements fmt.Stringer. Gaps are shown with a leading underscore.
func (p *Pack) String() string {
	sb := &strings.Builder{}

	sb.WriteString("pack{")
	for i, s := range p.segments {
		if i > 0 {
			sb.WriteString(",")
		}

		switch s := s.(type) {
		case Gap:
			sb.WriteString(fmt.Sprintf("_%d", s.width))
		default:
			sb.WriteString(fmt.Sprintf("%d", s.Width()))
		}
	}
	sb.WriteString("}")

	return sb.String()
}
