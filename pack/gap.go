package pack

import (
	"math/big"

	"github.com/calebcase/bitfield/capacity"
)

// Gap is a reserved run of bits with no storage. It reads as zero and drops
// anything written to it.
type Gap struct {
	width int
}

// Reserve returns a gap of width bits. It panics if width is not positive.
func Reserve(width int) Gap {
	if width <= 0 {
		panic(capacity.WidthError.New("gap width=%d", width))
	}

	return Gap{
		width: width,
	}
}

// Width returns the number of reserved bits.
func (g Gap) Width() int { return g.width }

// Sequence returns zero.
func (g Gap) Sequence() uint64 { return 0 }

// SetSequence does nothing.
func (g Gap) SetSequence(uint64) {}

// BigSequence returns zero.
func (g Gap) BigSequence() *big.Int { return new(big.Int) }

// SetBigSequence does nothing.
func (g Gap) SetBigSequence(*big.Int) {}
