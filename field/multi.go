package field

import (
	"math/big"

	"github.com/calebcase/bitfield/capacity"
)

// multi stores the pattern in a byte array, most significant block first.
// Only the top block is partially used.
type multi struct {
	blocks  []byte
	topMask byte
}

func newMulti(c capacity.Capacity) *multi {
	return &multi{
		blocks:  make([]byte, c.Bytes),
		topMask: c.TopMask,
	}
}

func (m *multi) load() (v uint64) {
	tail := m.blocks
	if len(tail) > 8 {
		tail = tail[len(tail)-8:]
	}

	for _, b := range tail {
		v = v<<8 | uint64(b)
	}

	return v
}

func (m *multi) store(pattern uint64) {
	for i := range m.blocks {
		m.blocks[i] = 0
	}

	for i := len(m.blocks) - 1; i >= 0 && pattern != 0; i-- {
		m.blocks[i] = byte(pattern)
		pattern >>= 8
	}

	m.blocks[0] &= m.topMask
}

func (m *multi) loadBig() *big.Int {
	return new(big.Int).SetBytes(m.blocks)
}

func (m *multi) storeBig(pattern *big.Int) {
	pattern.FillBytes(m.blocks)

	m.blocks[0] &= m.topMask
}

func (m *multi) clone() storage {
	c := &multi{
		blocks:  make([]byte, len(m.blocks)),
		topMask: m.topMask,
	}
	copy(c.blocks, m.blocks)

	return c
}
