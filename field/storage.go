package field

import (
	"math"
	"math/big"

	"github.com/calebcase/bitfield/capacity"
)

// storage holds a field's bit pattern. Patterns handed to store and storeBig
// are already trimmed to the field's width.
type storage interface {
	load() uint64
	store(pattern uint64)
	loadBig() *big.Int
	storeBig(pattern *big.Int)
	clone() storage
}

type word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// native stores the pattern in the smallest unsigned word that can hold it.
type native[T word] struct {
	bits T
}

func (n *native[T]) load() uint64 {
	return uint64(n.bits)
}

func (n *native[T]) store(pattern uint64) {
	n.bits = T(pattern)
}

func (n *native[T]) loadBig() *big.Int {
	return new(big.Int).SetUint64(uint64(n.bits))
}

func (n *native[T]) storeBig(pattern *big.Int) {
	n.bits = T(lowWord(pattern))
}

func (n *native[T]) clone() storage {
	c := *n

	return &c
}

// backends maps a storage category to its storage constructor.
var backends = map[capacity.Category]func(c capacity.Capacity) storage{
	capacity.U8: func(capacity.Capacity) storage {
		return &native[uint8]{}
	},
	capacity.U16: func(capacity.Capacity) storage {
		return &native[uint16]{}
	},
	capacity.U32: func(capacity.Capacity) storage {
		return &native[uint32]{}
	},
	capacity.U64: func(capacity.Capacity) storage {
		return &native[uint64]{}
	},
	capacity.Multi: func(c capacity.Capacity) storage {
		return newMulti(c)
	},
}

var maxWord = new(big.Int).SetUint64(math.MaxUint64)

// lowWord returns the low 64 bits of the two's complement form of x.
func lowWord(x *big.Int) uint64 {
	return new(big.Int).And(x, maxWord).Uint64()
}
