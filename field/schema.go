package field

import (
	"github.com/calebcase/bitfield/capacity"
)

// Sign selects how a field's bit pattern is interpreted.
type Sign bool

// Signs
const (
	Unsigned Sign = false
	Signed   Sign = true
)

// String implements fmt.Stringer.
func (s Sign) String() string {
	if s == Signed {
		return "signed"
	}

	return "unsigned"
}

// Schema declares a field.
type Schema struct {
	Bits int
	Sign Sign

	// Storage forces a storage category. The zero value picks the smallest
	// category able to hold Bits.
	Storage capacity.Category
}

// Validate returns an error if the schema can not be stored.
func (s Schema) Validate() (err error) {
	c, err := s.Capacity()
	if err != nil {
		return err
	}

	if _, ok := backends[c.Category]; !ok {
		return Error.New("unsupported storage category: %s", c.Category)
	}

	return nil
}

// Capacity resolves the storage for the schema.
func (s Schema) Capacity() (capacity.Capacity, error) {
	return capacity.ResolveIn(s.Bits, s.Storage)
}

// promote returns the schema of a binary operation result: the wider of the
// two widths, signed only if both operands are signed.
func promote(a, b Schema) Schema {
	s := Schema{
		Bits: a.Bits,
		Sign: a.Sign && b.Sign,
	}

	if b.Bits > s.Bits {
		s.Bits = b.Bits
	}

	return s
}
