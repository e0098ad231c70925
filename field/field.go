package field

import (
	"math"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/bitfield/capacity"
)

// Error is the class of field errors.
var Error = errs.Class("field")

// ErrDivideByZero is the panic value of a division or remainder by a zero
// field.
var ErrDivideByZero = Error.New("division by zero")

var one = big.NewInt(1)

// Field is an integer constrained to a fixed number of bits.
//
// The stored value is always trimmed: writes wrap modulo 2^width and are then
// read back under the field's sign. A zero Field is not usable; construct one
// with New.
type Field struct {
	schema   Schema
	capacity capacity.Capacity
	storage  storage
}

// New returns a field declared by schema holding trim(initial).
func New(schema Schema, initial int64) (f *Field, err error) {
	defer Error.WrapP(&err)

	c, err := schema.Capacity()
	if err != nil {
		return nil, err
	}

	backend, ok := backends[c.Category]
	if !ok {
		return nil, Error.New("unsupported storage category: %s", c.Category)
	}

	f = &Field{
		schema:   schema,
		capacity: c,
		storage:  backend(c),
	}

	return f.Set(initial), nil
}

// Must is like New but panics on configuration errors.
func Must(schema Schema, initial int64) *Field {
	f, err := New(schema, initial)
	if err != nil {
		panic(err)
	}

	return f
}

// Int returns a signed field of the given width. It panics on configuration
// errors.
func Int(width int, initial int64) *Field {
	return Must(Schema{Bits: width, Sign: Signed}, initial)
}

// Uint returns an unsigned field of the given width. It panics on
// configuration errors.
func Uint(width int, initial uint64) *Field {
	return Must(Schema{Bits: width, Sign: Unsigned}, 0).SetUint(initial)
}

// Width returns the number of bits in the field.
func (f *Field) Width() int {
	return f.schema.Bits
}

// Sign returns the field's sign mode.
func (f *Field) Sign() Sign {
	return f.schema.Sign
}

// Schema returns the field's declaration.
func (f *Field) Schema() Schema {
	return f.schema
}

// Capacity returns the field's resolved storage.
func (f *Field) Capacity() capacity.Capacity {
	return f.capacity
}

// wide is true when the pattern does not fit a single uint64.
func (f *Field) wide() bool {
	return f.schema.Bits > 64
}

func (f *Field) bigMask() *big.Int {
	m := new(big.Int).Lsh(one, uint(f.schema.Bits))

	return m.Sub(m, one)
}

// negative is true when the sign bit of a signed field is set.
func (f *Field) negative() bool {
	if f.schema.Sign != Signed {
		return false
	}

	if !f.wide() {
		return f.storage.load()>>uint(f.schema.Bits-1)&1 == 1
	}

	return f.storage.loadBig().Bit(f.schema.Bits-1) == 1
}

func (f *Field) isZero() bool {
	if !f.wide() {
		return f.storage.load() == 0
	}

	return f.storage.loadBig().Sign() == 0
}

// fitsInt64 is true when the natural value is representable as an int64.
func (f *Field) fitsInt64() bool {
	if f.wide() {
		return false
	}

	return f.schema.Sign == Signed || f.schema.Bits < 64 || f.storage.load() <= math.MaxInt64
}

// Set stores trim(n) and returns the field.
func (f *Field) Set(n int64) *Field {
	if !f.wide() {
		f.storage.store(uint64(n) & f.capacity.Mask)

		return f
	}

	return f.SetBig(big.NewInt(n))
}

// SetUint stores trim(n) and returns the field.
func (f *Field) SetUint(n uint64) *Field {
	f.storage.store(n & f.capacity.Mask)

	return f
}

// SetBig stores trim(n) and returns the field.
func (f *Field) SetBig(n *big.Int) *Field {
	// And on a negative big.Int uses its infinite two's complement form, so
	// this is n mod 2^width.
	p := new(big.Int).And(n, f.bigMask())

	if !f.wide() {
		f.storage.store(p.Uint64())

		return f
	}

	f.storage.storeBig(p)

	return f
}

// Assign stores trim(src) using src's natural value and returns the field.
func (f *Field) Assign(src *Field) *Field {
	if !f.wide() && !src.wide() {
		return f.SetUint(src.Uint())
	}

	return f.SetBig(src.Big())
}

// Int returns the natural value. Wider than 64 bit fields return the low 64
// bits of the natural value.
func (f *Field) Int() int64 {
	p := f.storage.load()

	if !f.wide() && f.schema.Sign == Signed {
		return TrimSigned(int64(p), f.schema.Bits)
	}

	return int64(p)
}

// Uint returns the natural value converted to uint64. Negative values are
// sign extended to 64 bits.
func (f *Field) Uint() uint64 {
	if !f.wide() && f.schema.Sign == Signed {
		return uint64(f.Int())
	}

	return f.storage.load()
}

// Big returns the exact natural value.
func (f *Field) Big() *big.Int {
	p := f.BigSequence()

	if f.negative() {
		m := new(big.Int).Lsh(one, uint(f.schema.Bits))
		p.Sub(p, m)
	}

	return p
}

// Sequence returns the unsigned bit pattern of the value. Wider than 64 bit
// fields return the low 64 bits of the pattern.
func (f *Field) Sequence() uint64 {
	return f.storage.load()
}

// SetSequence stores the pattern bits trimmed to the field's width.
func (f *Field) SetSequence(bits uint64) {
	f.SetUint(bits)
}

// BigSequence returns the unsigned bit pattern of the value.
func (f *Field) BigSequence() *big.Int {
	return f.storage.loadBig()
}

// SetBigSequence stores the pattern bits trimmed to the field's width.
func (f *Field) SetBigSequence(bits *big.Int) {
	f.SetBig(bits)
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	return &Field{
		schema:   f.schema,
		capacity: f.capacity,
		storage:  f.storage.clone(),
	}
}

// Cmp compares the natural values of f and o and returns -1, 0 or +1.
func (f *Field) Cmp(o *Field) int {
	if f.fitsInt64() && o.fitsInt64() {
		x, y := f.Int(), o.Int()

		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}

		return 0
	}

	return f.Big().Cmp(o.Big())
}

// String returns the natural value in base 10.
func (f *Field) String() string {
	return f.Big().String()
}
