package field

import (
	"math/big"
)

// Op is a binary operator on fields.
type Op struct {
	Abbr string

	// word computes the result modulo 2^64 from sign extended operands.
	word func(x, y uint64) uint64

	// trunc computes a truncating result from int64 operands.
	trunc func(x, y int64) int64

	big func(z, x, y *big.Int) *big.Int
}

// Binary operators
var (
	OpAdd = Op{Abbr: "+", word: func(x, y uint64) uint64 { return x + y }, big: (*big.Int).Add}
	OpSub = Op{Abbr: "-", word: func(x, y uint64) uint64 { return x - y }, big: (*big.Int).Sub}
	OpMul = Op{Abbr: "*", word: func(x, y uint64) uint64 { return x * y }, big: (*big.Int).Mul}
	OpQuo = Op{Abbr: "/", trunc: func(x, y int64) int64 { return x / y }, big: (*big.Int).Quo}
	OpRem = Op{Abbr: "%", trunc: func(x, y int64) int64 { return x % y }, big: (*big.Int).Rem}
	OpOr  = Op{Abbr: "|", word: func(x, y uint64) uint64 { return x | y }, big: (*big.Int).Or}
	OpAnd = Op{Abbr: "&", word: func(x, y uint64) uint64 { return x & y }, big: (*big.Int).And}
	OpXor = Op{Abbr: "^", word: func(x, y uint64) uint64 { return x ^ y }, big: (*big.Int).Xor}
)

// String implements fmt.Stringer.
func (op Op) String() string {
	return op.Abbr
}

// Apply returns a op b as a new field. The result is as wide as the wider
// operand and is signed only if both operands are signed. Division and
// remainder truncate toward zero and panic with ErrDivideByZero on a zero
// divisor.
func Apply(op Op, a, b *Field) *Field {
	r := Must(promote(a.schema, b.schema), 0)

	if op.trunc != nil && b.isZero() {
		panic(ErrDivideByZero)
	}

	switch {
	case op.word != nil && !a.wide() && !b.wide():
		r.SetUint(op.word(a.Uint(), b.Uint()))
	case op.trunc != nil && a.fitsInt64() && b.fitsInt64():
		r.Set(op.trunc(a.Int(), b.Int()))
	default:
		r.SetBig(op.big(new(big.Int), a.Big(), b.Big()))
	}

	return r
}

// Add returns f + o.
func (f *Field) Add(o *Field) *Field { return Apply(OpAdd, f, o) }

// Sub returns f - o.
func (f *Field) Sub(o *Field) *Field { return Apply(OpSub, f, o) }

// Mul returns f * o.
func (f *Field) Mul(o *Field) *Field { return Apply(OpMul, f, o) }

// Quo returns f / o truncated toward zero.
func (f *Field) Quo(o *Field) *Field { return Apply(OpQuo, f, o) }

// Rem returns f % o with the sign of f.
func (f *Field) Rem(o *Field) *Field { return Apply(OpRem, f, o) }

// Or returns f | o.
func (f *Field) Or(o *Field) *Field { return Apply(OpOr, f, o) }

// And returns f & o.
func (f *Field) And(o *Field) *Field { return Apply(OpAnd, f, o) }

// Xor returns f ^ o.
func (f *Field) Xor(o *Field) *Field { return Apply(OpXor, f, o) }

// AddAssign sets f to f + o and returns f.
func (f *Field) AddAssign(o *Field) *Field { return f.Assign(f.Add(o)) }

// SubAssign sets f to f - o and returns f.
func (f *Field) SubAssign(o *Field) *Field { return f.Assign(f.Sub(o)) }

// MulAssign sets f to f * o and returns f.
func (f *Field) MulAssign(o *Field) *Field { return f.Assign(f.Mul(o)) }

// QuoAssign sets f to f / o and returns f.
func (f *Field) QuoAssign(o *Field) *Field { return f.Assign(f.Quo(o)) }

// RemAssign sets f to f % o and returns f.
func (f *Field) RemAssign(o *Field) *Field { return f.Assign(f.Rem(o)) }

// OrAssign sets f to f | o and returns f.
func (f *Field) OrAssign(o *Field) *Field { return f.Assign(f.Or(o)) }

// AndAssign sets f to f & o and returns f.
func (f *Field) AndAssign(o *Field) *Field { return f.Assign(f.And(o)) }

// XorAssign sets f to f ^ o and returns f.
func (f *Field) XorAssign(o *Field) *Field { return f.Assign(f.Xor(o)) }

// Lsh returns f << n with f's width and sign.
func (f *Field) Lsh(n uint) *Field {
	return f.Clone().LshAssign(n)
}

// Rsh returns f >> n with f's width and sign. Signed fields shift
// arithmetically.
func (f *Field) Rsh(n uint) *Field {
	return f.Clone().RshAssign(n)
}

// LshAssign shifts f left by n bits in place and returns f.
func (f *Field) LshAssign(n uint) *Field {
	if !f.wide() {
		return f.SetUint(f.Sequence() << n)
	}

	return f.SetBig(new(big.Int).Lsh(f.BigSequence(), n))
}

// RshAssign shifts f right by n bits in place and returns f.
func (f *Field) RshAssign(n uint) *Field {
	switch {
	case f.wide():
		return f.SetBig(new(big.Int).Rsh(f.Big(), n))
	case f.schema.Sign == Signed:
		return f.Set(f.Int() >> n)
	}

	return f.SetUint(f.Sequence() >> n)
}

// Plus returns a copy of f.
func (f *Field) Plus() *Field {
	return f.Clone()
}

// Neg returns -f with f's width and sign.
func (f *Field) Neg() *Field {
	r := f.Clone()

	if !f.wide() {
		return r.SetUint(-f.Sequence())
	}

	return r.SetBig(new(big.Int).Neg(f.Big()))
}

// Not returns ^f with f's width and sign.
func (f *Field) Not() *Field {
	r := f.Clone()

	if !f.wide() {
		return r.SetUint(^f.Sequence())
	}

	return r.SetBig(new(big.Int).Not(f.BigSequence()))
}

// Inc adds one to f in place and returns f.
func (f *Field) Inc() *Field {
	return f.step(1)
}

// Dec subtracts one from f in place and returns f.
func (f *Field) Dec() *Field {
	return f.step(-1)
}

// PostInc adds one to f in place and returns a copy of the previous value.
func (f *Field) PostInc() *Field {
	old := f.Clone()
	f.step(1)

	return old
}

// PostDec subtracts one from f in place and returns a copy of the previous
// value.
func (f *Field) PostDec() *Field {
	old := f.Clone()
	f.step(-1)

	return old
}

func (f *Field) step(d int64) *Field {
	if !f.wide() {
		return f.SetUint(f.Sequence() + uint64(d))
	}

	return f.SetBig(new(big.Int).Add(f.BigSequence(), big.NewInt(d)))
}
