// Package field provides integers constrained to an exact bit width.
//
// A field is declared by a Schema: a width and a sign. The width picks the
// storage (see package capacity) and the sign picks how the stored bit
// pattern is read back.
//
// Every write is trimmed. Trimming never clamps and never fails; the value
// wraps modulo 2^width and the result is read under the field's sign:
//
//  | Sign     | Width | Written | Pattern | Read |
//  |----------|-------|---------|---------|------|
//  | unsigned | 4     | 17      | 0001    | 1    |
//  | unsigned | 4     | -1      | 1111    | 15   |
//  | signed   | 4     | 7       | 0111    | 7    |
//  | signed   | 4     | 8       | 1000    | -8   |
//  | signed   | 3     | 5       | 101     | -3   |
//
// The pattern (Sequence) is the sign independent view of a field and is what
// package pack concatenates.
//
// Arithmetic
//
// Binary operators return a new field as wide as the wider operand. The
// result is signed only if both operands are signed:
//
//	a := field.Int(6, 13)
//	b := field.Int(4, 7)
//	c := a.Add(b) // signed, 6 bits, 20
//
// The Assign variants (AddAssign, LshAssign, ...) write the result back into
// the receiver, trimmed to the receiver's own schema. Inc and Dec wrap at the
// boundary like every other write: a 3 bit signed field holding 3 becomes -4.
//
// Fields wider than 64 bits are stored as a byte array and use math/big for
// arithmetic. Their Int, Uint and Sequence accessors return the low 64 bits;
// Big and BigSequence are exact.
package field
