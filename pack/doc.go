// Package pack reads and writes several fields as one bit sequence.
//
// A pack is an ordered list of segments. The first segment is the most
// significant:
//
//	a := field.Int(3, 2)
//	b := field.Int(3, 3)
//
//	pack.Read(a, pack.Reserve(2), b) // 0x43
//
//  | a       | gap     | b       |
//  |---------|---------|---------|
//  | 0 1 0   | 0 0     | 0 1 1   |
//  | bit 7-5 | bit 4-3 | bit 2-0 |
//
// Reading folds left to right: each segment's pattern is shifted in below the
// segments before it. Gaps read as zero. Writing walks the segments from the
// last one back, handing each its own slice of the input; the slice meant for
// a gap is dropped. Patterns are sign independent, so signed and unsigned
// fields of any width can be mixed.
//
// A pack does not own its fields. It borrows them and writes land directly in
// the fields. The borrow is explicit: Release ends it, and any later use of
// the pack panics. Read, Write and Borrow scope the pack to a single call so
// it can not outlive the statement that built it:
//
//	r, g, b := field.Uint(5, 0), field.Uint(6, 0), field.Uint(5, 0)
//	pack.Write(rgb565, r, g, b)
//	rgb888 := pack.Read(r, pack.Reserve(3), g, pack.Reserve(2), b, pack.Reserve(3))
//
// Packs are segments too and can be nested. Assign moves the sequence of one
// pack into another whose segment boundaries differ; the caller is
// responsible for the total widths matching (AssignExact checks).
package pack
