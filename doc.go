// Package bitfield models integers of an exact bit width and packs them into
// flat integers.
//
// Fields (package field) hold a value of a fixed width and sign and wrap every
// write into range. Packs (package pack) line fields and reserved gaps up
// most significant first and read or write them as one integer. Package
// capacity picks the storage for a width.
//
// This package re-exports the common entry points:
//
//	r := bitfield.Make(5, bitfield.Unsigned, 21)
//	g := bitfield.Make(6, bitfield.Unsigned, 51)
//	b := bitfield.Make(5, bitfield.Unsigned, 14)
//
//	rgb565 := bitfield.Read(r, g, b) // 0b10101_110011_01110
package bitfield
