// Package capacity selects the storage for a fixed width integer.
//
// A width is mapped to the smallest native unsigned word able to hold it. The
// ladder is tried in ascending order and the first category that fits wins.
// Widths beyond the largest native word fall back to a multi-block byte array
// holding ceil(width/8) bytes.
//
//  | Width     | Category | Bytes          | Mask (low word)   |
//  |-----------|----------|----------------|-------------------|
//  | 1 .. 8    | u8       | 1              | 2^width - 1       |
//  | 9 .. 16   | u16      | 2              | 2^width - 1       |
//  | 17 .. 32  | u32      | 4              | 2^width - 1       |
//  | 33 .. 64  | u64      | 8              | 2^width - 1       |
//  | 65 ..     | m        | ceil(width/8)  | 2^64 - 1          |
//
// Multi-block storage is ordered most significant block first. Only the top
// block is partially used, so only the top block is masked:
//
//  width = 70, bytes = 9
//
//  | block 0  | block 1  | ... | block 8  |
//  |----------|----------|-----|----------|
//  | ..xxxxxx | xxxxxxxx | ... | xxxxxxxx |
//  TopMask = 0b0011_1111
//
// A width of zero or less can not be stored and is a configuration error. So
// is asking for an explicit category that is too narrow for the width.
package capacity
