package field

// TrimSigned wraps n into the range of a signed width bit integer. The bit at
// width-1 is moved to the top of the word and shifted back arithmetically, so
// any value with that bit set comes back negative.
//
//	width=3: 3 -> 3, 4 -> -4, 5 -> -3, 8 -> 0
func TrimSigned(n int64, width int) int64 {
	if width >= 64 {
		return n
	}

	shift := uint(64 - width)

	return n << shift >> shift
}

// TrimUnsigned wraps n into the range of an unsigned width bit integer.
//
//	width=3: 7 -> 7, 8 -> 0, 15 -> 7
func TrimUnsigned(n uint64, width int) uint64 {
	if width >= 64 {
		return n
	}

	return n & (uint64(1)<<uint(width) - 1)
}
