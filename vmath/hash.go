package vmath

// Hash32 is an integer avalanche mix (xor-shift, multiply, xor-shift).
// See https://nullprogram.com/blog/2018/07/31/
func Hash32(n uint32) uint32 {
	n ^= n >> 16
	n *= 0x45d9f3b
	n ^= n >> 16
	return n
}

// PackCell folds a 2D cell index into one 32-bit key, 16 bits per axis.
// Cells further than 32767 apart on one axis alias.
func PackCell(cx, cy int) uint32 {
	return uint32(uint16(cx)) | uint32(uint16(cy))<<16
}
