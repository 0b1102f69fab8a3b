package siv

// double128 doubles b in GF(2^128) modulo the irreducible polynomial
// x^128 + x^7 + x^2 + x + 1, per RFC 5297 section 2.3. b is interpreted as
// a big-endian 128-bit integer; the shift carries across the whole 16
// bytes and the reduction constant 0x87 is folded in through a mask
// derived from the top bit, never a branch, so the operation is
// constant-time with respect to that bit.
func double128(b [blockSize]byte) [blockSize]byte {
	var out [blockSize]byte

	carry := byte(0)
	for i := blockSize - 1; i >= 0; i-- {
		out[i] = (b[i] << 1) | carry
		carry = b[i] >> 7
	}

	mask := byte(0 - carry) // 0xFF if the input's top bit was set, 0x00 otherwise
	out[blockSize-1] ^= 0x87 & mask

	return out
}
