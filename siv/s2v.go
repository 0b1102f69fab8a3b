package siv

import "crypto/subtle"

// s2vAbsorb mixes one associated-data segment into the running S2V
// accumulator d, per RFC 5297 section 2.4: d = (2*d) xor CMAC(segment).
func s2vAbsorb(d *[blockSize]byte, cm *cmac, segment []byte) {
	*d = double128(*d)
	t := cm.mac(segment)
	xorBlock(d, &t)
}

// s2vFinal folds the last S2V string (the plaintext or, for decrypt, the
// candidate plaintext) into d and returns the resulting synthetic IV.
//
// len(last) >= blockSize: T = CMAC(last[:len-16] || (last[len-16:] xor d)).
// Otherwise: d = 2*d, T = CMAC(pad(last) xor d) where pad appends 0x80
// then zero bytes to a full block.
func s2vFinal(d [blockSize]byte, cm *cmac, last []byte) [blockSize]byte {
	if len(last) >= blockSize {
		t := make([]byte, len(last))
		copy(t, last)
		tail := t[len(t)-blockSize:]
		subtle.XORBytes(tail, tail, d[:])
		return cm.mac(t)
	}

	d = double128(d)
	var padded [blockSize]byte
	copy(padded[:], last)
	padded[len(last)] = 0x80
	xorBlock(&padded, &d)
	return cm.mac(padded[:])
}
