package kmac

// encode.go implements the SP 800-185 length-prefix and padding helpers:
// left_encode, right_encode, encode_string, and bytepad. These are the
// pieces of the standard this package owns directly; the cSHAKE sponge
// itself (and its own internal N/S encoding) is an external collaborator
// supplied by golang.org/x/crypto/sha3.

// encodeMagnitude renders x as the minimum-length big-endian byte string
// that represents it, per SP 800-185's definition of "the minimum number
// of bytes needed to represent x". encodeMagnitude(0) is a single zero
// byte, matching left_encode(0) = 01 00 and right_encode(0) = 00 01.
func encodeMagnitude(x uint64) []byte {
	if x == 0 {
		return []byte{0}
	}
	n := 0
	for v := x; v > 0; v >>= 8 {
		n++
	}
	buf := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte(x)
		x >>= 8
	}
	return buf
}

// leftEncode implements left_encode(x): the byte count prefixed before x's
// big-endian encoding, so the result is unambiguously parseable from the
// front.
func leftEncode(x uint64) []byte {
	mag := encodeMagnitude(x)
	out := make([]byte, 0, len(mag)+1)
	out = append(out, byte(len(mag)))
	out = append(out, mag...)
	return out
}

// rightEncode implements right_encode(x): the byte count appended after
// x's big-endian encoding, so the result is unambiguously parseable from
// the end. KMAC finalization uses this to encode the requested output
// length in bits (or zero, in XOF mode).
func rightEncode(x uint64) []byte {
	mag := encodeMagnitude(x)
	out := make([]byte, 0, len(mag)+1)
	out = append(out, mag...)
	out = append(out, byte(len(mag)))
	return out
}

// encodeString implements encode_string(S) = left_encode(8*|S|) || S. The
// length prefix counts bits, not bytes. SP 800-185 requires that prefix's
// own magnitude fit in a single byte (<=255); that bound is unreachable
// for any S that fits in memory (a uint64 bit count never needs more than
// 8 magnitude bytes), but the check is kept to honor the contract.
func encodeString(s []byte) ([]byte, error) {
	bits := uint64(len(s)) * 8
	prefix := leftEncode(bits)
	if len(prefix)-1 > maxEncodingMagnitude {
		return nil, ErrEncodingOverflow
	}
	out := make([]byte, 0, len(prefix)+len(s))
	out = append(out, prefix...)
	out = append(out, s...)
	return out, nil
}

// bytepad implements bytepad(X, w): left_encode(w) || X, zero-padded on
// the right to the smallest multiple of w that is at least as long as the
// unpadded result. w is in bytes.
func bytepad(x []byte, w int) []byte {
	prefix := leftEncode(uint64(w))
	buf := make([]byte, 0, len(prefix)+len(x)+w)
	buf = append(buf, prefix...)
	buf = append(buf, x...)
	if rem := len(buf) % w; rem != 0 {
		buf = append(buf, make([]byte, w-rem)...)
	}
	return buf
}

// bytepadEncodedKey implements bytepad(encode_string(K), w), the exact
// transform spec.md assigns to a KMAC context's encoded_key field.
func bytepadEncodedKey(key []byte, w int) ([]byte, error) {
	encoded, err := encodeString(key)
	if err != nil {
		return nil, err
	}
	return bytepad(encoded, w), nil
}
