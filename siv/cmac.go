package siv

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
)

const blockSize = aes.BlockSize

// cmac implements AES-CMAC as defined in RFC 4493 / NIST SP 800-38B. It is
// the CMAC primitive S2V runs on: newCMAC(key), a one-shot mac(message),
// and duplicate(). There is no incremental update/finalize interface.
type cmac struct {
	cipher cipher.Block
	k1, k2 [blockSize]byte
}

// newCMAC creates a new CMAC instance keyed with an AES-128 key.
func newCMAC(key []byte) (*cmac, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	c := &cmac{cipher: block}
	c.deriveSubkeys()
	return c, nil
}

// duplicate returns an independent copy of c. The key schedule is
// immutable once built, so sharing the cipher.Block and copying the
// derived subkeys by value is enough for the original and the fork to
// evolve independently.
func (c *cmac) duplicate() *cmac {
	return &cmac{cipher: c.cipher, k1: c.k1, k2: c.k2}
}

// deriveSubkeys generates the CMAC subkeys K1 and K2.
func (c *cmac) deriveSubkeys() {
	var zero [blockSize]byte
	var l [blockSize]byte

	c.cipher.Encrypt(l[:], zero[:])

	c.k1 = double128(l)
	c.k2 = double128(c.k1)
}

// mac computes the CMAC of message.
func (c *cmac) mac(message []byte) [blockSize]byte {
	var tag [blockSize]byte
	n := len(message)

	if n == 0 {
		// Empty message: pad a single block.
		var padded [blockSize]byte
		padded[0] = 0x80
		xorBlock(&padded, &c.k2)
		c.cipher.Encrypt(tag[:], padded[:])
		return tag
	}

	numBlocks := (n + blockSize - 1) / blockSize
	var state [blockSize]byte

	for i := 0; i < numBlocks-1; i++ {
		subtle.XORBytes(state[:], state[:], message[i*blockSize:(i+1)*blockSize])
		c.cipher.Encrypt(state[:], state[:])
	}

	lastStart := (numBlocks - 1) * blockSize
	lastLen := n - lastStart
	var last [blockSize]byte

	if lastLen == blockSize {
		copy(last[:], message[lastStart:])
		xorBlock(&last, &c.k1)
	} else {
		copy(last[:lastLen], message[lastStart:])
		last[lastLen] = 0x80
		xorBlock(&last, &c.k2)
	}

	xorBlock(&last, &state)
	c.cipher.Encrypt(tag[:], last[:])

	return tag
}

func xorBlock(dst, src *[blockSize]byte) {
	subtle.XORBytes(dst[:], dst[:], src[:])
}
