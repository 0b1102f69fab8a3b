package siv

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"

	"github.com/whitemike889/sivkmac/internal/zeroize"
)

const (
	// TagSize is the size of the authentication tag (the synthetic IV) in bytes.
	TagSize = blockSize

	// KeySize is the only supported key length: two 128-bit halves, one
	// for CMAC and one for CTR. AES-SIV-256/384 (longer halves) are out
	// of scope for this primitive.
	KeySize = 32
)

// FinalResult is the sticky tri-state result of the context's one crypto
// operation, mirroring OpenSSL's final_ret field.
type FinalResult int

const (
	// Undecided means neither Encrypt nor Decrypt has completed yet.
	Undecided FinalResult = iota
	// Succeeded means the single crypto operation completed and,
	// for Decrypt, the tag verified.
	Succeeded
	// Failed means Decrypt ran and the tag did not verify.
	Failed
)

type state int

const (
	stateFresh state = iota
	stateReady
	stateFinalized
)

// Context holds the keyed S2V/CTR state for one AES-SIV-128 operation. The
// zero value is not usable; construct one with New.
type Context struct {
	d        [blockSize]byte
	tag      [TagSize]byte
	cmacTmpl *cmac
	ctrBlock cipher.Block
	state    state
	finalRet FinalResult
}

// New allocates and initializes a Context with key, which must be
// KeySize bytes: the first half keys the CMAC used by S2V, the second
// half keys the AES-CTR stream cipher.
func New(key []byte) (*Context, error) {
	c := &Context{}
	if err := c.Init(key); err != nil {
		return nil, err
	}
	return c, nil
}

// Init (re-)initializes c with key, resetting the one-shot crypto budget
// and discarding any previously absorbed AAD. It is the only way to reuse
// a Context after Cleanup.
func (c *Context) Init(key []byte) error {
	if len(key) != KeySize {
		return ErrInvalidKeySize
	}
	half := len(key) / 2

	cm, err := newCMAC(key[:half])
	if err != nil {
		return err
	}
	ctrBlock, err := aes.NewCipher(key[half:])
	if err != nil {
		return err
	}

	var zero [blockSize]byte
	c.d = cm.mac(zero[:])
	c.tag = [TagSize]byte{}
	c.cmacTmpl = cm
	c.ctrBlock = ctrBlock
	c.state = stateReady
	c.finalRet = Undecided
	return nil
}

// Dup returns an independent copy of c that can absorb its own AAD and
// run its own crypto operation without disturbing c.
func (c *Context) Dup() *Context {
	return &Context{
		d:        c.d,
		tag:      c.tag,
		cmacTmpl: c.cmacTmpl.duplicate(),
		ctrBlock: c.ctrBlock,
		state:    c.state,
		finalRet: c.finalRet,
	}
}

// AAD absorbs one associated-data segment into the running S2V
// accumulator. It may be called any number of times before Encrypt or
// Decrypt, and fails once the context's crypto budget has been spent.
func (c *Context) AAD(segment []byte) error {
	if c.state != stateReady {
		return ErrAADAfterCrypto
	}
	s2vAbsorb(&c.d, c.cmacTmpl, segment)
	return nil
}

// Encrypt consumes the context's one-shot crypto budget, derives the
// synthetic IV over the absorbed AAD and plaintext, and encrypts
// plaintext under AES-CTR (keyed with the second key half) whose initial
// counter block is the synthetic IV with bits 63 and 31 of its
// counter-block view cleared. The resulting tag is retrievable
// with GetTag. Appends to dst and returns the updated slice.
func (c *Context) Encrypt(dst, plaintext []byte) ([]byte, error) {
	if c.state != stateReady {
		return nil, ErrAlreadyFinalized
	}
	c.state = stateFinalized

	q := s2vFinal(c.d, c.cmacTmpl, plaintext)
	c.tag = q

	ret, out := sliceForAppend(dst, len(plaintext))
	if len(plaintext) > 0 {
		counter := clearCounterBits(q)
		cipher.NewCTR(c.ctrBlock, counter[:]).XORKeyStream(out, plaintext)
	}

	c.finalRet = Succeeded
	return ret, nil
}

// Decrypt consumes the context's one-shot crypto budget. It recovers a
// candidate plaintext under AES-CTR whose initial counter block is
// derived from the tag set by SetTag, re-derives the synthetic
// IV over the absorbed AAD and candidate plaintext, and compares it
// against the tag in constant time. On mismatch the candidate plaintext
// is scrubbed and ErrAuthentication is returned; dst is not extended.
func (c *Context) Decrypt(dst, ciphertext []byte) ([]byte, error) {
	if c.state != stateReady {
		return nil, ErrAlreadyFinalized
	}
	c.state = stateFinalized

	counter := clearCounterBits(c.tag)
	ret, out := sliceForAppend(dst, len(ciphertext))
	if len(ciphertext) > 0 {
		cipher.NewCTR(c.ctrBlock, counter[:]).XORKeyStream(out, ciphertext)
	}

	t := s2vFinal(c.d, c.cmacTmpl, out)
	if subtle.ConstantTimeCompare(t[:], c.tag[:]) != 1 {
		zeroize.Bytes(out)
		c.finalRet = Failed
		return nil, ErrAuthentication
	}

	c.finalRet = Succeeded
	return ret, nil
}

// SetTag copies tag, which must be TagSize bytes, into the context ahead
// of a Decrypt call.
func (c *Context) SetTag(tag []byte) error {
	if len(tag) != TagSize {
		return ErrTagSize
	}
	copy(c.tag[:], tag)
	return nil
}

// GetTag copies the context's current tag into buf, which must be
// TagSize bytes.
func (c *Context) GetTag(buf []byte) error {
	if len(buf) != TagSize {
		return ErrTagSize
	}
	copy(buf, c.tag[:])
	return nil
}

// Finish returns the sticky result of the context's crypto operation.
func (c *Context) Finish() FinalResult {
	return c.finalRet
}

// Cleanup scrubs the accumulator and tag and releases the cipher state,
// returning the context to a fresh, uninitialized state.
func (c *Context) Cleanup() {
	zeroize.Bytes(c.d[:])
	zeroize.Bytes(c.tag[:])
	c.cmacTmpl = nil
	c.ctrBlock = nil
	c.state = stateFresh
	c.finalRet = Undecided
}

func clearCounterBits(q [TagSize]byte) [TagSize]byte {
	q[8] &= 0x7f
	q[12] &= 0x7f
	return q
}

// sliceForAppend extends the input slice to accommodate n more bytes.
// Returns the extended slice and the n-byte slice to write to.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
