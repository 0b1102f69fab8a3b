// Package kmac implements KMAC128 and KMAC256 as defined in NIST SP
// 800-185, built on the cSHAKE extendable-output function.
//
// A Context is configured (SetKey, SetCustom, SetOutputLen, SetXOF) before
// Init begins absorbing, fed message bytes through Write, and finalized
// with Final. The cSHAKE sponge that underlies the mode is an external
// collaborator supplied by golang.org/x/crypto/sha3; this package owns
// only the KMAC-specific framing: key encoding, the state machine, and
// the output-length suffix.
//
//	ctx := kmac.New128()
//	ctx.SetKey(key)
//	ctx.SetCustom([]byte("My Tagged Application"))
//	if err := ctx.Init(); err != nil {
//		panic(err)
//	}
//	ctx.Write(message)
//	out := make([]byte, ctx.OutputLen())
//	ctx.Final(out)
package kmac

import (
	"golang.org/x/crypto/sha3"

	"github.com/whitemike889/sivkmac/internal/zeroize"
)

// Variant selects the security strength (and therefore the sponge rate)
// of the underlying cSHAKE instance.
type Variant int

const (
	// KMAC128 uses a 168-byte sponge rate (1600 - 256 bits of capacity).
	KMAC128 Variant = iota
	// KMAC256 uses a 136-byte sponge rate (1600 - 512 bits of capacity).
	KMAC256
)

const (
	rate128 = 168
	rate256 = 136

	defaultOutLen128 = 32
	defaultOutLen256 = 64

	minKeyLen    = 4
	maxKeyLen    = 255
	maxCustomLen = 127
)

// kmacN is the fixed cSHAKE function-name string "KMAC" required by SP
// 800-185; together with the customization string it forms the T prefix
// a cSHAKE instance absorbs as part of its own initialization.
var kmacN = []byte("KMAC")

type state int

const (
	stateConfig state = iota
	stateAbsorbing
	stateDone
)

// Context holds one KMAC128 or KMAC256 computation.
type Context struct {
	variant    Variant
	rate       int
	outLen     int
	xofMode    bool
	keySet     bool
	encodedKey []byte
	custom     []byte
	hash       sha3.ShakeHash
	st         state
}

// New128 returns a Context configured for KMAC128, with the default
// 32-byte output length.
func New128() *Context { return newContext(KMAC128) }

// New256 returns a Context configured for KMAC256, with the default
// 64-byte output length.
func New256() *Context { return newContext(KMAC256) }

func newContext(v Variant) *Context {
	c := &Context{variant: v, st: stateConfig}
	if v == KMAC256 {
		c.rate = rate256
		c.outLen = defaultOutLen256
	} else {
		c.rate = rate128
		c.outLen = defaultOutLen128
	}
	return c
}

// SetKey transforms key into bytepad(encode_string(key), w) and stores it
// for Init to absorb. key must be between 4 and 255 bytes.
func (c *Context) SetKey(key []byte) error {
	if len(key) < minKeyLen || len(key) > maxKeyLen {
		return ErrKeyLength
	}
	encoded, err := bytepadEncodedKey(key, c.rate)
	if err != nil {
		return err
	}
	c.encodedKey = encoded
	c.keySet = true
	return nil
}

// SetCustom sets the customization string S, which must be at most 127
// bytes. The default, if SetCustom is never called, is the empty string.
func (c *Context) SetCustom(custom []byte) error {
	if len(custom) > maxCustomLen {
		return ErrCustomLength
	}
	c.custom = append([]byte(nil), custom...)
	return nil
}

// SetOutputLen sets the requested digest length in bytes. It may be
// changed any time before Final.
func (c *Context) SetOutputLen(n int) {
	c.outLen = n
}

// OutputLen returns the currently configured output length in bytes.
func (c *Context) OutputLen() int {
	return c.outLen
}

// SetXOF toggles XOF mode. In XOF mode, Final encodes a zero output
// length (right_encode(0)) instead of the requested length, matching
// KMAC128XOF/KMAC256XOF from SP 800-185.
func (c *Context) SetXOF(xof bool) {
	c.xofMode = xof
}

// Init begins a fresh absorb over a keyed cSHAKE instance. It fails if no
// key has been set. The cSHAKE instance is primed with N="KMAC" and the
// configured customization string, which realizes the T = bytepad(
// encode_string("KMAC") || encode_string(S), w) prefix SP 800-185
// specifies; that framing is the cSHAKE constructor's own job.
func (c *Context) Init() error {
	if !c.keySet {
		return ErrKeyNotSet
	}

	var h sha3.ShakeHash
	if c.variant == KMAC256 {
		h = sha3.NewCShake256(kmacN, c.custom)
	} else {
		h = sha3.NewCShake128(kmacN, c.custom)
	}

	if _, err := h.Write(c.encodedKey); err != nil {
		return err
	}

	c.hash = h
	c.st = stateAbsorbing
	return nil
}

// Write absorbs message bytes. It satisfies io.Writer.
func (c *Context) Write(data []byte) (int, error) {
	if c.st != stateAbsorbing {
		return 0, ErrNotInitialized
	}
	return c.hash.Write(data)
}

// Final absorbs the output-length suffix (right_encode(out_len*8), or
// right_encode(0) in XOF mode) and squeezes OutputLen() bytes into buf,
// returning the number of bytes written.
func (c *Context) Final(buf []byte) (int, error) {
	if c.st != stateAbsorbing {
		return 0, ErrNotInitialized
	}
	if len(buf) < c.outLen {
		return 0, ErrBufferTooSmall
	}
	c.st = stateDone

	var lengthBits uint64
	if !c.xofMode {
		lengthBits = uint64(c.outLen) * 8
	}

	if _, err := c.hash.Write(rightEncode(lengthBits)); err != nil {
		return 0, err
	}

	return c.hash.Read(buf[:c.outLen])
}

// Dup returns an independent copy of c, snapshotting the absorbed sponge
// state along with the configured key, custom string, output length, and
// XOF mode, so the original and the copy can absorb and finalize
// independently.
func (c *Context) Dup() *Context {
	dup := *c
	dup.encodedKey = append([]byte(nil), c.encodedKey...)
	dup.custom = append([]byte(nil), c.custom...)
	if c.hash != nil {
		dup.hash = c.hash.Clone()
	}
	return &dup
}

// Free scrubs the key material this context holds and releases the
// sponge state.
func (c *Context) Free() {
	zeroize.Bytes(c.encodedKey)
	zeroize.Bytes(c.custom)
	c.hash = nil
	c.keySet = false
	c.st = stateConfig
}
