/*
Package siv implements AES-SIV-128 (Synthetic Initialization Vector)
authenticated encryption as defined in RFC 5297.

AES-SIV provides nonce-reuse misuse-resistant authenticated encryption.
Unlike standard AEAD modes like AES-GCM, AES-SIV remains secure even if the
same nonce is accidentally reused - it only leaks whether the same
plaintext was encrypted with the same key and associated data.

Key Size:

The key is 32 bytes (two 128-bit halves): the first half keys the CMAC
used by the S2V construction, the second half keys the AES-CTR stream
cipher. AES-SIV-256/384, which use longer halves, are out of scope.

Context is a state machine, not a one-shot AEAD: absorb any number of
associated-data segments, then run exactly one Encrypt or Decrypt. Per
RFC 5297 the nonce, if any, is just the last AAD segment.

Basic Usage:

	key := make([]byte, siv.KeySize)
	// Fill key with random bytes...

	ctx, err := siv.New(key)
	if err != nil {
		panic(err)
	}

	ad := []byte("additional authenticated data")
	if err := ctx.AAD(ad); err != nil {
		panic(err)
	}

	plaintext := []byte("secret message")
	ciphertext, err := ctx.Encrypt(nil, plaintext)
	if err != nil {
		panic(err)
	}

	var tag [siv.TagSize]byte
	ctx.GetTag(tag[:])

Decrypt runs the same way, on a fresh context seeded with the same AAD
and the tag obtained above:

	dctx, _ := siv.New(key)
	dctx.AAD(ad)
	dctx.SetTag(tag[:])
	decrypted, err := dctx.Decrypt(nil, ciphertext)
	if err != nil {
		panic("authentication failed")
	}

Each Context performs at most one Encrypt or Decrypt; Init resets the
budget for reuse, and Cleanup scrubs the accumulator and tag.
*/
package siv
