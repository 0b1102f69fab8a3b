package siv

import "errors"

var (
	// ErrInvalidKeySize is returned when the key passed to New or Init is
	// not KeySize bytes long.
	ErrInvalidKeySize = errors.New("siv: invalid key size")

	// ErrTagSize is returned by SetTag/GetTag when the supplied buffer is
	// not exactly TagSize bytes.
	ErrTagSize = errors.New("siv: tag must be 16 bytes")

	// ErrAADAfterCrypto is returned when AAD is called after Encrypt or
	// Decrypt has already consumed the context's one-shot crypto budget.
	ErrAADAfterCrypto = errors.New("siv: aad absorbed after encrypt/decrypt")

	// ErrAlreadyFinalized is returned by a second call to Encrypt or
	// Decrypt on the same context.
	ErrAlreadyFinalized = errors.New("siv: encrypt/decrypt already performed on this context")

	// ErrAuthentication is returned by Decrypt when the recomputed SIV
	// does not match the supplied tag.
	ErrAuthentication = errors.New("siv: message authentication failed")
)
