// Package zeroize provides a compiler-opaque memory wipe for sensitive
// cryptographic buffers shared by the siv and kmac packages.
package zeroize

import "runtime"

// Bytes overwrites b with zero bytes. The runtime.KeepAlive call prevents
// the compiler from eliding the write as dead code, the same trick used by
// OPENSSL_cleanse and its Go-side equivalents.
//
//go:noinline
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
