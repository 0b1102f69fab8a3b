package kmac

import "errors"

// maxEncodingMagnitude is the largest number of magnitude bytes SP 800-185
// allows a left_encode/right_encode length prefix to occupy.
const maxEncodingMagnitude = 255

var (
	// ErrKeyLength is returned by SetKey when the key is not between 4
	// and 255 bytes.
	ErrKeyLength = errors.New("kmac: key must be between 4 and 255 bytes")

	// ErrCustomLength is returned by SetCustom when the customization
	// string exceeds 127 bytes.
	ErrCustomLength = errors.New("kmac: customization string must be at most 127 bytes")

	// ErrEncodingOverflow is returned when an SP 800-185 length prefix
	// would need more than maxEncodingMagnitude (255) magnitude bytes, so
	// that its byte count no longer fits in the one count byte.
	ErrEncodingOverflow = errors.New("kmac: length prefix exceeds one byte of magnitude")

	// ErrKeyNotSet is returned by Init when no key has been configured.
	ErrKeyNotSet = errors.New("kmac: init called before a key was set")

	// ErrNotInitialized is returned by Write or Final before Init has run.
	ErrNotInitialized = errors.New("kmac: write/final called before init")

	// ErrBufferTooSmall is returned by Final when buf is shorter than the
	// configured output length.
	ErrBufferTooSmall = errors.New("kmac: output buffer smaller than the configured output length")
)
