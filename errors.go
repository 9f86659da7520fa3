package sealkit

import (
	"errors"

	"github.com/sealkit/sealkit-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks. The cipher-level sentinels share
// identity with the internal primitives so a wrapped error from any depth
// matches the public name.
var (
	// ErrInvalidKeySize is returned when an AES key is not 16, 24 or 32 bytes.
	ErrInvalidKeySize = crypto.ErrInvalidKeySize

	// ErrInvalidIVSize is returned when an initialization vector is not
	// exactly 16 bytes.
	ErrInvalidIVSize = crypto.ErrInvalidIVSize

	// ErrInvalidEncoding is returned when hex or base64 input is malformed.
	ErrInvalidEncoding = crypto.ErrInvalidEncoding

	// ErrDecryptionFailed is returned for any cryptographic failure during
	// decryption. It is deliberately generic: padding and integrity
	// failures are indistinguishable to the caller.
	ErrDecryptionFailed = crypto.ErrDecryptionFailed

	// ErrKeyGenerationFailed is returned when a key pair or symmetric key
	// cannot be generated.
	ErrKeyGenerationFailed = crypto.ErrKeyGenerationFailed

	// ErrInvalidKey is returned when PEM key material is malformed or not
	// an RSA key.
	ErrInvalidKey = crypto.ErrInvalidKey

	// ErrWrongPassphrase is returned when a passphrase-protected private
	// key cannot be unlocked.
	ErrWrongPassphrase = crypto.ErrWrongPassphrase

	// ErrMalformedEnvelope is returned when envelope text cannot be parsed:
	// wrong field count, non-numeric length, undecodable IV or payload, or
	// a length field that does not match the decoded payload.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrKeyFileIO is returned when a key file cannot be written or read.
	// A partial write (one file written, one failed) is reported as this
	// error and is not rolled back; callers should re-attempt both files.
	ErrKeyFileIO = errors.New("key file I/O failed")
)
