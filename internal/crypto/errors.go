package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when an AES key is not 16, 24 or 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when an initialization vector is not
	// exactly one AES block (16 bytes).
	ErrInvalidIVSize = errors.New("invalid iv size")

	// ErrInvalidEncoding is returned when hex or base64 input is malformed.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrDecryptionFailed is returned for any cryptographic failure during
	// decryption, including padding inconsistencies. It is deliberately
	// generic so callers cannot tell which check failed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrKeyGenerationFailed is returned when key material cannot be
	// generated, either because the requested size is unsupported or the
	// random source failed.
	ErrKeyGenerationFailed = errors.New("key generation failed")

	// ErrInvalidKey is returned when PEM key material cannot be parsed or
	// is not an RSA key.
	ErrInvalidKey = errors.New("invalid key")

	// ErrWrongPassphrase is returned when a passphrase-protected private
	// key cannot be unlocked, including when no passphrase was supplied.
	ErrWrongPassphrase = errors.New("wrong passphrase")
)
