package sealkit

import "github.com/sealkit/sealkit-go/internal/crypto"

// decryptConfig holds configuration for the decrypt conveniences.
type decryptConfig struct {
	base64Encoded bool
	hexEncoded    bool
	passphrase    string
}

// keyPairConfig holds configuration for RSA key-pair generation.
type keyPairConfig struct {
	bits       int
	passphrase string
}

// envelopeConfig holds configuration for envelope construction.
type envelopeConfig struct {
	clientID string
}

// DecryptOption configures DecryptAESWithKey and DecryptRSA.
type DecryptOption func(*decryptConfig)

// KeyPairOption configures RSA key-pair generation.
type KeyPairOption func(*keyPairConfig)

// EnvelopeOption configures PrepareData.
type EnvelopeOption func(*envelopeConfig)

// FromBase64 marks the payload as base64-encoded. Decoding happens before
// hex decoding when both options are set.
func FromBase64() DecryptOption {
	return func(c *decryptConfig) {
		c.base64Encoded = true
	}
}

// FromHex marks the payload as hex-encoded. When combined with FromBase64,
// base64 decoding runs first.
func FromHex() DecryptOption {
	return func(c *decryptConfig) {
		c.hexEncoded = true
	}
}

// WithPassphrase supplies the secret that unlocks a passphrase-protected
// private key. Only DecryptRSA consults it; the default is an empty
// passphrase, which only opens unprotected keys.
func WithPassphrase(secret string) DecryptOption {
	return func(c *decryptConfig) {
		c.passphrase = secret
	}
}

// WithBits sets the RSA modulus size in bits. The default is 2048.
func WithBits(bits int) KeyPairOption {
	return func(c *keyPairConfig) {
		c.bits = bits
	}
}

// WithKeyPassphrase encrypts the generated private key PEM under secret
// (OpenSSL-style AES-256-CBC block encryption). The default is an
// unprotected key.
func WithKeyPassphrase(secret string) KeyPairOption {
	return func(c *keyPairConfig) {
		c.passphrase = secret
	}
}

// WithClientID inserts id as the optional envelope field immediately before
// the payload. The id must not contain the envelope delimiter. The default
// is no client id (a three-field envelope).
func WithClientID(id string) EnvelopeOption {
	return func(c *envelopeConfig) {
		c.clientID = id
	}
}

func newDecryptConfig(opts []DecryptOption) decryptConfig {
	var cfg decryptConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func newKeyPairConfig(opts []KeyPairOption) keyPairConfig {
	cfg := keyPairConfig{bits: crypto.DefaultRSABits}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func newEnvelopeConfig(opts []EnvelopeOption) envelopeConfig {
	var cfg envelopeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
