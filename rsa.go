package sealkit

import (
	"github.com/sealkit/sealkit-go/internal/crypto"
)

// KeyPair is an RSA key pair as PEM text. It is produced only by key
// generation and never mutated afterwards; the caller owns it and is
// responsible for secure storage and disposal of the private half.
type KeyPair struct {
	// PrivateKey is the PEM-encoded private key ("RSA PRIVATE KEY",
	// encrypted when a passphrase was supplied at generation).
	PrivateKey string
	// PublicKey is the PEM-encoded public key ("PUBLIC KEY").
	PublicKey string
}

// MaxRSABlockSize returns the maximum plaintext bytes a single RSA block
// can carry for a modulus of keyBits bits: (keyBits - 384)/8 + 7. For 2048
// bits this is 215; larger plaintexts are split into multiple blocks.
func MaxRSABlockSize(keyBits int) int {
	return crypto.MaxBlockSize(keyBits)
}

// EncryptRSA encrypts plaintext with the PEM-encoded public key using RSA
// PKCS#1 v1.5. Plaintexts above MaxRSABlockSize for the key are split into
// ordered blocks, each encrypted independently, joined by a single ':'
// between ciphertext blocks. Malformed PEM yields ErrInvalidKey.
func EncryptRSA(plaintext, publicKeyPEM []byte) ([]byte, error) {
	pub, err := crypto.ParsePublicKey(publicKeyPEM)
	if err != nil {
		return nil, err
	}
	return crypto.EncryptBlocks(plaintext, pub)
}

// DecryptRSA reverses EncryptRSA, reassembling multi-block ciphertexts in
// order. WithPassphrase unlocks a protected private key
// (ErrWrongPassphrase when it cannot be unlocked); FromBase64 and FromHex
// mark the payload as encoded, base64 first. Malformed PEM yields
// ErrInvalidKey and cryptographic failure ErrDecryptionFailed.
func DecryptRSA(data, privateKeyPEM []byte, opts ...DecryptOption) ([]byte, error) {
	cfg := newDecryptConfig(opts)

	payload, err := decodePayload(data, cfg)
	if err != nil {
		return nil, err
	}

	priv, err := crypto.ParsePrivateKey(privateKeyPEM, cfg.passphrase)
	if err != nil {
		return nil, err
	}

	return crypto.DecryptBlocks(payload, priv)
}

// GenerateRSAKeyPair generates a fresh RSA key pair. The modulus defaults
// to 2048 bits (WithBits overrides) and the private key is unprotected
// unless WithKeyPassphrase is given. Unsupported sizes and randomness
// failures yield ErrKeyGenerationFailed.
func GenerateRSAKeyPair(opts ...KeyPairOption) (*KeyPair, error) {
	cfg := newKeyPairConfig(opts)

	privatePEM, publicPEM, err := crypto.GenerateKeyPair(cfg.bits, cfg.passphrase)
	if err != nil {
		return nil, err
	}
	return &KeyPair{PrivateKey: privatePEM, PublicKey: publicPEM}, nil
}
