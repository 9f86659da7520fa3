package sealkit

import (
	"errors"
	"fmt"
	"os"

	"github.com/sealkit/sealkit-go/internal/crypto"
)

// WriteRSAKeyPair generates a key pair and writes each PEM to its path, the
// public key world-readable and the private key owner-only. A write failure
// yields an error wrapping ErrKeyFileIO naming the failing path. Partial
// writes are not rolled back: if the public key was written and the private
// write failed, the public file remains and the caller should re-attempt
// both.
func WriteRSAKeyPair(publicPath, privatePath string, opts ...KeyPairOption) error {
	pair, err := GenerateRSAKeyPair(opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(publicPath, []byte(pair.PublicKey), 0o644); err != nil {
		return fmt.Errorf("%w: write public key %s: %v", ErrKeyFileIO, publicPath, err)
	}
	if err := os.WriteFile(privatePath, []byte(pair.PrivateKey), 0o600); err != nil {
		return fmt.Errorf("%w: write private key %s: %v", ErrKeyFileIO, privatePath, err)
	}
	return nil
}

// ReadRSAKeyPair reads a key pair previously written by WriteRSAKeyPair,
// validating both PEMs. A passphrase-protected private key is accepted
// without unlocking it; pass the secret to DecryptRSA when using it.
func ReadRSAKeyPair(publicPath, privatePath string) (*KeyPair, error) {
	publicPEM, err := os.ReadFile(publicPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read public key %s: %v", ErrKeyFileIO, publicPath, err)
	}
	privatePEM, err := os.ReadFile(privatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: read private key %s: %v", ErrKeyFileIO, privatePath, err)
	}

	if _, err := crypto.ParsePublicKey(publicPEM); err != nil {
		return nil, err
	}
	if _, err := crypto.ParsePrivateKey(privatePEM, ""); err != nil && !errors.Is(err, ErrWrongPassphrase) {
		return nil, err
	}

	return &KeyPair{PrivateKey: string(privatePEM), PublicKey: string(publicPEM)}, nil
}

// GenerateRSAKeyPairBase64 generates a key pair and returns it as a single
// transportable string: base64 of the private PEM, the delimiter, base64 of
// the public PEM.
func GenerateRSAKeyPairBase64(opts ...KeyPairOption) (string, error) {
	pair, err := GenerateRSAKeyPair(opts...)
	if err != nil {
		return "", err
	}
	return crypto.ToBase64([]byte(pair.PrivateKey)) + string(DataDelimiter) + crypto.ToBase64([]byte(pair.PublicKey)), nil
}
