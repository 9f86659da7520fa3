package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"golang.org/x/crypto/ssh"
)

const (
	pemTypePrivate = "RSA PRIVATE KEY"
	pemTypePublic  = "PUBLIC KEY"
)

// GenerateKeyPair creates a fresh RSA key pair of the given modulus size and
// returns both halves as PEM text. A non-empty passphrase produces an
// OpenSSL-style encrypted private key block (AES-256-CBC).
func GenerateKeyPair(bits int, passphrase string) (privatePEM, publicPEM string, err error) {
	if bits < MinRSABits {
		return "", "", fmt.Errorf("%w: %d bits (minimum %d)", ErrKeyGenerationFailed, bits, MinRSABits)
	}

	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrKeyGenerationFailed, err)
	}

	privatePEM, err = EncodePrivateKey(key, passphrase)
	if err != nil {
		return "", "", err
	}
	publicPEM, err = EncodePublicKey(&key.PublicKey)
	if err != nil {
		return "", "", err
	}
	return privatePEM, publicPEM, nil
}

// EncodePrivateKey renders key as a PKCS#1 "RSA PRIVATE KEY" PEM block,
// encrypted with passphrase when one is given.
func EncodePrivateKey(key *rsa.PrivateKey, passphrase string) (string, error) {
	der := x509.MarshalPKCS1PrivateKey(key)
	block := &pem.Block{Type: pemTypePrivate, Bytes: der}

	if passphrase != "" {
		encrypted, err := x509.EncryptPEMBlock(rand.Reader, pemTypePrivate, der, []byte(passphrase), x509.PEMCipherAES256)
		if err != nil {
			Wipe(der)
			return "", fmt.Errorf("%w: %v", ErrKeyGenerationFailed, err)
		}
		Wipe(der)
		block = encrypted
	}

	return string(pem.EncodeToMemory(block)), nil
}

// EncodePublicKey renders pub as a PKIX "PUBLIC KEY" PEM block.
func EncodePublicKey(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyGenerationFailed, err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypePublic, Bytes: der})), nil
}

// ParsePublicKey parses a PEM-encoded RSA public key. Both PKIX
// ("PUBLIC KEY") and PKCS#1 ("RSA PUBLIC KEY") blocks are accepted.
func ParsePublicKey(pemText []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemText)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidKey)
	}

	switch block.Type {
	case pemTypePublic:
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		pub, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA public key", ErrInvalidKey)
		}
		return pub, nil
	case "RSA PUBLIC KEY":
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		return pub, nil
	default:
		return nil, fmt.Errorf("%w: unexpected PEM type %q", ErrInvalidKey, block.Type)
	}
}

// ParsePrivateKey parses a PEM-encoded RSA private key, unlocking it with
// passphrase when the block is encrypted. PKCS#1, PKCS#8 and OpenSSH key
// formats are accepted. A protected key with a missing or incorrect
// passphrase yields ErrWrongPassphrase; any other parse failure yields
// ErrInvalidKey.
func ParsePrivateKey(pemText []byte, passphrase string) (*rsa.PrivateKey, error) {
	key, err := ssh.ParseRawPrivateKey(pemText)
	if err != nil {
		var missing *ssh.PassphraseMissingError
		if !errors.As(err, &missing) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		if passphrase == "" {
			return nil, fmt.Errorf("%w: key is passphrase-protected", ErrWrongPassphrase)
		}
		key, err = ssh.ParseRawPrivateKeyWithPassphrase(pemText, []byte(passphrase))
		if err != nil {
			if errors.Is(err, x509.IncorrectPasswordError) {
				return nil, fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
	}

	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key", ErrInvalidKey)
	}
	return priv, nil
}
