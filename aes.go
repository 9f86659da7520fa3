package sealkit

import (
	"fmt"
	"strings"

	"github.com/sealkit/sealkit-go/internal/crypto"
)

// EncryptAES encrypts plaintext with AES-CBC under raw key and iv bytes.
// The key must be 16, 24 or 32 bytes (ErrInvalidKeySize) and the IV exactly
// 16 bytes (ErrInvalidIVSize). Output length is always
// ExpectedAESCipherLength(len(plaintext)).
func EncryptAES(plaintext, key, iv []byte) ([]byte, error) {
	return crypto.EncryptCBC(plaintext, key, iv)
}

// DecryptAES reverses EncryptAES, validating and stripping the padding.
// Inconsistent padding yields ErrDecryptionFailed.
func DecryptAES(ciphertext, key, iv []byte) ([]byte, error) {
	return crypto.DecryptCBC(ciphertext, key, iv)
}

// GenerateAESKey returns a hex-encoded random key of length bytes drawn
// from the process CSPRNG. length must be 16, 24 or 32.
func GenerateAESKey(length int) (string, error) {
	key, err := crypto.GenerateKey(length)
	if err != nil {
		return "", err
	}
	hexKey := crypto.ToHex(key)
	crypto.Wipe(key)
	return hexKey, nil
}

// EncryptAESWithKey encrypts plaintext under a hex-encoded key with a fresh
// random IV. The IV is returned alongside the ciphertext and must travel
// with it; decryption is impossible without it. Results are byte-identical
// to decoding the key and calling EncryptAES directly.
func EncryptAESWithKey(plaintext []byte, hexKey string) (ciphertext, iv []byte, err error) {
	key, err := decodeHexKey(hexKey)
	if err != nil {
		return nil, nil, err
	}
	defer crypto.Wipe(key)

	iv, err = crypto.GenerateIV()
	if err != nil {
		return nil, nil, err
	}

	ciphertext, err = crypto.EncryptCBC(plaintext, key, iv)
	if err != nil {
		return nil, nil, err
	}
	return ciphertext, iv, nil
}

// DecryptAESWithKey decrypts data under a hex-encoded key and IV. The IV is
// accepted in compact ("67e56fee...") or byte-pair-grouped ("67 e5 6f ee...")
// form. FromBase64 and FromHex mark the payload as encoded; base64 decoding
// runs before hex decoding when both are set.
func DecryptAESWithKey(data []byte, hexKey, hexIV string, opts ...DecryptOption) ([]byte, error) {
	cfg := newDecryptConfig(opts)

	payload, err := decodePayload(data, cfg)
	if err != nil {
		return nil, err
	}

	key, err := decodeHexKey(hexKey)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	iv, err := decodeHexIV(hexIV)
	if err != nil {
		return nil, err
	}

	return crypto.DecryptCBC(payload, key, iv)
}

// decodePayload applies the optional base64 and hex decodings, in that order.
func decodePayload(data []byte, cfg decryptConfig) ([]byte, error) {
	payload := data
	if cfg.base64Encoded {
		decoded, err := crypto.FromBase64(strings.TrimSpace(string(payload)))
		if err != nil {
			return nil, err
		}
		payload = decoded
	}
	if cfg.hexEncoded {
		decoded, err := crypto.FromHex(crypto.StripHexSeparators(strings.TrimSpace(string(payload))))
		if err != nil {
			return nil, err
		}
		payload = decoded
	}
	return payload, nil
}

// decodeHexKey decodes and validates a hex-encoded AES key.
func decodeHexKey(hexKey string) ([]byte, error) {
	key, err := crypto.FromHex(hexKey)
	if err != nil {
		return nil, err
	}
	if !crypto.ValidAESKeySize(len(key)) {
		crypto.Wipe(key)
		return nil, fmt.Errorf("%w: got %d bytes, want 16, 24 or 32", ErrInvalidKeySize, len(key))
	}
	return key, nil
}

// decodeHexIV decodes a hex IV in compact or grouped form and validates its
// size.
func decodeHexIV(hexIV string) ([]byte, error) {
	iv, err := crypto.FromHex(crypto.StripHexSeparators(hexIV))
	if err != nil {
		return nil, err
	}
	if len(iv) != crypto.AESBlockSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIVSize, len(iv), crypto.AESBlockSize)
	}
	return iv, nil
}
