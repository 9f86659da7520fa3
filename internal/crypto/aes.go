package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
)

// EncryptCBC encrypts plaintext with AES-CBC under key and iv. The key must
// be 16, 24 or 32 bytes and the IV exactly one block. Output length is
// ExpectedAESCipherLength(len(plaintext)).
func EncryptCBC(plaintext, key, iv []byte) ([]byte, error) {
	if !ValidAESKeySize(len(key)) {
		return nil, fmt.Errorf("%w: got %d, want 16, 24 or 32", ErrInvalidKeySize, len(key))
	}
	if len(iv) != AESBlockSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVSize, len(iv), AESBlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, AESBlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	Wipe(padded)

	return ciphertext, nil
}

// DecryptCBC reverses EncryptCBC, validating and stripping the padding.
// Any padding or alignment inconsistency yields ErrDecryptionFailed.
func DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	if !ValidAESKeySize(len(key)) {
		return nil, fmt.Errorf("%w: got %d, want 16, 24 or 32", ErrInvalidKeySize, len(key))
	}
	if len(iv) != AESBlockSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVSize, len(iv), AESBlockSize)
	}
	if len(ciphertext) == 0 || len(ciphertext)%AESBlockSize != 0 {
		return nil, ErrDecryptionFailed
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, AESBlockSize)
	if err != nil {
		Wipe(padded)
		return nil, err
	}
	return plaintext, nil
}

// GenerateKey returns length random key bytes from the process CSPRNG.
// length must be 16, 24 or 32.
func GenerateKey(length int) ([]byte, error) {
	if !ValidAESKeySize(length) {
		return nil, fmt.Errorf("%w: got %d, want 16, 24 or 32", ErrInvalidKeySize, length)
	}
	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGenerationFailed, err)
	}
	return key, nil
}

// GenerateIV returns a fresh random initialization vector of one AES block.
func GenerateIV() ([]byte, error) {
	iv := make([]byte, AESBlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGenerationFailed, err)
	}
	return iv, nil
}

// pkcs7Pad appends PKCS#7 padding. The pad is always 1..blockSize bytes;
// block-aligned input gets a full extra block.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs7Unpad validates and strips PKCS#7 padding. The last block is checked
// in constant time and every failure returns the same generic error.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrDecryptionFailed
	}

	pad := data[len(data)-1]
	padLen := int(pad)

	good := subtle.ConstantTimeLessOrEq(1, padLen)
	good &= subtle.ConstantTimeLessOrEq(padLen, blockSize)
	for i := 0; i < blockSize; i++ {
		inPad := subtle.ConstantTimeLessOrEq(i+1, padLen)
		match := subtle.ConstantTimeByteEq(data[len(data)-1-i], pad)
		good &= subtle.ConstantTimeSelect(inPad, match, 1)
	}
	if good != 1 {
		return nil, ErrDecryptionFailed
	}

	return data[:len(data)-padLen], nil
}
