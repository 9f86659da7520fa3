package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
)

// MaxBlockSize returns the maximum plaintext bytes per RSA block for a
// modulus of keyBits bits: (keyBits - 384)/8 + 7. Both the chunking in
// EncryptBlocks and the reassembly in DecryptBlocks use this bound.
func MaxBlockSize(keyBits int) int {
	return (keyBits-rsaOverheadBits)/BitsPerByte + rsaBlockSlack
}

// EncryptBlocks encrypts plaintext with RSA PKCS#1 v1.5. Plaintexts larger
// than MaxBlockSize for the key are split into ordered blocks, each
// encrypted independently, with RSABlockDelimiter between the resulting
// ciphertext blocks.
func EncryptBlocks(plaintext []byte, pub *rsa.PublicKey) ([]byte, error) {
	maxBlock := MaxBlockSize(pub.Size() * BitsPerByte)
	if maxBlock <= 0 {
		return nil, fmt.Errorf("%w: modulus too small for block encryption", ErrInvalidKey)
	}

	if len(plaintext) <= maxBlock {
		ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, pub, plaintext)
		if err != nil {
			return nil, fmt.Errorf("rsa encrypt: %w", err)
		}
		return ciphertext, nil
	}

	blocks := (len(plaintext) + maxBlock - 1) / maxBlock
	out := make([]byte, 0, blocks*pub.Size()+blocks-1)
	for off := 0; off < len(plaintext); off += maxBlock {
		end := off + maxBlock
		if end > len(plaintext) {
			end = len(plaintext)
		}
		ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, pub, plaintext[off:end])
		if err != nil {
			return nil, fmt.Errorf("rsa encrypt block %d: %w", off/maxBlock, err)
		}
		if off > 0 {
			out = append(out, RSABlockDelimiter)
		}
		out = append(out, ciphertext...)
	}
	return out, nil
}

// DecryptBlocks reverses EncryptBlocks. Ciphertext blocks are exactly the
// modulus size, so reassembly consumes fixed-size blocks in order and
// verifies the delimiter byte between them. Cryptographic failures and
// structural inconsistencies both collapse into ErrDecryptionFailed.
func DecryptBlocks(ciphertext []byte, priv *rsa.PrivateKey) ([]byte, error) {
	k := priv.Size()
	if len(ciphertext) == 0 {
		return nil, ErrDecryptionFailed
	}

	var out []byte
	for off := 0; ; {
		if len(ciphertext)-off < k {
			Wipe(out)
			return nil, ErrDecryptionFailed
		}
		plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, priv, ciphertext[off:off+k])
		if err != nil {
			Wipe(out)
			return nil, ErrDecryptionFailed
		}
		out = append(out, plaintext...)
		Wipe(plaintext)

		off += k
		if off == len(ciphertext) {
			return out, nil
		}
		if ciphertext[off] != RSABlockDelimiter {
			Wipe(out)
			return nil, ErrDecryptionFailed
		}
		off++
	}
}
