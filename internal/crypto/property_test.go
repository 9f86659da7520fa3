package crypto

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCodecInvariants verifies the codec properties the envelope format
// depends on: exact length prediction and lossless round trips.
func TestCodecInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("base64 round trip is identity", prop.ForAll(
		func(data []byte) bool {
			decoded, err := FromBase64(ToBase64(data))
			return err == nil && bytes.Equal(decoded, data)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("base64 length formula matches output", prop.ForAll(
		func(data []byte) bool {
			return len(ToBase64(data)) == ExpectedBase64Length(len(data))
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("hex round trip is identity", prop.ForAll(
		func(data []byte) bool {
			decoded, err := FromHex(ToHex(data))
			return err == nil && bytes.Equal(decoded, data)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("normalized hex strips back to the compact form", prop.ForAll(
		func(data []byte) bool {
			grouped, err := NormalizeHex(ToHex(data))
			return err == nil && StripHexSeparators(grouped) == ToHex(data)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

// TestCBCInvariants verifies the AES-CBC round-trip and length contracts
// across all key sizes and arbitrary plaintexts.
func TestCBCInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	keySizeGen := gen.OneConstOf(16, 24, 32)

	properties.Property("decrypt inverts encrypt", prop.ForAll(
		func(plaintext []byte, keySize int) bool {
			key, err := GenerateKey(keySize)
			if err != nil {
				return false
			}
			iv, err := GenerateIV()
			if err != nil {
				return false
			}
			ciphertext, err := EncryptCBC(plaintext, key, iv)
			if err != nil {
				return false
			}
			decrypted, err := DecryptCBC(ciphertext, key, iv)
			return err == nil && bytes.Equal(decrypted, plaintext)
		},
		gen.SliceOf(gen.UInt8()),
		keySizeGen,
	))

	properties.Property("ciphertext length matches formula", prop.ForAll(
		func(plaintext []byte) bool {
			key, err := GenerateKey(16)
			if err != nil {
				return false
			}
			iv, err := GenerateIV()
			if err != nil {
				return false
			}
			ciphertext, err := EncryptCBC(plaintext, key, iv)
			return err == nil && len(ciphertext) == ExpectedAESCipherLength(len(plaintext))
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

// TestRSAInvariants verifies the chunked RSA round trip for plaintexts on
// both sides of the block boundary.
func TestRSAInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping RSA property test in short mode")
	}

	key, _ := testKeys(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	// Sizes 0..300 cross the 87-byte single-block bound of the 1024-bit
	// test key several times over.
	properties.Property("decrypt inverts encrypt across block sizes", prop.ForAll(
		func(n int, fill byte) bool {
			plaintext := bytes.Repeat([]byte{fill}, n)
			ciphertext, err := EncryptBlocks(plaintext, &key.PublicKey)
			if err != nil {
				return false
			}
			decrypted, err := DecryptBlocks(ciphertext, key)
			return err == nil && bytes.Equal(decrypted, plaintext)
		},
		gen.IntRange(0, 300),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
