package sealkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptAES_ZeroKeyFixture(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)

	ciphertext, err := EncryptAES([]byte("hello"), key, iv)
	require.NoError(t, err)
	assert.Len(t, ciphertext, 16)

	plaintext, err := DecryptAES(ciphertext, key, iv)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), plaintext)
}

func TestGenerateAESKey(t *testing.T) {
	for _, length := range []int{16, 24, 32} {
		hexKey, err := GenerateAESKey(length)
		require.NoError(t, err)
		assert.Len(t, hexKey, length*2)

		key, err := HexDecode(hexKey)
		require.NoError(t, err)
		assert.Len(t, key, length)
	}

	_, err := GenerateAESKey(20)
	assert.ErrorIs(t, err, ErrInvalidKeySize)
}

func TestEncryptAESWithKey_MatchesPrimitive(t *testing.T) {
	hexKey, err := GenerateAESKey(32)
	require.NoError(t, err)

	data := []byte("convenience and primitive must agree")
	ciphertext, iv, err := EncryptAESWithKey(data, hexKey)
	require.NoError(t, err)
	require.Len(t, iv, 16)

	key, err := HexDecode(hexKey)
	require.NoError(t, err)
	direct, err := EncryptAES(data, key, iv)
	require.NoError(t, err)
	assert.Equal(t, direct, ciphertext)
}

func TestDecryptAESWithKey(t *testing.T) {
	hexKey, err := GenerateAESKey(16)
	require.NoError(t, err)

	data := []byte("round trip through the hex-key convenience")
	ciphertext, iv, err := EncryptAESWithKey(data, hexKey)
	require.NoError(t, err)
	hexIV := HexEncode(iv)

	t.Run("raw ciphertext", func(t *testing.T) {
		plaintext, err := DecryptAESWithKey(ciphertext, hexKey, hexIV)
		require.NoError(t, err)
		assert.Equal(t, data, plaintext)
	})

	t.Run("grouped iv", func(t *testing.T) {
		grouped, err := NormalizeHex(hexIV)
		require.NoError(t, err)
		plaintext, err := DecryptAESWithKey(ciphertext, hexKey, grouped)
		require.NoError(t, err)
		assert.Equal(t, data, plaintext)
	})

	t.Run("base64 payload", func(t *testing.T) {
		encoded := []byte(Base64Encode(ciphertext))
		plaintext, err := DecryptAESWithKey(encoded, hexKey, hexIV, FromBase64())
		require.NoError(t, err)
		assert.Equal(t, data, plaintext)
	})

	t.Run("hex payload", func(t *testing.T) {
		encoded := []byte(HexEncode(ciphertext))
		plaintext, err := DecryptAESWithKey(encoded, hexKey, hexIV, FromHex())
		require.NoError(t, err)
		assert.Equal(t, data, plaintext)
	})

	t.Run("base64 then hex payload", func(t *testing.T) {
		encoded := []byte(Base64Encode([]byte(HexEncode(ciphertext))))
		plaintext, err := DecryptAESWithKey(encoded, hexKey, hexIV, FromBase64(), FromHex())
		require.NoError(t, err)
		assert.Equal(t, data, plaintext)
	})
}

func TestDecryptAESWithKey_Errors(t *testing.T) {
	hexKey, err := GenerateAESKey(16)
	require.NoError(t, err)
	ciphertext, iv, err := EncryptAESWithKey([]byte("data"), hexKey)
	require.NoError(t, err)
	hexIV := HexEncode(iv)

	t.Run("bad key hex", func(t *testing.T) {
		_, err := DecryptAESWithKey(ciphertext, "not-hex", hexIV)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("wrong key size", func(t *testing.T) {
		_, err := DecryptAESWithKey(ciphertext, "abcdef", hexIV)
		assert.ErrorIs(t, err, ErrInvalidKeySize)
	})

	t.Run("short iv", func(t *testing.T) {
		_, err := DecryptAESWithKey(ciphertext, hexKey, "abcd")
		assert.ErrorIs(t, err, ErrInvalidIVSize)
	})

	t.Run("bad base64 payload", func(t *testing.T) {
		_, err := DecryptAESWithKey([]byte("!!!"), hexKey, hexIV, FromBase64())
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})
}

func TestEncryptAES_KeyUnmodified(t *testing.T) {
	// The library must not wipe caller-owned buffers.
	key := []byte(strings.Repeat("k", 16))
	iv := []byte(strings.Repeat("i", 16))

	_, err := EncryptAES([]byte("data"), key, iv)
	require.NoError(t, err)
	assert.Equal(t, []byte(strings.Repeat("k", 16)), key)
	assert.Equal(t, []byte(strings.Repeat("i", 16)), iv)
}
