package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// ToHex encodes data as lowercase hex, two characters per byte.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes a compact hex string. Odd length or a non-hex character
// yields ErrInvalidEncoding.
func FromHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return data, nil
}

// StripHexSeparators removes the space and colon separators that grouped hex
// strings carry, returning the compact form.
func StripHexSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == ':' {
			return -1
		}
		return r
	}, s)
}

// NormalizeHex rewrites a hex string into its canonical byte-pair-grouped
// form, pairs joined by single spaces: "67e56fee" becomes "67 e5 6f ee".
// Input may be compact or already grouped with spaces or colons; output is
// lowercase. Odd length or a non-hex character yields ErrInvalidEncoding.
func NormalizeHex(s string) (string, error) {
	compact := strings.ToLower(StripHexSeparators(s))
	if len(compact)%2 != 0 {
		return "", fmt.Errorf("%w: odd-length hex string", ErrInvalidEncoding)
	}
	if _, err := hex.DecodeString(compact); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	var b strings.Builder
	if len(compact) > 0 {
		b.Grow(len(compact) + len(compact)/2 - 1)
	}
	for i := 0; i < len(compact); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(compact[i : i+2])
	}
	return b.String(), nil
}

// ToBase64 encodes data as standard base64 with padding (RFC 4648 §4).
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard padded base64. Malformed input (bad padding,
// invalid alphabet) yields ErrInvalidEncoding.
func FromBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return data, nil
}

// ExpectedBase64Length returns the exact length of ToBase64 output for an
// n-byte input.
func ExpectedBase64Length(n int) int {
	return (4*n/3 + 3) &^ 0x03
}

// ExpectedAESCipherLength returns the exact ciphertext length produced by
// EncryptCBC for an n-byte plaintext. Padding always appends at least one
// byte, so block-aligned input still grows by a full block.
func ExpectedAESCipherLength(n int) int {
	return (n/AESBlockSize + 1) * AESBlockSize
}
