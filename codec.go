package sealkit

import "github.com/sealkit/sealkit-go/internal/crypto"

// HexEncode encodes data as lowercase hex, two characters per byte.
func HexEncode(data []byte) string {
	return crypto.ToHex(data)
}

// HexDecode decodes a compact hex string. Odd length or a non-hex character
// yields ErrInvalidEncoding.
func HexDecode(s string) ([]byte, error) {
	return crypto.FromHex(s)
}

// NormalizeHex rewrites a hex string into canonical byte-pair-grouped form:
// "67e56fee" becomes "67 e5 6f ee". Already-grouped input (space- or
// colon-separated) is accepted and re-canonicalized. Odd length or a non-hex
// character yields ErrInvalidEncoding.
func NormalizeHex(s string) (string, error) {
	return crypto.NormalizeHex(s)
}

// Base64Encode encodes data as standard base64 with padding.
func Base64Encode(data []byte) string {
	return crypto.ToBase64(data)
}

// Base64Decode decodes standard padded base64; malformed input yields
// ErrInvalidEncoding.
func Base64Decode(s string) ([]byte, error) {
	return crypto.FromBase64(s)
}

// ExpectedBase64Length returns the exact Base64Encode output length for an
// n-byte input.
func ExpectedBase64Length(n int) int {
	return crypto.ExpectedBase64Length(n)
}

// ExpectedAESCipherLength returns the exact EncryptAES output length for an
// n-byte plaintext: (n/16 + 1) * 16.
func ExpectedAESCipherLength(n int) int {
	return crypto.ExpectedAESCipherLength(n)
}
