package crypto

const (
	// AESBlockSize is the AES cipher block size in bytes. CBC IVs must be
	// exactly this long.
	AESBlockSize = 16

	// BitsPerByte converts between key sizes expressed in bits and bytes.
	BitsPerByte = 8

	// DefaultRSABits is the modulus size used when key generation is not
	// given an explicit size.
	DefaultRSABits = 2048

	// MinRSABits is the smallest modulus size accepted by key generation.
	// Below this the block arithmetic degenerates and the key is useless
	// for the chunked encryption format anyway.
	MinRSABits = 1024

	// RSABlockDelimiter separates independently encrypted RSA blocks in a
	// multi-block ciphertext. Ciphertext blocks are fixed-size, so
	// reassembly consumes modulus-sized blocks and verifies this byte
	// between them rather than scanning for it.
	RSABlockDelimiter = ':'

	// rsaOverheadBits and rsaBlockSlack are the components of the
	// MaxBlockSize formula: (keyBits - 384)/8 + 7. The formula is a wire
	// contract shared with other implementations of the format; it is more
	// conservative than the PKCS#1 v1.5 capacity of k-11 bytes.
	rsaOverheadBits = 384
	rsaBlockSlack   = 7
)

// ValidAESKeySize reports whether n is a supported AES key size in bytes
// (16, 24 or 32 for AES-128/192/256).
func ValidAESKeySize(n int) bool {
	switch n {
	case 16, 24, 32:
		return true
	}
	return false
}
