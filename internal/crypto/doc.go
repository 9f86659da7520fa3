// Package crypto provides the cryptographic primitives behind the sealkit
// public API: AES-CBC with PKCS#7 padding, block-size-constrained RSA
// PKCS#1 v1.5, PEM key handling, and the hex/base64 codecs whose length
// formulas the envelope format depends on.
//
// # Algorithm Suite
//
//   - AES-CBC (128/192/256-bit keys) with PKCS#7 padding that always appends
//     a full block, so ciphertext length is (n/16 + 1) * 16 for an n-byte
//     plaintext.
//
//   - RSA PKCS#1 v1.5 encryption. Plaintexts larger than
//     MaxBlockSize(keyBits) are split into ordered blocks, each encrypted
//     independently and joined with a single delimiter byte.
//
//   - PEM key material: PKCS#1 private keys ("RSA PRIVATE KEY"), PKIX public
//     keys ("PUBLIC KEY"), with OpenSSL-style passphrase-encrypted private
//     keys supported on both the read and write path.
//
// # Critical Security Notes
//
// CBC IVs MUST be unique for each encryption under the same key. IV reuse
// leaks whether plaintext prefixes repeat across messages. GenerateIV draws
// from crypto/rand; callers supplying their own IV are responsible for
// freshness.
//
// Padding validation on decrypt is constant-time and all padding failures
// collapse into the single ErrDecryptionFailed sentinel, so a decryption
// oracle cannot distinguish which check failed.
//
// Intermediate buffers holding key material or plaintext are zeroized with
// Wipe on every exit path, including errors.
package crypto
