// Package sealkit is a cryptographic helper library offering AES-CBC and
// RSA encryption together with a self-describing text envelope for moving
// encrypted payloads through pipelines that share no structured protocol
// (log shippers, message relays, flat transports).
//
// The envelope is a compact colon-delimited ASCII value:
//
//	<cipherLength>:<ivHex>:[<clientId>:]<base64Payload>
//
// where cipherLength is the decimal byte length of the raw ciphertext, ivHex
// is the 32-character hex of the CBC initialization vector, and the optional
// clientId is an opaque tag for the consumer. ExpectedDataSize predicts the
// envelope length exactly, so producers can pre-size buffers.
//
// Basic usage:
//
//	hexKey, err := sealkit.GenerateAESKey(32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	envelope, err := sealkit.PrepareData([]byte("payload"), hexKey,
//	    sealkit.WithClientID("client1"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// ... transport the envelope as opaque text ...
//
//	plaintext, err := sealkit.OpenEnvelope(envelope, hexKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// RSA operations chunk plaintexts larger than MaxRSABlockSize into
// independently encrypted blocks, and the key management helpers
// (GenerateRSAKeyPair, WriteRSAKeyPair, GenerateRSAKeyPairBase64) cover key
// creation and persistence. All operations are synchronous, pure with
// respect to their inputs, and safe for concurrent use; key material is
// caller-owned and never retained between calls.
package sealkit
