package sealkit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sealkit/sealkit-go/internal/crypto"
)

// DataDelimiter separates envelope fields and the halves of
// GenerateRSAKeyPairBase64 output.
const DataDelimiter byte = ':'

// Envelope is a parsed transport envelope. The text form is
// <cipherLength>:<ivHex>:[<clientId>:]<base64Payload>.
type Envelope struct {
	// CipherLength is the declared byte length of the raw ciphertext. Parse
	// guarantees it equals len(Ciphertext).
	CipherLength int
	// IV is the 16-byte CBC initialization vector.
	IV []byte
	// ClientID is the optional opaque tag; empty in the three-field form.
	ClientID string
	// Ciphertext is the base64-decoded AES ciphertext.
	Ciphertext []byte
}

// PrepareData AES-encrypts data under the hex-encoded key with a fresh
// random IV and emits the self-describing envelope text. WithClientID adds
// the optional field before the payload; ids containing the delimiter are
// rejected. The output length equals ExpectedDataSize(len(data), len(id)).
func PrepareData(data []byte, hexKey string, opts ...EnvelopeOption) (string, error) {
	cfg := newEnvelopeConfig(opts)
	if strings.ContainsRune(cfg.clientID, rune(DataDelimiter)) {
		return "", fmt.Errorf("%w: client id must not contain %q", ErrMalformedEnvelope, DataDelimiter)
	}

	key, err := decodeHexKey(hexKey)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(key)

	iv, err := crypto.GenerateIV()
	if err != nil {
		return "", err
	}

	ciphertext, err := crypto.EncryptCBC(data, key, iv)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(ExpectedDataSize(len(data), len(cfg.clientID)))
	b.WriteString(strconv.Itoa(len(ciphertext)))
	b.WriteByte(DataDelimiter)
	b.WriteString(crypto.ToHex(iv))
	b.WriteByte(DataDelimiter)
	if cfg.clientID != "" {
		b.WriteString(cfg.clientID)
		b.WriteByte(DataDelimiter)
	}
	b.WriteString(crypto.ToBase64(ciphertext))
	return b.String(), nil
}

// ExpectedDataSize predicts the exact PrepareData output length for a
// plaintext of plainSize bytes and a client id of clientIDSize characters.
// Pass 0 for the three-field form without a client id.
func ExpectedDataSize(plainSize, clientIDSize int) int {
	cipherLen := crypto.ExpectedAESCipherLength(plainSize)
	size := numDigits(cipherLen) + 1
	// 32 hex chars for the 16-byte IV, plus its delimiter.
	size += 2*crypto.AESBlockSize + 1
	if clientIDSize > 0 {
		size += clientIDSize + 1
	}
	return size + crypto.ExpectedBase64Length(cipherLen)
}

// parseState drives the envelope field state machine.
type parseState int

const (
	expectLength parseState = iota
	expectIV
	expectClientIDOrPayload
	expectPayload
	parseDone
)

// ParseEnvelope parses envelope text into its fields, decoding the IV and
// payload and validating the declared ciphertext length against the decoded
// payload. Structural problems yield ErrMalformedEnvelope.
func ParseEnvelope(envelope string) (*Envelope, error) {
	fields := strings.Split(envelope, string(DataDelimiter))
	if len(fields) != 3 && len(fields) != 4 {
		return nil, fmt.Errorf("%w: want 3 or 4 fields, got %d", ErrMalformedEnvelope, len(fields))
	}

	env := &Envelope{}
	state := expectLength
	for i, field := range fields {
		last := i == len(fields)-1

		switch state {
		case expectLength:
			n, err := strconv.Atoi(field)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%w: bad cipher length %q", ErrMalformedEnvelope, field)
			}
			env.CipherLength = n
			state = expectIV

		case expectIV:
			iv, err := decodeHexIV(field)
			if err != nil {
				return nil, fmt.Errorf("%w: bad iv: %v", ErrMalformedEnvelope, err)
			}
			env.IV = iv
			state = expectClientIDOrPayload

		case expectClientIDOrPayload, expectPayload:
			if state == expectClientIDOrPayload && !last {
				if field == "" {
					return nil, fmt.Errorf("%w: empty client id", ErrMalformedEnvelope)
				}
				env.ClientID = field
				state = expectPayload
				continue
			}
			ciphertext, err := crypto.FromBase64(field)
			if err != nil {
				return nil, fmt.Errorf("%w: bad payload: %v", ErrMalformedEnvelope, err)
			}
			if len(ciphertext) != env.CipherLength {
				return nil, fmt.Errorf("%w: cipher length %d does not match payload of %d bytes",
					ErrMalformedEnvelope, env.CipherLength, len(ciphertext))
			}
			env.Ciphertext = ciphertext
			state = parseDone
		}
	}
	if state != parseDone {
		return nil, fmt.Errorf("%w: missing payload", ErrMalformedEnvelope)
	}
	return env, nil
}

// OpenEnvelope parses envelope text and decrypts its payload under the
// hex-encoded key, returning the original plaintext.
func OpenEnvelope(envelope, hexKey string) ([]byte, error) {
	env, err := ParseEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	key, err := decodeHexKey(hexKey)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	return crypto.DecryptCBC(env.Ciphertext, key, env.IV)
}

func numDigits(n int) int {
	return len(strconv.Itoa(n))
}
