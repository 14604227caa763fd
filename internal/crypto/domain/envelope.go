package domain

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// SealedEnvelope is the at-rest representation of one encrypted value: the
// ciphertext, the random nonce used for that single seal call, and the GCM
// authentication tag binding the two together.
//
// The envelope is self-describing: nothing beyond the master key is needed to
// reverse it. It is persisted as a JSON object with exactly these three
// hex-encoded string fields, e.g. in a database text column:
//
//	{"encryptedData": "...", "iv": "...", "authTag": "..."}
//
// An envelope is never partially valid. Unsealing either fully succeeds and
// returns the original value, or fails with an authentication error and
// yields nothing.
type SealedEnvelope struct {
	// EncryptedData is the hex-encoded ciphertext.
	EncryptedData string `json:"encryptedData"`
	// IV is the hex-encoded 16-byte nonce, unique per seal call.
	IV string `json:"iv"`
	// AuthTag is the hex-encoded 16-byte authentication tag.
	AuthTag string `json:"authTag"`
}

// Decode validates the envelope fields and returns the raw ciphertext, nonce,
// and tag bytes.
//
// Returns ErrInvalidEnvelope if any field is not valid hex or if the nonce or
// tag have the wrong length. Length deviations are caller bugs (or corrupted
// storage) and fail fast rather than being truncated or padded.
func (e *SealedEnvelope) Decode() (ciphertext, nonce, tag []byte, err error) {
	ciphertext, err = hex.DecodeString(e.EncryptedData)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: encryptedData is not valid hex", ErrInvalidEnvelope)
	}

	nonce, err = hex.DecodeString(e.IV)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: iv is not valid hex", ErrInvalidEnvelope)
	}
	if len(nonce) != NonceSize {
		return nil, nil, nil, fmt.Errorf(
			"%w: iv must be %d bytes, got %d", ErrInvalidEnvelope, NonceSize, len(nonce),
		)
	}

	tag, err = hex.DecodeString(e.AuthTag)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: authTag is not valid hex", ErrInvalidEnvelope)
	}
	if len(tag) != TagSize {
		return nil, nil, nil, fmt.Errorf(
			"%w: authTag must be %d bytes, got %d", ErrInvalidEnvelope, TagSize, len(tag),
		)
	}

	return ciphertext, nonce, tag, nil
}

// ParseSealedEnvelope parses the stored JSON representation of an envelope.
//
// The stored shape is exactly three string fields; unknown fields are
// rejected so a corrupted or foreign document is caught before any
// decryption work happens.
func ParseSealedEnvelope(data []byte) (*SealedEnvelope, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var envelope SealedEnvelope
	if err := dec.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	return &envelope, nil
}

// Marshal returns the JSON representation of the envelope as persisted by
// calling code.
func (e *SealedEnvelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// NewSealedEnvelope builds an envelope from raw cipher output, hex-encoding
// each field for storage and transport.
func NewSealedEnvelope(ciphertext, nonce, tag []byte) *SealedEnvelope {
	return &SealedEnvelope{
		EncryptedData: hex.EncodeToString(ciphertext),
		IV:            hex.EncodeToString(nonce),
		AuthTag:       hex.EncodeToString(tag),
	}
}
