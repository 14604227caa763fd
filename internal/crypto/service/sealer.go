package service

import (
	"encoding/json"

	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
)

// envelopeSealer implements Sealer using AES-256-GCM under a single master key.
//
// The cipher is constructed once at startup from the injected master key and
// reused for every call; there is no per-record key derivation. Failure
// messages never include key material, nonce values, or plaintext.
type envelopeSealer struct {
	aead AEAD
}

// NewSealer creates a Sealer bound to the provided master key.
//
// The master key is validated at construction, so every subsequent Seal and
// Unseal call operates on a known-good 32-byte key and cannot partially
// initialize.
func NewSealer(masterKey *cryptoDomain.MasterKey) (Sealer, error) {
	aead, err := NewAESGCM(masterKey.Bytes())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create sealer")
	}

	return &envelopeSealer{aead: aead}, nil
}

// Seal serializes value to JSON and encrypts it into a sealed envelope.
//
// The AEAD appends the 16-byte authentication tag to the ciphertext; the tag
// is split off into its own envelope field so the stored shape matches the
// {encryptedData, iv, authTag} contract.
func (s *envelopeSealer) Seal(value any) (*cryptoDomain.SealedEnvelope, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "value is not JSON-serializable")
	}

	sealed, nonce, err := s.aead.Encrypt(plaintext, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to seal value")
	}

	// Split the appended tag into the envelope's detached authTag field.
	split := len(sealed) - cryptoDomain.TagSize
	ciphertext, tag := sealed[:split], sealed[split:]

	return cryptoDomain.NewSealedEnvelope(ciphertext, nonce, tag), nil
}

// Unseal decrypts and verifies the envelope, then deserializes the plaintext into out.
func (s *envelopeSealer) Unseal(envelope *cryptoDomain.SealedEnvelope, out any) error {
	plaintext, err := s.UnsealRaw(envelope)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, out); err != nil {
		return cryptoDomain.ErrDeserializationFailed
	}

	return nil
}

// UnsealRaw decrypts and verifies the envelope and returns the plaintext bytes.
//
// The detached tag is re-appended to the ciphertext before the single
// decrypt-and-verify pass. A tag mismatch yields ErrAuthenticationFailed and
// no plaintext, never partially-decrypted data.
func (s *envelopeSealer) UnsealRaw(envelope *cryptoDomain.SealedEnvelope) ([]byte, error) {
	ciphertext, nonce, tag, err := envelope.Decode()
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := s.aead.Decrypt(sealed, nonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrAuthenticationFailed
	}

	return plaintext, nil
}
