package keys

import (
	"crypto/ed25519"
)

// Verify checks a detached signature against a message and public key.
// Both lengths are confirmed before any cryptographic work so that malformed
// input surfaces as an error while a valid-but-wrong signature stays a plain
// negative result.
func (s *service) Verify(message []byte, signature []byte, publicKey []byte) (bool, error) {
	if len(publicKey) != PublicKeySize {
		return false, ErrInvalidPublicKeyLength
	}

	if len(signature) != SignatureSize {
		return false, ErrInvalidSignatureLength
	}

	return ed25519.Verify(ed25519.PublicKey(publicKey), message, signature), nil
}
