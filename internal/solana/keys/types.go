// Package keys implements keypair generation, secret parsing and detached
// Ed25519 signing and verification. Every operation is stateless; the only
// external input is the entropy source injected at construction.
package keys

import (
	"crypto/ed25519"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

const (
	// PublicKeySize is the byte length of a public key.
	PublicKeySize = ed25519.PublicKeySize

	// SecretKeySize is the byte length of secret key material, the 32-byte
	// seed followed by the 32-byte public key.
	SecretKeySize = ed25519.PrivateKeySize

	// SignatureSize is the byte length of a detached signature.
	SignatureSize = ed25519.SignatureSize
)

var (
	ErrInvalidSecretEncoding  = errors.New("secret key is not valid base58")
	ErrInvalidSecretLength    = errors.Errorf("secret key must decode to exactly %d bytes", SecretKeySize)
	ErrInvalidPublicKeyLength = errors.Errorf("public key must be exactly %d bytes", PublicKeySize)
	ErrInvalidSignatureLength = errors.Errorf("signature must be exactly %d bytes", SignatureSize)
)

// Keypair holds a public key and the matching secret key material.
// The caller owns the lifetime; nothing is persisted.
type Keypair struct {
	PublicKey solana.PublicKey
	Secret    solana.PrivateKey
}

// Service provides keypair and signature operations. All methods are safe
// for concurrent use.
type Service interface {
	// Generate creates a fresh keypair from the entropy source.
	Generate() (*Keypair, error)

	// ParseSecret decodes base58 secret key material back into a keypair.
	ParseSecret(encoded string) (*Keypair, error)

	// Sign produces a detached 64-byte signature over message.
	Sign(message []byte, secret solana.PrivateKey) []byte

	// Verify checks a detached signature. Length violations are errors;
	// a cryptographic mismatch is reported as (false, nil).
	Verify(message []byte, signature []byte, publicKey []byte) (bool, error)
}
