package keys

import (
	"crypto/ed25519"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github/chapool/solana-service/internal/solana/codec"
)

type service struct {
	entropy io.Reader
}

// NewService creates a new key service reading entropy from the given
// source, crypto/rand.Reader in production.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(entropy io.Reader) (Service, error) {
	if entropy == nil {
		return nil, errors.New("entropy source is required")
	}

	return &service{
		entropy: entropy,
	}, nil
}

// Generate creates a fresh keypair from the entropy source.
func (s *service) Generate() (*Keypair, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(s.entropy, seed); err != nil {
		return nil, errors.Wrap(err, "failed to read entropy")
	}

	secret := solana.PrivateKey(ed25519.NewKeyFromSeed(seed))

	return &Keypair{
		PublicKey: secret.PublicKey(),
		Secret:    secret,
	}, nil
}

// ParseSecret decodes base58 secret key material back into a keypair.
// Any decoded length other than SecretKeySize is rejected, never truncated.
func (s *service) ParseSecret(encoded string) (*Keypair, error) {
	raw, err := codec.DecodeBase58(encoded)
	if err != nil {
		return nil, ErrInvalidSecretEncoding
	}

	if len(raw) != SecretKeySize {
		return nil, ErrInvalidSecretLength
	}

	secret := solana.PrivateKey(raw)

	return &Keypair{
		PublicKey: secret.PublicKey(),
		Secret:    secret,
	}, nil
}

// Sign produces a detached signature over message. Ed25519 is deterministic,
// so the same secret and message always yield the same signature.
func (s *service) Sign(message []byte, secret solana.PrivateKey) []byte {
	return ed25519.Sign(ed25519.PrivateKey(secret), message)
}
