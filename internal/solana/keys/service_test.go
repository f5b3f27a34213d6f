package keys_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/solana-service/internal/solana/codec"
	"github/chapool/solana-service/internal/solana/keys"
)

func newTestService(t *testing.T) keys.Service {
	t.Helper()

	service, err := keys.NewService(rand.Reader)
	require.NoError(t, err)

	return service
}

func TestNewServiceRequiresEntropy(t *testing.T) {
	_, err := keys.NewService(nil)
	require.Error(t, err)
}

func TestGenerateDistinctness(t *testing.T) {
	service := newTestService(t)

	seen := make(map[string]bool, 100)
	for i := 0; i < 100; i++ {
		keypair, err := service.Generate()
		require.NoError(t, err)

		pubkey := keypair.PublicKey.String()
		require.False(t, seen[pubkey], "duplicate public key generated")
		seen[pubkey] = true
	}
}

func TestGenerateUsesInjectedEntropy(t *testing.T) {
	seed := bytes.Repeat([]byte{0xAB}, 32)

	first, err := keys.NewService(bytes.NewReader(seed))
	require.NoError(t, err)
	second, err := keys.NewService(bytes.NewReader(seed))
	require.NoError(t, err)

	a, err := first.Generate()
	require.NoError(t, err)
	b, err := second.Generate()
	require.NoError(t, err)

	assert.Equal(t, a.PublicKey, b.PublicKey)
	assert.Equal(t, a.Secret, b.Secret)
}

func TestGenerateFailsOnExhaustedEntropy(t *testing.T) {
	service, err := keys.NewService(bytes.NewReader([]byte{0x01}))
	require.NoError(t, err)

	_, err = service.Generate()
	require.Error(t, err)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	service := newTestService(t)

	keypair, err := service.Generate()
	require.NoError(t, err)

	message := []byte("Hello, Solana!")
	signature := service.Sign(message, keypair.Secret)
	require.Len(t, signature, keys.SignatureSize)

	valid, err := service.Verify(message, signature, keypair.PublicKey.Bytes())
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestSignIsDeterministic(t *testing.T) {
	service := newTestService(t)

	keypair, err := service.Generate()
	require.NoError(t, err)

	message := []byte("reproducible")
	assert.Equal(t, service.Sign(message, keypair.Secret), service.Sign(message, keypair.Secret))
}

func TestVerifyWrongMessage(t *testing.T) {
	service := newTestService(t)

	keypair, err := service.Generate()
	require.NoError(t, err)

	signature := service.Sign([]byte("signed message"), keypair.Secret)

	valid, err := service.Verify([]byte("different message"), signature, keypair.PublicKey.Bytes())
	require.NoError(t, err, "a mismatch is a negative result, not an error")
	assert.False(t, valid)
}

func TestVerifyTamperedSignature(t *testing.T) {
	service := newTestService(t)

	keypair, err := service.Generate()
	require.NoError(t, err)

	message := []byte("payload")
	signature := service.Sign(message, keypair.Secret)
	signature[0] ^= 0xFF

	valid, err := service.Verify(message, signature, keypair.PublicKey.Bytes())
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyLengthValidation(t *testing.T) {
	service := newTestService(t)

	keypair, err := service.Generate()
	require.NoError(t, err)

	message := []byte("payload")
	signature := service.Sign(message, keypair.Secret)

	t.Run("short public key", func(t *testing.T) {
		_, err := service.Verify(message, signature, keypair.PublicKey.Bytes()[:31])
		require.Error(t, err)
		assert.True(t, errors.Is(err, keys.ErrInvalidPublicKeyLength))
	})

	t.Run("short signature", func(t *testing.T) {
		_, err := service.Verify(message, signature[:63], keypair.PublicKey.Bytes())
		require.Error(t, err)
		assert.True(t, errors.Is(err, keys.ErrInvalidSignatureLength))
	})

	t.Run("public key checked first", func(t *testing.T) {
		_, err := service.Verify(message, signature[:63], keypair.PublicKey.Bytes()[:31])
		require.Error(t, err)
		assert.True(t, errors.Is(err, keys.ErrInvalidPublicKeyLength))
	})
}

func TestParseSecretRoundTrip(t *testing.T) {
	service := newTestService(t)

	keypair, err := service.Generate()
	require.NoError(t, err)

	parsed, err := service.ParseSecret(codec.EncodeBase58(keypair.Secret))
	require.NoError(t, err)

	assert.Equal(t, keypair.PublicKey, parsed.PublicKey)
	assert.Equal(t, keypair.Secret, parsed.Secret)
}

func TestParseSecretInvalidEncoding(t *testing.T) {
	service := newTestService(t)

	_, err := service.ParseSecret("not-base58-l0O")
	require.Error(t, err)
	assert.True(t, errors.Is(err, keys.ErrInvalidSecretEncoding))
}

func TestParseSecretWrongLength(t *testing.T) {
	service := newTestService(t)

	// a 32-byte seed alone is not accepted as secret key material
	_, err := service.ParseSecret(codec.EncodeBase58(bytes.Repeat([]byte{0x02}, 32)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, keys.ErrInvalidSecretLength))
}
