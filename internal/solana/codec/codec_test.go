package codec_test

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/solana-service/internal/solana/codec"
)

func TestBase58RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, size := range []int{0, 1, 16, 32, 64, 255} {
		b := make([]byte, size)
		_, err := rng.Read(b)
		require.NoError(t, err)

		decoded, err := codec.DecodeBase58(codec.EncodeBase58(b))
		require.NoError(t, err)
		assert.Equal(t, b, decoded, "round trip failed for size %d", size)
	}
}

func TestBase58RejectsExcludedCharacters(t *testing.T) {
	// 0, O, I and l are not part of the base58 alphabet
	for _, input := range []string{"0", "O", "I", "l", "4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofl", "abc!def"} {
		_, err := codec.DecodeBase58(input)
		require.Error(t, err, "expected decode failure for %q", input)
		assert.True(t, errors.Is(err, codec.ErrInvalidBase58))
	}
}

func TestBase64RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))

	for _, size := range []int{0, 1, 3, 32, 64, 100} {
		b := make([]byte, size)
		_, err := rng.Read(b)
		require.NoError(t, err)

		decoded, err := codec.DecodeBase64(codec.EncodeBase64(b))
		require.NoError(t, err)
		assert.Equal(t, b, decoded, "round trip failed for size %d", size)
	}
}

func TestBase64RejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"abc", "a===", "ab=c", "!!!!", "AQ=", "AB=="} {
		_, err := codec.DecodeBase64(input)
		require.Error(t, err, "expected decode failure for %q", input)
		assert.True(t, errors.Is(err, codec.ErrInvalidBase64))
	}
}

func TestBase64DecodesCanonicalPadding(t *testing.T) {
	decoded, err := codec.DecodeBase64("AQ==")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, decoded)
}
