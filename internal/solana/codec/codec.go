// Package codec provides the strict base58/base64 transforms shared by the
// key, signing and instruction services. Both decoders reject malformed
// input outright instead of truncating or padding.
package codec

import (
	"encoding/base64"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

var (
	ErrInvalidBase58 = errors.New("input is not valid base58")
	ErrInvalidBase64 = errors.New("input is not valid base64")
)

// EncodeBase58 encodes b using the Bitcoin base58 alphabet.
func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}

// DecodeBase58 decodes s, failing on any character outside the alphabet.
func DecodeBase58(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidBase58, err.Error())
	}

	return b, nil
}

// EncodeBase64 encodes b using standard base64 with padding.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 decodes s, failing on bad alphabet characters or padding.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidBase64, err.Error())
	}

	return b, nil
}
