package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// KeypairResponse carries a freshly generated keypair in encoded form.
type KeypairResponse struct {
	// Base58-encoded 32-byte public key
	Pubkey *string `json:"pubkey"`

	// Base58-encoded 64-byte secret key material (seed followed by public key)
	Secret *string `json:"secret"`
}

func (m *KeypairResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("pubkey", "body", m.Pubkey); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("secret", "body", m.Secret); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}
