package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostSignMessagePayload is the request body of POST /message/sign.
type PostSignMessagePayload struct {
	// Message to sign (signed as its raw UTF-8 bytes)
	Message *string `json:"message"`

	// Base58-encoded 64-byte secret key material
	Secret *string `json:"secret"`
}

func (m *PostSignMessagePayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("message", "body", m.Message); err != nil {
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

// SignMessageResponse is the success body of POST /message/sign.
type SignMessageResponse struct {
	// Base64-encoded 64-byte detached signature
	Signature *string `json:"signature"`

	// Base58-encoded public key matching the supplied secret
	PublicKey *string `json:"public_key"`

	// Message that was signed, echoed back
	Message *string `json:"message"`
}

func (m *SignMessageResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("signature", "body", m.Signature); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("public_key", "body", m.PublicKey); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("message", "body", m.Message); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PostVerifyMessagePayload is the request body of POST /message/verify.
type PostVerifyMessagePayload struct {
	// Message the signature claims to cover
	Message *string `json:"message"`

	// Base64-encoded detached signature
	Signature *string `json:"signature"`

	// Base58-encoded public key to verify against
	Pubkey *string `json:"pubkey"`
}

func (m *PostVerifyMessagePayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("message", "body", m.Message); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("signature", "body", m.Signature); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("pubkey", "body", m.Pubkey); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// VerifyMessageResponse is the success body of POST /message/verify.
// A cryptographic mismatch is reported through Valid, not as an error.
type VerifyMessageResponse struct {
	// Whether the signature is valid for the message and public key
	Valid *bool `json:"valid"`

	// Message that was checked, echoed back
	Message *string `json:"message"`

	// Public key that was checked against, echoed back
	Pubkey *string `json:"pubkey"`
}

func (m *VerifyMessageResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("valid", "body", m.Valid); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("message", "body", m.Message); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("pubkey", "body", m.Pubkey); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}
