package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// Public error types, used by the routing layer to tag error envelopes.
const (
	PublicHTTPErrorTypeGeneric                       = "generic"
	PublicHTTPErrorTypeInvalidEncoding               = "INVALID_ENCODING"
	PublicHTTPErrorTypeInvalidSecret                 = "INVALID_SECRET"
	PublicHTTPErrorTypeInvalidPublicKey              = "INVALID_PUBLIC_KEY"
	PublicHTTPErrorTypeInvalidSignature              = "INVALID_SIGNATURE"
	PublicHTTPErrorTypeInvalidAddress                = "INVALID_ADDRESS"
	PublicHTTPErrorTypeInstructionConstructionFailed = "INSTRUCTION_CONSTRUCTION_FAILED"
)

// PublicHTTPError is the wire representation of an HTTP error.
type PublicHTTPError struct {
	// HTTP status code
	Code *int64 `json:"status"`

	// Short, human-readable description of the error
	Title *string `json:"title"`

	// Type of the error
	Type *string `json:"type"`
}

func (m *PublicHTTPError) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("status", "body", m.Code); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("title", "body", m.Title); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("type", "body", m.Type); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PublicHTTPValidationError extends PublicHTTPError with per-field details.
type PublicHTTPValidationError struct {
	PublicHTTPError

	// List of failed fields
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

func (m *PublicHTTPValidationError) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.PublicHTTPError.Validate(formats); err != nil {
		res = append(res, err)
	}

	for i := range m.ValidationErrors {
		if m.ValidationErrors[i] == nil {
			continue
		}

		if err := m.ValidationErrors[i].Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// HTTPValidationErrorDetail names a single failed input field.
type HTTPValidationErrorDetail struct {
	// Error describing the field validation failure
	Error *string `json:"error"`

	// Indicates how the invalid field was provided
	In *string `json:"in"`

	// Key of the field failing validation
	Key *string `json:"key"`
}

func (m *HTTPValidationErrorDetail) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("error", "body", m.Error); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("in", "body", m.In); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("key", "body", m.Key); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}
