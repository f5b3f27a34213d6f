package util

import (
	"net/http"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/solana-service/internal/api/httperrors"
	"github/chapool/solana-service/internal/types"
)

// BindAndValidateBody binds the request body to v and validates it,
// returning an HTTPValidationError naming every failed field.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("echo binder is not a DefaultBinder")
	}

	if err := binder.BindBody(c, v); err != nil {
		LogFromContext(c.Request().Context()).Debug().Err(err).Msg("Failed to bind request body")
		return httperrors.ErrBadRequestMalformedBody
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates the response payload and writes it wrapped in
// the service's success envelope.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		return errors.Wrap(err, "invalid response payload")
	}

	return c.JSON(code, types.SuccessEnvelope{
		Success: true,
		Data:    v,
	})
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		var compositeError *openapierrors.CompositeError
		if errors.As(err, &compositeError) {
			LogFromContext(c.Request().Context()).Debug().Errs("validation_errors", compositeError.Errors).Msg("Payload validation failed")
			return httperrors.NewHTTPValidationError(
				http.StatusBadRequest,
				types.PublicHTTPErrorTypeGeneric,
				http.StatusText(http.StatusBadRequest),
				formatValidationErrors(compositeError),
			)
		}

		var validationError *openapierrors.Validation
		if errors.As(err, &validationError) {
			return httperrors.NewHTTPValidationError(
				http.StatusBadRequest,
				types.PublicHTTPErrorTypeGeneric,
				http.StatusText(http.StatusBadRequest),
				[]*types.HTTPValidationErrorDetail{
					{
						Key:   swag.String(validationError.Name),
						In:    swag.String(validationError.In),
						Error: swag.String(validationError.Error()),
					},
				},
			)
		}

		return err
	}

	return nil
}

func formatValidationErrors(compositeError *openapierrors.CompositeError) []*types.HTTPValidationErrorDetail {
	valErrs := make([]*types.HTTPValidationErrorDetail, 0, len(compositeError.Errors))
	for _, err := range compositeError.Errors {
		var validationError *openapierrors.Validation
		if errors.As(err, &validationError) {
			valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
				Key:   swag.String(validationError.Name),
				In:    swag.String(validationError.In),
				Error: swag.String(validationError.Error()),
			})

			continue
		}

		valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
			Key:   swag.String("body"),
			In:    swag.String("body"),
			Error: swag.String(err.Error()),
		})
	}

	return valErrs
}
