package router

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/solana-service/internal/api"
	"github/chapool/solana-service/internal/api/httperrors"
	"github/chapool/solana-service/internal/types"
	"github/chapool/solana-service/internal/util"
)

// HTTPErrorHandler renders every error as the service's error envelope.
// The envelope carries a single human-readable string; the structured error
// (type, field details) is logged for operators.
func HTTPErrorHandler(s *api.Server) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log := util.LogFromContext(c.Request().Context())

		code := http.StatusInternalServerError
		message := http.StatusText(http.StatusInternalServerError)

		var httpError *httperrors.HTTPError
		var validationError *httperrors.HTTPValidationError
		var echoError *echo.HTTPError

		switch {
		case errors.As(err, &validationError):
			code = int(swag.Int64Value(validationError.Code))
			message = formatValidationMessage(validationError)
			log.Debug().Err(err).Str("error_type", swag.StringValue(validationError.Type)).Msg("Request validation failed")
		case errors.As(err, &httpError):
			code = int(swag.Int64Value(httpError.Code))
			message = swag.StringValue(httpError.Title)
			log.Debug().Err(err).Str("error_type", swag.StringValue(httpError.Type)).Msg("Request failed")
		case errors.As(err, &echoError):
			code = echoError.Code
			if m, ok := echoError.Message.(string); ok {
				message = m
			}
			log.Debug().Err(err).Msg("Request failed")
		default:
			log.Error().Err(err).Msg("Unhandled error")
		}

		if code >= http.StatusInternalServerError && s.Config.Echo.HideInternalServerErrorDetails {
			message = http.StatusText(http.StatusInternalServerError)
		}

		if writeErr := c.JSON(code, types.ErrorEnvelope{
			Success: false,
			Error:   message,
		}); writeErr != nil {
			log.Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
}

// formatValidationMessage flattens field details into one correctable
// message, e.g. "Invalid request: decimals in body is required".
func formatValidationMessage(err *httperrors.HTTPValidationError) string {
	message := "Invalid request"
	for _, detail := range err.ValidationErrors {
		if detail == nil {
			continue
		}

		message += ": " + swag.StringValue(detail.Error)
	}

	return message
}
