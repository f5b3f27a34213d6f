package message

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/solana-service/internal/api"
	"github/chapool/solana-service/internal/api/httperrors"
	"github/chapool/solana-service/internal/solana/codec"
	"github/chapool/solana-service/internal/solana/keys"
	"github/chapool/solana-service/internal/types"
	"github/chapool/solana-service/internal/util"
)

func PostVerifyMessageRoute(s *api.Server) *echo.Route {
	return s.Router.Message.POST("/verify", postVerifyMessageHandler(s))
}

func postVerifyMessageHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostVerifyMessagePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		signature, err := codec.DecodeBase64(swag.StringValue(body.Signature))
		if err != nil {
			log.Debug().Err(err).Msg("Failed to decode signature")
			return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidEncoding, "signature is not valid base64")
		}

		publicKey, err := codec.DecodeBase58(swag.StringValue(body.Pubkey))
		if err != nil {
			log.Debug().Err(err).Msg("Failed to decode public key")
			return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidEncoding, "pubkey is not valid base58")
		}

		valid, err := s.Keys.Verify([]byte(swag.StringValue(body.Message)), signature, publicKey)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to verify signature")

			switch {
			case errors.Is(err, keys.ErrInvalidPublicKeyLength):
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidPublicKey, err.Error())
			case errors.Is(err, keys.ErrInvalidSignatureLength):
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidSignature, err.Error())
			}

			return err
		}

		if valid {
			s.Metrics.SignaturesVerified.WithLabelValues("valid").Inc()
		} else {
			s.Metrics.SignaturesVerified.WithLabelValues("invalid").Inc()
		}

		response := &types.VerifyMessageResponse{
			Valid:   swag.Bool(valid),
			Message: body.Message,
			Pubkey:  body.Pubkey,
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
