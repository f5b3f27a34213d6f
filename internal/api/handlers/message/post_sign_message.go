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

func PostSignMessageRoute(s *api.Server) *echo.Route {
	return s.Router.Message.POST("/sign", postSignMessageHandler(s))
}

func postSignMessageHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostSignMessagePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		keypair, err := s.Keys.ParseSecret(swag.StringValue(body.Secret))
		if err != nil {
			log.Debug().Err(err).Msg("Failed to parse secret key")

			if errors.Is(err, keys.ErrInvalidSecretEncoding) || errors.Is(err, keys.ErrInvalidSecretLength) {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidSecret, err.Error())
			}

			return err
		}

		signature := s.Keys.Sign([]byte(swag.StringValue(body.Message)), keypair.Secret)

		s.Metrics.MessagesSigned.Inc()

		response := &types.SignMessageResponse{
			Signature: swag.String(codec.EncodeBase64(signature)),
			PublicKey: swag.String(keypair.PublicKey.String()),
			Message:   body.Message,
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
