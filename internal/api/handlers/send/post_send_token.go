package send

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/solana-service/internal/api"
	"github/chapool/solana-service/internal/api/httperrors"
	"github/chapool/solana-service/internal/solana/instruction"
	"github/chapool/solana-service/internal/types"
	"github/chapool/solana-service/internal/util"
)

func PostSendTokenRoute(s *api.Server) *echo.Route {
	return s.Router.Send.POST("/token", postSendTokenHandler(s))
}

func postSendTokenHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostSendTokenPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		record, err := s.Instructions.BuildTransferToken(ctx, instruction.TransferTokenParams{
			Destination: swag.StringValue(body.Destination),
			Mint:        swag.StringValue(body.Mint),
			Owner:       swag.StringValue(body.Owner),
			Amount:      swag.Uint64Value(body.Amount),
		})
		if err != nil {
			log.Debug().Err(err).Msg("Failed to build token transfer instruction")

			if errors.Is(err, instruction.ErrInvalidAddress) {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidAddress, err.Error())
			}

			if errors.Is(err, instruction.ErrConstructionFailed) {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInstructionConstructionFailed, err.Error())
			}

			return err
		}

		s.Metrics.InstructionsBuilt.WithLabelValues("transfer_token").Inc()

		return util.ValidateAndReturn(c, http.StatusOK, record.ToInstructionResponse())
	}
}
