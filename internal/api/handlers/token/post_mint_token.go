package token

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

func PostMintTokenRoute(s *api.Server) *echo.Route {
	return s.Router.Token.POST("/mint", postMintTokenHandler(s))
}

func postMintTokenHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostMintTokenPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		record, err := s.Instructions.BuildMintTo(ctx, instruction.MintToParams{
			Mint:        swag.StringValue(body.Mint),
			Destination: swag.StringValue(body.Destination),
			Authority:   swag.StringValue(body.Authority),
			Amount:      swag.Uint64Value(body.Amount),
		})
		if err != nil {
			log.Debug().Err(err).Msg("Failed to build mint-to instruction")

			if errors.Is(err, instruction.ErrInvalidAddress) {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidAddress, err.Error())
			}

			if errors.Is(err, instruction.ErrConstructionFailed) {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInstructionConstructionFailed, err.Error())
			}

			return err
		}

		s.Metrics.InstructionsBuilt.WithLabelValues("mint_to").Inc()

		return util.ValidateAndReturn(c, http.StatusOK, record.ToInstructionResponse())
	}
}
