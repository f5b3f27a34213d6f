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

func PostCreateTokenRoute(s *api.Server) *echo.Route {
	return s.Router.Token.POST("/create", postCreateTokenHandler(s))
}

func postCreateTokenHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostCreateTokenPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		record, err := s.Instructions.BuildInitializeMint(ctx, instruction.InitializeMintParams{
			Mint:          swag.StringValue(body.Mint),
			MintAuthority: swag.StringValue(body.MintAuthority),
			Decimals:      uint8(swag.Int64Value(body.Decimals)),
		})
		if err != nil {
			log.Debug().Err(err).Msg("Failed to build initialize-mint instruction")

			if errors.Is(err, instruction.ErrInvalidAddress) {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidAddress, err.Error())
			}

			if errors.Is(err, instruction.ErrConstructionFailed) {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInstructionConstructionFailed, err.Error())
			}

			return err
		}

		s.Metrics.InstructionsBuilt.WithLabelValues("initialize_mint").Inc()

		return util.ValidateAndReturn(c, http.StatusOK, record.ToInstructionResponse())
	}
}
