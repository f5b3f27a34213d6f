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

func PostSendSolRoute(s *api.Server) *echo.Route {
	return s.Router.Send.POST("/sol", postSendSolHandler(s))
}

func postSendSolHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostSendSolPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		record, err := s.Instructions.BuildTransferSol(ctx, instruction.TransferSolParams{
			From:     swag.StringValue(body.From),
			To:       swag.StringValue(body.To),
			Lamports: swag.Uint64Value(body.Lamports),
		})
		if err != nil {
			log.Debug().Err(err).Msg("Failed to build transfer instruction")

			if errors.Is(err, instruction.ErrInvalidAddress) {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidAddress, err.Error())
			}

			if errors.Is(err, instruction.ErrConstructionFailed) {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInstructionConstructionFailed, err.Error())
			}

			return err
		}

		s.Metrics.InstructionsBuilt.WithLabelValues("transfer_sol").Inc()

		return util.ValidateAndReturn(c, http.StatusOK, record.ToInstructionResponse())
	}
}
