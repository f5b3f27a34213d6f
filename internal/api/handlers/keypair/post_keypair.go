package keypair

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/solana-service/internal/api"
	"github/chapool/solana-service/internal/solana/codec"
	"github/chapool/solana-service/internal/types"
	"github/chapool/solana-service/internal/util"
)

func PostKeypairRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/keypair", postKeypairHandler(s))
}

func postKeypairHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		keypair, err := s.Keys.Generate()
		if err != nil {
			log.Error().Err(err).Msg("Failed to generate keypair")
			return err
		}

		s.Metrics.KeypairsGenerated.Inc()

		response := &types.KeypairResponse{
			Pubkey: swag.String(keypair.PublicKey.String()),
			Secret: swag.String(codec.EncodeBase58(keypair.Secret)),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
