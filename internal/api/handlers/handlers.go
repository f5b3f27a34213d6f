// Package handlers attaches all routes to the server's router groups.
package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/solana-service/internal/api"
	"github/chapool/solana-service/internal/api/handlers/common"
	"github/chapool/solana-service/internal/api/handlers/keypair"
	"github/chapool/solana-service/internal/api/handlers/message"
	"github/chapool/solana-service/internal/api/handlers/send"
	"github/chapool/solana-service/internal/api/handlers/token"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		common.GetMetricsRoute(s),
		keypair.PostKeypairRoute(s),
		message.PostSignMessageRoute(s),
		message.PostVerifyMessageRoute(s),
		token.PostCreateTokenRoute(s),
		token.PostMintTokenRoute(s),
		send.PostSendSolRoute(s),
		send.PostSendTokenRoute(s),
	}
}
