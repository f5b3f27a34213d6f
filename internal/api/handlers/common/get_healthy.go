package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/solana-service/internal/api"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// getHealthyHandler is the liveness probe. It answers as long as the
// process accepts connections; readiness is checked separately.
func getHealthyHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "OK.")
	}
}
