package test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github/chapool/solana-service/internal/api"
	"github/chapool/solana-service/internal/api/router"
	"github/chapool/solana-service/internal/config"
)

// WithTestServer runs closure with a fully initialized server, ready to
// serve recorded requests via PerformRequest.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Echo.ListenAddress = ":0"
	cfg.Logger.Level = zerolog.ErrorLevel
	cfg.Logger.RequestLevel = zerolog.Disabled

	s := api.NewServer(cfg)

	err := api.InitComponents(s)
	require.NoError(t, err)

	router.Init(s)

	closure(s)
}
