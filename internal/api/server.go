package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/chapool/solana-service/internal/config"
	"github/chapool/solana-service/internal/metrics"
	"github/chapool/solana-service/internal/solana/instruction"
	"github/chapool/solana-service/internal/solana/keys"
	"github/chapool/solana-service/internal/util"
)

// KeyService interface for keypair and signature operations
// Alias to keys.Service for API access
type KeyService = keys.Service

// InstructionService interface for instruction building operations
// Alias to instruction.Service for API access
type InstructionService = instruction.Service

type Router struct {
	Routes     []*echo.Route
	Root       *echo.Group
	Management *echo.Group
	Message    *echo.Group
	Token      *echo.Group
	Send       *echo.Group
}

// Server is a central struct keeping all the dependencies.
// Components are initialized with InitComponents before the router is
// attached; Echo and Router are set by router.Init(s).
type Server struct {
	Echo   *echo.Echo
	Router *Router

	Config       config.Server
	Metrics      *metrics.Service
	Keys         KeyService
	Instructions InstructionService
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	return errs
}
