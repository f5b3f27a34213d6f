package api

import (
	"crypto/rand"

	"github.com/pkg/errors"
	"github/chapool/solana-service/internal/metrics"
	"github/chapool/solana-service/internal/solana/instruction"
	"github/chapool/solana-service/internal/solana/keys"
)

// InitComponents initializes all server components in dependency order.
// The entropy source is fixed to crypto/rand here; tests construct their
// services directly when they need a deterministic source.
func InitComponents(s *Server) error {
	s.Metrics = metrics.New()

	keyService, err := keys.NewService(rand.Reader)
	if err != nil {
		return errors.Wrap(err, "failed to create key service")
	}
	s.Keys = keyService

	instructionService, err := instruction.NewService()
	if err != nil {
		return errors.Wrap(err, "failed to create instruction service")
	}
	s.Instructions = instructionService

	return nil
}
