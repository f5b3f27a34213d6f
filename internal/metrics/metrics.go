package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Service owns the prometheus registry and the service-level counters.
type Service struct {
	Registry *prometheus.Registry

	KeypairsGenerated  prometheus.Counter
	MessagesSigned     prometheus.Counter
	SignaturesVerified *prometheus.CounterVec
	InstructionsBuilt  *prometheus.CounterVec
}

func New() *Service {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Service{
		Registry: registry,
		KeypairsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solana_service_keypairs_generated_total",
			Help: "Number of keypairs generated.",
		}),
		MessagesSigned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solana_service_messages_signed_total",
			Help: "Number of messages signed.",
		}),
		SignaturesVerified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solana_service_signatures_verified_total",
			Help: "Number of signature verifications performed, by result.",
		}, []string{"result"}),
		InstructionsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solana_service_instructions_built_total",
			Help: "Number of instructions built, by instruction type.",
		}, []string{"type"}),
	}

	registry.MustRegister(
		s.KeypairsGenerated,
		s.MessagesSigned,
		s.SignaturesVerified,
		s.InstructionsBuilt,
	)

	return s
}
