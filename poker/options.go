package poker

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/sandeepkvelagam/oddside/domain/events"
	"github.com/sandeepkvelagam/oddside/metrics"
)

// Option configures a Service
type Option func(*Service)

// WithLogger sets the logger. The service adds its own prefix.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger.WithPrefix("poker")
		}
	}
}

// WithClock replaces the real clock, mainly for tests.
func WithClock(clock quartz.Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithEventStore sets where per-session history is recorded.
func WithEventStore(store events.EventStore) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithMetrics sets the metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithRejectDuplicates controls whether a card appearing twice in a pool is an error.
func WithRejectDuplicates(reject bool) Option {
	return func(s *Service) {
		s.rejectDuplicates = reject
	}
}

// WithBatchWorkers bounds the number of concurrent evaluations in a batch.
func WithBatchWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchWorkers = n
		}
	}
}
