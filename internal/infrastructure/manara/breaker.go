package manara

import (
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/manara-web/internal/config"
	"github.com/manara-web/internal/pkg/errors"
)

// newBreaker builds the circuit breaker guarding upstream calls.
// Absent mosques are a valid answer and never trip it.
func newBreaker(cfg *config.BreakerConfig, logger *zap.Logger) *gobreaker.CircuitBreaker {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	minRequests := cfg.MinRequests
	ratio := cfg.FailureRatio

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "manara-api",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= ratio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errors.ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}
