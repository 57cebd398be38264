package resilience

import (
	"errors"

	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
	"github.com/sony/gobreaker"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

// Breaker protects one upstream dependency. A disabled breaker passes every call through.
type Breaker struct {
	name    string
	enabled bool
	cb      *gobreaker.CircuitBreaker
}

// NewBreaker trips after FailureThreshold consecutive failures. isFailure decides
// which errors count against the upstream; nil counts every error.
func NewBreaker(name string, cfg CircuitBreakerConfig, isFailure func(error) bool, logger *logging.Logger) *Breaker {
	if logger == nil {
		logger = logging.Default()
	}
	cfg = NormalizeCircuitBreakerConfig(cfg)
	threshold := uint32(cfg.FailureThreshold)

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(cfg.HalfOpenMaxReq),
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}
	if isFailure != nil {
		settings.IsSuccessful = func(err error) bool {
			return err == nil || !isFailure(err)
		}
	}

	return &Breaker{
		name:    name,
		enabled: cfg.Enabled,
		cb:      gobreaker.NewCircuitBreaker(settings),
	}
}

// Execute runs fn through the breaker. Rejections surface as ErrCircuitOpen.
func (b *Breaker) Execute(fn func() (any, error)) (any, error) {
	if b == nil || !b.enabled {
		return fn()
	}
	out, err := b.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, ErrCircuitOpen
	}
	return out, err
}

func (b *Breaker) State() string {
	if b == nil || !b.enabled {
		return "disabled"
	}
	return b.cb.State().String()
}
