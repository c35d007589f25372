package enrich

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker guards a Completer with a circuit breaker. After MaxFailures
// consecutive failures calls fail fast with gobreaker.ErrOpenState until
// the open duration has passed.
type Breaker struct {
	next Completer
	cb   *gobreaker.CircuitBreaker
}

// NewBreaker wraps next in a circuit breaker
func NewBreaker(name string, next Completer, maxFailures uint32, openDuration time.Duration) *Breaker {
	if maxFailures == 0 {
		maxFailures = 3
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     openDuration,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// A cancelled run says nothing about the provider
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &Breaker{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Complete forwards to the wrapped completer unless the breaker is open
func (b *Breaker) Complete(ctx context.Context, prompt string) (string, error) {
	reply, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Complete(ctx, prompt)
	})
	if err != nil {
		return "", err
	}
	return reply.(string), nil
}

// State returns the breaker state name ("closed", "half-open" or "open")
func (b *Breaker) State() string {
	return b.cb.State().String()
}
