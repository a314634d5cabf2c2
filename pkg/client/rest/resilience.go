// Package rest provides a resilient HTTP client for outbound calls to
// external collaborators.
package rest

import (
	"errors"
	"net/http"

	"github.com/duckydrinks/storefront/pkg/config"
	"github.com/sony/gobreaker/v2"
)

// Doer abstracts the Do method of http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// BreakerDoer wraps a Doer in a circuit breaker. Transport errors and 5xx
// responses count as failures and eventually trip the breaker; other
// responses, including 4xx caller errors, pass through without tripping it.
type BreakerDoer struct {
	next    Doer
	breaker *gobreaker.CircuitBreaker[*http.Response]
}

// NewBreakerDoer creates a circuit-breaker-wrapped Doer with the given name
// for breaker state reporting.
func NewBreakerDoer(name string, cfg config.CircuitBreakerConfig, next Doer) *BreakerDoer {
	st := gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > cfg.ConsecutiveFailures ||
				(counts.TotalSuccesses+counts.TotalFailures > cfg.ConsecutiveFailures &&
					float64(counts.TotalFailures)/float64(counts.TotalSuccesses+counts.TotalFailures)*100 > float64(cfg.ErrorRatePercent))
		},
	}
	return &BreakerDoer{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[*http.Response](st),
	}
}

// Do executes the request through the circuit breaker. A 5xx response is
// reported to the breaker as a failure but still handed back to the caller so
// it can read the status and body. Returns gobreaker.ErrOpenState while the
// breaker is open.
func (d *BreakerDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.breaker.Execute(func() (*http.Response, error) {
		resp, err := d.next.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, &serverError{status: resp.StatusCode}
		}
		return resp, nil
	})
	var se *serverError
	if errors.As(err, &se) {
		return resp, nil
	}
	return resp, err
}

type serverError struct {
	status int
}

func (e *serverError) Error() string {
	return http.StatusText(e.status)
}
