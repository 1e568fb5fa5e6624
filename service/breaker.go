package service

import (
	"context"
	"errors"
	"fmt"

	"fitgateway/domain"
	"fitgateway/helpers"
	"fitgateway/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	gobreaker "github.com/sony/gobreaker/v2"
)

// breakerInvoker implements interfaces.RPCInvoker by wrapping another invoker
// with a circuit breaker. Exactly one call path is guarded (the solo workout
// start against the activity service); everything else bypasses the breaker
// and relies on the failover invoker alone — the dispatcher decides which
// invoker each operation goes through. While open, every call fails fast with
// ErrCircuitOpen without invoking the wrapped path. MaxRequests is 1, so the
// half-open state lets exactly one trial call through: success closes the
// circuit, failure reopens it and restarts the reset interval.
type breakerInvoker struct {
	inner interfaces.RPCInvoker
	cb    *gobreaker.CircuitBreaker[struct{}]
}

// NewBreakerInvoker creates the breaker-guarded invoker. Panics on nil inner or logger and on invalid breaker tuning.
//
// Parameters: name — breaker name for log lines (e.g. "activity-start-workout"); inner — wrapped invoker (the failover invoker for the guarded path); cfg — FailureThreshold (0..1], MinRequests, Window (rolling evaluation window), ResetTimeout (open → half-open interval); logger — state transitions are reported here (the observability sink).
//
// Returns: interfaces.RPCInvoker (*breakerInvoker).
//
// Called from cmd/main when building the gateway.
func NewBreakerInvoker(
	name string,
	inner interfaces.RPCInvoker,
	cfg domain.BreakerConfig,
	logger log.Logger,
) interfaces.RPCInvoker {
	if cfg.FailureThreshold <= 0 || cfg.FailureThreshold > 1 {
		panic("service.breaker.go: failure threshold must be in (0, 1]")
	}
	if cfg.ResetTimeout <= 0 || cfg.Window <= 0 {
		panic("service.breaker.go: breaker intervals must be positive")
	}
	inner = helpers.NilPanic(inner, "service.breaker.go: inner invoker is required")
	logger = log.With(helpers.NilPanic(logger, "service.breaker.go: logger is required"), "component", "circuit_breaker", "name", name)

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        helpers.StrPanic(name, "service.breaker.go: name is required"),
		MaxRequests: 1,
		Interval:    cfg.Window,
		Timeout:     cfg.ResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			level.Info(logger).Log(
				"msg", "circuit breaker state transition",
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &breakerInvoker{inner: inner, cb: cb}
}

// Invoke runs the wrapped invoker through the breaker. A timed-out or failed
// inner invocation counts as a failure in the rolling window; a fast-failed
// call while open never reaches the wrapped path.
//
// Parameters: as interfaces.RPCInvoker.Invoke.
//
// Returns: nil on success; ErrCircuitOpen (wrapped) when the circuit is open or the single half-open trial slot is taken; the inner invoker's error otherwise (ErrExhausted, ErrNoAvailableInstance, backend failure).
//
// Called from service.Dispatcher.StartWorkoutSession.
func (b *breakerInvoker) Invoke(ctx context.Context, service domain.ServiceType, method string, req any, resp any) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.inner.Invoke(ctx, service, method, req, resp)
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	return err
}
