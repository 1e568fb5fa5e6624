package service

import (
	"context"
	"fmt"

	"fitgateway/domain"
	"fitgateway/helpers"
	"fitgateway/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// failoverInvoker implements interfaces.RPCInvoker. One invocation is an
// explicit bounded loop over a retry context: up to AttemptsPerInstance calls
// against the currently selected instance, then MarkUnhealthy and escalation
// to the next healthy instance, for at most MaxInstances distinct instances.
// Attempts are strictly sequential — never parallel — which bounds backend
// load and keeps health-marking deterministic. Every attempt is bounded by
// CallTimeout so no unguarded path can block indefinitely. On any success the
// registry's unhealthy set for the service type is fully reset.
type failoverInvoker struct {
	registry  interfaces.ServiceRegistry
	transport interfaces.BackendTransport
	cfg       domain.FailoverConfig
	logger    log.Logger
}

// NewFailoverInvoker creates the failover invoker. Panics on nil registry, transport or logger and on non-positive budgets (fail-fast at startup).
//
// Parameters: registry — instance selection and health marking; transport — single-attempt RPC execution; cfg — AttemptsPerInstance, MaxInstances, CallTimeout (all must be positive); logger — attempt failures are logged at debug level.
//
// Returns: interfaces.RPCInvoker (*failoverInvoker).
//
// Called from cmd/main when building the gateway.
func NewFailoverInvoker(
	registry interfaces.ServiceRegistry,
	transport interfaces.BackendTransport,
	cfg domain.FailoverConfig,
	logger log.Logger,
) interfaces.RPCInvoker {
	if cfg.AttemptsPerInstance < 1 || cfg.MaxInstances < 1 || cfg.CallTimeout <= 0 {
		panic("service.failover.go: failover budgets must be positive")
	}
	return &failoverInvoker{
		registry:  helpers.NilPanic(registry, "service.failover.go: registry is required"),
		transport: helpers.NilPanic(transport, "service.failover.go: transport is required"),
		cfg:       cfg,
		logger:    log.With(helpers.NilPanic(logger, "service.failover.go: logger is required"), "component", "failover_invoker"),
	}
}

// Invoke selects an instance via the registry and runs the bounded retry loop. Success resets health for the whole service type and returns nil with resp populated.
//
// Parameters: ctx — request context (each attempt additionally bounded by cfg.CallTimeout); service — backend service type; method — full gRPC method name; req/resp — JSON-coded bodies.
//
// Returns: nil on success; ErrNoAvailableInstance when every instance is marked unhealthy at entry; ErrExhausted wrapping the last attempt error once MaxInstances distinct instances failed or no healthy instance remains.
//
// Called from service.Dispatcher (directly for unguarded paths, through breakerInvoker for the guarded one).
func (f *failoverInvoker) Invoke(ctx context.Context, service domain.ServiceType, method string, req any, resp any) error {
	inst, ok := f.registry.NextHealthy(service)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoAvailableInstance, service)
	}

	tried := 0
	var lastErr error
	for {
		for attempt := 0; attempt < f.cfg.AttemptsPerInstance; attempt++ {
			attemptCtx, cancel := context.WithTimeout(ctx, f.cfg.CallTimeout)
			err := f.transport.Call(attemptCtx, inst, method, req, resp)
			cancel()
			if err == nil {
				f.registry.ResetHealth(service)
				return nil
			}
			lastErr = err
			level.Debug(f.logger).Log(
				"msg", "backend attempt failed",
				"service", service,
				"method", method,
				"instance", inst.Address(),
				"attempt", attempt+1,
				"err", err,
			)
		}

		f.registry.MarkUnhealthy(service, inst)
		tried++
		if tried >= f.cfg.MaxInstances {
			return fmt.Errorf("%w: %v", ErrExhausted, lastErr)
		}
		next, ok := f.registry.NextHealthy(service)
		if !ok {
			return fmt.Errorf("%w: %v", ErrExhausted, lastErr)
		}
		inst = next
	}
}
