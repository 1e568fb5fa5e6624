package interfaces

import (
	"context"

	"fitgateway/domain"
)

// RPCInvoker performs one logical backend RPC: encode req, call the method on a
// registry-selected instance of the service type, decode into resp. The
// failover implementation hides per-instance retries and instance escalation;
// the breaker implementation wraps a failover invoker for the one guarded path.
//
// Implemented by service.failoverInvoker and service.breakerInvoker. Called
// from service.Dispatcher for every operation.
//
//go:generate moq -stub -out mock/rpc_invoker.go -pkg mock . RPCInvoker
type RPCInvoker interface {
	// Invoke calls the full gRPC method (e.g. domain.MethodRegisterUser) against a healthy instance of the service type, retrying and failing over per the configured budgets.
	// Parameters: ctx — request context (each attempt is additionally bounded by the configured per-call timeout); service — backend service type; method — full method name; req — request body (JSON-encoded); resp — pointer the response body is decoded into.
	// Returns: nil on success (resp populated); service.ErrNoAvailableInstance when every instance is already marked unhealthy at selection time; service.ErrExhausted (wrapped, with the last attempt error) when the distinct-instance cap is reached; service.ErrCircuitOpen from the breaker implementation while the circuit is open; any other error is the backend failure of the final attempt.
	// Called from service.Dispatcher operations.
	Invoke(ctx context.Context, service domain.ServiceType, method string, req any, resp any) error
}
