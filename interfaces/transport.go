package interfaces

import (
	"context"

	"fitgateway/domain"
)

// BackendTransport performs a single RPC attempt against one concrete backend
// instance. It owns the connection lifecycle (dial, cache, close); it does not
// retry — retry budgets and instance escalation belong to the failover invoker.
//
// Implemented by grpcbackend.transport. Called from service.failoverInvoker for
// every attempt.
//
//go:generate moq -stub -out mock/backend_transport.go -pkg mock . BackendTransport
type BackendTransport interface {
	// Call invokes the full gRPC method on the given instance, encoding req and decoding into resp with the gateway's JSON call codec.
	// Parameters: ctx — bounds this one attempt (the invoker applies the per-call timeout); inst — target instance; method — full method name; req — request body; resp — pointer the response is decoded into.
	// Returns: nil on success; the transport/dial/application error of this attempt otherwise.
	// Called from service.failoverInvoker inside the bounded retry loop.
	Call(ctx context.Context, inst domain.ServiceInstance, method string, req any, resp any) error
}
