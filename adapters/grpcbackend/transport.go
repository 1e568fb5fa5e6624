package grpcbackend

import (
	"context"
	"errors"
	"sync"

	"fitgateway/domain"
	"fitgateway/helpers"
	"fitgateway/interfaces"

	"google.golang.org/grpc"
)

// ErrTransportClosed is returned by Call after Close; the gateway is shutting down.
var ErrTransportClosed = errors.New("backend transport is closed")

// transport implements interfaces.BackendTransport over gRPC. It keeps one
// cached *grpc.ClientConn per instance address, created lazily through the
// injected factory; gRPC manages reconnection underneath, so a conn stays
// cached across instance failures and the failover invoker decides what to
// retry. Call bodies travel through the JSON call codec via grpc.ForceCodec.
type transport struct {
	factory func(inst domain.ServiceInstance) (*grpc.ClientConn, error)

	mu     sync.Mutex
	conns  map[string]*grpc.ClientConn
	closed bool
}

// NewTransport creates the backend transport. Panics on nil factory.
//
// Parameter factory — dials one instance (cmd/main uses grpc.NewClient with insecure credentials).
//
// Returns: *transport implementing interfaces.BackendTransport.
//
// Called from cmd/main when building the gateway.
func NewTransport(factory func(inst domain.ServiceInstance) (*grpc.ClientConn, error)) *transport {
	return &transport{
		factory: helpers.NilPanic(factory, "grpcbackend.transport.go: factory is required"),
		conns:   make(map[string]*grpc.ClientConn),
	}
}

var _ interfaces.BackendTransport = (*transport)(nil)

// Call invokes the full gRPC method on the instance with the JSON call codec.
// One attempt only: retry budgets belong to the failover invoker.
//
// Parameters: ctx — bounds this attempt (the invoker applies the per-call timeout); inst — target instance; method — full method name (e.g. domain.MethodRegisterUser); req/resp — JSON-coded bodies.
//
// Returns: nil on success; ErrTransportClosed after Close; dial or RPC error otherwise.
//
// Called from service.failoverInvoker inside its retry loop.
func (t *transport) Call(ctx context.Context, inst domain.ServiceInstance, method string, req any, resp any) error {
	conn, err := t.getOrCreateConn(inst)
	if err != nil {
		return err
	}
	return conn.Invoke(ctx, method, req, resp, grpc.ForceCodec(jsonCodec{}))
}

// getOrCreateConn returns the cached connection for the instance address or
// creates it via the factory and caches it. On factory error nothing is cached.
func (t *transport) getOrCreateConn(inst domain.ServiceInstance) (*grpc.ClientConn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, ErrTransportClosed
	}
	addr := inst.Address()
	if conn := t.conns[addr]; conn != nil {
		return conn, nil
	}
	conn, err := t.factory(inst)
	if err != nil {
		return nil, err
	}
	t.conns[addr] = conn
	return conn, nil
}

// Close closes all cached connections and marks the transport closed.
// Idempotent; individual close errors are not aggregated.
//
// Returns: nil.
//
// Called from cmd/main via defer on shutdown.
func (t *transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	for _, conn := range t.conns {
		_ = conn.Close()
	}
	t.conns = map[string]*grpc.ClientConn{}
	return nil
}
