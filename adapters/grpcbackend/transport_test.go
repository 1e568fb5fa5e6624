package grpcbackend

import (
	"context"
	"errors"
	"net"
	"testing"

	"fitgateway/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newTestConn(t *testing.T) *grpc.ClientConn {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := grpc.NewServer()
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() { srv.Stop() })
	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestNewTransport_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "grpcbackend.transport.go: factory is required", func() {
		NewTransport(nil)
	})
}

func TestTransport_Call(t *testing.T) {
	ctx := context.Background()
	inst := domain.ServiceInstance{Host: "localhost", Port: 50051}

	t.Run("factory_error_is_returned_and_not_cached", func(t *testing.T) {
		dialErr := errors.New("dial failed")
		calls := 0
		tr := NewTransport(func(inst domain.ServiceInstance) (*grpc.ClientConn, error) {
			calls++
			return nil, dialErr
		})
		defer tr.Close()

		err := tr.Call(ctx, inst, domain.MethodGetUserGoal, nil, nil)
		assert.ErrorIs(t, err, dialErr)

		_ = tr.Call(ctx, inst, domain.MethodGetUserGoal, nil, nil)
		assert.Equal(t, 2, calls, "a failed dial must not be cached")
	})

	t.Run("connection_is_cached_per_instance_address", func(t *testing.T) {
		conn := newTestConn(t)
		calls := 0
		tr := NewTransport(func(inst domain.ServiceInstance) (*grpc.ClientConn, error) {
			calls++
			return conn, nil
		})
		defer tr.Close()

		// The test server implements no services, so the RPC itself fails,
		// but both calls must reuse the single dialed connection.
		_ = tr.Call(ctx, inst, domain.MethodGetUserGoal, domain.GetUserGoalRequest{UserID: "u1"}, &domain.GoalResponse{})
		_ = tr.Call(ctx, inst, domain.MethodGetUserGoal, domain.GetUserGoalRequest{UserID: "u1"}, &domain.GoalResponse{})
		assert.Equal(t, 1, calls)
	})

	t.Run("distinct_instances_get_distinct_connections", func(t *testing.T) {
		conn := newTestConn(t)
		calls := 0
		tr := NewTransport(func(inst domain.ServiceInstance) (*grpc.ClientConn, error) {
			calls++
			return conn, nil
		})
		defer tr.Close()

		other := domain.ServiceInstance{Host: "localhost", Port: 50061}
		_ = tr.Call(ctx, inst, domain.MethodGetUserGoal, nil, &domain.GoalResponse{})
		_ = tr.Call(ctx, other, domain.MethodGetUserGoal, nil, &domain.GoalResponse{})
		assert.Equal(t, 2, calls)
	})

	t.Run("rpc_error_is_surfaced", func(t *testing.T) {
		conn := newTestConn(t)
		tr := NewTransport(func(inst domain.ServiceInstance) (*grpc.ClientConn, error) {
			return conn, nil
		})
		defer tr.Close()

		err := tr.Call(ctx, inst, domain.MethodGetUserGoal, domain.GetUserGoalRequest{UserID: "u1"}, &domain.GoalResponse{})
		require.Error(t, err)
	})
}

func TestTransport_Close(t *testing.T) {
	inst := domain.ServiceInstance{Host: "localhost", Port: 50051}

	t.Run("call_after_close_fails_fast", func(t *testing.T) {
		tr := NewTransport(func(inst domain.ServiceInstance) (*grpc.ClientConn, error) {
			t.Fatal("factory must not be called after close")
			return nil, nil
		})
		require.NoError(t, tr.Close())

		err := tr.Call(context.Background(), inst, domain.MethodGetUserGoal, nil, nil)
		assert.ErrorIs(t, err, ErrTransportClosed)
	})

	t.Run("close_is_idempotent", func(t *testing.T) {
		conn := newTestConn(t)
		tr := NewTransport(func(inst domain.ServiceInstance) (*grpc.ClientConn, error) {
			return conn, nil
		})
		_ = tr.Call(context.Background(), inst, domain.MethodGetUserGoal, nil, &domain.GoalResponse{})

		require.NoError(t, tr.Close())
		require.NoError(t, tr.Close())
	})
}
