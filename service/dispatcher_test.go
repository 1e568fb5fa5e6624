package service

import (
	"context"
	"errors"
	"testing"

	"fitgateway/domain"
	"fitgateway/interfaces/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatcher_Panics(t *testing.T) {
	invoker := &mock.RPCInvokerMock{}

	t.Run("invoker_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.dispatcher.go: invoker is required", func() {
			NewDispatcher(nil, invoker)
		})
	})
	t.Run("guarded_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.dispatcher.go: guarded invoker is required", func() {
			NewDispatcher(invoker, nil)
		})
	})
}

func TestDispatcher_Validation(t *testing.T) {
	ctx := context.Background()
	invoker := &mock.RPCInvokerMock{}
	guarded := &mock.RPCInvokerMock{}
	d := NewDispatcher(invoker, guarded)

	assertBadParameter := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		gwErr := ToGatewayError(err)
		require.NotNil(t, gwErr)
		assert.Equal(t, ErrBadParameter, gwErr.Code)
	}

	t.Run("register_user_missing_fields", func(t *testing.T) {
		_, err := d.RegisterUser(ctx, domain.RegisterUserRequest{Username: "alice", Email: " "})
		assertBadParameter(t, err)
	})
	t.Run("get_user_goal_empty_user_id", func(t *testing.T) {
		_, err := d.GetUserGoal(ctx, "  ")
		assertBadParameter(t, err)
	})
	t.Run("start_workout_empty_user_id", func(t *testing.T) {
		_, err := d.StartWorkoutSession(ctx, "")
		assertBadParameter(t, err)
	})
	t.Run("start_group_workout_empty_user_id", func(t *testing.T) {
		_, err := d.StartGroupWorkoutSession(ctx, "")
		assertBadParameter(t, err)
	})
	t.Run("end_workout_empty_session_id", func(t *testing.T) {
		_, err := d.EndWorkoutSession(ctx, "")
		assertBadParameter(t, err)
	})
	t.Run("vote_workout_missing_fields", func(t *testing.T) {
		_, err := d.VoteWorkout(ctx, domain.VoteWorkoutRequest{SessionID: "s1", UserID: "u1"})
		assertBadParameter(t, err)
	})
	t.Run("count_votes_empty_session_id", func(t *testing.T) {
		_, err := d.CountVotes(ctx, "")
		assertBadParameter(t, err)
	})

	// No invalid request may reach a backend.
	assert.Empty(t, invoker.InvokeCalls())
	assert.Empty(t, guarded.InvokeCalls())
}

func TestDispatcher_Routing(t *testing.T) {
	ctx := context.Background()

	t.Run("register_user_uses_failover_path", func(t *testing.T) {
		invoker := &mock.RPCInvokerMock{
			InvokeFunc: func(ctx context.Context, service domain.ServiceType, method string, req any, resp any) error {
				*(resp.(*domain.UserResponse)) = domain.UserResponse{UserID: "u1", Username: "alice", Email: "alice@example.com"}
				return nil
			},
		}
		guarded := &mock.RPCInvokerMock{}
		d := NewDispatcher(invoker, guarded)

		resp, err := d.RegisterUser(ctx, domain.RegisterUserRequest{Username: "alice", Email: "alice@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "u1", resp.UserID)
		require.Len(t, invoker.InvokeCalls(), 1)
		assert.Equal(t, domain.ServiceUser, invoker.InvokeCalls()[0].Service)
		assert.Equal(t, domain.MethodRegisterUser, invoker.InvokeCalls()[0].Method)
		assert.Empty(t, guarded.InvokeCalls())
	})

	t.Run("get_user_goal_targets_user_service", func(t *testing.T) {
		invoker := &mock.RPCInvokerMock{
			InvokeFunc: func(ctx context.Context, service domain.ServiceType, method string, req any, resp any) error {
				*(resp.(*domain.GoalResponse)) = domain.GoalResponse{UserID: "u1", Goal: "lose_weight"}
				return nil
			},
		}
		d := NewDispatcher(invoker, &mock.RPCInvokerMock{})

		resp, err := d.GetUserGoal(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "lose_weight", resp.Goal)
		require.Len(t, invoker.InvokeCalls(), 1)
		assert.Equal(t, domain.MethodGetUserGoal, invoker.InvokeCalls()[0].Method)
		assert.Equal(t, domain.GetUserGoalRequest{UserID: "u1"}, invoker.InvokeCalls()[0].Req)
	})

	t.Run("start_workout_uses_guarded_path_only", func(t *testing.T) {
		invoker := &mock.RPCInvokerMock{}
		guarded := &mock.RPCInvokerMock{
			InvokeFunc: func(ctx context.Context, service domain.ServiceType, method string, req any, resp any) error {
				*(resp.(*domain.WorkoutResponse)) = domain.WorkoutResponse{SessionID: "s1"}
				return nil
			},
		}
		d := NewDispatcher(invoker, guarded)

		resp, err := d.StartWorkoutSession(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "s1", resp.SessionID)
		require.Len(t, guarded.InvokeCalls(), 1)
		assert.Equal(t, domain.ServiceActivity, guarded.InvokeCalls()[0].Service)
		assert.Equal(t, domain.MethodStartWorkoutSession, guarded.InvokeCalls()[0].Method)
		assert.Empty(t, invoker.InvokeCalls())
	})

	t.Run("start_group_workout_bypasses_the_breaker", func(t *testing.T) {
		invoker := &mock.RPCInvokerMock{}
		guarded := &mock.RPCInvokerMock{}
		d := NewDispatcher(invoker, guarded)

		_, err := d.StartGroupWorkoutSession(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, invoker.InvokeCalls(), 1)
		assert.Equal(t, domain.MethodStartGroupWorkoutSession, invoker.InvokeCalls()[0].Method)
		assert.Empty(t, guarded.InvokeCalls())
	})

	t.Run("end_workout_targets_activity_service", func(t *testing.T) {
		invoker := &mock.RPCInvokerMock{}
		d := NewDispatcher(invoker, &mock.RPCInvokerMock{})

		_, err := d.EndWorkoutSession(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, invoker.InvokeCalls(), 1)
		assert.Equal(t, domain.ServiceActivity, invoker.InvokeCalls()[0].Service)
		assert.Equal(t, domain.MethodEndWorkoutSession, invoker.InvokeCalls()[0].Method)
	})

	t.Run("vote_and_count_target_activity_service", func(t *testing.T) {
		invoker := &mock.RPCInvokerMock{}
		d := NewDispatcher(invoker, &mock.RPCInvokerMock{})

		_, err := d.VoteWorkout(ctx, domain.VoteWorkoutRequest{SessionID: "s1", UserID: "u1", WorkoutType: "cardio"})
		require.NoError(t, err)
		_, err = d.CountVotes(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, invoker.InvokeCalls(), 2)
		assert.Equal(t, domain.MethodVoteWorkout, invoker.InvokeCalls()[0].Method)
		assert.Equal(t, domain.MethodCountVotes, invoker.InvokeCalls()[1].Method)
	})

	t.Run("invoker_error_is_propagated_unchanged", func(t *testing.T) {
		backendErr := errors.New("connection refused")
		invoker := &mock.RPCInvokerMock{
			InvokeFunc: func(ctx context.Context, service domain.ServiceType, method string, req any, resp any) error {
				return backendErr
			},
		}
		d := NewDispatcher(invoker, &mock.RPCInvokerMock{})

		_, err := d.GetUserGoal(ctx, "u1")
		assert.ErrorIs(t, err, backendErr)
	})
}
