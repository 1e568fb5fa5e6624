package service

import (
	"context"
	"strings"

	"fitgateway/domain"
	"fitgateway/helpers"
	"fitgateway/interfaces"
)

// Dispatcher implements interfaces.Dispatcher: the request-facing layer mapping
// each supported operation to its backend path. All user-service and most
// activity-service operations go through the plain failover invoker; only the
// solo workout start goes through the breaker-guarded invoker. Validation here
// is minimal shape checking — business rules live in the backends.
type Dispatcher struct {
	invoker interfaces.RPCInvoker
	guarded interfaces.RPCInvoker
}

// NewDispatcher creates the dispatcher. Panics on nil invokers (fail-fast at startup).
//
// Parameters: invoker — failover invoker used by every unguarded operation; guarded — breaker-wrapped invoker used only by StartWorkoutSession.
//
// Returns: *Dispatcher implementing interfaces.Dispatcher.
//
// Called from cmd/main when building the gateway.
func NewDispatcher(invoker interfaces.RPCInvoker, guarded interfaces.RPCInvoker) *Dispatcher {
	return &Dispatcher{
		invoker: helpers.NilPanic(invoker, "service.dispatcher.go: invoker is required"),
		guarded: helpers.NilPanic(guarded, "service.dispatcher.go: guarded invoker is required"),
	}
}

// RegisterUser registers a new user via the user service.
//
// Parameters: ctx — request context; req — username, email and password required, goal optional.
//
// Returns: (response, nil) on success; bad_parameter GatewayError on missing fields; invoker error otherwise.
//
// Called from handlers.HTTPServer.RegisterUser.
func (d *Dispatcher) RegisterUser(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return domain.UserResponse{}, NewBadParameterError("username, email and password are required", nil)
	}
	var resp domain.UserResponse
	if err := d.invoker.Invoke(ctx, domain.ServiceUser, domain.MethodRegisterUser, req, &resp); err != nil {
		return domain.UserResponse{}, err
	}
	return resp, nil
}

// GetUserGoal fetches the user's goal via the user service.
func (d *Dispatcher) GetUserGoal(ctx context.Context, userID string) (domain.GoalResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.GoalResponse{}, NewBadParameterError("user_id is required", nil)
	}
	var resp domain.GoalResponse
	if err := d.invoker.Invoke(ctx, domain.ServiceUser, domain.MethodGetUserGoal, domain.GetUserGoalRequest{UserID: userID}, &resp); err != nil {
		return domain.GoalResponse{}, err
	}
	return resp, nil
}

// StartWorkoutSession starts a solo workout via the activity service through
// the circuit breaker. While the circuit is open the call fails fast with
// ErrCircuitOpen, which the HTTP surface renders as service_unavailable.
func (d *Dispatcher) StartWorkoutSession(ctx context.Context, userID string) (domain.WorkoutResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.WorkoutResponse{}, NewBadParameterError("user_id is required", nil)
	}
	var resp domain.WorkoutResponse
	if err := d.guarded.Invoke(ctx, domain.ServiceActivity, domain.MethodStartWorkoutSession, domain.WorkoutRequest{UserID: userID}, &resp); err != nil {
		return domain.WorkoutResponse{}, err
	}
	return resp, nil
}

// StartGroupWorkoutSession starts a group workout via the activity service (unguarded).
func (d *Dispatcher) StartGroupWorkoutSession(ctx context.Context, userID string) (domain.WorkoutResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.WorkoutResponse{}, NewBadParameterError("user_id is required", nil)
	}
	var resp domain.WorkoutResponse
	if err := d.invoker.Invoke(ctx, domain.ServiceActivity, domain.MethodStartGroupWorkoutSession, domain.WorkoutRequest{UserID: userID}, &resp); err != nil {
		return domain.WorkoutResponse{}, err
	}
	return resp, nil
}

// EndWorkoutSession ends a workout (solo or group) via the activity service.
func (d *Dispatcher) EndWorkoutSession(ctx context.Context, sessionID string) (domain.WorkoutResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.WorkoutResponse{}, NewBadParameterError("session_id is required", nil)
	}
	var resp domain.WorkoutResponse
	if err := d.invoker.Invoke(ctx, domain.ServiceActivity, domain.MethodEndWorkoutSession, domain.EndWorkoutRequest{SessionID: sessionID}, &resp); err != nil {
		return domain.WorkoutResponse{}, err
	}
	return resp, nil
}

// VoteWorkout casts a vote for the next workout in a group session via the activity service.
func (d *Dispatcher) VoteWorkout(ctx context.Context, req domain.VoteWorkoutRequest) (domain.VoteWorkoutResponse, error) {
	if strings.TrimSpace(req.SessionID) == "" || strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.WorkoutType) == "" {
		return domain.VoteWorkoutResponse{}, NewBadParameterError("session_id, user_id and workout_type are required", nil)
	}
	var resp domain.VoteWorkoutResponse
	if err := d.invoker.Invoke(ctx, domain.ServiceActivity, domain.MethodVoteWorkout, req, &resp); err != nil {
		return domain.VoteWorkoutResponse{}, err
	}
	return resp, nil
}

// CountVotes returns the vote tally for a group session via the activity service.
func (d *Dispatcher) CountVotes(ctx context.Context, sessionID string) (domain.CountVotesResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.CountVotesResponse{}, NewBadParameterError("session_id is required", nil)
	}
	var resp domain.CountVotesResponse
	if err := d.invoker.Invoke(ctx, domain.ServiceActivity, domain.MethodCountVotes, domain.CountVotesRequest{SessionID: sessionID}, &resp); err != nil {
		return domain.CountVotesResponse{}, err
	}
	return resp, nil
}
