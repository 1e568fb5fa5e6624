package interfaces

import (
	"context"

	"fitgateway/domain"
)

// Dispatcher is the request-facing layer: one method per supported gateway
// operation, each validating the minimal input shape, invoking the backend
// path (failover invoker, or circuit breaker for the solo workout start) and
// returning the backend response.
//
// Implemented by service.Dispatcher. Called from handlers.HTTPServer.
//
//go:generate moq -stub -out mock/dispatcher.go -pkg mock . Dispatcher
type Dispatcher interface {
	// RegisterUser registers a new user via the user service (failover path).
	// Parameters: ctx — request context; req — username/email/password/goal, all but goal required.
	// Returns: (response, nil) on success; bad_parameter GatewayError on missing fields; invoker errors otherwise.
	RegisterUser(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error)

	// GetUserGoal fetches the user's goal via the user service (failover path).
	// Parameters: ctx — request context; userID — required.
	GetUserGoal(ctx context.Context, userID string) (domain.GoalResponse, error)

	// StartWorkoutSession starts a solo workout via the activity service, guarded by the circuit breaker.
	// Parameters: ctx — request context; userID — required.
	// Returns: service.ErrCircuitOpen (wrapped) while the circuit is open, distinct from backend failures.
	StartWorkoutSession(ctx context.Context, userID string) (domain.WorkoutResponse, error)

	// StartGroupWorkoutSession starts a group workout via the activity service (failover path, unguarded).
	// Parameters: ctx — request context; userID — required.
	StartGroupWorkoutSession(ctx context.Context, userID string) (domain.WorkoutResponse, error)

	// EndWorkoutSession ends a workout via the activity service (failover path).
	// Parameters: ctx — request context; sessionID — required.
	EndWorkoutSession(ctx context.Context, sessionID string) (domain.WorkoutResponse, error)

	// VoteWorkout casts a workout vote via the activity service (failover path).
	// Parameters: ctx — request context; req — session_id, user_id and workout_type required.
	VoteWorkout(ctx context.Context, req domain.VoteWorkoutRequest) (domain.VoteWorkoutResponse, error)

	// CountVotes returns the vote tally for a session via the activity service (failover path).
	// Parameters: ctx — request context; sessionID — required.
	CountVotes(ctx context.Context, sessionID string) (domain.CountVotesResponse, error)
}
