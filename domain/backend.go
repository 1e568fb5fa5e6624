package domain

// Full gRPC method names of the backend RPC contracts the gateway calls.
// The method name is the contract; request/response bodies travel through the
// gateway's JSON call codec (adapters/grpcbackend).
const (
	MethodRegisterUser             = "/UserService/RegisterUser"
	MethodGetUserGoal              = "/UserService/GetUserGoal"
	MethodStartWorkoutSession      = "/ActivityService/StartWorkoutSession"
	MethodStartGroupWorkoutSession = "/ActivityService/StartGroupWorkoutSession"
	MethodEndWorkoutSession        = "/ActivityService/EndWorkoutSession"
	MethodVoteWorkout              = "/ActivityService/VoteWorkout"
	MethodCountVotes               = "/ActivityService/CountVotes"
)

// RegisterUserRequest is the body of MethodRegisterUser.
type RegisterUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Goal     string `json:"goal"`
}

// UserResponse is returned by MethodRegisterUser.
type UserResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GetUserGoalRequest is the body of MethodGetUserGoal.
type GetUserGoalRequest struct {
	UserID string `json:"user_id"`
}

// GoalResponse is returned by MethodGetUserGoal.
type GoalResponse struct {
	UserID string `json:"user_id"`
	Goal   string `json:"goal"`
}

// WorkoutRequest is the body of MethodStartWorkoutSession and MethodStartGroupWorkoutSession.
type WorkoutRequest struct {
	UserID string `json:"user_id"`
}

// WorkoutResponse is returned by the start/end workout session methods.
type WorkoutResponse struct {
	SessionID string `json:"session_id"`
	StartTime string `json:"start_time"`
}

// EndWorkoutRequest is the body of MethodEndWorkoutSession.
type EndWorkoutRequest struct {
	SessionID string `json:"session_id"`
}

// VoteWorkoutRequest is the body of MethodVoteWorkout.
type VoteWorkoutRequest struct {
	SessionID   string `json:"session_id"`
	UserID      string `json:"user_id"`
	WorkoutType string `json:"workout_type"`
	Duration    int    `json:"duration"`
}

// VoteWorkoutResponse is returned by MethodVoteWorkout.
type VoteWorkoutResponse struct {
	SessionID string `json:"session_id"`
	Accepted  bool   `json:"accepted"`
}

// CountVotesRequest is the body of MethodCountVotes.
type CountVotesRequest struct {
	SessionID string `json:"session_id"`
}

// CountVotesResponse is returned by MethodCountVotes: vote tally per workout type.
type CountVotesResponse struct {
	SessionID string         `json:"session_id"`
	Votes     map[string]int `json:"votes"`
}
