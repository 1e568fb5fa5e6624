// Package handlers contains the HTTP and websocket handlers for fitgateway.
package handlers

import (
	"net/http"

	"fitgateway/domain"
	"fitgateway/helpers"
	"fitgateway/interfaces"
	"fitgateway/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer exposes the gateway operations over HTTP. One route per
// dispatcher operation plus the static status endpoint; error rendering is
// centralized in service.RegisterErrorHandler.
type HTTPServer struct {
	dispatcher interfaces.Dispatcher
	logger     log.Logger
}

// NewHTTPServer creates a new HTTPServer. Panics on nil dispatcher or logger.
func NewHTTPServer(dispatcher interfaces.Dispatcher, logger log.Logger) *HTTPServer {
	return &HTTPServer{
		dispatcher: helpers.NilPanic(dispatcher, "handlers.http.go: dispatcher is required"),
		logger:     log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
}

// RegisterRoutes registers all gateway routes on the echo instance.
//
// Parameters: e — echo instance; s — HTTP handlers; ws — websocket handler for GET /ws.
//
// Called from cmd/main after building the handlers.
func RegisterRoutes(e *echo.Echo, s *HTTPServer, ws *WSHandler) {
	e.POST("/users/register", s.RegisterUser)
	e.GET("/users/:user_id/goal", s.GetUserGoal)
	e.POST("/workouts/start", s.StartWorkout)
	e.POST("/workouts/group/start", s.StartGroupWorkout)
	e.POST("/workouts/end", s.EndWorkout)
	e.POST("/workouts/vote", s.VoteWorkout)
	e.GET("/workouts/:session_id/votes", s.CountVotes)
	e.GET("/status", s.Status)
	e.GET("/ws", ws.Handle)
}

// startWorkoutRequest is the body of POST /workouts/start and /workouts/group/start.
type startWorkoutRequest struct {
	UserID string `json:"user_id"`
}

// endWorkoutRequest is the body of POST /workouts/end.
type endWorkoutRequest struct {
	SessionID string `json:"session_id"`
}

// RegisterUser (POST /users/register) forwards the registration to the user service.
// Returns 200 with {user_id, username, email}; 400 on body/validation errors; 502/503 per the resilience taxonomy.
func (s *HTTPServer) RegisterUser(ectx echo.Context) error {
	var req domain.RegisterUserRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	resp, err := s.dispatcher.RegisterUser(ectx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, resp)
}

// GetUserGoal (GET /users/:user_id/goal) fetches the user's goal from the user service.
func (s *HTTPServer) GetUserGoal(ectx echo.Context) error {
	resp, err := s.dispatcher.GetUserGoal(ectx.Request().Context(), ectx.Param("user_id"))
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, resp)
}

// StartWorkout (POST /workouts/start) starts a solo workout session through the
// circuit-breaker-guarded path. A 503 service_unavailable response means the
// circuit is open; 502 all_instances_failed means failover was exhausted.
func (s *HTTPServer) StartWorkout(ectx echo.Context) error {
	var req startWorkoutRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	resp, err := s.dispatcher.StartWorkoutSession(ectx.Request().Context(), req.UserID)
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, resp)
}

// StartGroupWorkout (POST /workouts/group/start) starts a group workout session (unguarded path).
func (s *HTTPServer) StartGroupWorkout(ectx echo.Context) error {
	var req startWorkoutRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	resp, err := s.dispatcher.StartGroupWorkoutSession(ectx.Request().Context(), req.UserID)
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, resp)
}

// EndWorkout (POST /workouts/end) ends a workout session.
func (s *HTTPServer) EndWorkout(ectx echo.Context) error {
	var req endWorkoutRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	resp, err := s.dispatcher.EndWorkoutSession(ectx.Request().Context(), req.SessionID)
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, resp)
}

// VoteWorkout (POST /workouts/vote) casts a workout vote for a group session.
func (s *HTTPServer) VoteWorkout(ectx echo.Context) error {
	var req domain.VoteWorkoutRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	resp, err := s.dispatcher.VoteWorkout(ectx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, resp)
}

// CountVotes (GET /workouts/:session_id/votes) returns the vote tally for a session.
func (s *HTTPServer) CountVotes(ectx echo.Context) error {
	resp, err := s.dispatcher.CountVotes(ectx.Request().Context(), ectx.Param("session_id"))
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, resp)
}

// Status (GET /status) returns the static running indicator.
func (s *HTTPServer) Status(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, map[string]string{"status": "API Gateway is running"})
}
