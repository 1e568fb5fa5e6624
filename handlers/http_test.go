package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitgateway/domain"
	"fitgateway/interfaces/mock"
	"fitgateway/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPServer_Panics(t *testing.T) {
	dispatcher := &mock.DispatcherMock{}
	logger := log.NewNopLogger()

	t.Run("dispatcher_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "handlers.http.go: dispatcher is required", func() {
			NewHTTPServer(nil, logger)
		})
	})
	t.Run("logger_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "handlers.http.go: logger is required", func() {
			NewHTTPServer(dispatcher, nil)
		})
	})
}

// newTestGateway wires a full echo instance the way cmd/main does, with the
// dispatcher and hub mocked out.
func newTestGateway(t *testing.T, dispatcher *mock.DispatcherMock) *echo.Echo {
	t.Helper()
	logger := log.NewNopLogger()
	e := echo.New()
	e.HideBanner = true
	service.RegisterErrorHandler(e, logger)
	RegisterRoutes(e, NewHTTPServer(dispatcher, logger), NewWSHandler(&mock.SessionHubMock{}, logger))
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHTTPServer_RegisterUser(t *testing.T) {
	t.Run("success_returns_user", func(t *testing.T) {
		dispatcher := &mock.DispatcherMock{
			RegisterUserFunc: func(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error) {
				return domain.UserResponse{UserID: "u1", Username: req.Username, Email: req.Email}, nil
			},
		}
		e := newTestGateway(t, dispatcher)

		rec := doJSON(e, http.MethodPost, "/users/register",
			`{"username":"alice","email":"alice@example.com","password":"secret","goal":"lose_weight"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp domain.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "u1", resp.UserID)
		assert.Equal(t, "alice", resp.Username)
		require.Len(t, dispatcher.RegisterUserCalls(), 1)
		assert.Equal(t, "lose_weight", dispatcher.RegisterUserCalls()[0].Req.Goal)
	})

	t.Run("malformed_body_returns_400", func(t *testing.T) {
		dispatcher := &mock.DispatcherMock{}
		e := newTestGateway(t, dispatcher)

		rec := doJSON(e, http.MethodPost, "/users/register", `{"username":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, dispatcher.RegisterUserCalls())
	})

	t.Run("validation_error_returns_400", func(t *testing.T) {
		dispatcher := &mock.DispatcherMock{
			RegisterUserFunc: func(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error) {
				return domain.UserResponse{}, service.NewBadParameterError("username, email and password are required", nil)
			},
		}
		e := newTestGateway(t, dispatcher)

		rec := doJSON(e, http.MethodPost, "/users/register", `{"username":"alice"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), service.ErrBadParameter)
	})
}

func TestHTTPServer_GetUserGoal(t *testing.T) {
	dispatcher := &mock.DispatcherMock{
		GetUserGoalFunc: func(ctx context.Context, userID string) (domain.GoalResponse, error) {
			return domain.GoalResponse{UserID: userID, Goal: "gain_muscle"}, nil
		},
	}
	e := newTestGateway(t, dispatcher)

	rec := doJSON(e, http.MethodGet, "/users/u1/goal", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp domain.GoalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, "gain_muscle", resp.Goal)
}

func TestHTTPServer_StartWorkout_ResilienceStatuses(t *testing.T) {
	t.Run("success_returns_session", func(t *testing.T) {
		dispatcher := &mock.DispatcherMock{
			StartWorkoutSessionFunc: func(ctx context.Context, userID string) (domain.WorkoutResponse, error) {
				return domain.WorkoutResponse{SessionID: "s1", StartTime: "2026-08-30T10:00:00Z"}, nil
			},
		}
		e := newTestGateway(t, dispatcher)

		rec := doJSON(e, http.MethodPost, "/workouts/start", `{"user_id":"u1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, dispatcher.StartWorkoutSessionCalls(), 1)
		assert.Equal(t, "u1", dispatcher.StartWorkoutSessionCalls()[0].UserID)
	})

	t.Run("circuit_open_returns_503", func(t *testing.T) {
		dispatcher := &mock.DispatcherMock{
			StartWorkoutSessionFunc: func(ctx context.Context, userID string) (domain.WorkoutResponse, error) {
				return domain.WorkoutResponse{}, fmt.Errorf("%w: too many failures", service.ErrCircuitOpen)
			},
		}
		e := newTestGateway(t, dispatcher)

		rec := doJSON(e, http.MethodPost, "/workouts/start", `{"user_id":"u1"}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), service.ErrServiceUnavailable)
	})

	t.Run("failover_exhausted_returns_502", func(t *testing.T) {
		dispatcher := &mock.DispatcherMock{
			StartWorkoutSessionFunc: func(ctx context.Context, userID string) (domain.WorkoutResponse, error) {
				return domain.WorkoutResponse{}, fmt.Errorf("%w: connection refused", service.ErrExhausted)
			},
		}
		e := newTestGateway(t, dispatcher)

		rec := doJSON(e, http.MethodPost, "/workouts/start", `{"user_id":"u1"}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), service.ErrAllInstancesFailed)
	})

	t.Run("backend_error_returns_502_upstream", func(t *testing.T) {
		dispatcher := &mock.DispatcherMock{
			StartWorkoutSessionFunc: func(ctx context.Context, userID string) (domain.WorkoutResponse, error) {
				return domain.WorkoutResponse{}, errors.New("boom")
			},
		}
		e := newTestGateway(t, dispatcher)

		rec := doJSON(e, http.MethodPost, "/workouts/start", `{"user_id":"u1"}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), service.ErrUpstreamError)
	})
}

func TestHTTPServer_GroupWorkoutRoutes(t *testing.T) {
	dispatcher := &mock.DispatcherMock{
		StartGroupWorkoutSessionFunc: func(ctx context.Context, userID string) (domain.WorkoutResponse, error) {
			return domain.WorkoutResponse{SessionID: "g1"}, nil
		},
		EndWorkoutSessionFunc: func(ctx context.Context, sessionID string) (domain.WorkoutResponse, error) {
			return domain.WorkoutResponse{SessionID: sessionID}, nil
		},
		VoteWorkoutFunc: func(ctx context.Context, req domain.VoteWorkoutRequest) (domain.VoteWorkoutResponse, error) {
			return domain.VoteWorkoutResponse{SessionID: req.SessionID, Accepted: true}, nil
		},
		CountVotesFunc: func(ctx context.Context, sessionID string) (domain.CountVotesResponse, error) {
			return domain.CountVotesResponse{SessionID: sessionID, Votes: map[string]int{"cardio": 2}}, nil
		},
	}
	e := newTestGateway(t, dispatcher)

	t.Run("start_group_workout", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/workouts/group/start", `{"user_id":"u1"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "g1")
	})

	t.Run("end_workout", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/workouts/end", `{"session_id":"g1"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, dispatcher.EndWorkoutSessionCalls(), 1)
		assert.Equal(t, "g1", dispatcher.EndWorkoutSessionCalls()[0].SessionID)
	})

	t.Run("vote_workout", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/workouts/vote",
			`{"session_id":"g1","user_id":"u1","workout_type":"cardio","duration":30}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, dispatcher.VoteWorkoutCalls(), 1)
		assert.Equal(t, 30, dispatcher.VoteWorkoutCalls()[0].Req.Duration)
	})

	t.Run("count_votes", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/workouts/g1/votes", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp domain.CountVotesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, map[string]int{"cardio": 2}, resp.Votes)
	})
}

func TestHTTPServer_Status(t *testing.T) {
	e := newTestGateway(t, &mock.DispatcherMock{})

	rec := doJSON(e, http.MethodGet, "/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "API Gateway is running")
}
