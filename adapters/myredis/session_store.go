package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fitgateway/domain"
	"fitgateway/helpers"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "workout_session"

// sessionStore implements interfaces.SessionStore on Redis: one JSON value per
// session id under workout_session:{id}. No TTL — the participant list
// survives gateway restarts, which is the whole point of the durable map.
type sessionStore struct {
	client redis.UniversalClient
}

// NewSessionStore creates a SessionStore reading and writing workout_session:{id} JSON records. Panics on nil client.
//
// Parameter client — redis universal client (from NewRedisUniversalClient).
//
// Returns: *sessionStore implementing interfaces.SessionStore.
//
// Called from cmd/main after the Redis ping check.
func NewSessionStore(client redis.UniversalClient) *sessionStore {
	return &sessionStore{
		client: helpers.NilPanic(client, "myredis.session_store.go: redis client is required"),
	}
}

// Get reads the session record. redis.Nil (absent key) is not an error.
//
// Parameters: ctx — bounds the round trip; sessionID — session identity.
//
// Returns: (session, true, nil) when present; (zero, false, nil) when absent; (zero, false, err) on redis or unmarshal failure.
//
// Called from service.sessionHub on join and vote.
func (s *sessionStore) Get(ctx context.Context, sessionID string) (domain.Session, bool, error) {
	data, err := s.client.Get(ctx, generateKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, false, nil
		}
		return domain.Session{}, false, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return domain.Session{}, false, fmt.Errorf("failed to unmarshal session from redis: %w", err)
	}
	return session, true, nil
}

// Set writes the full session record, replacing any previous value. No TTL.
//
// Parameters: ctx — bounds the round trip; sessionID — session identity; session — record to persist.
//
// Returns: nil on success; marshal or redis error otherwise.
//
// Called from service.sessionHub after updating participants or votes.
func (s *sessionStore) Set(ctx context.Context, sessionID string, session domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, generateKey(sessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write session to redis: %w", err)
	}
	return nil
}

func generateKey(sessionID string) string {
	return keyPrefix + ":" + sessionID
}
