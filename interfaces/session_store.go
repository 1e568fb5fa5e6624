package interfaces

import (
	"context"

	"fitgateway/domain"
)

// SessionStore is the durable key-value map holding group-session membership,
// keyed by session id. No transactional multi-key guarantees: the hub performs
// at most a single read-then-write per join or vote, and session ids partition
// the state space.
//
// Implemented by myredis.sessionStore. Called from service.sessionHub; store
// failures are logged and swallowed there, never surfaced to the peer.
//
//go:generate moq -stub -out mock/session_store.go -pkg mock . SessionStore
type SessionStore interface {
	// Get reads the session record for the session id.
	// Parameters: ctx — bounds the store round trip; sessionID — caller-supplied session identity.
	// Returns: (session, true, nil) when present; (zero, false, nil) when absent; (zero, false, err) on store failure.
	// Called from service.sessionHub.Join and VoteExercise before updating.
	Get(ctx context.Context, sessionID string) (domain.Session, bool, error)

	// Set writes the session record for the session id, replacing any previous value.
	// Parameters: ctx — bounds the store round trip; sessionID — session identity; session — full record to persist.
	// Returns: nil on success; err on store failure (marshalling or write).
	// Called from service.sessionHub.Join and VoteExercise after updating the record.
	Set(ctx context.Context, sessionID string, session domain.Session) error
}
