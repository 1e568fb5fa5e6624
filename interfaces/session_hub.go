package interfaces

import "context"

// SessionHub tracks group-session membership over live realtime connections and
// fans events out to session peers. Per-peer state machine: unjoined → joined →
// closed. Join records the membership exactly once; any other event on an
// unjoined peer is ignored. Durable-store failures never fail a peer.
//
// Implemented by service.sessionHub. Called from handlers.WSHandler's per-connection
// read loop.
//
//go:generate moq -stub -out mock/session_hub.go -pkg mock . SessionHub
type SessionHub interface {
	// Join associates the peer with (sessionID, userID), persists the membership in the durable store (create-or-append, errors swallowed) and broadcasts user_joined to the other peers of the session.
	// Parameters: ctx — bounds the store round trip; peer — joining connection; sessionID, userID — caller-supplied identities (empty values are ignored and logged). A second join on an already-joined peer is ignored.
	// Called from handlers on an inbound join_session frame.
	Join(ctx context.Context, peer SessionPeer, sessionID, userID string)

	// Leave removes the peer from the session fan-out set and broadcasts user_left to the remaining peers. The durable participant list is not pruned.
	// Parameters: peer — leaving connection. No-op for an unjoined peer.
	// Called from handlers on an inbound leave_session frame.
	Leave(peer SessionPeer)

	// Chat broadcasts the message verbatim, tagged with the sender's user id, to every peer of the sender's session including the sender. Ignored for an unjoined peer.
	// Parameters: peer — sending connection; message — chat text, forwarded as-is.
	// Called from handlers on an inbound chat_message frame.
	Chat(peer SessionPeer, message string)

	// VoteExercise records the sender's exercise choice on the durable session record (errors swallowed) and broadcasts vote_update with the current tally to every peer of the session. Ignored for an unjoined peer.
	// Parameters: ctx — bounds the store round trip; peer — voting connection; exercise — chosen exercise name.
	// Called from handlers on an inbound vote_exercise frame.
	VoteExercise(ctx context.Context, peer SessionPeer, exercise string)

	// ChooseExercise broadcasts exercise_chosen to every peer of the sender's session. Ignored for an unjoined peer.
	// Parameters: peer — announcing connection; exercise — chosen exercise name.
	// Called from handlers on an inbound exercise_chosen frame.
	ChooseExercise(peer SessionPeer, exercise string)

	// Disconnect removes the peer from any fan-out set on transport-level close. The durable participant list is not pruned. Idempotent; safe for unjoined peers.
	// Parameter peer — closed connection.
	// Called from handlers when the read loop ends.
	Disconnect(peer SessionPeer)
}
