package service

import (
	"context"
	"sync"

	"fitgateway/domain"
	"fitgateway/helpers"
	"fitgateway/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// membership is the per-peer association recorded exactly once on join.
type membership struct {
	sessionID string
	userID    string
}

// sessionHub implements interfaces.SessionHub. It keeps the session-indexed
// fan-out multimap (session id → set of live peers) maintained incrementally
// on join/leave/disconnect, and the per-peer membership record. The durable
// store holds the authoritative participant list; the hub never fails a peer
// because the store is unreachable — read/write failures are logged and the
// join or vote proceeds in degraded mode. Broadcast snapshots the peer set
// under the lock and delivers outside it, so one slow peer cannot block the
// others and a broadcast only sees peers fully established at iteration time.
type sessionHub struct {
	store  interfaces.SessionStore
	logger log.Logger

	mu       sync.Mutex
	members  map[interfaces.SessionPeer]membership
	sessions map[string]map[interfaces.SessionPeer]struct{}
}

// NewSessionHub creates the hub. Panics on nil store or logger (fail-fast at startup).
//
// Parameters: store — durable session membership map (redis adapter); logger — store failures and dropped frames are logged here.
//
// Returns: interfaces.SessionHub (*sessionHub).
//
// Called from cmd/main when building the gateway.
func NewSessionHub(store interfaces.SessionStore, logger log.Logger) interfaces.SessionHub {
	return &sessionHub{
		store:    helpers.NilPanic(store, "service.hub.go: store is required"),
		logger:   log.With(helpers.NilPanic(logger, "service.hub.go: logger is required"), "component", "session_hub"),
		members:  make(map[interfaces.SessionPeer]membership),
		sessions: make(map[string]map[interfaces.SessionPeer]struct{}),
	}
}

// Join transitions the peer from unjoined to joined, persists the membership
// (create-or-append) and notifies the other peers of the session. A second
// join on an already-joined peer is ignored; empty identities are ignored.
//
// Parameters: ctx — bounds the store round trip; peer — joining connection; sessionID, userID — caller-supplied identities.
//
// Called from the websocket read loop on a join_session frame.
func (h *sessionHub) Join(ctx context.Context, peer interfaces.SessionPeer, sessionID, userID string) {
	if sessionID == "" || userID == "" {
		level.Debug(h.logger).Log("msg", "join ignored: missing session or user id")
		return
	}

	h.mu.Lock()
	if _, joined := h.members[peer]; joined {
		h.mu.Unlock()
		level.Debug(h.logger).Log("msg", "join ignored: peer already joined", "session_id", sessionID)
		return
	}
	h.members[peer] = membership{sessionID: sessionID, userID: userID}
	set := h.sessions[sessionID]
	if set == nil {
		set = make(map[interfaces.SessionPeer]struct{})
		h.sessions[sessionID] = set
	}
	set[peer] = struct{}{}
	h.mu.Unlock()

	h.persistParticipant(ctx, sessionID, userID)

	h.broadcast(sessionID, peer, domain.Event{
		Type:      domain.EventUserJoined,
		SessionID: sessionID,
		UserID:    userID,
	})
}

// persistParticipant reads the session record, appends the user if missing and
// writes it back. Store failures are logged and swallowed: membership may
// become inconsistent with actual broadcast recipients while the store is
// unavailable, which is the chosen resilience-over-consistency tradeoff.
//
// Parameters: ctx — bounds both round trips; sessionID, userID — identities from the join.
//
// Called only from Join.
func (h *sessionHub) persistParticipant(ctx context.Context, sessionID, userID string) {
	session, found, err := h.store.Get(ctx, sessionID)
	if err != nil {
		level.Warn(h.logger).Log("msg", "session store read failed, join proceeds", "session_id", sessionID, "err", err)
		return
	}
	if found && session.HasParticipant(userID) {
		return
	}
	if !found {
		session = domain.Session{}
	}
	session.Participants = append(session.Participants, userID)
	if err := h.store.Set(ctx, sessionID, session); err != nil {
		level.Warn(h.logger).Log("msg", "session store write failed, join proceeds", "session_id", sessionID, "err", err)
	}
}

// Leave removes the peer from the fan-out set and notifies the remaining peers
// with user_left. The durable participant list is not pruned — membership only
// grows (preserved source behavior). No-op for an unjoined peer.
//
// Parameter peer — leaving connection.
//
// Called from the websocket read loop on a leave_session frame.
func (h *sessionHub) Leave(peer interfaces.SessionPeer) {
	m, ok := h.detach(peer)
	if !ok {
		return
	}
	h.broadcast(m.sessionID, nil, domain.Event{
		Type:      domain.EventUserLeft,
		SessionID: m.sessionID,
		UserID:    m.userID,
	})
}

// Chat broadcasts the message verbatim, tagged with the sender's user id, to
// every peer of the sender's session including the sender. A chat from an
// unjoined peer is silently ignored (logged at debug); the connection stays open.
//
// Parameters: peer — sending connection; message — forwarded as-is, no history kept.
//
// Called from the websocket read loop on a chat_message frame.
func (h *sessionHub) Chat(peer interfaces.SessionPeer, message string) {
	m, ok := h.membershipOf(peer)
	if !ok {
		level.Debug(h.logger).Log("msg", "chat ignored: peer not joined")
		return
	}
	h.broadcast(m.sessionID, nil, domain.Event{
		Type:      domain.EventChatMessage,
		SessionID: m.sessionID,
		UserID:    m.userID,
		Message:   message,
	})
}

// VoteExercise records the sender's choice on the durable session record and
// broadcasts vote_update with the current tally to every peer of the session.
// Store failures are logged and swallowed; the broadcast then carries only the
// votes known from this event (degraded mode). Ignored for an unjoined peer.
//
// Parameters: ctx — bounds the store round trips; peer — voting connection; exercise — chosen exercise name.
//
// Called from the websocket read loop on a vote_exercise frame.
func (h *sessionHub) VoteExercise(ctx context.Context, peer interfaces.SessionPeer, exercise string) {
	m, ok := h.membershipOf(peer)
	if !ok {
		level.Debug(h.logger).Log("msg", "vote ignored: peer not joined")
		return
	}

	session, found, err := h.store.Get(ctx, m.sessionID)
	if err != nil {
		level.Warn(h.logger).Log("msg", "session store read failed, vote proceeds", "session_id", m.sessionID, "err", err)
		session = domain.Session{}
	} else if !found {
		session = domain.Session{}
	}
	if session.Votes == nil {
		session.Votes = make(map[string]string)
	}
	session.Votes[m.userID] = exercise
	if err == nil {
		if werr := h.store.Set(ctx, m.sessionID, session); werr != nil {
			level.Warn(h.logger).Log("msg", "session store write failed, vote proceeds", "session_id", m.sessionID, "err", werr)
		}
	}

	h.broadcast(m.sessionID, nil, domain.Event{
		Type:      domain.EventVoteUpdate,
		SessionID: m.sessionID,
		Votes:     session.Votes,
	})
}

// ChooseExercise broadcasts exercise_chosen to every peer of the sender's
// session. Ignored for an unjoined peer.
//
// Parameters: peer — announcing connection; exercise — chosen exercise name.
//
// Called from the websocket read loop on an exercise_chosen frame.
func (h *sessionHub) ChooseExercise(peer interfaces.SessionPeer, exercise string) {
	m, ok := h.membershipOf(peer)
	if !ok {
		level.Debug(h.logger).Log("msg", "exercise_chosen ignored: peer not joined")
		return
	}
	h.broadcast(m.sessionID, nil, domain.Event{
		Type:      domain.EventExerciseChosen,
		SessionID: m.sessionID,
		Exercise:  exercise,
	})
}

// Disconnect removes the peer from any fan-out set on transport-level close.
// No notification is broadcast and the durable participant list is not pruned.
// Idempotent; safe for peers that never joined.
//
// Parameter peer — closed connection.
//
// Called from the websocket handler when the read loop ends.
func (h *sessionHub) Disconnect(peer interfaces.SessionPeer) {
	h.detach(peer)
}

// membershipOf returns the peer's membership record, if joined.
func (h *sessionHub) membershipOf(peer interfaces.SessionPeer) (membership, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	m, ok := h.members[peer]
	return m, ok
}

// detach removes the peer from the membership and fan-out maps and returns the
// membership it had. (zero, false) when the peer was not joined.
func (h *sessionHub) detach(peer interfaces.SessionPeer) (membership, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	m, ok := h.members[peer]
	if !ok {
		return membership{}, false
	}
	delete(h.members, peer)
	if set := h.sessions[m.sessionID]; set != nil {
		delete(set, peer)
		if len(set) == 0 {
			delete(h.sessions, m.sessionID)
		}
	}
	return m, true
}

// broadcast delivers the event to every peer currently in the session except
// exclude (nil excludes nobody). The peer set is snapshotted under the lock
// and delivery happens outside it; a Send failure is logged and never fails
// delivery to the other peers.
//
// Parameters: sessionID — fan-out key; exclude — peer to skip (the joiner for user_joined) or nil; event — outbound frame.
//
// Called from Join, Leave, Chat, VoteExercise and ChooseExercise.
func (h *sessionHub) broadcast(sessionID string, exclude interfaces.SessionPeer, event domain.Event) {
	h.mu.Lock()
	set := h.sessions[sessionID]
	peers := make([]interfaces.SessionPeer, 0, len(set))
	for peer := range set {
		if peer == exclude {
			continue
		}
		peers = append(peers, peer)
	}
	h.mu.Unlock()

	for _, peer := range peers {
		if err := peer.Send(event); err != nil {
			level.Debug(h.logger).Log("msg", "event dropped for peer", "session_id", sessionID, "type", event.Type, "err", err)
		}
	}
}
