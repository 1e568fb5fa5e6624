package interfaces

import "fitgateway/domain"

// SessionPeer is one live realtime connection as the hub sees it: something
// events can be delivered to. The websocket handler adapts a gorilla connection
// to this interface with a bounded send buffer so a slow peer never blocks a
// broadcast.
//
// Implemented by handlers.wsPeer. Called from service.sessionHub on every broadcast.
//
//go:generate moq -stub -out mock/session_peer.go -pkg mock . SessionPeer
type SessionPeer interface {
	// Send enqueues the event for delivery to the peer.
	// Parameter event — outbound frame (user_joined, chat_message, vote_update, ...).
	// Returns: nil when enqueued; err when the peer's send buffer is full or the connection is closing. A Send error never fails the broadcast to other peers.
	// Called from service.sessionHub broadcast fan-out.
	Send(event domain.Event) error
}
