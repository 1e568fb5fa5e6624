package domain

// EventType discriminates the JSON frames exchanged on the realtime channel.
type EventType string

// Client-to-gateway event types.
const (
	EventJoinSession    EventType = "join_session"
	EventLeaveSession   EventType = "leave_session"
	EventChatMessage    EventType = "chat_message"
	EventVoteExercise   EventType = "vote_exercise"
	EventExerciseChosen EventType = "exercise_chosen"
)

// Gateway-to-client event types.
const (
	EventUserJoined EventType = "user_joined"
	EventUserLeft   EventType = "user_left"
	EventVoteUpdate EventType = "vote_update"
)

// Event is a single frame on the realtime channel, inbound or outbound.
// Only Type is always present; the remaining fields are set per event type:
// SessionID and UserID on join/leave, Message on chat_message, Exercise on
// vote_exercise/exercise_chosen, Votes on vote_update.
type Event struct {
	Type      EventType         `json:"type"`
	SessionID string            `json:"session_id,omitempty"`
	UserID    string            `json:"user_id,omitempty"`
	Message   string            `json:"message,omitempty"`
	Exercise  string            `json:"exercise,omitempty"`
	Votes     map[string]string `json:"votes,omitempty"`
}
