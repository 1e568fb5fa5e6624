package domain

// Session is the durable record of a group-workout session, keyed by session id
// in the external store. The store holds the authoritative copy; the gateway
// process keeps no independent source of truth. Participants only grows:
// neither leave nor disconnect prunes it (known staleness source, preserved
// from the original behavior).
type Session struct {
	Participants []string          `json:"participants"`
	Votes        map[string]string `json:"votes,omitempty"`
}

// HasParticipant reports whether userID is already on the participant list.
// Returns: true when present, false otherwise (including for the zero Session).
// Called from service.sessionHub.Join before appending.
func (s Session) HasParticipant(userID string) bool {
	for _, p := range s.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
