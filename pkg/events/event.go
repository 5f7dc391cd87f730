package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_RESOLVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used by the in-process bus.
type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewChatResolved builds the event published after every resolved chat or
// image turn. Provenance mirrors the resolution pipeline's tags; duration
// covers the full pipeline walk including any rate-limit wait.
func NewChatResolved(sessionID, provenance string, duration time.Duration) BaseEvent {
	return BaseEvent{
		Type: "CHAT_RESOLVED",
		Data: map[string]interface{}{
			"session_id":  sessionID,
			"provenance":  provenance,
			"duration_ms": duration.Milliseconds(),
		},
		OccurredAt: time.Now(),
	}
}
