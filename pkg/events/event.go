package events

import "time"

// Event type codes carried on the bus.
const (
	TypeUserRegistered   = "user_registered"
	TypeMessageExchanged = "chat_message_exchanged"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "user_registered").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a generic Event implementation used both for publishing
// and for reconstructing events on the consumer side.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
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

// NewUserRegistered is published after a new account is committed.
func NewUserRegistered(userID, email, name string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id": userID,
			"email":   email,
			"name":    name,
		},
		OccurredAt: time.Now(),
	}
}

// NewMessageExchanged is published after a user/assistant exchange is
// persisted. tokensUsed is 0 when the provider reported no usage.
func NewMessageExchanged(userID, sessionID, modelID string, tokensUsed int) Event {
	return BaseEvent{
		Type: TypeMessageExchanged,
		Data: map[string]interface{}{
			"user_id":     userID,
			"session_id":  sessionID,
			"model_id":    modelID,
			"tokens_used": tokensUsed,
		},
		OccurredAt: time.Now(),
	}
}
