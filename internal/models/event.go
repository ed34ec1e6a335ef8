package models

// Auth event names published to Kafka.
const (
	EventUserRegistered = "user.registered"
	EventUserSignin     = "user.signin"
	EventUserSignout    = "user.signout"
)

// AuthEvent is the payload published to Kafka for auth lifecycle events.
type AuthEvent struct {
	EventID   string `json:"event_id"`
	Event     string `json:"event"`
	UserID    int64  `json:"user_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
