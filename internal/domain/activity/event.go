package activity

import "time"

// EventKind names a membership change.
type EventKind string

// Membership change kinds.
const (
	EventSignedUp EventKind = "signed_up"
	EventRemoved  EventKind = "removed"
)

// Event describes a committed membership change.
type Event struct {
	ID       string    `json:"id"`
	Kind     EventKind `json:"kind"`
	Activity string    `json:"activity"`
	Email    string    `json:"email"`
	At       time.Time `json:"at"`
}
