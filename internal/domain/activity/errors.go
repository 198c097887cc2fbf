package activity

import "errors"

// Sentinel kinds for directory errors.
var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrAlreadySignedUp     = errors.New("already signed up for this activity")
	ErrParticipantNotFound = errors.New("participant not found in this activity")
	ErrDuplicateActivity   = errors.New("duplicate activity name")
)
