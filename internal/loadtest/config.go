// Package loadtest drives concurrent sign-ups against a running activity
// service and verifies the directory afterwards.
package loadtest

import "time"

// Config holds configuration for a load run.
type Config struct {
	BaseURL         string        // Base URL of the service
	Activity        string        // Activity to sign up for
	Signups         int           // Number of unique emails to sign up
	Workers         int           // Number of concurrent workers
	Timeout         time.Duration // HTTP request timeout
	Cleanup         bool          // Remove generated emails afterwards
	DuplicateSample int           // Emails re-submitted to confirm duplicate rejection
}

// Stats holds run statistics.
type Stats struct {
	Generated          int
	Submitted          int
	Successful         int
	Duplicate          int
	Failed             int
	DuplicatesRejected int
	Removed            int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}

// activityView mirrors one entry of GET /activities.
type activityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

type detailResponse struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}
