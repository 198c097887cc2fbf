package loadtest

import "errors"

// Sentinel errors for load runs.
var (
	ErrUnhealthy    = errors.New("service unhealthy")
	ErrVerification = errors.New("verification failed")
	ErrStatus       = errors.New("unexpected status")
)
