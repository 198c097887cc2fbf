package worker

import "errors"

// Sentinel kinds for worker errors.
var (
	ErrStopped         = errors.New("worker pool stopped")
	ErrShutdownTimeout = errors.New("worker pool shutdown timed out")
)
