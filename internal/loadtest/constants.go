package loadtest

import "time"

// Defaults applied by Normalize.
const (
	DefaultBaseURL         = "http://localhost:8000"
	DefaultActivity        = "Chess Club"
	DefaultSignups         = 200
	DefaultWorkers         = 8
	DefaultTimeout         = 10 * time.Second
	DefaultDuplicateSample = 10
)

// Worker configuration constants.
const (
	workerChannelMultiplier = 2
	percentageMultiplier    = 100
)

// Outcomes of a single membership request.
const (
	resultSuccess   = "success"
	resultDuplicate = "duplicate"
	resultFailed    = "failed"
)

// Normalize fills zero values with defaults.
func (c *Config) Normalize() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Activity == "" {
		c.Activity = DefaultActivity
	}
	if c.Signups <= 0 {
		c.Signups = DefaultSignups
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.DuplicateSample < 0 {
		c.DuplicateSample = 0
	}
	if c.DuplicateSample > c.Signups {
		c.DuplicateSample = c.Signups
	}
}
