package loadtest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/devhenode/skills-getting-started-with-github-copilot/pkg/logger"
)

// Run executes the complete load run and returns its statistics. A non-nil
// error means the service misbehaved or the run could not complete.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	config.Normalize()
	log := logger.Named("loadtest")
	stats := &Stats{StartTime: time.Now()}
	client := newHTTPClient(config.BaseURL, config.Timeout)

	log.Info(ctx, "starting activity load test",
		logger.String("baseURL", config.BaseURL),
		logger.String("activity", config.Activity),
		logger.Int("signups", config.Signups),
		logger.Int("workers", config.Workers),
		logger.Duration("timeout", config.Timeout),
		logger.Bool("cleanup", config.Cleanup),
	)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client); err != nil {
		return stats, err
	}

	// Step 2: Generate emails
	emails := generateEmails(config.Signups)
	stats.Generated = len(emails)

	// Step 3: Sign up concurrently
	t := fanOut(ctx, client, http.MethodPost, config.Activity, emails, config.Workers)
	stats.Submitted = int(t.submitted)
	stats.Successful = int(t.successful)
	stats.Duplicate = int(t.duplicate)
	stats.Failed = int(t.failed)
	if stats.Successful != len(emails) {
		return finish(ctx, log, stats), fmt.Errorf("%w: %d of %d sign-ups succeeded",
			ErrVerification, stats.Successful, len(emails))
	}

	// Step 4: Re-submit a sample; each must be rejected as a duplicate
	if config.DuplicateSample > 0 {
		d := fanOut(ctx, client, http.MethodPost, config.Activity, emails[:config.DuplicateSample], config.Workers)
		stats.DuplicatesRejected = int(d.duplicate)
		if stats.DuplicatesRejected != config.DuplicateSample {
			return finish(ctx, log, stats), fmt.Errorf("%w: %d of %d re-submissions rejected as duplicates",
				ErrVerification, stats.DuplicatesRejected, config.DuplicateSample)
		}
	}

	// Step 5: Every email is listed exactly once
	dir, err := client.listActivities(ctx)
	if err != nil {
		return finish(ctx, log, stats), err
	}
	if err := verifyMembership(dir, config.Activity, emails); err != nil {
		return finish(ctx, log, stats), err
	}
	log.Info(ctx, "membership verified", logger.Int("emails", len(emails)))

	// Step 6: Optional cleanup
	if config.Cleanup {
		r := fanOut(ctx, client, http.MethodDelete, config.Activity, emails, config.Workers)
		stats.Removed = int(r.successful)
		dir, err := client.listActivities(ctx)
		if err != nil {
			return finish(ctx, log, stats), err
		}
		if err := verifyAbsent(dir, config.Activity, emails); err != nil {
			return finish(ctx, log, stats), err
		}
	}

	return finish(ctx, log, stats), nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient) error {
	status, _, err := client.do(ctx, http.MethodGet, "/healthz")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: /healthz returned %d", ErrUnhealthy, status)
	}
	return nil
}

// finish stamps the end time and logs the final statistics.
func finish(ctx context.Context, log logger.Logger, stats *Stats) *Stats {
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	var successRate, perSecond float64
	if stats.Submitted > 0 {
		successRate = float64(stats.Successful) / float64(stats.Submitted) * percentageMultiplier
	}
	if stats.Duration > 0 {
		perSecond = float64(stats.Submitted) / stats.Duration.Seconds()
	}

	log.Info(ctx, "final statistics",
		logger.Int("generated", stats.Generated),
		logger.Int("submitted", stats.Submitted),
		logger.Int("successful", stats.Successful),
		logger.Int("duplicate", stats.Duplicate),
		logger.Int("failed", stats.Failed),
		logger.Int("duplicatesRejected", stats.DuplicatesRejected),
		logger.Int("removed", stats.Removed),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", successRate),
		logger.Float64("requestsPerSecond", perSecond),
	)
	return stats
}
