package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/loadtest"
	"github.com/devhenode/skills-getting-started-with-github-copilot/pkg/logger"
)

const defaultRunTimeout = 5 * time.Minute

func main() {
	var (
		baseURL    = flag.String("url", loadtest.DefaultBaseURL, "Base URL of the service")
		activity   = flag.String("activity", loadtest.DefaultActivity, "Activity to sign up for")
		signups    = flag.Int("signups", loadtest.DefaultSignups, "Number of unique emails to sign up")
		workers    = flag.Int("workers", loadtest.DefaultWorkers, "Number of concurrent workers")
		timeout    = flag.Duration("timeout", loadtest.DefaultTimeout, "HTTP request timeout")
		cleanup    = flag.Bool("cleanup", false, "Remove generated emails after verification")
		duplicates = flag.Int("duplicates", loadtest.DefaultDuplicateSample, "Emails re-submitted to confirm duplicate rejection")
		verbose    = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	_, err := loadtest.Run(ctx, &loadtest.Config{
		BaseURL:         *baseURL,
		Activity:        *activity,
		Signups:         *signups,
		Workers:         *workers,
		Timeout:         *timeout,
		Cleanup:         *cleanup,
		DuplicateSample: *duplicates,
	})
	if err != nil {
		logger.Get().Error(ctx, "load test failed", logger.Error(err))
		cancel()
		os.Exit(1)
	}
}
