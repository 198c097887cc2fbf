package worker

import (
	"context"

	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/domain/activity"
	"github.com/devhenode/skills-getting-started-with-github-copilot/pkg/logger"
)

// Notifier receives committed membership events.
type Notifier interface {
	Notify(ctx context.Context, e activity.Event) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, e activity.Event) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, e activity.Event) error {
	return f(ctx, e)
}

// LogNotifier writes one structured log line per event.
type LogNotifier struct {
	logger logger.Logger
}

// NewLogNotifier creates a LogNotifier. A nil logger falls back to the global one.
func NewLogNotifier(l logger.Logger) *LogNotifier {
	if l == nil {
		l = logger.Named("notifier")
	}
	return &LogNotifier{logger: l}
}

// Notify logs e.
func (n *LogNotifier) Notify(ctx context.Context, e activity.Event) error {
	n.logger.Info(ctx, "membership changed",
		logger.String("event_id", e.ID),
		logger.String("kind", string(e.Kind)),
		logger.String("activity", e.Activity),
		logger.String("email", e.Email),
		logger.String("at", e.At.UTC().Format("2006-01-02T15:04:05.000Z07:00")),
	)
	return nil
}
