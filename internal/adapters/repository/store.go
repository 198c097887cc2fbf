// Package repository holds the activity directory store.
package repository

import (
	"context"

	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/domain/activity"
)

// Store provides read/write access to the activity directory.
type Store interface {
	// List returns a deep copy of the whole directory in seed order.
	List(ctx context.Context) (*activity.Directory, error)

	// Signup appends email to the named activity.
	// Returns activity.ErrActivityNotFound or activity.ErrAlreadySignedUp.
	Signup(ctx context.Context, name, email string) error

	// Unregister removes email from the named activity.
	// Returns activity.ErrActivityNotFound or activity.ErrParticipantNotFound.
	Unregister(ctx context.Context, name, email string) error

	// Count returns the number of activities and the total number of participants.
	Count(ctx context.Context) (activities, participants int)

	// Reset replaces the directory with a copy of seed.
	Reset(ctx context.Context, seed *activity.Directory)
}
