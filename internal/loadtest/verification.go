package loadtest

import (
	"fmt"
)

// verifyMembership checks that every email appears exactly once in the activity.
func verifyMembership(dir map[string]activityView, activity string, emails []string) error {
	a, ok := dir[activity]
	if !ok {
		return fmt.Errorf("%w: activity %q missing from listing", ErrVerification, activity)
	}

	seen := make(map[string]int, len(a.Participants))
	for _, p := range a.Participants {
		seen[p]++
	}
	for email, n := range seen {
		if n > 1 {
			return fmt.Errorf("%w: %s listed %d times", ErrVerification, email, n)
		}
	}
	for _, email := range emails {
		if seen[email] != 1 {
			return fmt.Errorf("%w: %s listed %d times, want 1", ErrVerification, email, seen[email])
		}
	}
	return nil
}

// verifyAbsent checks that none of the emails remain in the activity.
func verifyAbsent(dir map[string]activityView, activity string, emails []string) error {
	a, ok := dir[activity]
	if !ok {
		return fmt.Errorf("%w: activity %q missing from listing", ErrVerification, activity)
	}
	left := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		left[e] = struct{}{}
	}
	for _, p := range a.Participants {
		if _, ok := left[p]; ok {
			return fmt.Errorf("%w: %s still listed after cleanup", ErrVerification, p)
		}
	}
	return nil
}
