package loadtest

import (
	"github.com/google/uuid"
)

// generateEmails returns n distinct addresses on the school domain.
func generateEmails(n int) []string {
	emails := make([]string, n)
	for i := range emails {
		emails[i] = "load-" + uuid.NewString() + "@mergington.edu"
	}
	return emails
}
