package loadtest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/devhenode/skills-getting-started-with-github-copilot/pkg/logger"
)

// HTTPClient wraps http.Client for the activity endpoints.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

func signupPath(activity, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
}

// membership issues a signup (POST) or removal (DELETE) and classifies the outcome.
func (c *HTTPClient) membership(ctx context.Context, method, activity, email string) string {
	status, body, err := c.do(ctx, method, signupPath(activity, email))
	if err != nil {
		return resultFailed
	}
	switch status {
	case http.StatusOK:
		return resultSuccess
	case http.StatusBadRequest:
		var d detailResponse
		if json.Unmarshal(body, &d) == nil && d.Detail == "Student already signed up for an activity" {
			return resultDuplicate
		}
		return resultFailed
	default:
		return resultFailed
	}
}

func (c *HTTPClient) listActivities(ctx context.Context) (map[string]activityView, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/activities")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: GET /activities returned %d", ErrStatus, status)
	}
	var dir map[string]activityView
	if err := json.Unmarshal(body, &dir); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return dir, nil
}

type tally struct {
	submitted, successful, duplicate, failed int64
}

// fanOut sends one request per email using workers goroutines.
func fanOut(ctx context.Context, c *HTTPClient, method, activity string, emails []string, workers int) tally {
	var t tally
	jobs := make(chan string, workers*workerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for email := range jobs {
				if ctx.Err() != nil {
					return
				}
				atomic.AddInt64(&t.submitted, 1)
				switch c.membership(ctx, method, activity, email) {
				case resultSuccess:
					atomic.AddInt64(&t.successful, 1)
				case resultDuplicate:
					atomic.AddInt64(&t.duplicate, 1)
				default:
					atomic.AddInt64(&t.failed, 1)
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, email := range emails {
			select {
			case <-ctx.Done():
				return
			case jobs <- email:
			}
		}
	}()

	wg.Wait()
	logger.Named("loadtest").Debug(ctx, "batch finished",
		logger.String("method", method),
		logger.Int("submitted", int(t.submitted)),
		logger.Int("failed", int(t.failed)),
	)
	return t
}
