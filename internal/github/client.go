package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
)

var (
	// ErrSchemaMismatch means the API answered but without the fields we
	// rely on.
	ErrSchemaMismatch = errors.New("unexpected GitHub API response")
	ErrNotFound       = errors.New("not found")
	ErrRateLimited    = errors.New("rate limited")
	ErrInvalidAction  = errors.New("action path must be owner/repo[/path]")
)

type RepositoriesAdapter interface {
	Get(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error)
	GetLatestRelease(ctx context.Context, owner, repo string) (*gh.RepositoryRelease, *gh.Response, error)
}

type GitAdapter interface {
	GetRef(ctx context.Context, owner, repo, ref string) (*gh.Reference, *gh.Response, error)
	GetTag(ctx context.Context, owner, repo, sha string) (*gh.Tag, *gh.Response, error)
}

// Client answers the questions allow-list maintenance asks about an action.
// Actions are addressed by their path as used in `uses`; only the first two
// segments name the repository.
type Client interface {
	RepositoryExists(ctx context.Context, action string) (bool, error)
	LatestReleaseTag(ctx context.Context, action string) (string, error)
	TagCommitSHA(ctx context.Context, action, tag string) (string, error)
}

type client struct {
	repositories RepositoriesAdapter
	git          GitAdapter
	logger       *slog.Logger
	maxRetries   int
	baseDelay    time.Duration
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

func New(token string, logger *slog.Logger) Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := gh.NewClient(httpClient)
	return &client{
		repositories: c.Repositories,
		git:          c.Git,
		logger:       logger,
		maxRetries:   5,
		baseDelay:    1 * time.Second,
	}
}

func splitAction(action string) (owner, repo string, err error) {
	parts := strings.SplitN(action, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	return parts[0], parts[1], nil
}

// withRetry retries call while GitHub reports a secondary rate limit,
// waiting for Retry-After or an exponential backoff.
func withRetry[T any](ctx context.Context, c *client, call func() (T, *gh.Response, error)) (T, *gh.Response, error) {
	var zero T

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		v, resp, err := call()
		if err == nil {
			return v, resp, nil
		}

		var abuseErr *gh.AbuseRateLimitError
		if !errors.As(err, &abuseErr) {
			return zero, resp, err
		}

		if attempt == c.maxRetries {
			return zero, resp, fmt.Errorf("max retries reached: %w", err)
		}

		waitDuration := c.baseDelay * time.Duration(1<<attempt)
		if d := abuseErr.GetRetryAfter(); d > 0 {
			waitDuration = d
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return zero, nil, ctx.Err()
		}
	}

	return zero, nil, fmt.Errorf("unexpected retry loop exit")
}

func statusCode(resp *gh.Response, err error) int {
	if resp != nil && resp.Response != nil {
		return resp.StatusCode
	}
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	return 0
}

func isRateLimited(err error) bool {
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	return errors.As(err, &rateErr) || errors.As(err, &abuseErr)
}

// classify maps API failures onto the package sentinels.
func classify(what string, resp *gh.Response, err error) error {
	switch {
	case isRateLimited(err):
		return fmt.Errorf("%s: %w: %w", what, ErrRateLimited, err)
	case statusCode(resp, err) == http.StatusNotFound:
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}
