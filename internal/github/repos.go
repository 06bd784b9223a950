package github

import (
	"context"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v80/github"
)

// RepositoryExists reports whether the repository behind action exists. When
// GitHub refuses to answer (401, 403, rate limits) it is assumed to exist.
func (c *client) RepositoryExists(ctx context.Context, action string) (bool, error) {
	owner, repo, err := splitAction(action)
	if err != nil {
		return false, err
	}

	_, resp, err := withRetry(ctx, c, func() (*gh.Repository, *gh.Response, error) {
		return c.repositories.Get(ctx, owner, repo)
	})
	if err == nil {
		return true, nil
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	switch status := statusCode(resp, err); {
	case status == http.StatusNotFound:
		return false, nil
	case status == http.StatusUnauthorized, status == http.StatusForbidden, isRateLimited(err):
		c.logger.Warn("cannot verify repository, assuming it exists",
			"repository", owner+"/"+repo, "status", status, "error", err)
		return true, nil
	}

	return false, fmt.Errorf("getting repository %s/%s: %w", owner, repo, err)
}
