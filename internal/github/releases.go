package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) LatestReleaseTag(ctx context.Context, action string) (string, error) {
	owner, repo, err := splitAction(action)
	if err != nil {
		return "", err
	}

	release, resp, err := withRetry(ctx, c, func() (*gh.RepositoryRelease, *gh.Response, error) {
		return c.repositories.GetLatestRelease(ctx, owner, repo)
	})
	if err != nil {
		return "", classify(fmt.Sprintf("getting latest release of %s/%s", owner, repo), resp, err)
	}

	if release.GetTagName() == "" {
		return "", fmt.Errorf("latest release of %s/%s has no tag_name: %w", owner, repo, ErrSchemaMismatch)
	}
	return release.GetTagName(), nil
}
