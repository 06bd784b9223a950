package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
)

// TagCommitSHA resolves a tag to the commit it points at, following an
// annotated tag object one hop.
func (c *client) TagCommitSHA(ctx context.Context, action, tag string) (string, error) {
	owner, repo, err := splitAction(action)
	if err != nil {
		return "", err
	}

	ref, resp, err := withRetry(ctx, c, func() (*gh.Reference, *gh.Response, error) {
		return c.git.GetRef(ctx, owner, repo, "tags/"+tag)
	})
	if err != nil {
		return "", classify(fmt.Sprintf("getting tag %s of %s/%s", tag, owner, repo), resp, err)
	}

	obj := ref.GetObject()
	if obj.GetSHA() == "" {
		return "", fmt.Errorf("tag %s of %s/%s has no object: %w", tag, owner, repo, ErrSchemaMismatch)
	}
	if obj.GetType() == "commit" {
		return obj.GetSHA(), nil
	}

	annotated, resp, err := withRetry(ctx, c, func() (*gh.Tag, *gh.Response, error) {
		return c.git.GetTag(ctx, owner, repo, obj.GetSHA())
	})
	if err != nil {
		return "", classify(fmt.Sprintf("getting tag object %s of %s/%s", obj.GetSHA(), owner, repo), resp, err)
	}

	sha := annotated.GetObject().GetSHA()
	if sha == "" {
		return "", fmt.Errorf("tag object %s of %s/%s has no target: %w", obj.GetSHA(), owner, repo, ErrSchemaMismatch)
	}
	return sha, nil
}
