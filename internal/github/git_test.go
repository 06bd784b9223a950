package github

import (
	"context"
	"net/http"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	githubMocks "github.com/tracker-tv/workflow-linter/internal/github/mocks"
)

func TestTagCommitSHA_LightweightTag(t *testing.T) {
	gitSvc := githubMocks.NewMockGitAdapter(t)

	gitSvc.
		EXPECT().
		GetRef(mock.Anything, "actions", "checkout", "tags/v4.2.2").
		Once().
		Return(&gh.Reference{
			Ref:    gh.Ptr("refs/tags/v4.2.2"),
			Object: &gh.GitObject{Type: gh.Ptr("commit"), SHA: gh.Ptr("11bd71901bbe5b1630ceea73d27597364c9af683")},
		}, httpResponse(http.StatusOK), nil)

	c := newTestClient(nil, gitSvc)

	sha, err := c.TagCommitSHA(context.Background(), "actions/checkout", "v4.2.2")

	assert.NoError(t, err)
	assert.Equal(t, "11bd71901bbe5b1630ceea73d27597364c9af683", sha)
}

func TestTagCommitSHA_AnnotatedTag(t *testing.T) {
	gitSvc := githubMocks.NewMockGitAdapter(t)

	gitSvc.
		EXPECT().
		GetRef(mock.Anything, "docker", "build-push-action", "tags/v6.12.0").
		Once().
		Return(&gh.Reference{
			Object: &gh.GitObject{Type: gh.Ptr("tag"), SHA: gh.Ptr("tagobjectsha")},
		}, httpResponse(http.StatusOK), nil)

	gitSvc.
		EXPECT().
		GetTag(mock.Anything, "docker", "build-push-action", "tagobjectsha").
		Once().
		Return(&gh.Tag{
			Object: &gh.GitObject{Type: gh.Ptr("commit"), SHA: gh.Ptr("67a2d409c0a876cbe6b11854e3e25193efe4e62d")},
		}, httpResponse(http.StatusOK), nil)

	c := newTestClient(nil, gitSvc)

	sha, err := c.TagCommitSHA(context.Background(), "docker/build-push-action", "v6.12.0")

	assert.NoError(t, err)
	assert.Equal(t, "67a2d409c0a876cbe6b11854e3e25193efe4e62d", sha)
}

func TestTagCommitSHA_SchemaMismatch(t *testing.T) {
	gitSvc := githubMocks.NewMockGitAdapter(t)

	gitSvc.
		EXPECT().
		GetRef(mock.Anything, "actions", "checkout", "tags/v1").
		Once().
		Return(&gh.Reference{Ref: gh.Ptr("refs/tags/v1")}, httpResponse(http.StatusOK), nil)

	c := newTestClient(nil, gitSvc)

	_, err := c.TagCommitSHA(context.Background(), "actions/checkout", "v1")

	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestTagCommitSHA_AnnotatedTagWithoutTarget(t *testing.T) {
	gitSvc := githubMocks.NewMockGitAdapter(t)

	gitSvc.
		EXPECT().
		GetRef(mock.Anything, "actions", "checkout", "tags/v1").
		Once().
		Return(&gh.Reference{Object: &gh.GitObject{Type: gh.Ptr("tag"), SHA: gh.Ptr("abc")}}, httpResponse(http.StatusOK), nil)

	gitSvc.
		EXPECT().
		GetTag(mock.Anything, "actions", "checkout", "abc").
		Once().
		Return(&gh.Tag{}, httpResponse(http.StatusOK), nil)

	c := newTestClient(nil, gitSvc)

	_, err := c.TagCommitSHA(context.Background(), "actions/checkout", "v1")

	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestTagCommitSHA_NotFound(t *testing.T) {
	gitSvc := githubMocks.NewMockGitAdapter(t)

	gitSvc.
		EXPECT().
		GetRef(mock.Anything, "actions", "checkout", "tags/v99").
		Once().
		Return(nil, httpResponse(http.StatusNotFound), errorResponse(http.StatusNotFound))

	c := newTestClient(nil, gitSvc)

	_, err := c.TagCommitSHA(context.Background(), "actions/checkout", "v99")

	assert.ErrorIs(t, err, ErrNotFound)
}
