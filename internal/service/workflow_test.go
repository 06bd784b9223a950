package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracker-tv/workflow-linter/models"
)

func writeWorkflow(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeWorkflow(t, filepath.Join(dir, "ci.yml"), "on: push\n")
	writeWorkflow(t, filepath.Join(dir, "release.yaml"), "on: push\n")
	writeWorkflow(t, filepath.Join(dir, "nested", "deep.yml"), "on: push\n")
	writeWorkflow(t, filepath.Join(dir, "README.md"), "# docs\n")
	extra := filepath.Join(t.TempDir(), "standalone.txt")
	writeWorkflow(t, extra, "on: push\n")

	svc := NewWorkflowService()

	files, err := svc.Discover([]string{dir, extra, filepath.Join(dir, "ci.yml")})

	require.NoError(t, err)
	expected := []string{
		filepath.Join(dir, "ci.yml"),
		filepath.Join(dir, "nested", "deep.yml"),
		filepath.Join(dir, "release.yaml"),
		extra,
	}
	assert.ElementsMatch(t, expected, files)
	assert.IsIncreasing(t, files)
}

func TestDiscover_MissingPath(t *testing.T) {
	_, err := NewWorkflowService().Discover([]string{filepath.Join(t.TempDir(), "missing")})

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsWorkflowFile(t *testing.T) {
	assert.True(t, IsWorkflowFile("/a/b/ci.yml"))
	assert.True(t, IsWorkflowFile("release.yaml"))
	assert.False(t, IsWorkflowFile("ci.yml.swp"))
	assert.False(t, IsWorkflowFile("README.md"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ci.yml")
	writeWorkflow(t, path, "name: CI\non: push\njobs:\n  build:\n    runs-on: ubuntu-22.04\n    steps:\n      - run: make\n")

	wf, err := NewWorkflowService().Load(path)

	require.NoError(t, err)
	assert.Equal(t, "CI", wf.Name)
	assert.Equal(t, path, wf.Filename)
	assert.Len(t, wf.Jobs, 1)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yml")
	writeWorkflow(t, bad, "jobs:\n  build:\n    runs-on: x\n")

	_, err := NewWorkflowService().Load(bad)
	var fieldErr *models.FieldError
	assert.ErrorAs(t, err, &fieldErr)

	_, err = NewWorkflowService().Load(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
