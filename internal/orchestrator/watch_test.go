package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracker-tv/workflow-linter/internal/service"
)

const validWorkflow = "on: push\njobs:\n  build:\n    runs-on: ubuntu-22.04\n    steps:\n      - run: make\n"

type watchResult struct {
	report Report
	err    error
}

func nextResult(t *testing.T, results <-chan watchResult) watchResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for lint run")
		return watchResult{}
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ci.yml"), []byte(validWorkflow), 0o644))

	linter := NewLinter(service.NewWorkflowService(), perFile(nil), discard)
	linter.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan watchResult, 10)
	done := make(chan error, 1)

	go func() {
		done <- linter.Watch(ctx, []string{dir}, func(r Report, err error) {
			results <- watchResult{report: r, err: err}
		})
	}()

	first := nextResult(t, results)
	require.NoError(t, first.err)
	assert.Len(t, first.report.Files, 1)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "release.yaml"), []byte(validWorkflow), 0o644))

	second := nextResult(t, results)
	require.NoError(t, second.err)
	assert.Len(t, second.report.Files, 2)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatch_MissingPath(t *testing.T) {
	linter := NewLinter(service.NewWorkflowService(), perFile(nil), discard)

	err := linter.Watch(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, func(Report, error) {
		t.Fatal("unexpected run")
	})

	assert.ErrorIs(t, err, os.ErrNotExist)
}
