package rules

import (
	"context"
	"strings"

	"github.com/tracker-tv/workflow-linter/models"
)

const runnerPinnedID = "pinned_job_runner"

type runnerPinned struct {
	base
}

func newRunnerPinned(_ Env, level Level) Rule {
	return &runnerPinned{base: base{id: runnerPinnedID, kinds: models.KindJob, level: level}}
}

func (r *runnerPinned) Check(_ context.Context, node models.Node) (bool, string, error) {
	job, ok := node.(*models.Job)
	if !ok {
		return r.incompatible(node)
	}
	if strings.Contains(job.RunsOn, "latest") {
		return false, "Workflow runner must be pinned", nil
	}
	return true, "", nil
}
