package rules

import (
	"context"
	"strings"

	"github.com/tracker-tv/workflow-linter/models"
)

const jobEnvPrefixID = "job_environment_prefix"

// Environment variables read by third-party tooling keep their names.
var allowedJobEnv = map[string]bool{
	"NODE_OPTIONS":   true,
	"NUGET_PACKAGES": true,
	"MINT_PATH":      true,
	"MINT_LINK_PATH": true,
	"HUSKY":          true,
}

type jobEnvPrefix struct {
	base
}

func newJobEnvPrefix(_ Env, level Level) Rule {
	return &jobEnvPrefix{base: base{id: jobEnvPrefixID, kinds: models.KindJob, level: level}}
}

func (r *jobEnvPrefix) Check(_ context.Context, node models.Node) (bool, string, error) {
	job, ok := node.(*models.Job)
	if !ok {
		return r.incompatible(node)
	}

	var offenders []string
	for _, key := range job.Env.Keys() {
		if !strings.HasPrefix(key, "_") && !allowedJobEnv[key] {
			offenders = append(offenders, key)
		}
	}

	if len(offenders) > 0 {
		return false, "Job environment vars should start with an underscore: (" + strings.Join(offenders, ", ") + ")", nil
	}
	return true, "", nil
}
