package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/tracker-tv/workflow-linter/models"
)

const prTargetID = "check_pr_target"

const (
	prTargetEvent      = "pull_request_target"
	prTargetGateMsg    = "A check-run job must be included as a direct job dependency when pull_request_target is used"
	prTargetBranchMsgF = "Workflows using pull_request_target can only target the %s branch"
)

// prTarget guards pull_request_target workflows: they must run only for
// the default branch and every job must depend on the trusted check-run job.
type prTarget struct {
	base
	defaultBranch string
	gateWorkflow  string
}

func newPRTarget(env Env, level Level) Rule {
	return &prTarget{
		base:          base{id: prTargetID, kinds: models.KindWorkflow, level: level},
		defaultBranch: env.Settings.DefaultBranch,
		gateWorkflow:  env.Settings.CheckRunWorkflow,
	}
}

func (r *prTarget) Check(_ context.Context, node models.Node) (bool, string, error) {
	wf, ok := node.(*models.Workflow)
	if !ok {
		return r.incompatible(node)
	}
	trigger, ok := wf.Trigger(prTargetEvent)
	if !ok {
		return true, "", nil
	}

	var msgs []string
	if !r.targetsDefaultBranch(trigger) {
		msgs = append(msgs, fmt.Sprintf(prTargetBranchMsgF, r.defaultBranch))
	}
	if msg := r.checkGate(wf); msg != "" {
		msgs = append(msgs, msg)
	}

	if len(msgs) > 0 {
		return false, strings.Join(msgs, "\n"), nil
	}
	return true, "", nil
}

func (r *prTarget) targetsDefaultBranch(t *models.Trigger) bool {
	return t.BranchesSet && len(t.Branches) == 1 && t.Branches[0] == r.defaultBranch
}

func (r *prTarget) checkGate(wf *models.Workflow) string {
	var gate *models.Job
	for _, j := range wf.Jobs {
		if j.Uses != "" && j.Uses == r.gateWorkflow {
			gate = j
			break
		}
	}
	if gate == nil {
		return prTargetGateMsg
	}

	var missing []string
	for _, j := range wf.Jobs {
		if j != gate && !j.NeedsJob(gate.Key) {
			missing = append(missing, j.Key)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return prTargetGateMsg + ", " + gate.Key + " is missing from the following jobs in the workflow: " + strings.Join(missing, ", ")
}
