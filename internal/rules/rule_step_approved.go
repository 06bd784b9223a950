package rules

import (
	"context"
	"strings"

	"github.com/tracker-tv/workflow-linter/models"
)

const stepApprovedID = "step_approved"

type stepApproved struct {
	base
	approved   map[string]models.Action
	firstParty string
}

func newStepApproved(env Env, level Level) Rule {
	return &stepApproved{
		base:       base{id: stepApprovedID, kinds: models.KindStep, level: level},
		approved:   env.Settings.ApprovedActions,
		firstParty: env.Settings.FirstPartyNamespace,
	}
}

// Skip ignores run steps, unversioned references, local actions, container
// images and first-party actions.
func (r *stepApproved) Skip(node models.Node) bool {
	step, ok := node.(*models.Step)
	if !ok {
		return true
	}
	switch {
	case step.Uses == "", !strings.Contains(step.Uses, "@"):
		return true
	case strings.HasPrefix(step.Uses, "./"), strings.HasPrefix(step.Uses, "docker://"):
		return true
	case r.firstParty != "" && strings.HasPrefix(step.Uses, r.firstParty):
		return true
	}
	return false
}

func (r *stepApproved) Check(_ context.Context, node models.Node) (bool, string, error) {
	step, ok := node.(*models.Step)
	if !ok {
		return r.incompatible(node)
	}
	if _, ok := r.approved[step.UsesPath]; ok {
		return true, "", nil
	}
	return false, "New Action detected: " + step.UsesPath +
		"\nFor security purposes, actions must be reviewed and be on the pre-approved list", nil
}
