package rules

import (
	"context"

	"github.com/tracker-tv/workflow-linter/models"
)

const permissionsExistID = "permissions_exist"

const (
	permissionsWorkflowMsg = "All workflows must specify permissions on the workflow level"
	permissionsJobMsg      = "All workflows must specify permissions on either workflow or job level"
)

type permissionsExist struct {
	base
	allowJobLevel bool
}

func newPermissionsExist(env Env, level Level) Rule {
	return &permissionsExist{
		base:          base{id: permissionsExistID, kinds: models.KindWorkflow, level: level},
		allowJobLevel: env.Settings.PermissionsAllowJobLevel,
	}
}

// Check requires workflow level permissions. With allowJobLevel set, a
// permissions block on every job is accepted instead.
func (r *permissionsExist) Check(_ context.Context, node models.Node) (bool, string, error) {
	wf, ok := node.(*models.Workflow)
	if !ok {
		return r.incompatible(node)
	}
	if wf.Permissions != nil {
		return true, "", nil
	}

	if r.allowJobLevel {
		for _, j := range wf.Jobs {
			if j.Permissions == nil {
				return false, permissionsJobMsg, nil
			}
		}
		return true, "", nil
	}

	return false, permissionsWorkflowMsg, nil
}
