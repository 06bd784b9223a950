package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tracker-tv/workflow-linter/internal/config"
	"github.com/tracker-tv/workflow-linter/models"
)

const checkRunRef = "bitwarden/gh-actions/.github/workflows/check-run.yml@main"

func testSettings() *config.Settings {
	return &config.Settings{
		DefaultBranch:       "main",
		FirstPartyNamespace: "bitwarden/",
		CheckRunWorkflow:    checkRunRef,
		ApprovedActions: map[string]models.Action{
			"actions/checkout": {Name: "actions/checkout", Version: "v4.2.2", SHA: "11bd71901bbe5b1630ceea73d27597364c9af683"},
			"oxsecurity/megalinter/flavors/dotnetweb": {
				Name: "oxsecurity/megalinter/flavors/dotnetweb", Version: "v9.2.0", SHA: "55a59b24a441e0e1943080d4a512d827710d4a9d",
			},
		},
		ActionlintVersion: "1.7.7",
		ZizmorVersion:     "1.5.2",
	}
}

func parse(t *testing.T, src string) *models.Workflow {
	t.Helper()
	wf, err := models.ParseWorkflow([]byte(src), "ci.yml")
	require.NoError(t, err)
	return wf
}

func check(t *testing.T, rule Rule, node models.Node) (bool, string) {
	t.Helper()
	passed, message, err := rule.Check(context.Background(), node)
	require.NoError(t, err)
	return passed, message
}
