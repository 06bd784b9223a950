package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracker-tv/workflow-linter/models"
)

func stepsOf(t *testing.T, uses ...string) []*models.Step {
	t.Helper()
	src := "jobs:\n  build:\n    runs-on: x\n    steps:\n"
	for _, u := range uses {
		src += "      - uses: " + u + "\n"
	}
	return parse(t, src).Jobs[0].Steps
}

func TestStepApproved_Skip(t *testing.T) {
	rule := newStepApproved(Env{Settings: testSettings()}, LevelError).(*stepApproved)

	steps := stepsOf(t,
		"./.github/actions/local",
		"bitwarden/gh-actions/get-keyvault-secrets@main",
		"docker://alpine:3.20",
		"unversioned/action",
		"actions/checkout@v4",
	)

	assert.True(t, rule.Skip(steps[0]))
	assert.True(t, rule.Skip(steps[1]))
	assert.True(t, rule.Skip(steps[2]))
	assert.True(t, rule.Skip(steps[3]))
	assert.False(t, rule.Skip(steps[4]))
	assert.True(t, rule.Skip(&models.Step{Run: "echo hi"}))
	assert.True(t, rule.Skip(&models.Job{}))
}

func TestStepApproved_MultiSegmentPath(t *testing.T) {
	rule := newStepApproved(Env{Settings: testSettings()}, LevelError)
	steps := stepsOf(t,
		"oxsecurity/megalinter/flavors/dotnetweb@55a59b24a441e0e1943080d4a512d827710d4a9d # v9.2.0",
		"oxsecurity/megalinter/flavors/python@55a59b24a441e0e1943080d4a512d827710d4a9d # v9.2.0",
	)

	passed, _ := check(t, rule, steps[0])
	assert.True(t, passed)

	passed, message := check(t, rule, steps[1])
	assert.False(t, passed)
	assert.Equal(t, "New Action detected: oxsecurity/megalinter/flavors/python\n"+
		"For security purposes, actions must be reviewed and be on the pre-approved list", message)
}

func TestStepApproved_ThroughExecute(t *testing.T) {
	rule := newStepApproved(Env{Settings: testSettings()}, LevelError)
	steps := stepsOf(t, "./local", "unknown/action@v1")

	f, err := Execute(context.Background(), rule, steps[0])
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = Execute(context.Background(), rule, steps[1])
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, LevelError, f.Level)
	assert.Equal(t, "jobs.build.steps[1]", f.Location)
}
