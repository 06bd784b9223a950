package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const prTargetWorkflow = `
on:
  pull_request_target:
    types: [opened, synchronize]
    branches: BRANCHES
jobs:
  check-run:
    name: Check PR run
    uses: bitwarden/gh-actions/.github/workflows/check-run.yml@main
  quality:
    runs-on: ubuntu-22.04
    needs: check-run
    steps:
      - run: echo quality
  dependent-job:
    runs-on: ubuntu-22.04
    needs: DEPENDENT_NEEDS
    steps:
      - run: echo dependent
`

func prTargetCase(branches, needs string) string {
	return strings.NewReplacer("BRANCHES", branches, "DEPENDENT_NEEDS", needs).Replace(prTargetWorkflow)
}

const (
	branchMsg = "Workflows using pull_request_target can only target the main branch"
	gateMsg   = "A check-run job must be included as a direct job dependency when pull_request_target is used"
)

func TestPRTarget(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		passed  bool
		message string
	}{
		{
			name:   "compliant",
			src:    prTargetCase("[main]", "[quality, check-run]"),
			passed: true,
		},
		{
			name:    "dependent job misses gate",
			src:     prTargetCase("[main]", "[quality]"),
			message: gateMsg + ", check-run is missing from the following jobs in the workflow: dependent-job",
		},
		{
			name:    "extra branch",
			src:     prTargetCase("[main, other]", "[quality, check-run]"),
			message: branchMsg,
		},
		{
			name:    "other branch",
			src:     prTargetCase("[develop]", "[quality, check-run]"),
			message: branchMsg,
		},
		{
			name:    "both violations",
			src:     prTargetCase("[main, other]", "[quality]"),
			message: branchMsg + "\n" + gateMsg + ", check-run is missing from the following jobs in the workflow: dependent-job",
		},
		{
			name:    "no branch filter",
			src:     "on:\n  pull_request_target:\njobs:\n  check-run:\n    uses: " + checkRunRef + "\n",
			message: branchMsg,
		},
		{
			name:    "no gate job",
			src:     "on:\n  pull_request_target:\n    branches: [main]\njobs:\n  build:\n    runs-on: x\n    steps:\n      - run: make\n",
			message: gateMsg,
		},
		{
			name:    "gate pinned to other ref",
			src:     "on:\n  pull_request_target:\n    branches: [main]\njobs:\n  check-run:\n    uses: bitwarden/gh-actions/.github/workflows/check-run.yml@v1\n",
			message: gateMsg,
		},
		{
			name:   "trigger absent",
			src:    "on: push\njobs:\n  build:\n    runs-on: x\n    steps:\n      - run: make\n",
			passed: true,
		},
	}

	rule := newPRTarget(Env{Settings: testSettings()}, LevelWarning)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, message := check(t, rule, parse(t, tt.src))

			assert.Equal(t, tt.passed, passed)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestPRTarget_CustomBranch(t *testing.T) {
	s := testSettings()
	s.DefaultBranch = "trunk"
	rule := newPRTarget(Env{Settings: s}, LevelWarning)

	passed, message := check(t, rule, parse(t, prTargetCase("[trunk]", "[check-run]")))
	assert.True(t, passed)
	assert.Empty(t, message)

	_, message = check(t, rule, parse(t, prTargetCase("[main]", "[check-run]")))
	assert.Equal(t, "Workflows using pull_request_target can only target the trunk branch", message)
}
