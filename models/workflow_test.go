package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWorkflow = `---
name: Test Workflow

on:
  workflow_dispatch:
  pull_request_target:
    types: [opened, synchronize]
    branches:
      - 'main'
  workflow_call:
    outputs:
      some_output:
        value: x

permissions:
  contents: read
  id-token: write

jobs:
  check-run:
    name: Check PR run
    uses: bitwarden/gh-actions/.github/workflows/check-run.yml@main

  quality:
    name: Quality scan
    runs-on: ubuntu-22.04
    needs: check-run
    env:
      _FOO: bar
      NODE_OPTIONS: --max-old-space-size=4096
    outputs:
      result: ${{ steps.scan.outputs.result }}
    steps:
      - name: Checkout
        uses: actions/checkout@b4ffde65f46336ab88eb53be808477a3936bae11 # v4.1.1
      - id: scan
        run: echo "result=ok" >> $GITHUB_OUTPUT

  dependent-job:
    name: Another Dependent Job
    runs-on: [self-hosted, linux]
    needs:
      - quality
      - check-run
    permissions: read-all
    steps:
      - run: echo another dependent job
`

func TestParseWorkflow(t *testing.T) {
	wf, err := ParseWorkflow([]byte(sampleWorkflow), "ci.yml")
	require.NoError(t, err)

	assert.Equal(t, "Test Workflow", wf.Name)
	assert.Equal(t, "ci.yml", wf.Filename)
	assert.Equal(t, "ci.yml", wf.Location())

	require.Len(t, wf.Triggers, 3)
	assert.Equal(t, "workflow_dispatch", wf.Triggers[0].Event)

	prt, ok := wf.Trigger("pull_request_target")
	require.True(t, ok)
	assert.True(t, prt.BranchesSet)
	assert.Equal(t, []string{"main"}, prt.Branches)
	assert.Equal(t, []string{"opened", "synchronize"}, prt.Types)

	call, ok := wf.Trigger("workflow_call")
	require.True(t, ok)
	assert.Equal(t, []string{"some_output"}, call.Outputs)

	require.NotNil(t, wf.Permissions)
	assert.Equal(t, []string{"contents", "id-token"}, wf.Permissions.Scopes.Keys())

	require.Len(t, wf.Jobs, 3)
	assert.Equal(t, []string{"check-run", "quality", "dependent-job"}, []string{
		wf.Jobs[0].Key, wf.Jobs[1].Key, wf.Jobs[2].Key,
	})
}

func TestParseWorkflow_Jobs(t *testing.T) {
	wf, err := ParseWorkflow([]byte(sampleWorkflow), "")
	require.NoError(t, err)

	checkRun, _ := wf.Job("check-run")
	assert.Equal(t, "bitwarden/gh-actions/.github/workflows/check-run.yml@main", checkRun.Uses)
	assert.Equal(t, "bitwarden/gh-actions/.github/workflows/check-run.yml", checkRun.UsesPath)
	assert.Equal(t, "main", checkRun.UsesRef)
	assert.Empty(t, checkRun.Steps)
	assert.Empty(t, checkRun.Needs)

	quality, _ := wf.Job("quality")
	assert.Equal(t, "ubuntu-22.04", quality.RunsOn)
	assert.Equal(t, []string{"check-run"}, quality.Needs)
	assert.True(t, quality.NeedsJob("check-run"))
	assert.Equal(t, []string{"_FOO", "NODE_OPTIONS"}, quality.Env.Keys())
	assert.Equal(t, []string{"result"}, quality.Outputs.Keys())
	assert.Nil(t, quality.Permissions)
	require.Len(t, quality.Steps, 2)
	assert.Equal(t, "v4.1.1", quality.Steps[0].UsesVersion)
	assert.Equal(t, 1, quality.Steps[1].Index)
	assert.Equal(t, "quality", quality.Steps[1].Job)

	dependent, _ := wf.Job("dependent-job")
	assert.Equal(t, "self-hosted, linux", dependent.RunsOn)
	assert.Equal(t, []string{"quality", "check-run"}, dependent.Needs)
	require.NotNil(t, dependent.Permissions)
	assert.Equal(t, "read-all", dependent.Permissions.All)

	_, ok := wf.Job("missing")
	assert.False(t, ok)
}

func TestWorkflow_NodesOrder(t *testing.T) {
	wf, err := ParseWorkflow([]byte(sampleWorkflow), "ci.yml")
	require.NoError(t, err)

	var locations []string
	for _, n := range wf.Nodes() {
		locations = append(locations, n.Location())
	}

	assert.Equal(t, []string{
		"ci.yml",
		"jobs.check-run",
		"jobs.quality",
		"jobs.quality.steps[0]",
		"jobs.quality.steps[1]",
		"jobs.dependent-job",
		"jobs.dependent-job.steps[0]",
	}, locations)
}

func TestParseWorkflow_TriggerShapes(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		events []string
	}{
		{name: "scalar", src: "on: push\n", events: []string{"push"}},
		{name: "list", src: "on: [push, pull_request]\n", events: []string{"push", "pull_request"}},
		{name: "absent", src: "name: x\n", events: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf, err := ParseWorkflow([]byte(tt.src), "")
			require.NoError(t, err)

			var events []string
			for _, tr := range wf.Triggers {
				events = append(events, tr.Event)
			}
			assert.Equal(t, tt.events, events)
		})
	}
}

func TestParseWorkflow_ScalarBranchFilter(t *testing.T) {
	wf, err := ParseWorkflow([]byte("on:\n  pull_request_target:\n    branches: main\n"), "")
	require.NoError(t, err)

	prt, ok := wf.Trigger("pull_request_target")
	require.True(t, ok)
	assert.Equal(t, []string{"main"}, prt.Branches)
}

func TestParseWorkflow_JobUsesNewlinesStripped(t *testing.T) {
	src := "jobs:\n  call:\n    uses: \"org/repo/.github/workflows/x.yml\\n@v1\"\n"

	wf, err := ParseWorkflow([]byte(src), "")
	require.NoError(t, err)

	assert.Equal(t, "org/repo/.github/workflows/x.yml@v1", wf.Jobs[0].Uses)
	assert.Equal(t, "org/repo/.github/workflows/x.yml", wf.Jobs[0].UsesPath)
	assert.Equal(t, "v1", wf.Jobs[0].UsesRef)
}

func TestParseWorkflow_Errors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		field string
	}{
		{name: "root not mapping", src: "- a\n", field: "workflow"},
		{name: "jobs not mapping", src: "jobs: [a]\n", field: "jobs"},
		{name: "job without steps or uses", src: "jobs:\n  build:\n    runs-on: x\n", field: "jobs.build"},
		{name: "duplicate job", src: "jobs:\n  a:\n    uses: x@y\n  a:\n    uses: x@z\n", field: "jobs.a"},
		{name: "bad needs", src: "jobs:\n  a:\n    uses: x@y\n    needs: {b: c}\n", field: "jobs.a.needs"},
		{name: "bad env", src: "jobs:\n  a:\n    uses: x@y\n    env: [a]\n", field: "jobs.a.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWorkflow([]byte(tt.src), "")

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestParseWorkflow_EmptyDocument(t *testing.T) {
	_, err := ParseWorkflow([]byte(""), "empty.yml")

	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestKind(t *testing.T) {
	assert.True(t, KindAll.Has(KindJob))
	assert.False(t, KindWorkflow.Has(KindStep))
	assert.False(t, KindWorkflow.Has(0))
	assert.Equal(t, "Workflow|Step", (KindWorkflow | KindStep).String())
	assert.Equal(t, KindStep, (&Step{}).Kind())
}

func TestActionEqual(t *testing.T) {
	a := Action{Name: "actions/checkout", Version: "v4", SHA: "abc"}

	assert.True(t, a.Equal(Action{Name: "actions/checkout", Version: "v4", SHA: "abc"}))
	assert.False(t, a.Equal(Action{Name: "actions/checkout", Version: "v4", SHA: "def"}))
}
