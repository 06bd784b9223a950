package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseStep(t *testing.T, src string) *Step {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	step, err := NewStep(0, "default", doc.Content[0])
	require.NoError(t, err)
	return step
}

func TestNewStep_Run(t *testing.T) {
	step := parseStep(t, `
name: Default Step
run: echo "test"
`)

	assert.Equal(t, 0, step.Index)
	assert.Equal(t, "default", step.Job)
	assert.Equal(t, "Default Step", step.Name)
	assert.Equal(t, `echo "test"`, step.Run)
	assert.Empty(t, step.Uses)
	assert.Nil(t, step.With)
	assert.Nil(t, step.Env)
	assert.Equal(t, "jobs.default.steps[0]", step.Location())
}

func TestNewStep_UsesWithComment(t *testing.T) {
	step := parseStep(t, `
name: Download Artifacts
uses: bitwarden/download-artifacts@main # v1.0.0
with:
    workflow: upload-test-artifacts.yml
    artifacts: artifact
    path: artifact
    branch: main
`)

	assert.Equal(t, "bitwarden/download-artifacts@main", step.Uses)
	assert.Equal(t, "bitwarden/download-artifacts", step.UsesPath)
	assert.Equal(t, "main", step.UsesRef)
	assert.Equal(t, "# v1.0.0", step.UsesComment)
	assert.Equal(t, "v1.0.0", step.UsesVersion)
	assert.Equal(t, []string{"workflow", "artifacts", "path", "branch"}, step.With.Keys())

	v, ok := step.With.Get("workflow")
	assert.True(t, ok)
	assert.Equal(t, "upload-test-artifacts.yml", v)
}

func TestNewStep_UsesWithoutComment(t *testing.T) {
	step := parseStep(t, `
name: Download Artifacts
uses: bitwarden/download-artifacts@main
`)

	assert.Equal(t, "main", step.UsesRef)
	assert.Empty(t, step.UsesVersion)
	assert.Empty(t, step.UsesComment)
}

func TestNewStep_LocalActionWithoutRef(t *testing.T) {
	step := parseStep(t, `
name: Run Local Workflow
uses: ./.github/workflows/_local.yml
`)

	assert.Equal(t, "./.github/workflows/_local.yml", step.UsesPath)
	assert.Empty(t, step.UsesRef)
	assert.Empty(t, step.UsesVersion)
	assert.Empty(t, step.UsesComment)
}

func TestNewStep_CommentIsNotValidated(t *testing.T) {
	step := parseStep(t, `
name: Run Local Workflow
uses: ./.github/workflows/_local.yml # A comment
`)

	assert.Empty(t, step.UsesRef)
	assert.Equal(t, "# A comment", step.UsesComment)
	assert.Equal(t, "A comment", step.UsesVersion)
}

func TestNewStep_SplitsOnFirstAt(t *testing.T) {
	step := parseStep(t, `uses: docker/build-push-action@v6@extra`)

	assert.Equal(t, "docker/build-push-action", step.UsesPath)
	assert.Equal(t, "v6@extra", step.UsesRef)
	assert.Equal(t, step.Uses, step.UsesPath+"@"+step.UsesRef)
}

func TestNewStep_RunAndUsesConflict(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("run: echo hi\nuses: actions/checkout@v4\n"), &doc))

	_, err := NewStep(3, "build", doc.Content[0])

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "jobs.build.steps[3]", fieldErr.Field)
}

func TestNewStep_NotAMapping(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("- a\n- b\n"), &doc))

	_, err := NewStep(0, "build", doc.Content[0])

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "jobs.build.steps[0]")
}
