package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracker-tv/workflow-linter/internal/orchestrator"
	"github.com/tracker-tv/workflow-linter/internal/rules"
)

func sampleReport() orchestrator.Report {
	findings := []rules.Finding{
		{RuleID: "job_environment_prefix", Description: "Non-global environment variables should be lowercase", Level: rules.LevelError, Location: "jobs.build"},
		{RuleID: "zizmor", Description: "template injection", Level: rules.LevelWarning, Location: "ci.yml"},
	}
	return orchestrator.Report{
		Files: []orchestrator.FileReport{
			{Path: "clean.yml", Findings: []rules.Finding{}},
			{Path: "ci.yml", Findings: findings},
		},
		Outcome: rules.Summarize(findings),
	}
}

func TestNew(t *testing.T) {
	w, err := New("JSON", false)
	require.NoError(t, err)
	assert.IsType(t, &jsonWriter{}, w)

	w, err = New("", true)
	require.NoError(t, err)
	assert.IsType(t, &textWriter{}, w)

	_, err = New("sarif", false)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w, _ := New(FormatText, false)

	require.NoError(t, w.Write(&buf, sampleReport()))

	expected := "ci.yml\n" +
		"  error Non-global environment variables should be lowercase [job_environment_prefix] jobs.build\n" +
		"  warning template injection [zizmor] ci.yml\n" +
		"2 files linted: 1 error(s), 1 warning(s)\n"
	assert.Equal(t, expected, buf.String())
}

func TestTextWriter_Color(t *testing.T) {
	var buf bytes.Buffer
	w, _ := New(FormatText, true)

	require.NoError(t, w.Write(&buf, sampleReport()))

	assert.Contains(t, buf.String(), "\033[31merror\033[0m Non-global")
	assert.Contains(t, buf.String(), "\033[33mwarning\033[0m template injection")
}

func TestTextWriter_Clean(t *testing.T) {
	var buf bytes.Buffer
	w, _ := New(FormatText, false)

	require.NoError(t, w.Write(&buf, orchestrator.Report{Files: []orchestrator.FileReport{{Path: "a.yml"}}}))

	assert.Equal(t, "1 files linted: no findings\n", buf.String())
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w, _ := New(FormatJSON, false)

	require.NoError(t, w.Write(&buf, sampleReport()))

	var decoded struct {
		Files []struct {
			Path     string `json:"path"`
			Findings []struct {
				Rule  string `json:"rule"`
				Level string `json:"level"`
			} `json:"findings"`
		} `json:"files"`
		Outcome struct {
			MaxLevel string `json:"max_level"`
			Errors   int    `json:"errors"`
		} `json:"outcome"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Files, 2)
	assert.Equal(t, "ci.yml", decoded.Files[1].Path)
	assert.Equal(t, "zizmor", decoded.Files[1].Findings[1].Rule)
	assert.Equal(t, "warning", decoded.Files[1].Findings[1].Level)
	assert.Equal(t, "error", decoded.Outcome.MaxLevel)
	assert.Equal(t, 1, decoded.Outcome.Errors)
}
