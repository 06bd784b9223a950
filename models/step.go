package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step is a single entry of a job's steps list.
type Step struct {
	Index    int    `json:"index"`
	Job      string `json:"job"`
	Name     string `json:"name,omitempty"`
	ID       string `json:"id,omitempty"`
	Run      string `json:"run,omitempty"`
	Uses     string `json:"uses,omitempty"`
	UsesPath string `json:"uses_path,omitempty"`
	UsesRef  string `json:"uses_ref,omitempty"`
	// UsesComment is the end-of-line comment on the uses line, including
	// the leading '#'. UsesVersion is the same text without it.
	UsesVersion string  `json:"uses_version,omitempty"`
	UsesComment string  `json:"uses_comment,omitempty"`
	With        Mapping `json:"with,omitempty"`
	Env         Mapping `json:"env,omitempty"`
}

func (s *Step) Location() string {
	return fmt.Sprintf("jobs.%s.steps[%d]", s.Job, s.Index)
}

// NewStep builds the idx-th step of the job identified by jobKey.
func NewStep(idx int, jobKey string, n *yaml.Node) (*Step, error) {
	field := fmt.Sprintf("jobs.%s.steps[%d]", jobKey, idx)
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, fieldErrorf(field, "expected a mapping")
	}

	step := &Step{Index: idx, Job: jobKey}
	var err error

	if step.Name, err = scalarField(n, "name", field+".name"); err != nil {
		return nil, err
	}
	if step.ID, err = scalarField(n, "id", field+".id"); err != nil {
		return nil, err
	}
	if step.Run, err = scalarField(n, "run", field+".run"); err != nil {
		return nil, err
	}
	if step.With, err = mapping(lookup(n, "with"), field+".with"); err != nil {
		return nil, err
	}
	if step.Env, err = mapping(lookup(n, "env"), field+".env"); err != nil {
		return nil, err
	}

	usesKey, usesNode := lookupPair(n, "uses")
	if step.Uses, err = scalar(usesNode, field+".uses"); err != nil {
		return nil, err
	}
	if step.Uses == "" {
		return step, nil
	}
	if step.Run != "" {
		return nil, fieldErrorf(field, "run and uses are mutually exclusive")
	}

	step.UsesPath, step.UsesRef = splitUses(step.Uses)

	comment := usesNode.LineComment
	if comment == "" && usesKey != nil {
		comment = usesKey.LineComment
	}
	if comment != "" {
		step.UsesComment = comment
		step.UsesVersion = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "#"))
	}

	return step, nil
}
