package models

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Trigger is one entry of a workflow's `on` block.
type Trigger struct {
	Event string `json:"event"`
	// Branches is the branch filter; BranchesSet distinguishes an absent
	// filter from an empty one.
	Branches    []string `json:"branches,omitempty"`
	BranchesSet bool     `json:"-"`
	Types       []string `json:"types,omitempty"`
	// Outputs are the declared output names (workflow_call, workflow_dispatch).
	Outputs []string `json:"outputs,omitempty"`
}

// Workflow is the root node of a workflow document.
type Workflow struct {
	Name        string       `json:"name,omitempty"`
	Triggers    []Trigger    `json:"on,omitempty"`
	Permissions *Permissions `json:"permissions,omitempty"`
	Jobs        []*Job       `json:"jobs,omitempty"`
	// Filename is the source file. Empty for workflows built in memory.
	Filename string `json:"filename,omitempty"`
}

func (w *Workflow) Location() string {
	if w.Filename != "" {
		return w.Filename
	}
	return "workflow"
}

func (w *Workflow) Trigger(event string) (*Trigger, bool) {
	for i := range w.Triggers {
		if w.Triggers[i].Event == event {
			return &w.Triggers[i], true
		}
	}
	return nil, false
}

func (w *Workflow) Job(key string) (*Job, bool) {
	for _, j := range w.Jobs {
		if j.Key == key {
			return j, true
		}
	}
	return nil, false
}

// Nodes returns the workflow, then every job in declaration order, each
// followed by its steps in declaration order.
func (w *Workflow) Nodes() []Node {
	nodes := []Node{w}
	for _, j := range w.Jobs {
		nodes = append(nodes, j)
		for _, s := range j.Steps {
			nodes = append(nodes, s)
		}
	}
	return nodes
}

// ErrEmptyDocument is returned when a workflow file has no YAML document.
var ErrEmptyDocument = errors.New("empty workflow document")

// ParseWorkflow parses a workflow document. filename may be empty.
func ParseWorkflow(data []byte, filename string) (*Workflow, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	return NewWorkflow(doc.Content[0], filename)
}

// NewWorkflow builds a Workflow from the root mapping of a document.
func NewWorkflow(n *yaml.Node, filename string) (*Workflow, error) {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, fieldErrorf("workflow", "expected a mapping")
	}

	wf := &Workflow{Filename: filename}
	var err error

	if wf.Name, err = scalarField(n, "name", "name"); err != nil {
		return nil, err
	}
	if wf.Triggers, err = parseTriggers(lookup(n, "on")); err != nil {
		return nil, err
	}
	if wf.Permissions, err = parsePermissions(lookup(n, "permissions"), "permissions"); err != nil {
		return nil, err
	}

	jobs := lookup(n, "jobs")
	if isNull(jobs) {
		return wf, nil
	}
	if jobs.Kind != yaml.MappingNode {
		return nil, fieldErrorf("jobs", "expected a mapping")
	}

	seen := make(map[string]struct{})
	for i := 0; i+1 < len(jobs.Content); i += 2 {
		keyNode := deref(jobs.Content[i])
		if keyNode.Kind != yaml.ScalarNode || keyNode.Value == "" {
			return nil, fieldErrorf("jobs", "job key must be a non-empty string")
		}
		key := keyNode.Value
		if _, dup := seen[key]; dup {
			return nil, fieldErrorf("jobs."+key, "duplicate job key")
		}
		seen[key] = struct{}{}

		job, err := NewJob(key, jobs.Content[i+1])
		if err != nil {
			return nil, err
		}
		wf.Jobs = append(wf.Jobs, job)
	}

	return wf, nil
}

func parseTriggers(n *yaml.Node) ([]Trigger, error) {
	if isNull(n) {
		return nil, nil
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return []Trigger{{Event: n.Value}}, nil
	case yaml.SequenceNode:
		events, err := stringList(n, "on")
		if err != nil {
			return nil, err
		}
		triggers := make([]Trigger, 0, len(events))
		for _, e := range events {
			triggers = append(triggers, Trigger{Event: e})
		}
		return triggers, nil
	case yaml.MappingNode:
		var triggers []Trigger
		for i := 0; i+1 < len(n.Content); i += 2 {
			event := deref(n.Content[i]).Value
			t, err := parseTrigger(event, deref(n.Content[i+1]))
			if err != nil {
				return nil, err
			}
			triggers = append(triggers, t)
		}
		return triggers, nil
	}

	return nil, fieldErrorf("on", "expected a string, list or mapping")
}

func parseTrigger(event string, cfg *yaml.Node) (Trigger, error) {
	t := Trigger{Event: event}
	if isNull(cfg) {
		return t, nil
	}
	// Some events take a list of activity types directly.
	if cfg.Kind == yaml.SequenceNode {
		types, err := stringList(cfg, "on."+event)
		t.Types = types
		return t, err
	}
	if cfg.Kind != yaml.MappingNode {
		return t, nil
	}

	field := "on." + event
	var err error
	if b := lookup(cfg, "branches"); b != nil {
		t.BranchesSet = true
		if t.Branches, err = stringList(b, field+".branches"); err != nil {
			return t, err
		}
	}
	if t.Types, err = stringList(lookup(cfg, "types"), field+".types"); err != nil {
		return t, err
	}
	outputs, err := mapping(lookup(cfg, "outputs"), field+".outputs")
	if err != nil {
		return t, err
	}
	t.Outputs = outputs.Keys()
	return t, nil
}
