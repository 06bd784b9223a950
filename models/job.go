package models

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Job is either a direct job with Steps or a job calling a reusable
// workflow through Uses.
type Job struct {
	Key         string       `json:"key"`
	Name        string       `json:"name,omitempty"`
	RunsOn      string       `json:"runs_on,omitempty"`
	Env         Mapping      `json:"env,omitempty"`
	Needs       []string     `json:"needs,omitempty"`
	Uses        string       `json:"uses,omitempty"`
	UsesPath    string       `json:"uses_path,omitempty"`
	UsesRef     string       `json:"uses_ref,omitempty"`
	With        Mapping      `json:"with,omitempty"`
	Outputs     Mapping      `json:"outputs,omitempty"`
	Permissions *Permissions `json:"permissions,omitempty"`
	Steps       []*Step      `json:"steps,omitempty"`
}

func (j *Job) Location() string {
	return "jobs." + j.Key
}

// NeedsJob reports whether key is listed in the job's needs.
func (j *Job) NeedsJob(key string) bool {
	for _, n := range j.Needs {
		if n == key {
			return true
		}
	}
	return false
}

// NewJob builds a Job from its YAML mapping.
func NewJob(key string, n *yaml.Node) (*Job, error) {
	field := "jobs." + key
	if key == "" {
		return nil, fieldErrorf("jobs", "job key must be a non-empty string")
	}
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, fieldErrorf(field, "expected a mapping")
	}

	job := &Job{Key: key}
	var err error

	if job.Name, err = scalarField(n, "name", field+".name"); err != nil {
		return nil, err
	}
	if job.RunsOn, err = runnerLabel(lookup(n, "runs-on"), field+".runs-on"); err != nil {
		return nil, err
	}
	if job.Env, err = mapping(lookup(n, "env"), field+".env"); err != nil {
		return nil, err
	}
	if job.Needs, err = stringList(lookup(n, "needs"), field+".needs"); err != nil {
		return nil, err
	}
	if job.With, err = mapping(lookup(n, "with"), field+".with"); err != nil {
		return nil, err
	}
	if job.Outputs, err = mapping(lookup(n, "outputs"), field+".outputs"); err != nil {
		return nil, err
	}
	if job.Permissions, err = parsePermissions(lookup(n, "permissions"), field+".permissions"); err != nil {
		return nil, err
	}

	if steps := lookup(n, "steps"); steps != nil {
		if steps.Kind != yaml.SequenceNode {
			return nil, fieldErrorf(field+".steps", "expected a list")
		}
		for idx, s := range steps.Content {
			step, err := NewStep(idx, key, s)
			if err != nil {
				return nil, err
			}
			job.Steps = append(job.Steps, step)
		}
		return job, nil
	}

	uses, err := scalarField(n, "uses", field+".uses")
	if err != nil {
		return nil, err
	}
	if uses == "" {
		return nil, fieldErrorf(field, "a job must define either steps or uses")
	}
	job.Uses = strings.ReplaceAll(uses, "\n", "")
	job.UsesPath, job.UsesRef = splitUses(job.Uses)

	return job, nil
}
