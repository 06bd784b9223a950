package models

import "strings"

// Kind tags the variants of the lintable node union. Values are bit flags so
// a rule can declare compatibility with several variants at once.
type Kind uint8

const (
	KindWorkflow Kind = 1 << iota
	KindJob
	KindStep
)

// KindAll is every node variant.
const KindAll = KindWorkflow | KindJob | KindStep

// Has reports whether every flag in other is set in k.
func (k Kind) Has(other Kind) bool {
	return other != 0 && k&other == other
}

func (k Kind) String() string {
	var names []string
	if k&KindWorkflow != 0 {
		names = append(names, "Workflow")
	}
	if k&KindJob != 0 {
		names = append(names, "Job")
	}
	if k&KindStep != 0 {
		names = append(names, "Step")
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// Node is implemented by *Workflow, *Job and *Step only.
type Node interface {
	Kind() Kind
	// Location is a short human readable path to the node inside its workflow.
	Location() string
	node()
}

func (*Workflow) node() {}
func (*Job) node()      {}
func (*Step) node()     {}

func (*Workflow) Kind() Kind { return KindWorkflow }
func (*Job) Kind() Kind      { return KindJob }
func (*Step) Kind() Kind     { return KindStep }

// Entry is a single key/value pair of a Mapping. Value is empty for
// non-scalar YAML values.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Mapping is an ordered YAML mapping with scalar values.
type Mapping []Entry

func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, e := range m {
		keys = append(keys, e.Key)
	}
	return keys
}

func (m Mapping) Get(key string) (string, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Permissions is either a single permission string (read-all, write-all) or
// a set of scoped permissions. A nil *Permissions means the block is absent.
type Permissions struct {
	All    string  `json:"all,omitempty"`
	Scopes Mapping `json:"scopes,omitempty"`
}
