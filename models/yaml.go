package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldError reports a workflow value that cannot be coerced into the node
// model.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func fieldErrorf(field, format string, args ...any) error {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	n = deref(n)
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// lookupPair returns the key and value nodes of a mapping entry.
func lookupPair(n *yaml.Node, key string) (*yaml.Node, *yaml.Node) {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if k := deref(n.Content[i]); k.Value == key {
			return k, deref(n.Content[i+1])
		}
	}
	return nil, nil
}

func lookup(n *yaml.Node, key string) *yaml.Node {
	_, v := lookupPair(n, key)
	return v
}

func scalar(n *yaml.Node, field string) (string, error) {
	if isNull(n) {
		return "", nil
	}
	n = deref(n)
	if n.Kind != yaml.ScalarNode {
		return "", fieldErrorf(field, "expected a scalar value")
	}
	return n.Value, nil
}

func scalarField(parent *yaml.Node, key, field string) (string, error) {
	return scalar(lookup(parent, key), field)
}

// stringList accepts a single scalar or a sequence of scalars.
func stringList(n *yaml.Node, field string) ([]string, error) {
	if isNull(n) {
		return nil, nil
	}
	n = deref(n)
	switch n.Kind {
	case yaml.ScalarNode:
		return []string{n.Value}, nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for i, item := range n.Content {
			v, err := scalar(item, fmt.Sprintf("%s[%d]", field, i))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	return nil, fieldErrorf(field, "expected a string or a list of strings")
}

func mapping(n *yaml.Node, field string) (Mapping, error) {
	if isNull(n) {
		return nil, nil
	}
	n = deref(n)
	if n.Kind != yaml.MappingNode {
		return nil, fieldErrorf(field, "expected a mapping")
	}
	out := make(Mapping, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := deref(n.Content[i])
		if k.Kind != yaml.ScalarNode {
			return nil, fieldErrorf(field, "mapping keys must be strings")
		}
		var value string
		if v := deref(n.Content[i+1]); v != nil && v.Kind == yaml.ScalarNode && v.Tag != "!!null" {
			value = v.Value
		}
		out = append(out, Entry{Key: k.Value, Value: value})
	}
	return out, nil
}

func parsePermissions(n *yaml.Node, field string) (*Permissions, error) {
	if isNull(n) {
		return nil, nil
	}
	n = deref(n)
	switch n.Kind {
	case yaml.ScalarNode:
		return &Permissions{All: n.Value}, nil
	case yaml.MappingNode:
		scopes, err := mapping(n, field)
		if err != nil {
			return nil, err
		}
		return &Permissions{Scopes: scopes}, nil
	}
	return nil, fieldErrorf(field, "expected a string or a mapping")
}

// runnerLabel flattens the accepted runs-on shapes into one string.
func runnerLabel(n *yaml.Node, field string) (string, error) {
	if isNull(n) {
		return "", nil
	}
	n = deref(n)
	switch n.Kind {
	case yaml.ScalarNode, yaml.SequenceNode:
		labels, err := stringList(n, field)
		if err != nil {
			return "", err
		}
		return strings.Join(labels, ", "), nil
	case yaml.MappingNode:
		var parts []string
		group, err := scalarField(n, "group", field+".group")
		if err != nil {
			return "", err
		}
		if group != "" {
			parts = append(parts, group)
		}
		labels, err := stringList(lookup(n, "labels"), field+".labels")
		if err != nil {
			return "", err
		}
		parts = append(parts, labels...)
		return strings.Join(parts, ", "), nil
	}
	return "", fieldErrorf(field, "expected a string, list or mapping")
}

// splitUses splits an action or workflow reference once on the first '@'.
func splitUses(uses string) (path, ref string) {
	if i := strings.Index(uses, "@"); i >= 0 {
		return uses[:i], uses[i+1:]
	}
	return uses, ""
}
