package rules

import (
	"context"
	"regexp"
	"strings"

	"github.com/tracker-tv/workflow-linter/models"
)

const underscoreOutputsID = "underscore_outputs"

// Matches `name=value >> $GITHUB_OUTPUT` including the "$GITHUB_OUTPUT" and
// ${GITHUB_OUTPUT} spellings.
var stepOutputPattern = regexp.MustCompile(`\b([a-zA-Z0-9_-]+)\s*=\s*[^=]*>>\s*"?\$\{?GITHUB_OUTPUT`)

type underscoreOutputs struct {
	base
}

func newUnderscoreOutputs(_ Env, level Level) Rule {
	return &underscoreOutputs{base: base{id: underscoreOutputsID, kinds: models.KindAll, level: level}}
}

func (r *underscoreOutputs) Check(_ context.Context, node models.Node) (bool, string, error) {
	var offenders []string
	for _, name := range outputNames(node) {
		if strings.Contains(name, "-") {
			offenders = append(offenders, name)
		}
	}

	if len(offenders) > 0 {
		return false, "Hyphen found in " + node.Kind().String() + " output: " + strings.Join(offenders, ", "), nil
	}
	return true, "", nil
}

func outputNames(node models.Node) []string {
	var names []string
	switch n := node.(type) {
	case *models.Workflow:
		for _, event := range []string{"workflow_dispatch", "workflow_call"} {
			if t, ok := n.Trigger(event); ok {
				names = append(names, t.Outputs...)
			}
		}
	case *models.Job:
		names = n.Outputs.Keys()
	case *models.Step:
		for _, m := range stepOutputPattern.FindAllStringSubmatch(n.Run, -1) {
			names = append(names, m[1])
		}
	}
	return names
}
