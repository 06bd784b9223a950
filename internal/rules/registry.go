package rules

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/tracker-tv/workflow-linter/internal/config"
	"github.com/tracker-tv/workflow-linter/internal/tools"
	"github.com/tracker-tv/workflow-linter/models"
)

var ErrUnknownRule = errors.New("unknown rule")

// Env is what rule constructors may depend on. Settings is shared and must
// not be modified.
type Env struct {
	Settings   *config.Settings
	Resolver   tools.Resolver
	Runner     tools.Runner
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func (e Env) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type definition struct {
	kinds models.Kind
	level Level
	// fixed rules ignore level overrides from settings.
	fixed bool
	build func(env Env, level Level) Rule
}

var definitions = map[string]definition{
	blockedDomainsID:    {kinds: models.KindAll, level: LevelError, build: newBlockedDomains},
	prTargetID:          {kinds: models.KindWorkflow, level: LevelWarning, fixed: true, build: newPRTarget},
	jobEnvPrefixID:      {kinds: models.KindJob, level: LevelNone, build: newJobEnvPrefix},
	permissionsExistID:  {kinds: models.KindWorkflow, level: LevelNone, build: newPermissionsExist},
	runnerPinnedID:      {kinds: models.KindJob, level: LevelNone, build: newRunnerPinned},
	stepApprovedID:      {kinds: models.KindStep, level: LevelNone, build: newStepApproved},
	underscoreOutputsID: {kinds: models.KindAll, level: LevelWarning, fixed: true, build: newUnderscoreOutputs},
	actionlintID:        {kinds: models.KindWorkflow, level: LevelWarning, fixed: true, build: newActionlint},
	zizmorID:            {kinds: models.KindWorkflow, level: LevelWarning, build: newZizmor},
}

// Info describes a known rule.
type Info struct {
	ID            string      `json:"id"`
	Compatibility models.Kind `json:"-"`
	Nodes         string      `json:"nodes"`
	Level         Level       `json:"default_level"`
	Fixed         bool        `json:"fixed_level"`
}

// Catalogue lists every known rule sorted by id.
func Catalogue() []Info {
	out := make([]Info, 0, len(definitions))
	for id, def := range definitions {
		out = append(out, Info{ID: id, Compatibility: def.kinds, Nodes: def.kinds.String(), Level: def.level, Fixed: def.fixed})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Registry holds the enabled rules in registration order.
type Registry struct {
	rules []Rule
}

func NewRegistry(rules ...Rule) *Registry {
	return &Registry{rules: rules}
}

// Build instantiates the rules enabled in env.Settings, in the order they
// are listed there.
func Build(env Env) (*Registry, error) {
	if env.Settings == nil {
		return nil, errors.New("settings are required")
	}
	log := env.logger()
	if env.HTTPClient == nil {
		env.HTTPClient = http.DefaultClient
	}
	if env.Runner == nil {
		env.Runner = tools.NewExecRunner()
	}
	if env.Resolver == nil {
		env.Resolver = tools.NewResolver(env.Runner, env.HTTPClient, env.Settings.ToolDir, log)
	}

	reg := &Registry{}
	seen := make(map[string]bool)
	for _, rc := range env.Settings.EnabledRules {
		if !rc.IsEnabled() {
			continue
		}
		def, ok := definitions[rc.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, rc.ID)
		}
		if seen[rc.ID] {
			log.Warn("rule enabled more than once", "rule", rc.ID)
			continue
		}
		seen[rc.ID] = true

		level := def.level
		if rc.Level != "" {
			override, err := ParseLevel(rc.Level)
			if err != nil {
				return nil, fmt.Errorf("rule %s: %w", rc.ID, err)
			}
			if def.fixed {
				log.Warn("rule level cannot be overridden", "rule", rc.ID, "level", rc.Level)
			} else {
				level = override
			}
		}

		reg.rules = append(reg.rules, def.build(env, level))
	}

	return reg, nil
}

func (r *Registry) Rules() []Rule {
	return r.rules
}

// Evaluate runs every rule over the compatible nodes of wf, rule by rule,
// visiting the workflow, then each job followed by its steps.
func (r *Registry) Evaluate(ctx context.Context, wf *models.Workflow) ([]Finding, error) {
	nodes := wf.Nodes()
	var findings []Finding

	for _, rule := range r.rules {
		for _, node := range nodes {
			if !rule.Compatibility().Has(node.Kind()) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return findings, err
			}
			f, err := Execute(ctx, rule, node)
			if err != nil {
				return findings, err
			}
			if f != nil {
				findings = append(findings, *f)
			}
		}
	}

	return findings, nil
}
