package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tracker-tv/workflow-linter/internal/policy"
	"github.com/tracker-tv/workflow-linter/models"
)

//go:embed defaults/default_settings.yaml
var defaultSettings []byte

//go:embed defaults/default_actions.json
var defaultActions []byte

// DefaultActionsPath selects the embedded approved-actions list.
const DefaultActionsPath = "default_actions.json"

var ErrDefaultBranchMissing = errors.New("default_branch is not set")

// RuleConfig enables one rule and optionally overrides its failure level.
// A bare string in the enabled_rules list is read as the rule id.
type RuleConfig struct {
	ID      string `yaml:"id"`
	Level   string `yaml:"level,omitempty"`
	Enabled *bool  `yaml:"enabled,omitempty"`
}

func (r *RuleConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		r.ID = value.Value
		return nil
	}
	type plain RuleConfig
	return value.Decode((*plain)(r))
}

func (r RuleConfig) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Settings is the read-only configuration shared by every rule of a run.
type Settings struct {
	EnabledRules        []RuleConfig `yaml:"enabled_rules"`
	ApprovedActionsPath string       `yaml:"approved_actions_path"`
	// ApprovedActions is keyed by the full action path as used in `uses`.
	ApprovedActions map[string]models.Action `yaml:"-"`

	BlockedDomains      []string `yaml:"blocked_domains"`
	DefaultBranch       string   `yaml:"default_branch"`
	FirstPartyNamespace string   `yaml:"first_party_namespace"`
	CheckRunWorkflow    string   `yaml:"check_run_workflow"`
	// PermissionsAllowJobLevel accepts per-job permissions on every job in
	// place of a workflow level block.
	PermissionsAllowJobLevel bool `yaml:"permissions_allow_job_level"`

	ActionlintVersion string        `yaml:"actionlint_version"`
	ZizmorVersion     string        `yaml:"zizmor_version"`
	ZizmorConfigURL   string        `yaml:"zizmor_config_url"`
	ToolDir           string        `yaml:"tool_dir"`
	ToolTimeout       time.Duration `yaml:"tool_timeout"`
}

// DefaultSettings returns the embedded defaults with the embedded
// approved-actions list.
func DefaultSettings() (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(defaultSettings, &s); err != nil {
		return nil, fmt.Errorf("decoding default settings: %w", err)
	}
	actions, err := policy.FromJSON(defaultActions)
	if err != nil {
		return nil, fmt.Errorf("decoding default actions: %w", err)
	}
	s.ApprovedActions = actions
	return &s, nil
}

// LoadSettings layers the override file at path (ignored when missing) over
// the embedded defaults, then loads the approved-actions list it names.
func LoadSettings(path string) (*Settings, error) {
	s, err := DefaultSettings()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading settings %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, s); err != nil {
				return nil, fmt.Errorf("decoding settings %s: %w", path, err)
			}
		}
	}

	if s.ApprovedActionsPath != "" && s.ApprovedActionsPath != DefaultActionsPath {
		if s.ApprovedActions, err = policy.Load(s.ApprovedActionsPath); err != nil {
			return nil, err
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if s.DefaultBranch == "" {
		return ErrDefaultBranchMissing
	}
	if s.ToolTimeout < 0 {
		return fmt.Errorf("tool_timeout must not be negative, got %s", s.ToolTimeout)
	}
	return nil
}
