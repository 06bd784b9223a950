package policy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tracker-tv/workflow-linter/models"
)

// FromJSON decodes an approved-actions document: action path -> Action.
func FromJSON(data []byte) (map[string]models.Action, error) {
	var actions map[string]models.Action
	if err := json.Unmarshal(data, &actions); err != nil {
		return nil, err
	}
	if actions == nil {
		actions = map[string]models.Action{}
	}
	return actions, nil
}

// ToJSON encodes the allow-list with sorted keys and two space indentation.
func ToJSON(actions map[string]models.Action) ([]byte, error) {
	if actions == nil {
		actions = map[string]models.Action{}
	}
	return json.MarshalIndent(actions, "", "  ")
}

func Load(path string) (map[string]models.Action, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading approved actions %s: %w", path, err)
	}
	actions, err := FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decoding approved actions %s: %w", path, err)
	}
	return actions, nil
}

func Save(path string, actions map[string]models.Action) error {
	data, err := ToJSON(actions)
	if err != nil {
		return fmt.Errorf("encoding approved actions: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing approved actions %s: %w", path, err)
	}
	return nil
}
