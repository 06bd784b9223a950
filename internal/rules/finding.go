package rules

import "fmt"

// Finding is one failed check of a rule against a node.
type Finding struct {
	RuleID      string `json:"rule"`
	Description string `json:"description"`
	Level       Level  `json:"level"`
	Location    string `json:"location"`
}

// String renders the finding with an ANSI coloured level name.
func (f Finding) String() string {
	return fmt.Sprintf("\033[%s%s\033[0m %s", f.Level.Color(), f.Level, f.Description)
}

func (f Finding) Plain() string {
	return fmt.Sprintf("%s %s", f.Level, f.Description)
}
