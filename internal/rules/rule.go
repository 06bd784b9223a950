package rules

import (
	"context"
	"fmt"

	"github.com/tracker-tv/workflow-linter/models"
)

// Rule is an independent check bound to a failure level.
//
// Check returns (true, "") on pass and (false, reason) on failure. A non-nil
// error means the rule cannot run at all and aborts the lint run.
type Rule interface {
	ID() string
	Compatibility() models.Kind
	OnFail() Level
	Check(ctx context.Context, node models.Node) (bool, string, error)
}

// Skipper is implemented by rules that opt out of some compatible nodes.
type Skipper interface {
	Skip(node models.Node) bool
}

// ConfigError wraps a rule fault that is not a lint failure.
type ConfigError struct {
	RuleID   string
	Location string
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rule %s at %s: %v", e.RuleID, e.Location, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Execute runs rule against node and returns the finding it produced, if
// any. An incompatible node yields a finding instead of a check.
func Execute(ctx context.Context, rule Rule, node models.Node) (*Finding, error) {
	if !rule.Compatibility().Has(node.Kind()) {
		return &Finding{
			RuleID:      rule.ID(),
			Description: incompatibleMessage(rule.ID(), node),
			Level:       rule.OnFail(),
			Location:    node.Location(),
		}, nil
	}

	if s, ok := rule.(Skipper); ok && s.Skip(node) {
		return nil, nil
	}

	passed, message, err := rule.Check(ctx, node)
	if err != nil {
		return nil, &ConfigError{RuleID: rule.ID(), Location: node.Location(), Err: err}
	}
	if passed {
		return nil, nil
	}

	return &Finding{
		RuleID:      rule.ID(),
		Description: message,
		Level:       rule.OnFail(),
		Location:    node.Location(),
	}, nil
}

type base struct {
	id    string
	kinds models.Kind
	level Level
}

func (b base) ID() string                 { return b.id }
func (b base) Compatibility() models.Kind { return b.kinds }
func (b base) OnFail() Level              { return b.level }

// incompatible fails a Check called directly with a node variant the rule
// does not handle.
func (b base) incompatible(node models.Node) (bool, string, error) {
	return false, incompatibleMessage(b.id, node), nil
}

func incompatibleMessage(id string, node models.Node) string {
	return fmt.Sprintf("%s not compatible with %s", node.Kind(), id)
}
