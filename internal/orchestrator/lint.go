package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tracker-tv/workflow-linter/internal/rules"
	"github.com/tracker-tv/workflow-linter/internal/service"
	"github.com/tracker-tv/workflow-linter/models"
)

// ParseRuleID identifies findings raised for files that cannot be loaded.
const ParseRuleID = "parse"

type Evaluator interface {
	Evaluate(ctx context.Context, wf *models.Workflow) ([]rules.Finding, error)
}

type FileReport struct {
	Path     string          `json:"path"`
	Findings []rules.Finding `json:"findings"`
}

type Report struct {
	Files   []FileReport  `json:"files"`
	Outcome rules.Outcome `json:"outcome"`
}

func (r Report) Findings() []rules.Finding {
	var all []rules.Finding
	for _, f := range r.Files {
		all = append(all, f.Findings...)
	}
	return all
}

type Linter struct {
	workflows service.WorkflowService
	rules     Evaluator
	logger    *slog.Logger
	debounce  time.Duration
}

func NewLinter(workflows service.WorkflowService, evaluator Evaluator, logger *slog.Logger) *Linter {
	return &Linter{
		workflows: workflows,
		rules:     evaluator,
		logger:    logger,
		debounce:  DefaultDebounce,
	}
}

// Run lints every workflow found under paths. A file that cannot be
// loaded yields a parse finding and the batch carries on; rule errors
// abort the run.
func (l *Linter) Run(ctx context.Context, paths []string) (Report, error) {
	files, err := l.workflows.Discover(paths)
	if err != nil {
		return Report{}, fmt.Errorf("discovering workflows: %w", err)
	}

	report := Report{Files: make([]FileReport, 0, len(files))}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		fr, err := l.lintFile(ctx, path)
		if err != nil {
			return report, err
		}
		report.Files = append(report.Files, fr)
	}

	report.Outcome = rules.Summarize(report.Findings())
	l.logger.Info("lint finished",
		"files", len(report.Files),
		"errors", report.Outcome.Errors,
		"warnings", report.Outcome.Warnings,
	)

	return report, nil
}

func (l *Linter) lintFile(ctx context.Context, path string) (FileReport, error) {
	fr := FileReport{Path: path, Findings: []rules.Finding{}}
	l.logger.Debug("linting workflow", "path", path)

	wf, err := l.workflows.Load(path)
	if err != nil {
		l.logger.Error("cannot load workflow", "path", path, "error", err)
		fr.Findings = append(fr.Findings, rules.Finding{
			RuleID:      ParseRuleID,
			Description: err.Error(),
			Level:       rules.LevelError,
			Location:    path,
		})
		return fr, nil
	}

	findings, err := l.rules.Evaluate(ctx, wf)
	if err != nil {
		return fr, fmt.Errorf("linting %s: %w", path, err)
	}
	fr.Findings = append(fr.Findings, findings...)

	return fr, nil
}
