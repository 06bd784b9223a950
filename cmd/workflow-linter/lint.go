package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tracker-tv/workflow-linter/internal/orchestrator"
	"github.com/tracker-tv/workflow-linter/internal/report"
	"github.com/tracker-tv/workflow-linter/internal/rules"
	"github.com/tracker-tv/workflow-linter/internal/service"
)

const defaultWorkflowDir = ".github/workflows"

func newLintCmd(a *app) *cobra.Command {
	var (
		output  string
		strict  bool
		watch   bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint workflow files and directories",
		Long: `Lint every .yml/.yaml file found under the given paths
(default .github/workflows). Errors fail the run; warnings fail it only
with --strict.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{defaultWorkflowDir}
			}
			if !cmd.Flags().Changed("strict") {
				strict = a.cfg.Strict
			}

			writer, err := report.New(output, !noColor && isTerminal(a.stdout))
			if err != nil {
				return err
			}

			settings, err := a.settings()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}

			registry, err := rules.Build(rules.Env{Settings: settings, Logger: a.logger})
			if err != nil {
				return fmt.Errorf("building rules: %w", err)
			}

			linter := orchestrator.NewLinter(service.NewWorkflowService(), registry, a.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watch {
				return linter.Watch(ctx, args, func(r orchestrator.Report, err error) {
					if err != nil {
						a.logger.Error("lint run failed", "error", err)
						return
					}
					if err := writer.Write(a.stdout, r); err != nil {
						a.logger.Error("writing report", "error", err)
					}
				})
			}

			return lintOnce(ctx, a, linter, writer, args, strict)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", report.FormatText, "Report format (text, json)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings as well as errors")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run when workflow files change")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	return cmd
}

func lintOnce(ctx context.Context, a *app, linter *orchestrator.Linter, writer report.Writer, paths []string, strict bool) error {
	r, err := linter.Run(ctx, paths)
	if err != nil {
		return err
	}
	if err := writer.Write(a.stdout, r); err != nil {
		return err
	}
	if r.Outcome.Failed(strict) {
		return errLintFailed
	}
	return nil
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
