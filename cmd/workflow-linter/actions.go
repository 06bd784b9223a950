package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tracker-tv/workflow-linter/internal/config"
	"github.com/tracker-tv/workflow-linter/internal/policy"
	"github.com/tracker-tv/workflow-linter/internal/service"
	"github.com/tracker-tv/workflow-linter/models"
)

const defaultActionsOutput = "actions.json"

func newActionsCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Maintain the approved actions list",
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "", "File to write the list to (default approved_actions_path, or actions.json)")

	maintain := func(cmd *cobra.Command, fn func(ctx context.Context, svc service.ActionsService, approved map[string]models.Action) (map[string]models.Action, []models.ActionChange, error)) error {
		settings, err := a.settings()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		svc := a.newActionsService(a.newGithubClient(a.cfg.GithubToken, a.logger), a.logger)
		updated, changes, err := fn(cmd.Context(), svc, settings.ApprovedActions)
		if err != nil {
			return err
		}

		for _, c := range changes {
			printChange(a.stdout, c)
		}

		path := actionsOutput(output, settings)
		if err := policy.Save(path, updated); err != nil {
			return err
		}
		a.logger.Info("approved actions saved", "path", path, "count", len(updated))
		return nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <action>",
			Short: "Add an action at its latest release",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return maintain(cmd, func(ctx context.Context, svc service.ActionsService, approved map[string]models.Action) (map[string]models.Action, []models.ActionChange, error) {
					updated, change, err := svc.Add(ctx, approved, args[0])
					return updated, []models.ActionChange{change}, err
				})
			},
		},
		&cobra.Command{
			Use:   "update",
			Short: "Move every approved action to its latest release",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return maintain(cmd, func(ctx context.Context, svc service.ActionsService, approved map[string]models.Action) (map[string]models.Action, []models.ActionChange, error) {
					return svc.Update(ctx, approved)
				})
			},
		},
	)

	return cmd
}

func actionsOutput(flag string, settings *config.Settings) string {
	switch {
	case flag != "":
		return flag
	case settings.ApprovedActionsPath != "" && settings.ApprovedActionsPath != config.DefaultActionsPath:
		return settings.ApprovedActionsPath
	default:
		return defaultActionsOutput
	}
}

func printChange(w io.Writer, c models.ActionChange) {
	name := c.After.Name
	if name == "" {
		name = c.Before.Name
	}

	switch c.Status {
	case models.ActionAdded:
		fmt.Fprintf(w, "added    %s %s (%s)\n", name, c.After.Version, c.After.SHA)
	case models.ActionChanged:
		fmt.Fprintf(w, "changed  %s %s -> %s (%s)\n", name, c.Before.Version, c.After.Version, c.After.SHA)
	case models.ActionOK:
		fmt.Fprintf(w, "ok       %s %s\n", name, c.After.Version)
	case models.ActionRemoved:
		fmt.Fprintf(w, "removed  %s: %s\n", name, c.Reason)
	case models.ActionSkipped:
		fmt.Fprintf(w, "skipped  %s: %s\n", name, c.Reason)
	}
}
