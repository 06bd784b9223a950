package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tracker-tv/workflow-linter/internal/config"
	"github.com/tracker-tv/workflow-linter/internal/github"
	"github.com/tracker-tv/workflow-linter/internal/logging"
	"github.com/tracker-tv/workflow-linter/internal/service"
)

type app struct {
	stdout io.Writer
	stderr io.Writer

	cfg    *config.Config
	logger *slog.Logger

	settingsPath string
	logLevel     string
	logFormat    string

	newGithubClient   func(token string, logger *slog.Logger) github.Client
	newActionsService func(gh github.Client, logger *slog.Logger) service.ActionsService
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:            stdout,
		stderr:            stderr,
		newGithubClient:   github.New,
		newActionsService: service.NewActionsService,
	}
}

// settings loads the settings file named by --settings or the environment.
func (a *app) settings() (*config.Settings, error) {
	return config.LoadSettings(a.settingsPath)
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow-linter",
		Short: "Lint GitHub Actions workflow files",
		Long: `workflow-linter checks CI workflow files against a set of rules and
maintains the list of approved third-party actions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			flags := cmd.Flags()
			if !flags.Changed("settings") {
				a.settingsPath = cfg.SettingsPath
			}
			if !flags.Changed("log-level") {
				a.logLevel = cfg.LogLevel
			}
			if !flags.Changed("log-format") {
				a.logFormat = cfg.LogFormat
			}

			a.logger = logging.New(a.logFormat, a.logLevel, a.stderr)
			return nil
		},
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	cmd.PersistentFlags().StringVar(&a.settingsPath, "settings", "settings.yaml", "Settings file layered over the built-in defaults")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(
		newLintCmd(a),
		newActionsCmd(a),
		newRulesCmd(a),
		newVersionCmd(a),
	)

	return cmd
}
