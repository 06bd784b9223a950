package rules

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tracker-tv/workflow-linter/internal/tools"
	"github.com/tracker-tv/workflow-linter/models"
)

const (
	actionlintID = "run_actionlint"
	zizmorID     = "run_zizmor"
)

var (
	ErrToolVersionMissing = errors.New("tool version is not configured")
	ErrNoFilename         = errors.New("workflow has no source file")
)

// toolRule runs an external linter against the workflow's source file.
type toolRule struct {
	base
	tool     tools.Tool
	version  string
	timeout  time.Duration
	resolver tools.Resolver
	runner   tools.Runner
	// args builds the lint invocation. The returned cleanup, if any, runs
	// after the tool exits.
	args func(ctx context.Context, filename string) ([]string, func())
}

func (r *toolRule) Check(ctx context.Context, node models.Node) (bool, string, error) {
	wf, ok := node.(*models.Workflow)
	if !ok {
		return r.incompatible(node)
	}
	if r.version == "" {
		return false, "", ErrToolVersionMissing
	}
	if wf.Filename == "" {
		return false, "", ErrNoFilename
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd, err := r.resolver.Resolve(ctx, r.tool, r.version)
	if err != nil {
		return false, err.Error(), nil
	}

	args, cleanup := r.args(ctx, wf.Filename)
	if cleanup != nil {
		defer cleanup()
	}

	res, err := r.runner.Run(ctx, tools.Command{Name: cmd, Args: args})
	if err != nil {
		return false, "running " + r.tool.Name + ": " + err.Error(), nil
	}

	passed, message := tools.Interpret(res)
	return passed, message, nil
}

func newActionlint(env Env, level Level) Rule {
	return &toolRule{
		base:     base{id: actionlintID, kinds: models.KindWorkflow, level: level},
		tool:     tools.Actionlint,
		version:  env.Settings.ActionlintVersion,
		timeout:  env.Settings.ToolTimeout,
		resolver: env.Resolver,
		runner:   env.Runner,
		args: func(_ context.Context, filename string) ([]string, func()) {
			return []string{filename}, nil
		},
	}
}

func newZizmor(env Env, level Level) Rule {
	configURL := env.Settings.ZizmorConfigURL
	client := env.HTTPClient
	log := env.logger()

	return &toolRule{
		base:     base{id: zizmorID, kinds: models.KindWorkflow, level: level},
		tool:     tools.Zizmor,
		version:  env.Settings.ZizmorVersion,
		timeout:  env.Settings.ToolTimeout,
		resolver: env.Resolver,
		runner:   env.Runner,
		args: func(ctx context.Context, filename string) ([]string, func()) {
			args := []string{"--format", "plain"}
			if configURL == "" {
				return append(args, filename), nil
			}

			path, cleanup, err := tools.DownloadTemp(ctx, client, configURL, "zizmor-*.yml")
			if err != nil {
				log.Warn("running zizmor without config", slog.String("url", configURL), slog.Any("error", err))
				return append(args, filename), nil
			}
			return append(args, "--config", path, filename), cleanup
		},
	}
}
