package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrVersionMismatch     = errors.New("installed version does not match")
)

// InstallError reports a failed acquisition and which path was taken.
type InstallError struct {
	Tool   string
	Method Method
	Err    error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing %s via %s: %v", e.Tool, e.Method, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Resolver finds a runnable command for a pinned tool version, installing it
// when needed.
type Resolver interface {
	Resolve(ctx context.Context, tool Tool, version string) (string, error)
}

type state int

const (
	stateProbe state = iota
	stateLocalCheck
	stateInstall
	stateVerify
	stateReady
)

func (s state) String() string {
	return [...]string{"probe", "local-check", "install", "verify", "ready"}[s]
}

type resolver struct {
	runner Runner
	http   *http.Client
	goos   string
	dir    string
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string]string
}

// NewResolver returns a Resolver that installs into dir. Results are cached
// for the lifetime of the Resolver and resolution is serialised.
func NewResolver(runner Runner, httpClient *http.Client, dir string, logger *slog.Logger) Resolver {
	return &resolver{
		runner: runner,
		http:   httpClient,
		goos:   runtime.GOOS,
		dir:    dir,
		logger: logger,
		cache:  make(map[string]string),
	}
}

func (r *resolver) Resolve(ctx context.Context, tool Tool, version string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := tool.Name + "@" + version
	if cmd, ok := r.cache[key]; ok {
		return cmd, nil
	}

	local := localPath(r.dir, tool.binary(r.goos))
	var cmd string

	for st := stateProbe; ; {
		r.logger.Debug("resolving tool", "tool", tool.Name, "version", version, "state", st.String())

		switch st {
		case stateProbe:
			ok, err := r.probe(ctx, tool.Name, version)
			switch {
			case errors.Is(err, ErrNotFound):
				st = stateLocalCheck
			case err != nil:
				return "", err
			case ok:
				cmd, st = tool.Name, stateReady
			default:
				st = stateInstall
			}

		case stateLocalCheck:
			ok, err := r.probe(ctx, local, version)
			switch {
			case errors.Is(err, ErrNotFound):
				st = stateInstall
			case err != nil:
				return "", err
			case ok:
				cmd, st = local, stateReady
			default:
				st = stateInstall
			}

		case stateInstall:
			plan, ok := tool.Plans[r.goos]
			if !ok {
				return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, r.goos)
			}
			r.logger.Info("installing tool", "tool", tool.Name, "version", version, "method", string(plan.Method))
			if err := r.install(ctx, tool, plan, version); err != nil {
				return "", err
			}
			cmd = tool.Name
			if plan.Method == MethodScript {
				cmd = local
			}
			st = stateVerify

		case stateVerify:
			ok, err := r.probe(ctx, cmd, version)
			if err != nil {
				return "", fmt.Errorf("verifying %s: %w", tool.Name, err)
			}
			if !ok {
				return "", fmt.Errorf("%s %s: %w", tool.Name, version, ErrVersionMismatch)
			}
			st = stateReady

		case stateReady:
			r.cache[key] = cmd
			return cmd, nil
		}
	}
}

// localPath joins dir and binary, adding a "./" prefix when the result
// would otherwise be a bare name that exec looks up on PATH.
func localPath(dir, binary string) string {
	p := filepath.Join(dir, binary)
	if filepath.IsAbs(p) || strings.ContainsRune(p, filepath.Separator) {
		return p
	}
	return "." + string(filepath.Separator) + p
}

// probe runs `<cmd> --version` and reports whether the required version is
// what the binary prints.
func (r *resolver) probe(ctx context.Context, cmd, version string) (bool, error) {
	res, err := r.runner.Run(ctx, Command{Name: cmd, Args: []string{"--version"}})
	if err != nil {
		return false, err
	}
	if res.ExitCode != 0 {
		return false, nil
	}
	return versionMatches(res.Stdout, version), nil
}

// versionMatches takes the last field of the first non-empty line, so both
// "1.7.7" and "zizmor 1.5.2" parse.
func versionMatches(output, version string) bool {
	want := strings.TrimPrefix(version, "v")
	if want == "" {
		return false
	}
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		return strings.Contains(fields[len(fields)-1], want)
	}
	return false
}

func (r *resolver) install(ctx context.Context, tool Tool, plan InstallPlan, version string) error {
	fail := func(err error) error {
		return &InstallError{Tool: tool.Name, Method: plan.Method, Err: err}
	}

	var cmd Command
	switch plan.Method {
	case MethodScript:
		script, cleanup, err := DownloadTemp(ctx, r.http, plan.ScriptURL, tool.Name+"-install-*.bash")
		if err != nil {
			return fail(fmt.Errorf("downloading %s: %w", plan.ScriptURL, err))
		}
		defer cleanup()
		cmd = Command{Name: "bash", Args: []string{script, strings.TrimPrefix(version, "v"), r.dir}}
	case MethodPackage:
		if len(plan.Command) == 0 {
			return fail(errors.New("no install command"))
		}
		cmd = plan.command(version, r.dir)
	default:
		return fail(fmt.Errorf("unknown method %q", plan.Method))
	}

	res, err := r.runner.Run(ctx, cmd)
	if err != nil {
		return fail(err)
	}
	if res.ExitCode != 0 {
		out := strings.TrimSpace(res.Stderr)
		if out == "" {
			out = strings.TrimSpace(res.Stdout)
		}
		return fail(fmt.Errorf("%s exited with status %d: %s", cmd.Name, res.ExitCode, out))
	}
	return nil
}
