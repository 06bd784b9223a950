package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// ErrNotFound means the executable could not be launched at all.
var ErrNotFound = errors.New("executable not found")

type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Result is the outcome of a process that ran to completion. A non-zero
// ExitCode is not an error.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

type execRunner struct{}

func NewExecRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, fmt.Errorf("running %s: %w", cmd.Name, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return res, fmt.Errorf("%s: %w", cmd.Name, ErrNotFound)
	}

	return res, fmt.Errorf("running %s: %w", cmd.Name, err)
}

// Interpret maps a lint run to a check outcome. Any non-zero exit fails with
// the tool's stdout, or its stderr when stdout is empty.
func Interpret(res Result) (bool, string) {
	if res.ExitCode == 0 {
		return true, ""
	}
	if out := strings.TrimSpace(res.Stdout); out != "" {
		return false, out
	}
	if out := strings.TrimSpace(res.Stderr); out != "" {
		return false, out
	}
	return false, fmt.Sprintf("exited with status %d", res.ExitCode)
}
