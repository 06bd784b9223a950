package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tracker-tv/workflow-linter/internal/orchestrator"
	"github.com/tracker-tv/workflow-linter/internal/rules"
)

var ErrUnknownFormat = errors.New("unknown output format")

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Writer interface {
	Write(w io.Writer, r orchestrator.Report) error
}

func New(format string, color bool) (Writer, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return &textWriter{color: color}, nil
	case FormatJSON:
		return &jsonWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

type textWriter struct {
	color bool
}

func (t *textWriter) Write(w io.Writer, r orchestrator.Report) error {
	var b strings.Builder
	for _, file := range r.Files {
		if len(file.Findings) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s\n", file.Path)
		for _, f := range file.Findings {
			fmt.Fprintf(&b, "  %s [%s] %s\n", t.render(f), f.RuleID, f.Location)
		}
	}
	fmt.Fprintf(&b, "%d files linted: %s\n", len(r.Files), summary(r.Outcome))

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *textWriter) render(f rules.Finding) string {
	if t.color {
		return f.String()
	}
	return f.Plain()
}

func summary(o rules.Outcome) string {
	if o.Errors+o.Warnings+o.Notices == 0 {
		return "no findings"
	}
	return fmt.Sprintf("%d error(s), %d warning(s)", o.Errors, o.Warnings)
}

type jsonWriter struct{}

func (j *jsonWriter) Write(w io.Writer, r orchestrator.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
