package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tracker-tv/workflow-linter/models"
)

// WorkflowPattern selects workflow files under a directory.
const WorkflowPattern = "**/*.{yml,yaml}"

type WorkflowService interface {
	// Discover expands files and directories into a sorted, de-duplicated
	// list of workflow files. Files named explicitly are kept as is.
	Discover(paths []string) ([]string, error)
	Load(path string) (*models.Workflow, error)
}

type workflowService struct {
	pattern string
}

func NewWorkflowService() WorkflowService {
	return &workflowService{pattern: WorkflowPattern}
}

func (s *workflowService) Discover(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if !info.IsDir() {
			add(p)
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(p), s.pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching workflows in %s: %w", p, err)
		}
		for _, m := range matches {
			add(filepath.Join(p, filepath.FromSlash(m)))
		}
	}

	sort.Strings(files)
	return files, nil
}

// IsWorkflowFile reports whether path has a workflow file name.
func IsWorkflowFile(path string) bool {
	ok, _ := doublestar.Match("*.{yml,yaml}", filepath.Base(path))
	return ok
}

func (s *workflowService) Load(path string) (*models.Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workflow %s: %w", path, err)
	}
	wf, err := models.ParseWorkflow(data, path)
	if err != nil {
		return nil, fmt.Errorf("parsing workflow %s: %w", path, err)
	}
	return wf, nil
}
