package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tracker-tv/workflow-linter/internal/github"
	"github.com/tracker-tv/workflow-linter/models"
)

// ActionsService maintains the approved-actions allow-list against the
// latest GitHub releases. Input maps are never modified.
type ActionsService interface {
	Add(ctx context.Context, approved map[string]models.Action, name string) (map[string]models.Action, models.ActionChange, error)
	Update(ctx context.Context, approved map[string]models.Action) (map[string]models.Action, []models.ActionChange, error)
}

type actionsService struct {
	gh     github.Client
	logger *slog.Logger
}

func NewActionsService(ghClient github.Client, logger *slog.Logger) ActionsService {
	return &actionsService{gh: ghClient, logger: logger}
}

func (s *actionsService) Add(ctx context.Context, approved map[string]models.Action, name string) (map[string]models.Action, models.ActionChange, error) {
	result := cloneActions(approved)
	before := approved[name]

	change, err := s.resolve(ctx, name, before)
	if err != nil {
		return nil, models.ActionChange{}, err
	}

	switch change.Status {
	case models.ActionAdded, models.ActionChanged, models.ActionOK:
		result[name] = change.After
	case models.ActionRemoved:
		// add never drops an entry that is already on the list
		change.Status = models.ActionSkipped
		change.After = before
	}

	return result, change, nil
}

func (s *actionsService) Update(ctx context.Context, approved map[string]models.Action) (map[string]models.Action, []models.ActionChange, error) {
	names := make([]string, 0, len(approved))
	for name := range approved {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make(map[string]models.Action, len(approved))
	changes := make([]models.ActionChange, 0, len(names))

	for _, name := range names {
		before := approved[name]
		change, err := s.resolve(ctx, name, before)
		if err != nil {
			return nil, nil, err
		}

		switch change.Status {
		case models.ActionRemoved:
		case models.ActionSkipped:
			result[name] = before
		default:
			result[name] = change.After
		}
		changes = append(changes, change)
	}

	return result, changes, nil
}

// resolve looks up the latest release of name and compares it with before.
// A zero before means the action is not on the list yet.
func (s *actionsService) resolve(ctx context.Context, name string, before models.Action) (models.ActionChange, error) {
	change := models.ActionChange{Before: before}
	known := before != models.Action{}

	exists, err := s.gh.RepositoryExists(ctx, name)
	if err != nil {
		return change, fmt.Errorf("checking %s: %w", name, err)
	}
	if !exists {
		s.logger.Warn("action repository not found", "action", name)
		change.Status = models.ActionRemoved
		change.Reason = "repository not found"
		if !known {
			change.Status = models.ActionSkipped
		}
		return change, nil
	}

	latest, err := s.latest(ctx, name)
	switch {
	case errors.Is(err, github.ErrNotFound), errors.Is(err, github.ErrRateLimited):
		s.logger.Warn("cannot resolve latest release", "action", name, "error", err)
		change.Status = models.ActionSkipped
		change.After = before
		change.Reason = err.Error()
		return change, nil
	case err != nil:
		return change, fmt.Errorf("resolving %s: %w", name, err)
	}

	change.After = latest
	switch {
	case !known:
		change.Status = models.ActionAdded
	case latest.Equal(before):
		change.Status = models.ActionOK
	default:
		change.Status = models.ActionChanged
	}
	return change, nil
}

func (s *actionsService) latest(ctx context.Context, name string) (models.Action, error) {
	tag, err := s.gh.LatestReleaseTag(ctx, name)
	if err != nil {
		return models.Action{}, err
	}
	sha, err := s.gh.TagCommitSHA(ctx, name, tag)
	if err != nil {
		return models.Action{}, err
	}
	return models.Action{Name: name, Version: tag, SHA: sha}, nil
}

func cloneActions(in map[string]models.Action) map[string]models.Action {
	out := make(map[string]models.Action, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
