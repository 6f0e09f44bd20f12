package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/crewshift/internal/app"
)

// resolveProjectID resolves a project reference which can be:
//   - A job number (case-insensitive)
//   - A full UUID
//   - A unique UUID prefix
func resolveProjectID(ctx context.Context, a *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	if p, err := a.Projects.GetByJobNumber(ctx, input); err == nil {
		return p.ID, nil
	} else if !errors.Is(err, app.ErrNotFound) {
		return "", err
	}

	projects, err := a.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveCategoryID accepts a category UUID or a case-insensitive category
// name within the project.
func resolveCategoryID(ctx context.Context, a *App, projectID, input string) (string, error) {
	categories, err := a.Categories.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	for _, c := range categories {
		if c.ID == input || strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("category not found in project: %q", input)
}

// resolveActivityID accepts an activity UUID, a unique UUID prefix or, when
// projectID is set, a case-insensitive activity name within the project.
func resolveActivityID(ctx context.Context, a *App, projectID, input string) (string, error) {
	if projectID == "" {
		act, err := a.Activities.GetByID(ctx, input)
		if err != nil {
			return "", fmt.Errorf("activity %q: %w", input, err)
		}
		return act.ID, nil
	}

	activities, err := a.Activities.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, act := range activities {
		if act.ID == input || strings.EqualFold(act.Name, input) {
			return act.ID, nil
		}
		if strings.HasPrefix(act.ID, input) {
			matches = append(matches, act.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("activity not found in project: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("activity ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
