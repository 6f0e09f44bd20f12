package domain

import (
	"fmt"
	"time"
)

// Category groups activities within a project (e.g. "Sitework", "Concrete").
type Category struct {
	ID        string
	ProjectID string
	Name      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Category) Validate() error {
	if c.ProjectID == "" {
		return fmt.Errorf("category project is required")
	}
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}
	return nil
}

// Activity is a schedulable line of work inside a category.
type Activity struct {
	ID             string
	CategoryID     string
	Name           string
	CostCode       string
	SortOrder      int
	EstimatedHours *int
	Notes          string
	Completed      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (a *Activity) Validate() error {
	if a.CategoryID == "" {
		return fmt.Errorf("activity category is required")
	}
	if a.Name == "" {
		return fmt.Errorf("activity name is required")
	}
	if a.EstimatedHours != nil && *a.EstimatedHours < 0 {
		return fmt.Errorf("estimated hours must be >= 0, got %d", *a.EstimatedHours)
	}
	return nil
}
