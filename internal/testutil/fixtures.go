package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/google/uuid"
)

var testJobNumberCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithStartDate(d string) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = calendar.MustParse(d)
	}
}

func WithEndDate(d string) ProjectOption {
	return func(p *domain.Project) {
		end := calendar.MustParse(d)
		p.EndDate = &end
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithJobNumber(n string) ProjectOption {
	return func(p *domain.Project) {
		p.JobNumber = n
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		JobNumber: fmt.Sprintf("J-%04d", testJobNumberCounter.Add(1)),
		StartDate: calendar.MustParse("2025-01-06"),
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Category options
type CategoryOption func(*domain.Category)

func WithCategorySortOrder(n int) CategoryOption {
	return func(c *domain.Category) {
		c.SortOrder = n
	}
}

func NewTestCategory(projectID, name string, opts ...CategoryOption) *domain.Category {
	now := time.Now().UTC()
	c := &domain.Category{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithCostCode(code string) ActivityOption {
	return func(a *domain.Activity) {
		a.CostCode = code
	}
}

func WithEstimatedHours(h int) ActivityOption {
	return func(a *domain.Activity) {
		a.EstimatedHours = &h
	}
}

func WithActivitySortOrder(n int) ActivityOption {
	return func(a *domain.Activity) {
		a.SortOrder = n
	}
}

func NewTestActivity(categoryID, name string, opts ...ActivityOption) *domain.Activity {
	now := time.Now().UTC()
	a := &domain.Activity{
		ID:         uuid.New().String(),
		CategoryID: categoryID,
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func NewTestManpower(activityID, date string, headcount int) *domain.ManpowerRecord {
	now := time.Now().UTC()
	return &domain.ManpowerRecord{
		ID:         uuid.New().String(),
		ActivityID: activityID,
		Date:       calendar.MustParse(date),
		Headcount:  headcount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
