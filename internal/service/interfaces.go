package service

import (
	"context"

	"github.com/alexanderramin/crewshift/internal/app"
	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/alexanderramin/crewshift/internal/importer"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByJobNumber(ctx context.Context, jobNumber string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string, force bool) error
}

type CategoryService interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type ActivityService interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*domain.Activity, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error
}

type ManpowerService interface {
	// Set records the headcount for an activity on a date, replacing any
	// existing entry for that cell.
	Set(ctx context.Context, activityID string, date calendar.Date, headcount int) (*domain.ManpowerRecord, error)
	ListByActivity(ctx context.Context, activityID string) ([]*domain.ManpowerRecord, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.ManpowerRecord, error)
	Delete(ctx context.Context, id string) error
}

type StartDateService interface {
	app.ShiftStartDateUseCase
}

// ImportResult holds the outcome of a project import.
type ImportResult struct {
	Project       *domain.Project
	CategoryCount int
	ActivityCount int
	ManpowerCount int
}

type ImportService interface {
	ImportProject(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
	ExportProject(ctx context.Context, projectID string) (*importer.ImportSchema, error)
}
