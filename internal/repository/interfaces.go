package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/domain"
)

// ErrNotFound is returned (wrapped) when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ScheduleRecord is the slice of a manpower row the start-date shift
// touches: its identity and its date.
type ScheduleRecord struct {
	ID   string
	Date calendar.Date
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByJobNumber(ctx context.Context, jobNumber string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*domain.Activity, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error
}

type ManpowerRepo interface {
	Create(ctx context.Context, m *domain.ManpowerRecord) error
	// Upsert inserts the record or replaces the headcount of the existing
	// record for the same activity and date.
	Upsert(ctx context.Context, m *domain.ManpowerRecord) error
	GetByID(ctx context.Context, id string) (*domain.ManpowerRecord, error)
	ListByActivity(ctx context.Context, activityID string) ([]*domain.ManpowerRecord, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.ManpowerRecord, error)
	UpdateDate(ctx context.Context, id string, date calendar.Date) error
	Delete(ctx context.Context, id string) error
}

// ScheduleStore is everything the start-date shift reads and writes.
type ScheduleStore interface {
	GetProjectStartDate(ctx context.Context, projectID string) (calendar.Date, error)
	SetProjectStartDate(ctx context.Context, projectID string, date calendar.Date) error
	ListScheduleRecords(ctx context.Context, projectID string) ([]ScheduleRecord, error)
	SetScheduleRecordDate(ctx context.Context, recordID string, date calendar.Date) error
}
