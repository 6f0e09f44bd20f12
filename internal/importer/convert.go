package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// GeneratedSchedule is a converted import, ready to persist in order:
// project, categories, activities, manpower.
type GeneratedSchedule struct {
	Project    *domain.Project
	Categories []*domain.Category
	Activities []*domain.Activity
	Manpower   []*domain.ManpowerRecord
}

// Convert transforms a validated ImportSchema into domain objects with fresh
// IDs. Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*GeneratedSchedule, error) {
	now := time.Now().UTC()

	start, err := calendar.Parse(schema.Project.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	var end *calendar.Date
	if schema.Project.EndDate != nil {
		d, err := calendar.Parse(*schema.Project.EndDate)
		if err != nil {
			return nil, fmt.Errorf("parsing end_date: %w", err)
		}
		end = &d
	}

	project := &domain.Project{
		ID:          uuid.New().String(),
		JobNumber:   strings.ToUpper(schema.Project.JobNumber),
		Name:        schema.Project.Name,
		Description: schema.Project.Description,
		StartDate:   start,
		EndDate:     end,
		Status:      lo.CoalesceOrEmpty(domain.ProjectStatus(schema.Project.Status), domain.ProjectActive),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	refMap := make(map[string]string) // ref -> UUID

	categories := make([]*domain.Category, 0, len(schema.Categories))
	for _, c := range schema.Categories {
		id := uuid.New().String()
		refMap["category:"+c.Ref] = id
		categories = append(categories, &domain.Category{
			ID:        id,
			ProjectID: project.ID,
			Name:      c.Name,
			SortOrder: c.Order,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	activities := make([]*domain.Activity, 0, len(schema.Activities))
	for _, a := range schema.Activities {
		categoryID, ok := refMap["category:"+a.CategoryRef]
		if !ok {
			return nil, fmt.Errorf("category_ref %q not found for activity %q", a.CategoryRef, a.Ref)
		}
		id := uuid.New().String()
		refMap["activity:"+a.Ref] = id
		activities = append(activities, &domain.Activity{
			ID:             id,
			CategoryID:     categoryID,
			Name:           a.Name,
			CostCode:       a.CostCode,
			SortOrder:      a.Order,
			EstimatedHours: a.EstimatedHours,
			Notes:          a.Notes,
			Completed:      a.Completed,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	manpower := make([]*domain.ManpowerRecord, 0, len(schema.Manpower))
	for _, m := range schema.Manpower {
		activityID, ok := refMap["activity:"+m.ActivityRef]
		if !ok {
			return nil, fmt.Errorf("activity_ref %q not found", m.ActivityRef)
		}
		date, err := calendar.Parse(m.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing manpower date: %w", err)
		}
		manpower = append(manpower, &domain.ManpowerRecord{
			ID:         uuid.New().String(),
			ActivityID: activityID,
			Date:       date,
			Headcount:  m.Crew,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	return &GeneratedSchedule{
		Project:    project,
		Categories: categories,
		Activities: activities,
		Manpower:   manpower,
	}, nil
}
