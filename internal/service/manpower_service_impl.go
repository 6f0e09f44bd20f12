package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/alexanderramin/crewshift/internal/repository"
	"github.com/google/uuid"
)

type manpowerService struct {
	manpower   repository.ManpowerRepo
	activities repository.ActivityRepo
}

func NewManpowerService(manpower repository.ManpowerRepo, activities repository.ActivityRepo) ManpowerService {
	return &manpowerService{manpower: manpower, activities: activities}
}

func (s *manpowerService) Set(ctx context.Context, activityID string, date calendar.Date, headcount int) (*domain.ManpowerRecord, error) {
	now := time.Now().UTC()
	m := &domain.ManpowerRecord{
		ID:         uuid.New().String(),
		ActivityID: activityID,
		Date:       date,
		Headcount:  headcount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := m.Validate(); err != nil {
		return nil, invalid(err)
	}
	if _, err := s.activities.GetByID(ctx, activityID); err != nil {
		return nil, fmt.Errorf("activity %s: %w", activityID, mapRepoErr(err))
	}
	if err := s.manpower.Upsert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *manpowerService) ListByActivity(ctx context.Context, activityID string) ([]*domain.ManpowerRecord, error) {
	return s.manpower.ListByActivity(ctx, activityID)
}

func (s *manpowerService) ListByProject(ctx context.Context, projectID string) ([]*domain.ManpowerRecord, error) {
	return s.manpower.ListByProject(ctx, projectID)
}

func (s *manpowerService) Delete(ctx context.Context, id string) error {
	return mapRepoErr(s.manpower.Delete(ctx, id))
}
