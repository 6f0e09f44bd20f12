package service

import (
	"context"
	"time"

	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/alexanderramin/crewshift/internal/repository"
	"github.com/google/uuid"
)

type categoryService struct {
	categories repository.CategoryRepo
}

func NewCategoryService(categories repository.CategoryRepo) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) Create(ctx context.Context, c *domain.Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := c.Validate(); err != nil {
		return invalid(err)
	}
	return mapRepoErr(s.categories.Create(ctx, c))
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	return c, mapRepoErr(err)
}

func (s *categoryService) ListByProject(ctx context.Context, projectID string) ([]*domain.Category, error) {
	return s.categories.ListByProject(ctx, projectID)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return mapRepoErr(s.categories.Delete(ctx, id))
}

type activityService struct {
	activities repository.ActivityRepo
}

func NewActivityService(activities repository.ActivityRepo) ActivityService {
	return &activityService{activities: activities}
}

func (s *activityService) Create(ctx context.Context, a *domain.Activity) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := a.Validate(); err != nil {
		return invalid(err)
	}
	return mapRepoErr(s.activities.Create(ctx, a))
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	return a, mapRepoErr(err)
}

func (s *activityService) ListByCategory(ctx context.Context, categoryID string) ([]*domain.Activity, error) {
	return s.activities.ListByCategory(ctx, categoryID)
}

func (s *activityService) ListByProject(ctx context.Context, projectID string) ([]*domain.Activity, error) {
	return s.activities.ListByProject(ctx, projectID)
}

func (s *activityService) Update(ctx context.Context, a *domain.Activity) error {
	if err := a.Validate(); err != nil {
		return invalid(err)
	}
	a.UpdatedAt = time.Now().UTC()
	return mapRepoErr(s.activities.Update(ctx, a))
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	return mapRepoErr(s.activities.Delete(ctx, id))
}
