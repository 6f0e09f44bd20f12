package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/alexanderramin/crewshift/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	if err := p.Validate(); err != nil {
		return invalid(err)
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	return p, mapRepoErr(err)
}

func (s *projectService) GetByJobNumber(ctx context.Context, jobNumber string) (*domain.Project, error) {
	p, err := s.projects.GetByJobNumber(ctx, jobNumber)
	return p, mapRepoErr(err)
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

// Update persists every project field. Start date changes made here do not
// move the manpower schedule; use the start-date service for that.
func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return invalid(err)
	}
	p.UpdatedAt = time.Now().UTC()
	return mapRepoErr(s.projects.Update(ctx, p))
}

func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return mapRepoErr(err)
		}
		if p.Status != domain.ProjectArchived {
			return invalid(fmt.Errorf("project %s is %s; archive it first or remove with --force", p.DisplayID(), p.Status))
		}
	}
	return mapRepoErr(s.projects.Delete(ctx, id))
}
