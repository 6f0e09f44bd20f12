package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/crewshift/internal/db"
	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/alexanderramin/crewshift/internal/importer"
	"github.com/alexanderramin/crewshift/internal/repository"
)

type importService struct {
	uow  db.UnitOfWork
	conn db.DBTX
}

// NewImportService writes a whole imported schedule inside one
// uow.WithinTx. Exports read straight from conn.
func NewImportService(uow db.UnitOfWork, conn db.DBTX) ImportService {
	return &importService{uow: uow, conn: conn}
}

func (s *importService) ImportProject(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, invalid(fmt.Errorf("loading import file: %w", err))
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, invalid(formatValidationErrors(errs))
	}

	generated, err := importer.Convert(schema)
	if err != nil {
		return nil, invalid(fmt.Errorf("converting import schema: %w", err))
	}
	if err := validateGenerated(generated); err != nil {
		return nil, invalid(err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, generated.Project); err != nil {
			return fmt.Errorf("creating project: %w", err)
		}

		categories := repository.NewSQLiteCategoryRepo(tx)
		for _, c := range generated.Categories {
			if err := categories.Create(ctx, c); err != nil {
				return fmt.Errorf("creating category %q: %w", c.Name, err)
			}
		}

		activities := repository.NewSQLiteActivityRepo(tx)
		for _, a := range generated.Activities {
			if err := activities.Create(ctx, a); err != nil {
				return fmt.Errorf("creating activity %q: %w", a.Name, err)
			}
		}

		manpower := repository.NewSQLiteManpowerRepo(tx)
		for _, m := range generated.Manpower {
			if err := manpower.Create(ctx, m); err != nil {
				return fmt.Errorf("creating manpower on %s: %w", m.Date, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Project:       generated.Project,
		CategoryCount: len(generated.Categories),
		ActivityCount: len(generated.Activities),
		ManpowerCount: len(generated.Manpower),
	}, nil
}

func (s *importService) ExportProject(ctx context.Context, projectID string) (*importer.ImportSchema, error) {
	p, err := repository.NewSQLiteProjectRepo(s.conn).GetByID(ctx, projectID)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	categories, err := repository.NewSQLiteCategoryRepo(s.conn).ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	activityRepo := repository.NewSQLiteActivityRepo(s.conn)
	activities := make(map[string][]*domain.Activity, len(categories))
	for _, c := range categories {
		list, err := activityRepo.ListByCategory(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		activities[c.ID] = list
	}

	records, err := repository.NewSQLiteManpowerRepo(s.conn).ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	manpower := make(map[string][]*domain.ManpowerRecord)
	for _, m := range records {
		manpower[m.ActivityID] = append(manpower[m.ActivityID], m)
	}

	return importer.Export(p, categories, activities, manpower), nil
}

// validateGenerated runs the domain checks the repositories rely on.
func validateGenerated(g *importer.GeneratedSchedule) error {
	if err := g.Project.Validate(); err != nil {
		return err
	}
	for _, c := range g.Categories {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for _, a := range g.Activities {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	for _, m := range g.Manpower {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%s", b.String())
}
