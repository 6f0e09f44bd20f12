package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/db"
	"github.com/alexanderramin/crewshift/internal/domain"
)

const projectColumns = `id, name, description, job_number, start_date, end_date, status, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		nullableStringToValue(p.JobNumber),
		p.StartDate.String(),
		nullableDateToString(p.EndDate),
		string(p.Status),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProjectRepo) GetByJobNumber(ctx context.Context, jobNumber string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE UPPER(job_number) = UPPER(?)`
	return r.scanProject(r.db.QueryRowContext(ctx, query, jobNumber))
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if !includeArchived {
		query += ` WHERE status != 'archived'`
	}
	query += ` ORDER BY start_date, created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, description = ?, job_number = ?, start_date = ?, end_date = ?, status = ?, updated_at = ?
		WHERE id = ?`
	return execAffectingOne(ctx, r.db, "updating project", query,
		p.Name,
		p.Description,
		nullableStringToValue(p.JobNumber),
		p.StartDate.String(),
		nullableDateToString(p.EndDate),
		string(p.Status),
		p.UpdatedAt.UTC().Format(time.RFC3339),
		p.ID,
	)
}

// UpdateStartDate writes only the start date, leaving the other columns alone.
func (r *SQLiteProjectRepo) UpdateStartDate(ctx context.Context, id string, start calendar.Date) error {
	query := `UPDATE projects SET start_date = ?, updated_at = ? WHERE id = ?`
	return execAffectingOne(ctx, r.db, "updating project start date", query, start.String(), nowUTC(), id)
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	return execAffectingOne(ctx, r.db, "deleting project", query, id)
}

func (r *SQLiteProjectRepo) scanProject(row scanner) (*domain.Project, error) {
	var p domain.Project
	var jobNumber, endDateStr sql.NullString
	var startDateStr, statusStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &jobNumber,
		&startDateStr, &endDateStr, &statusStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.JobNumber = jobNumber.String
	p.Status = domain.ProjectStatus(statusStr)

	if p.StartDate, err = calendar.Parse(startDateStr); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if p.EndDate, err = parseNullableDate(endDateStr); err != nil {
		return nil, fmt.Errorf("parsing end_date: %w", err)
	}
	if p.CreatedAt, p.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &p, nil
}
