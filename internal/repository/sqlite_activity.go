package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/crewshift/internal/db"
	"github.com/alexanderramin/crewshift/internal/domain"
)

// activityColumns is the canonical SELECT column list for activities.
const activityColumns = `id, category_id, name, cost_code, sort_order, estimated_hours, notes, completed, created_at, updated_at`

// activityColumnsAliased is the same column list prefixed with "a." for join queries.
const activityColumnsAliased = `a.id, a.category_id, a.name, a.cost_code, a.sort_order, a.estimated_hours, a.notes, a.completed,
		a.created_at, a.updated_at`

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (` + activityColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.CategoryID,
		a.Name,
		a.CostCode,
		a.SortOrder,
		nullableIntToValue(a.EstimatedHours),
		a.Notes,
		boolToInt(a.Completed),
		a.CreatedAt.UTC().Format(time.RFC3339),
		a.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	return r.scanActivity(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteActivityRepo) ListByCategory(ctx context.Context, categoryID string) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE category_id = ? ORDER BY sort_order, created_at`
	return r.list(ctx, query, categoryID)
}

// ListByProject returns all activities of a project, ordered by category
// then activity sort order.
func (r *SQLiteActivityRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumnsAliased + `
		FROM activities a
		JOIN categories c ON a.category_id = c.id
		WHERE c.project_id = ?
		ORDER BY c.sort_order, c.created_at, a.sort_order, a.created_at`
	return r.list(ctx, query, projectID)
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities SET name = ?, cost_code = ?, sort_order = ?, estimated_hours = ?, notes = ?, completed = ?, updated_at = ?
		WHERE id = ?`
	return execAffectingOne(ctx, r.db, "updating activity", query,
		a.Name,
		a.CostCode,
		a.SortOrder,
		nullableIntToValue(a.EstimatedHours),
		a.Notes,
		boolToInt(a.Completed),
		a.UpdatedAt.UTC().Format(time.RFC3339),
		a.ID,
	)
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, "deleting activity", `DELETE FROM activities WHERE id = ?`, id)
}

func (r *SQLiteActivityRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var out []*domain.Activity
	for rows.Next() {
		a, err := r.scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return out, nil
}

func (r *SQLiteActivityRepo) scanActivity(row scanner) (*domain.Activity, error) {
	var a domain.Activity
	var hours sql.NullInt64
	var completed int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&a.ID, &a.CategoryID, &a.Name, &a.CostCode, &a.SortOrder,
		&hours, &a.Notes, &completed,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	a.EstimatedHours = parseNullableInt(hours)
	a.Completed = intToBool(completed)
	if a.CreatedAt, a.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &a, nil
}
