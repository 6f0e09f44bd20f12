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

const categoryColumns = `id, project_id, name, sort_order, created_at, updated_at`

// SQLiteCategoryRepo implements CategoryRepo using a SQLite database.
type SQLiteCategoryRepo struct {
	db db.DBTX
}

func NewSQLiteCategoryRepo(conn db.DBTX) *SQLiteCategoryRepo {
	return &SQLiteCategoryRepo{db: conn}
}

func (r *SQLiteCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (` + categoryColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.ProjectID,
		c.Name,
		c.SortOrder,
		c.CreatedAt.UTC().Format(time.RFC3339),
		c.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (r *SQLiteCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`
	return r.scanCategory(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteCategoryRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE project_id = ? ORDER BY sort_order, created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var out []*domain.Category
	for rows.Next() {
		c, err := r.scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return out, nil
}

func (r *SQLiteCategoryRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, "deleting category", `DELETE FROM categories WHERE id = ?`, id)
}

func (r *SQLiteCategoryRepo) scanCategory(row scanner) (*domain.Category, error) {
	var c domain.Category
	var createdAtStr, updatedAtStr string
	err := row.Scan(&c.ID, &c.ProjectID, &c.Name, &c.SortOrder, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning category: %w", err)
	}
	if c.CreatedAt, c.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &c, nil
}
