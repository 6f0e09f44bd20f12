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

const manpowerColumns = `id, activity_id, date, headcount, created_at, updated_at`

const manpowerColumnsAliased = `m.id, m.activity_id, m.date, m.headcount, m.created_at, m.updated_at`

// SQLiteManpowerRepo implements ManpowerRepo using a SQLite database.
//
// There is deliberately no unique key on (activity_id, date): a start-date
// shift can move a weekend entry and the following Monday entry onto the
// same working day.
type SQLiteManpowerRepo struct {
	db db.DBTX
}

func NewSQLiteManpowerRepo(conn db.DBTX) *SQLiteManpowerRepo {
	return &SQLiteManpowerRepo{db: conn}
}

// Create inserts the record as-is, even when the activity already has an
// entry on that date.
func (r *SQLiteManpowerRepo) Create(ctx context.Context, m *domain.ManpowerRecord) error {
	query := `INSERT INTO manpower (` + manpowerColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ActivityID,
		m.Date.String(),
		m.Headcount,
		m.CreatedAt.UTC().Format(time.RFC3339),
		m.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting manpower: %w", err)
	}
	return nil
}

func (r *SQLiteManpowerRepo) Upsert(ctx context.Context, m *domain.ManpowerRecord) error {
	var existingID, createdAtStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM manpower WHERE activity_id = ? AND date = ? ORDER BY created_at, id LIMIT 1`,
		m.ActivityID, m.Date.String(),
	).Scan(&existingID, &createdAtStr)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return r.Create(ctx, m)
	case err != nil:
		return fmt.Errorf("looking up manpower: %w", err)
	}

	m.ID = existingID
	if created, perr := time.Parse(time.RFC3339, createdAtStr); perr == nil {
		m.CreatedAt = created
	}
	return execAffectingOne(ctx, r.db, "updating manpower headcount",
		`UPDATE manpower SET headcount = ?, updated_at = ? WHERE id = ?`,
		m.Headcount, m.UpdatedAt.UTC().Format(time.RFC3339), m.ID,
	)
}

func (r *SQLiteManpowerRepo) GetByID(ctx context.Context, id string) (*domain.ManpowerRecord, error) {
	query := `SELECT ` + manpowerColumns + ` FROM manpower WHERE id = ?`
	return r.scanManpower(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteManpowerRepo) ListByActivity(ctx context.Context, activityID string) ([]*domain.ManpowerRecord, error) {
	query := `SELECT ` + manpowerColumns + ` FROM manpower WHERE activity_id = ? ORDER BY date, id`
	return r.list(ctx, query, activityID)
}

// ListByProject returns every manpower record reachable from the project
// through its categories and activities.
func (r *SQLiteManpowerRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.ManpowerRecord, error) {
	query := `SELECT ` + manpowerColumnsAliased + `
		FROM manpower m
		JOIN activities a ON m.activity_id = a.id
		JOIN categories c ON a.category_id = c.id
		WHERE c.project_id = ?
		ORDER BY m.date, m.id`
	return r.list(ctx, query, projectID)
}

func (r *SQLiteManpowerRepo) UpdateDate(ctx context.Context, id string, date calendar.Date) error {
	return execAffectingOne(ctx, r.db, "updating manpower date",
		`UPDATE manpower SET date = ?, updated_at = ? WHERE id = ?`,
		date.String(), nowUTC(), id,
	)
}

func (r *SQLiteManpowerRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, "deleting manpower", `DELETE FROM manpower WHERE id = ?`, id)
}

func (r *SQLiteManpowerRepo) list(ctx context.Context, query string, args ...any) ([]*domain.ManpowerRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing manpower: %w", err)
	}
	defer rows.Close()

	var out []*domain.ManpowerRecord
	for rows.Next() {
		m, err := r.scanManpower(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating manpower: %w", err)
	}
	return out, nil
}

func (r *SQLiteManpowerRepo) scanManpower(row scanner) (*domain.ManpowerRecord, error) {
	var m domain.ManpowerRecord
	var dateStr, createdAtStr, updatedAtStr string

	err := row.Scan(&m.ID, &m.ActivityID, &dateStr, &m.Headcount, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("manpower record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning manpower: %w", err)
	}

	if m.Date, err = calendar.Parse(dateStr); err != nil {
		return nil, fmt.Errorf("parsing manpower date: %w", err)
	}
	if m.CreatedAt, m.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &m, nil
}
