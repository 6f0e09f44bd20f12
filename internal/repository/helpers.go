package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/db"
)

// parseNullableDate parses a sql.NullString into a *calendar.Date. NULL and
// empty values give nil; anything else must be a valid date.
func parseNullableDate(s sql.NullString) (*calendar.Date, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	d, err := calendar.Parse(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// nullableDateToString converts a *calendar.Date to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableDateToString(d *calendar.Date) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}

// nullableStringToValue stores "" as SQL NULL.
func nullableStringToValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// nullableIntToValue converts a *int to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the int value.
func nullableIntToValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func parseNullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func parseTimestamps(createdAtStr, updatedAtStr string) (createdAt, updatedAt time.Time, err error) {
	createdAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing created_at: %w", err)
	}
	updatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return createdAt, updatedAt, nil
}

// execAffectingOne runs an UPDATE/DELETE and reports ErrNotFound when no
// row matched.
func execAffectingOne(ctx context.Context, conn db.DBTX, what, query string, args ...any) error {
	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: reading affected rows: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
