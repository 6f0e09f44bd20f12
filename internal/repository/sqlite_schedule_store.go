package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/db"
)

// SQLiteScheduleStore implements ScheduleStore over the projects and
// manpower tables. Bind it to a *sql.Tx to make a shift atomic.
type SQLiteScheduleStore struct {
	db db.DBTX
}

var _ ScheduleStore = (*SQLiteScheduleStore)(nil)

func NewSQLiteScheduleStore(conn db.DBTX) *SQLiteScheduleStore {
	return &SQLiteScheduleStore{db: conn}
}

func (s *SQLiteScheduleStore) GetProjectStartDate(ctx context.Context, projectID string) (calendar.Date, error) {
	p, err := NewSQLiteProjectRepo(s.db).GetByID(ctx, projectID)
	if err != nil {
		return calendar.Date{}, err
	}
	return p.StartDate, nil
}

func (s *SQLiteScheduleStore) SetProjectStartDate(ctx context.Context, projectID string, date calendar.Date) error {
	return NewSQLiteProjectRepo(s.db).UpdateStartDate(ctx, projectID, date)
}

func (s *SQLiteScheduleStore) ListScheduleRecords(ctx context.Context, projectID string) ([]ScheduleRecord, error) {
	rows, err := NewSQLiteManpowerRepo(s.db).ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading schedule records: %w", err)
	}
	out := make([]ScheduleRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, ScheduleRecord{ID: m.ID, Date: m.Date})
	}
	return out, nil
}

func (s *SQLiteScheduleStore) SetScheduleRecordDate(ctx context.Context, recordID string, date calendar.Date) error {
	return NewSQLiteManpowerRepo(s.db).UpdateDate(ctx, recordID, date)
}
