package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/db"
	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/alexanderramin/crewshift/internal/repository"
	"github.com/alexanderramin/crewshift/internal/testutil"
	"github.com/stretchr/testify/require"
)

// fakeScheduleStore is an in-memory ScheduleStore that counts every call.
// It has no transactions: writes land immediately, like auto-commit.
type fakeScheduleStore struct {
	mu      sync.Mutex
	starts  map[string]calendar.Date
	records map[string][]repository.ScheduleRecord
	dates   map[string]calendar.Date

	reads  int
	writes []string

	// failRecordWrite makes the Nth SetScheduleRecordDate call fail (1-based).
	failRecordWrite int
	recordWrites    int
}

var errInjected = errors.New("injected write failure")

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{
		starts:  make(map[string]calendar.Date),
		records: make(map[string][]repository.ScheduleRecord),
		dates:   make(map[string]calendar.Date),
	}
}

func (f *fakeScheduleStore) addProject(id, start string, recordDates ...string) []string {
	f.starts[id] = calendar.MustParse(start)
	var ids []string
	for i, d := range recordDates {
		recID := id + "-r" + string(rune('a'+i))
		f.records[id] = append(f.records[id], repository.ScheduleRecord{ID: recID, Date: calendar.MustParse(d)})
		f.dates[recID] = calendar.MustParse(d)
		ids = append(ids, recID)
	}
	return ids
}

func (f *fakeScheduleStore) GetProjectStartDate(_ context.Context, projectID string) (calendar.Date, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	d, ok := f.starts[projectID]
	if !ok {
		return calendar.Date{}, repository.ErrNotFound
	}
	return d, nil
}

func (f *fakeScheduleStore) SetProjectStartDate(_ context.Context, projectID string, date calendar.Date) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, "project:"+projectID+"="+date.String())
	f.starts[projectID] = date
	return nil
}

func (f *fakeScheduleStore) ListScheduleRecords(_ context.Context, projectID string) ([]repository.ScheduleRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	out := make([]repository.ScheduleRecord, 0, len(f.records[projectID]))
	for _, r := range f.records[projectID] {
		out = append(out, repository.ScheduleRecord{ID: r.ID, Date: f.dates[r.ID]})
	}
	return out, nil
}

func (f *fakeScheduleStore) SetScheduleRecordDate(_ context.Context, recordID string, date calendar.Date) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recordWrites++
	if f.failRecordWrite > 0 && f.recordWrites == f.failRecordWrite {
		return errInjected
	}
	f.writes = append(f.writes, "record:"+recordID+"="+date.String())
	f.dates[recordID] = date
	return nil
}

func (f *fakeScheduleStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads + len(f.writes)
}

func (f *fakeScheduleStore) binder() StoreBinder {
	return func(db.DBTX) repository.ScheduleStore { return f }
}

// passthroughUoW runs the callback without a database.
type passthroughUoW struct{}

func (passthroughUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

// recordingObserver keeps every event it sees.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

// seededSchedule is a project with one category, one activity and manpower
// on the given dates, stored in a real SQLite database.
type seededSchedule struct {
	Project  *domain.Project
	Activity *domain.Activity
	Records  []*domain.ManpowerRecord
}

func seedSchedule(t *testing.T, database *sql.DB, start string, dates ...string) seededSchedule {
	t.Helper()
	ctx := context.Background()

	proj := testutil.NewTestProject("Site", testutil.WithStartDate(start))
	require.NoError(t, repository.NewSQLiteProjectRepo(database).Create(ctx, proj))
	cat := testutil.NewTestCategory(proj.ID, "Concrete")
	require.NoError(t, repository.NewSQLiteCategoryRepo(database).Create(ctx, cat))
	act := testutil.NewTestActivity(cat.ID, "Forms")
	require.NoError(t, repository.NewSQLiteActivityRepo(database).Create(ctx, act))

	mp := repository.NewSQLiteManpowerRepo(database)
	var recs []*domain.ManpowerRecord
	for i, d := range dates {
		rec := testutil.NewTestManpower(act.ID, d, i+1)
		require.NoError(t, mp.Upsert(ctx, rec))
		recs = append(recs, rec)
	}
	return seededSchedule{Project: proj, Activity: act, Records: recs}
}

func recordDate(t *testing.T, database *sql.DB, id string) calendar.Date {
	t.Helper()
	rec, err := repository.NewSQLiteManpowerRepo(database).GetByID(context.Background(), id)
	require.NoError(t, err)
	return rec.Date
}

func projectStart(t *testing.T, database *sql.DB, id string) calendar.Date {
	t.Helper()
	p, err := repository.NewSQLiteProjectRepo(database).GetByID(context.Background(), id)
	require.NoError(t, err)
	return p.StartDate
}
