package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/crewshift/internal/app"
	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/db"
	"github.com/alexanderramin/crewshift/internal/repository"
)

// StoreBinder builds a ScheduleStore on top of the connection a unit of
// work hands out.
type StoreBinder func(conn db.DBTX) repository.ScheduleStore

// SQLiteStoreBinder binds the SQLite schedule store.
func SQLiteStoreBinder(conn db.DBTX) repository.ScheduleStore {
	return repository.NewSQLiteScheduleStore(conn)
}

type startDateService struct {
	uow      db.UnitOfWork
	bind     StoreBinder
	cal      *calendar.Calendar
	locks    *keyedMutex
	observer UseCaseObserver
}

// NewStartDateService moves a project's start date and shifts its manpower
// schedule by the same number of working days. Reads and writes of one
// call all go through a single uow.WithinTx; whether that is atomic is up
// to the unit of work.
func NewStartDateService(uow db.UnitOfWork, bind StoreBinder, cal *calendar.Calendar, observers ...UseCaseObserver) StartDateService {
	return &startDateService{
		uow:      uow,
		bind:     bind,
		cal:      cal,
		locks:    newKeyedMutex(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *startDateService) ShiftStartDate(ctx context.Context, req app.ShiftStartDateRequest) (resp *app.ShiftStartDateResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project_id": req.ProjectID,
		"dry_run":    req.DryRun,
	}
	defer func() {
		if resp != nil {
			fields["working_days"] = resp.WorkingDays
			fields["records"] = len(resp.Records)
			fields["applied"] = resp.Applied
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "shift_start_date",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	projectID := strings.TrimSpace(req.ProjectID)
	if projectID == "" {
		return nil, &app.ShiftError{Code: app.ShiftErrInvalidInput, Message: "project id is required"}
	}
	if strings.TrimSpace(req.NewStartDate) == "" {
		return nil, &app.ShiftError{Code: app.ShiftErrInvalidInput, Message: "new start date is required"}
	}
	newStart, perr := calendar.Parse(req.NewStartDate)
	if perr != nil {
		return nil, &app.ShiftError{Code: app.ShiftErrInvalidInput, Message: "new start date", Err: perr}
	}

	unlock := s.locks.Lock(projectID)
	defer unlock()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		store := s.bind(tx)

		plan, err := s.plan(ctx, store, projectID, newStart)
		if err != nil {
			return err
		}
		resp = plan
		if req.DryRun {
			return nil
		}
		return s.apply(ctx, store, plan)
	})
	if err != nil {
		resp = nil
		var shiftErr *app.ShiftError
		if errors.As(err, &shiftErr) {
			return nil, err
		}
		// Commit or rollback failures surface from the unit of work itself.
		return nil, &app.ShiftError{Code: app.ShiftErrPersistence, Message: "finishing shift", Err: err}
	}
	resp.Applied = !req.DryRun
	return resp, nil
}

// plan loads the current schedule and computes every record's new date.
func (s *startDateService) plan(ctx context.Context, store repository.ScheduleStore, projectID string, newStart calendar.Date) (*app.ShiftStartDateResponse, error) {
	oldStart, err := store.GetProjectStartDate(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.ShiftError{Code: app.ShiftErrNotFound, Message: "project " + projectID, Err: err}
		}
		return nil, &app.ShiftError{Code: app.ShiftErrPersistence, Message: "loading project start date", Err: err}
	}

	records, err := store.ListScheduleRecords(ctx, projectID)
	if err != nil {
		return nil, &app.ShiftError{Code: app.ShiftErrPersistence, Message: "loading manpower records", Err: err}
	}

	n := s.cal.WorkingDaysBetween(oldStart, newStart)
	resp := &app.ShiftStartDateResponse{
		ProjectID:    projectID,
		OldStartDate: oldStart,
		NewStartDate: newStart,
		WorkingDays:  n,
		Records:      make([]app.RecordShift, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, app.RecordShift{
			ID:      rec.ID,
			OldDate: rec.Date,
			NewDate: s.cal.Shift(rec.Date, n),
		})
	}
	return resp, nil
}

// apply writes the project start date first, then each record in list order.
func (s *startDateService) apply(ctx context.Context, store repository.ScheduleStore, plan *app.ShiftStartDateResponse) error {
	if err := store.SetProjectStartDate(ctx, plan.ProjectID, plan.NewStartDate); err != nil {
		return &app.ShiftError{Code: app.ShiftErrPersistence, Message: "updating project start date", Err: err}
	}
	for _, rec := range plan.Records {
		if err := ctx.Err(); err != nil {
			return &app.ShiftError{Code: app.ShiftErrPersistence, Message: "shift interrupted", Err: err}
		}
		if err := store.SetScheduleRecordDate(ctx, rec.ID, rec.NewDate); err != nil {
			return &app.ShiftError{
				Code:    app.ShiftErrPersistence,
				Message: fmt.Sprintf("moving manpower record %s to %s", rec.ID, rec.NewDate),
				Err:     err,
			}
		}
	}
	return nil
}
