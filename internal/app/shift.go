package app

import "github.com/alexanderramin/crewshift/internal/calendar"

type ShiftStartDateRequest struct {
	ProjectID    string
	NewStartDate string // YYYY-MM-DD; RFC 3339 timestamps are truncated to their UTC day
	DryRun       bool
}

func NewShiftStartDateRequest(projectID, newStartDate string) ShiftStartDateRequest {
	return ShiftStartDateRequest{
		ProjectID:    projectID,
		NewStartDate: newStartDate,
	}
}

// RecordShift is the before/after date of one manpower record.
type RecordShift struct {
	ID      string
	OldDate calendar.Date
	NewDate calendar.Date
}

type ShiftStartDateResponse struct {
	ProjectID    string
	OldStartDate calendar.Date
	NewStartDate calendar.Date
	// WorkingDays is the signed working-day distance applied to every record.
	WorkingDays int
	Records     []RecordShift
	Applied     bool
}

// Moved reports how many records ended up on a different date.
func (r *ShiftStartDateResponse) Moved() int {
	n := 0
	for _, rec := range r.Records {
		if rec.OldDate != rec.NewDate {
			n++
		}
	}
	return n
}
