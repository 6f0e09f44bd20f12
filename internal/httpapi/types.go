package httpapi

import (
	"github.com/alexanderramin/crewshift/internal/app"
	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/samber/lo"
)

type shiftRequest struct {
	NewStartDate string `json:"newStartDate"`
	DryRun       bool   `json:"dryRun"`
}

// legacyShiftRequest is the body of PUT /projects/updateStartDate.
type legacyShiftRequest struct {
	ProjectID    string `json:"projectId"`
	NewStartDate string `json:"newStartDate"`
}

type recordShiftJSON struct {
	ID      string        `json:"id"`
	OldDate calendar.Date `json:"oldDate"`
	NewDate calendar.Date `json:"newDate"`
}

type shiftResponse struct {
	Message      string            `json:"message"`
	ProjectID    string            `json:"projectId"`
	OldStartDate calendar.Date     `json:"oldStartDate"`
	NewStartDate calendar.Date     `json:"newStartDate"`
	WorkingDays  int               `json:"workingDays"`
	Applied      bool              `json:"applied"`
	Records      []recordShiftJSON `json:"records"`
}

func newShiftResponse(r *app.ShiftStartDateResponse) shiftResponse {
	msg := "Project start date and manpower records updated successfully"
	if !r.Applied {
		msg = "Dry run: nothing was written"
	}
	return shiftResponse{
		Message:      msg,
		ProjectID:    r.ProjectID,
		OldStartDate: r.OldStartDate,
		NewStartDate: r.NewStartDate,
		WorkingDays:  r.WorkingDays,
		Applied:      r.Applied,
		Records: lo.Map(r.Records, func(rec app.RecordShift, _ int) recordShiftJSON {
			return recordShiftJSON{ID: rec.ID, OldDate: rec.OldDate, NewDate: rec.NewDate}
		}),
	}
}

type manpowerJSON struct {
	ID         string        `json:"id"`
	ActivityID string        `json:"activityId"`
	Date       calendar.Date `json:"date"`
	Headcount  int           `json:"headcount"`
}

func newManpowerList(records []*domain.ManpowerRecord) []manpowerJSON {
	return lo.Map(records, func(m *domain.ManpowerRecord, _ int) manpowerJSON {
		return manpowerJSON{ID: m.ID, ActivityID: m.ActivityID, Date: m.Date, Headcount: m.Headcount}
	})
}

func newHolidayList(holidays []calendar.Holiday) []holidayJSON {
	return lo.Map(holidays, func(h calendar.Holiday, _ int) holidayJSON {
		return holidayJSON{Date: h.Date, Name: h.Name}
	})
}

type holidayJSON struct {
	Date calendar.Date `json:"date"`
	Name string        `json:"name,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
