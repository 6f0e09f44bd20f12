package domain

import (
	"fmt"
	"time"

	"github.com/alexanderramin/crewshift/internal/calendar"
)

// ManpowerRecord is one cell of the day-by-day crew schedule: the number
// of workers planned on an activity for a single date.
type ManpowerRecord struct {
	ID         string
	ActivityID string
	Date       calendar.Date
	Headcount  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (m *ManpowerRecord) Validate() error {
	if m.ActivityID == "" {
		return fmt.Errorf("manpower activity is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("manpower date is required")
	}
	if m.Headcount < 0 {
		return fmt.Errorf("headcount must be >= 0, got %d", m.Headcount)
	}
	return nil
}
