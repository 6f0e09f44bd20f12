package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/alexanderramin/crewshift/internal/calendar"
)

var jobNumberPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{1,31}$`)

type Project struct {
	ID          string
	Name        string
	Description string
	JobNumber   string
	StartDate   calendar.Date
	EndDate     *calendar.Date
	Status      ProjectStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the fields required to persist a project.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.StartDate.IsZero() {
		return fmt.Errorf("project start date is required")
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end date %s is before start date %s", p.EndDate, p.StartDate)
	}
	if p.JobNumber != "" && !jobNumberPattern.MatchString(p.JobNumber) {
		return fmt.Errorf("job number %q must be 2-32 letters, digits or dashes", p.JobNumber)
	}
	if !ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("invalid project status %q", p.Status)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers JobNumber; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.JobNumber != "" {
		return p.JobNumber
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
