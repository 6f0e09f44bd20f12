package importer

import (
	"fmt"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateProject(&schema.Project)...)

	categoryRefs := make(map[string]bool)
	errs = append(errs, validateCategories(schema.Categories, categoryRefs)...)

	activityRefs := make(map[string]bool)
	errs = append(errs, validateActivities(schema.Activities, categoryRefs, activityRefs)...)

	errs = append(errs, validateManpower(schema.Manpower, activityRefs)...)

	return errs
}

func validateProject(p *ProjectImport) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}

	var start calendar.Date
	if p.StartDate == "" {
		errs = append(errs, fmt.Errorf("project.start_date is required"))
	} else if d, err := calendar.Parse(p.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("project.start_date: invalid date format %q (expected YYYY-MM-DD)", p.StartDate))
	} else {
		start = d
	}

	if p.EndDate != nil {
		end, err := calendar.Parse(*p.EndDate)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("project.end_date: invalid date format %q (expected YYYY-MM-DD)", *p.EndDate))
		case !start.IsZero() && end.Before(start):
			errs = append(errs, fmt.Errorf("project.end_date %q must not be before start_date %q", *p.EndDate, p.StartDate))
		}
	}

	if p.Status != "" && !domain.ValidProjectStatuses[p.Status] {
		errs = append(errs, fmt.Errorf("project.status: invalid value %q", p.Status))
	}

	return errs
}

func validateCategories(categories []CategoryImport, refs map[string]bool) []error {
	var errs []error

	for i, c := range categories {
		prefix := fmt.Sprintf("categories[%d]", i)

		if c.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[c.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, c.Ref))
		} else {
			refs[c.Ref] = true
		}

		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}

	return errs
}

func validateActivities(activities []ActivityImport, categoryRefs, refs map[string]bool) []error {
	var errs []error

	for i, a := range activities {
		prefix := fmt.Sprintf("activities[%d]", i)

		if a.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[a.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, a.Ref))
		} else {
			refs[a.Ref] = true
		}

		if a.CategoryRef == "" {
			errs = append(errs, fmt.Errorf("%s.category_ref is required", prefix))
		} else if !categoryRefs[a.CategoryRef] {
			errs = append(errs, fmt.Errorf("%s.category_ref: ref %q not found in categories", prefix, a.CategoryRef))
		}

		if a.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if a.EstimatedHours != nil && *a.EstimatedHours < 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_hours must be >= 0", prefix))
		}
	}

	return errs
}

// validateManpower allows several entries for one activity and date; a
// shifted schedule can hold them and an export must round-trip.
func validateManpower(records []ManpowerImport, activityRefs map[string]bool) []error {
	var errs []error

	for i, m := range records {
		prefix := fmt.Sprintf("manpower[%d]", i)

		if m.ActivityRef == "" {
			errs = append(errs, fmt.Errorf("%s.activity_ref is required", prefix))
		} else if !activityRefs[m.ActivityRef] {
			errs = append(errs, fmt.Errorf("%s.activity_ref: ref %q not found in activities", prefix, m.ActivityRef))
		}

		if m.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else if _, err := calendar.Parse(m.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, m.Date))
		}

		if m.Crew < 0 {
			errs = append(errs, fmt.Errorf("%s.crew must be >= 0, got %d", prefix, m.Crew))
		}
	}

	return errs
}
