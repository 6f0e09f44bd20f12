package importer

import (
	"fmt"

	"github.com/alexanderramin/crewshift/internal/domain"
)

// Export builds the exchange form of a stored schedule. Activities and
// manpower are keyed by category and activity ID respectively; refs in the
// output are generated ("c1", "a1", ...) so the file can be imported again.
func Export(
	p *domain.Project,
	categories []*domain.Category,
	activities map[string][]*domain.Activity,
	manpower map[string][]*domain.ManpowerRecord,
) *ImportSchema {
	out := &ImportSchema{
		Project: ProjectImport{
			JobNumber:   p.JobNumber,
			Name:        p.Name,
			Description: p.Description,
			StartDate:   p.StartDate.String(),
			Status:      string(p.Status),
		},
		Categories: make([]CategoryImport, 0, len(categories)),
		Activities: []ActivityImport{},
	}
	if p.EndDate != nil {
		end := p.EndDate.String()
		out.Project.EndDate = &end
	}

	activityN := 0
	for i, c := range categories {
		categoryRef := fmt.Sprintf("c%d", i+1)
		out.Categories = append(out.Categories, CategoryImport{Ref: categoryRef, Name: c.Name, Order: c.SortOrder})

		for _, a := range activities[c.ID] {
			activityN++
			activityRef := fmt.Sprintf("a%d", activityN)
			out.Activities = append(out.Activities, ActivityImport{
				Ref:            activityRef,
				CategoryRef:    categoryRef,
				Name:           a.Name,
				CostCode:       a.CostCode,
				Order:          a.SortOrder,
				EstimatedHours: a.EstimatedHours,
				Notes:          a.Notes,
				Completed:      a.Completed,
			})
			for _, m := range manpower[a.ID] {
				out.Manpower = append(out.Manpower, ManpowerImport{
					ActivityRef: activityRef,
					Date:        m.Date.String(),
					Crew:        m.Headcount,
				})
			}
		}
	}

	return out
}
