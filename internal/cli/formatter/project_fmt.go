package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/crewshift/internal/domain"
)

// ProjectInspectData holds all data needed to render a project inspect view.
type ProjectInspectData struct {
	Project    *domain.Project
	Categories []*domain.Category
	Activities map[string][]*domain.Activity       // categoryID -> activities
	Manpower   map[string][]*domain.ManpowerRecord // activityID -> records
}

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"JOB", "NAME", "START", "END", "STATUS"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		id := p.DisplayID()
		if strings.TrimSpace(id) == "" {
			id = "--"
		}
		end := Dim("--")
		if p.EndDate != nil {
			end = p.EndDate.String()
		}
		rows = append(rows, []string{
			id,
			Bold(p.Name),
			p.StartDate.String(),
			end,
			StatusPill(p.Status),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectInspect renders the project card followed by its
// category/activity breakdown with a manpower summary per activity.
func FormatProjectInspect(data ProjectInspectData) string {
	p := data.Project
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Name) + "\n\n")
	b.WriteString(field("STATUS", StatusPill(p.Status)))
	b.WriteString(field("JOB   ", StyleText.Render(CoalesceDash(p.JobNumber))))
	b.WriteString(field("UUID  ", TruncID(p.ID)))
	b.WriteString(field("START ", StyleText.Render(p.StartDate.String())))
	if p.EndDate != nil {
		b.WriteString(field("END   ", StyleText.Render(p.EndDate.String())))
	}
	if p.Description != "" {
		b.WriteString("\n" + Dim(p.Description) + "\n")
	}

	b.WriteString("\n" + Header("Breakdown") + "\n")
	if len(data.Categories) == 0 {
		b.WriteString(Dim("No categories yet.") + "\n")
	}
	for _, c := range data.Categories {
		b.WriteString(StyleInfo.Render(c.Name) + "\n")
		acts := data.Activities[c.ID]
		if len(acts) == 0 {
			b.WriteString("  " + Dim("(no activities)") + "\n")
		}
		for i, a := range acts {
			branch := "├─"
			if i == len(acts)-1 {
				branch = "└─"
			}
			b.WriteString(fmt.Sprintf("  %s %s %s  %s\n",
				StyleMuted.Render(branch),
				StyleText.Render(a.Name),
				Dim(CoalesceDash(a.CostCode)),
				manpowerSummary(data.Manpower[a.ID]),
			))
		}
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

// manpowerSummary is "<first> → <last> · N days · M crew-days".
func manpowerSummary(records []*domain.ManpowerRecord) string {
	if len(records) == 0 {
		return Dim("no manpower")
	}
	first, last := records[0].Date, records[0].Date
	total := 0
	for _, m := range records {
		if m.Date.Before(first) {
			first = m.Date
		}
		if m.Date.After(last) {
			last = m.Date
		}
		total += m.Headcount
	}
	return Dim(fmt.Sprintf("%s → %s · %d days · %d crew-days", first, last, len(records), total))
}

// CoalesceDash returns s, or "--" when s is blank.
func CoalesceDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "--"
	}
	return s
}
