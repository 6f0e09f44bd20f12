package formatter

import (
	"fmt"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/domain"
)

// FormatHolidays renders a holiday table.
func FormatHolidays(title string, holidays []calendar.Holiday) string {
	rows := make([][]string, 0, len(holidays))
	for _, h := range holidays {
		rows = append(rows, []string{h.Date.String(), h.Date.Weekday().String()[:3], CoalesceDash(h.Name)})
	}
	return RenderBox(title, RenderTable([]string{"DATE", "DAY", "NAME"}, rows))
}

// FormatDayCheck explains whether d is a working day under cal.
func FormatDayCheck(cal *calendar.Calendar, d calendar.Date) string {
	day := d.Weekday().String()
	if name, ok := cal.IsHoliday(d); ok {
		return fmt.Sprintf("%s (%s) is a %s: %s", d, day, StyleStop.Render("holiday"), CoalesceDash(name))
	}
	if !cal.IsWorkingDay(d) {
		return fmt.Sprintf("%s (%s) is a %s", d, day, StyleWarn.Render("weekend"))
	}
	out := fmt.Sprintf("%s (%s) is a %s", d, day, StyleOK.Render("working day"))
	if _, _, ok := cal.Horizon(); ok && !cal.Covers(d) {
		out += Dim(" (outside the holiday list, weekends only)")
	}
	return out
}

// FormatManpowerList renders manpower records. activityNames maps activity
// IDs to display names; unknown IDs fall back to a truncated ID.
func FormatManpowerList(records []*domain.ManpowerRecord, activityNames map[string]string) string {
	rows := make([][]string, 0, len(records))
	total := 0
	for _, m := range records {
		name, ok := activityNames[m.ActivityID]
		if !ok {
			name = TruncID(m.ActivityID)
		}
		rows = append(rows, []string{TruncID(m.ID), m.Date.String(), m.Date.Weekday().String()[:3], name, fmt.Sprintf("%d", m.Headcount)})
		total += m.Headcount
	}
	table := RenderTable([]string{"ID", "DATE", "DAY", "ACTIVITY", "CREW"}, rows)
	return RenderBox("Manpower", table+Dim(fmt.Sprintf("%d records · %d crew-days", len(records), total)))
}
