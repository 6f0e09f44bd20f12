package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/crewshift/internal/app"
)

// FormatShiftResult renders the outcome of a start-date shift: the new
// start, the working-day distance and a table of records that moved.
func FormatShiftResult(resp *app.ShiftStartDateResponse) string {
	var b strings.Builder

	b.WriteString(field("START", fmt.Sprintf("%s → %s", resp.OldStartDate, StyleBold.Render(resp.NewStartDate.String()))))
	b.WriteString(field("DAYS ", signed(resp.WorkingDays)+" working days"))

	moved := resp.Moved()
	b.WriteString(field("MOVED", fmt.Sprintf("%d of %d records", moved, len(resp.Records))))

	if moved > 0 {
		rows := make([][]string, 0, moved)
		for _, r := range resp.Records {
			if r.OldDate == r.NewDate {
				continue
			}
			rows = append(rows, []string{TruncID(r.ID), r.OldDate.String(), r.NewDate.String()})
		}
		b.WriteString("\n" + RenderTable([]string{"RECORD", "FROM", "TO"}, rows))
	}

	title := "Start date shifted"
	if !resp.Applied {
		title = "Dry run"
		b.WriteString("\n" + StyleWarn.Render("Nothing was written."))
	}
	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}

func signed(n int) string {
	if n > 0 {
		return StyleOK.Render(fmt.Sprintf("+%d", n))
	}
	if n < 0 {
		return StyleStop.Render(fmt.Sprintf("%d", n))
	}
	return Dim("0")
}
