package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/crewshift/internal/app"
	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "LONG HEADER"}, [][]string{
		{"wide cell", "x"},
		{"b"},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[0], "LONG"), strings.Index(lines[2], "x"))
}

func TestRenderTable_RightAlignsNumbers(t *testing.T) {
	out := stripANSI(RenderTable([]string{"NAME", "CREW"}, [][]string{
		{"Forms", "4"},
		{"Pour", "12"},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[2], "   4"), "got %q", lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "  12"), "got %q", lines[3])
	assert.Equal(t, len(lines[2]), len(lines[3]))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestFormatProjectList_PrefersJobNumber(t *testing.T) {
	end := calendar.MustParse("2025-06-30")
	projects := []*domain.Project{
		{ID: "12345678-aaaa-bbbb-cccc-1234567890ab", JobNumber: "J-2041", Name: "Harbor Pier", StartDate: calendar.MustParse("2025-01-06"), EndDate: &end, Status: domain.ProjectActive},
		{ID: "abcdef12-3456-7890-abcd-ef1234567890", Name: "Depot", StartDate: calendar.MustParse("2025-02-03"), Status: domain.ProjectOnHold},
	}

	out := stripANSI(FormatProjectList(projects))

	assert.Contains(t, out, "J-2041")
	assert.NotContains(t, out, "12345678")
	assert.Contains(t, out, "abcdef12")
	assert.Contains(t, out, "2025-06-30")
	assert.Contains(t, out, "On hold")
}

func TestFormatProjectInspect_SummarisesManpower(t *testing.T) {
	p := &domain.Project{ID: "p-1", Name: "Harbor Pier", JobNumber: "J-1", StartDate: calendar.MustParse("2025-01-06"), Status: domain.ProjectActive}
	cat := &domain.Category{ID: "c-1", ProjectID: p.ID, Name: "Piles"}
	act := &domain.Activity{ID: "a-1", CategoryID: cat.ID, Name: "Drive piles", CostCode: "31-62"}
	empty := &domain.Activity{ID: "a-2", CategoryID: cat.ID, Name: "Cut-offs"}

	out := stripANSI(FormatProjectInspect(ProjectInspectData{
		Project:    p,
		Categories: []*domain.Category{cat},
		Activities: map[string][]*domain.Activity{cat.ID: {act, empty}},
		Manpower: map[string][]*domain.ManpowerRecord{act.ID: {
			{ID: "m-1", ActivityID: act.ID, Date: calendar.MustParse("2025-01-07"), Headcount: 4},
			{ID: "m-2", ActivityID: act.ID, Date: calendar.MustParse("2025-01-06"), Headcount: 6},
		}},
	}))

	assert.Contains(t, out, "Piles")
	assert.Contains(t, out, "31-62")
	assert.Contains(t, out, "2025-01-06 → 2025-01-07 · 2 days · 10 crew-days")
	assert.Contains(t, out, "no manpower")
}

func TestFormatProjectInspect_NoCategories(t *testing.T) {
	p := &domain.Project{ID: "p-1", Name: "Empty", StartDate: calendar.MustParse("2025-01-06"), Status: domain.ProjectActive}
	out := stripANSI(FormatProjectInspect(ProjectInspectData{Project: p}))
	assert.Contains(t, out, "No categories yet.")
	assert.Contains(t, out, "--")
}

func TestFormatShiftResult(t *testing.T) {
	resp := &app.ShiftStartDateResponse{
		ProjectID:    "p-1",
		OldStartDate: calendar.MustParse("2025-01-01"),
		NewStartDate: calendar.MustParse("2025-01-08"),
		WorkingDays:  5,
		Applied:      true,
		Records: []app.RecordShift{
			{ID: "rec-aaaaaaaa-1", OldDate: calendar.MustParse("2025-01-03"), NewDate: calendar.MustParse("2025-01-10")},
		},
	}

	out := stripANSI(FormatShiftResult(resp))
	assert.Contains(t, out, "START DATE SHIFTED")
	assert.Contains(t, out, "+5 working days")
	assert.Contains(t, out, "1 of 1 records")
	assert.Contains(t, out, "2025-01-10")
	assert.NotContains(t, out, "Nothing was written")

	resp.Applied = false
	resp.WorkingDays = 0
	resp.Records[0].NewDate = resp.Records[0].OldDate
	out = stripANSI(FormatShiftResult(resp))
	assert.Contains(t, out, "DRY RUN")
	assert.Contains(t, out, "0 of 1 records")
	assert.NotContains(t, out, "RECORD")
	assert.Contains(t, out, "Nothing was written")
}

func TestFormatDayCheck(t *testing.T) {
	cal := calendar.New([]calendar.Holiday{{Date: calendar.MustParse("2025-07-04"), Name: "Independence Day"}})

	assert.Contains(t, stripANSI(FormatDayCheck(cal, calendar.MustParse("2025-07-04"))), "holiday: Independence Day")
	assert.Contains(t, stripANSI(FormatDayCheck(cal, calendar.MustParse("2025-07-05"))), "weekend")
	assert.Contains(t, stripANSI(FormatDayCheck(cal, calendar.MustParse("2025-07-07"))), "Monday) is a working day")
	assert.Contains(t, stripANSI(FormatDayCheck(cal, calendar.MustParse("2025-07-07"))), "outside the holiday list")

	wide := calendar.New([]calendar.Holiday{
		{Date: calendar.MustParse("2025-01-01")},
		{Date: calendar.MustParse("2025-12-25")},
	})
	assert.NotContains(t, stripANSI(FormatDayCheck(wide, calendar.MustParse("2025-07-07"))), "outside")
}

func TestFormatManpowerList_Totals(t *testing.T) {
	now := time.Now()
	records := []*domain.ManpowerRecord{
		{ID: "m-1", ActivityID: "a-1", Date: calendar.MustParse("2025-01-06"), Headcount: 4, CreatedAt: now},
		{ID: "m-2", ActivityID: "a-unknown-id", Date: calendar.MustParse("2025-01-07"), Headcount: 3, CreatedAt: now},
	}

	out := stripANSI(FormatManpowerList(records, map[string]string{"a-1": "Drive piles"}))
	assert.Contains(t, out, "Drive piles")
	assert.Contains(t, out, "a-unknow")
	assert.Contains(t, out, "2 records · 7 crew-days")
}

func TestFormatHolidays(t *testing.T) {
	out := stripANSI(FormatHolidays("Holidays", []calendar.Holiday{
		{Date: calendar.MustParse("2025-12-25"), Name: "Christmas Day"},
		{Date: calendar.MustParse("2025-12-26")},
	}))
	assert.Contains(t, out, "Christmas Day")
	assert.Contains(t, out, "Thu")
	assert.Contains(t, out, "--")
}
