package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"plain date", "2025-01-08", NewDate(2025, time.January, 8), false},
		{"padded", "  2025-01-08 ", NewDate(2025, time.January, 8), false},
		{"utc timestamp", "2025-01-08T00:00:00Z", NewDate(2025, time.January, 8), false},
		{"offset timestamp normalizes to utc day", "2025-01-08T23:30:00-05:00", NewDate(2025, time.January, 9), false},
		{"empty", "", Date{}, true},
		{"garbage", "next tuesday", Date{}, true},
		{"bad month", "2025-13-01", Date{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDate_AddDaysAcrossMonthAndYear(t *testing.T) {
	assert.Equal(t, MustParse("2025-01-01"), MustParse("2024-12-31").AddDays(1))
	assert.Equal(t, MustParse("2024-02-29"), MustParse("2024-03-01").AddDays(-1))
	assert.Equal(t, MustParse("2025-03-01"), MustParse("2025-02-28").AddDays(1))
}

func TestDate_TextRoundTrip(t *testing.T) {
	d := MustParse("2026-07-03")
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2026-07-03", string(b))

	var back Date
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, d, back)
}

func TestDateOf_UsesUTCDay(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 20:00 in Los Angeles on Jan 3 is already Jan 4 in UTC.
	local := time.Date(2025, time.January, 3, 20, 0, 0, 0, la)
	assert.Equal(t, MustParse("2025-01-04"), DateOf(local))
}

// P1: weekends and every configured holiday are non-working; all other
// days in the configured horizon are working days.
func TestIsWorkingDay_DefaultCalendarHorizon(t *testing.T) {
	holidays := DefaultHolidays()
	cal := New(holidays)
	listed := make(map[Date]bool, len(holidays))
	for _, h := range holidays {
		listed[h.Date] = true
	}

	for d := MustParse("2024-11-01"); !d.After(MustParse("2027-12-31")); d = d.AddDays(1) {
		wd := d.Weekday()
		want := wd != time.Saturday && wd != time.Sunday && !listed[d]
		assert.Equal(t, want, cal.IsWorkingDay(d), "date %s (%s)", d, wd)
	}
}

func TestIsWorkingDay_OutsideHorizonOnlyWeekendRule(t *testing.T) {
	cal := New(DefaultHolidays())

	// 2028-01-03 is a Monday after the last configured holiday.
	d := MustParse("2028-01-03")
	assert.False(t, cal.Covers(d))
	assert.True(t, cal.IsWorkingDay(d))
	assert.False(t, cal.IsWorkingDay(MustParse("2028-01-01")), "saturday")

	// New Year 2024 is before the horizon and treated as a plain Monday.
	assert.True(t, cal.IsWorkingDay(MustParse("2024-01-01")))
}

func TestIsWorkingDay_NilCalendarIsWeekendsOnly(t *testing.T) {
	var cal *Calendar
	assert.True(t, cal.IsWorkingDay(MustParse("2025-01-01")))
	assert.False(t, cal.IsWorkingDay(MustParse("2025-01-04")))
	assert.Empty(t, cal.Holidays())
	_, _, ok := cal.Horizon()
	assert.False(t, ok)
}

func TestIsHoliday_ReturnsName(t *testing.T) {
	cal := New(DefaultHolidays())

	name, ok := cal.IsHoliday(MustParse("2026-06-19"))
	assert.True(t, ok)
	assert.Equal(t, "Juneteenth", name)

	_, ok = cal.IsHoliday(MustParse("2026-06-18"))
	assert.False(t, ok)
}

func TestNew_DeduplicatesAndSorts(t *testing.T) {
	cal := New([]Holiday{
		{Date: MustParse("2025-12-25"), Name: "Christmas"},
		{Date: MustParse("2025-07-04"), Name: "Independence Day"},
		{Date: MustParse("2025-12-25"), Name: "Duplicate"},
	})

	hs := cal.Holidays()
	require.Len(t, hs, 2)
	assert.Equal(t, MustParse("2025-07-04"), hs[0].Date)
	assert.Equal(t, "Christmas", hs[1].Name)

	first, last, ok := cal.Horizon()
	require.True(t, ok)
	assert.Equal(t, MustParse("2025-07-04"), first)
	assert.Equal(t, MustParse("2025-12-25"), last)
}

func TestFromStrings(t *testing.T) {
	cal, err := FromStrings([]string{"2025-01-01", "2025-01-20"})
	require.NoError(t, err)
	assert.False(t, cal.IsWorkingDay(MustParse("2025-01-20")))

	_, err = FromStrings([]string{"2025-01-01", "Jan 20"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holiday 1")
}

func TestDefaultHolidays_AllParseAndAreUnique(t *testing.T) {
	hs := DefaultHolidays()
	assert.Len(t, hs, 49)
	assert.Len(t, New(hs).Holidays(), len(hs))
}

func TestSuggestFederalHolidays(t *testing.T) {
	hs := SuggestFederalHolidays(2026)
	require.NotEmpty(t, hs)

	dates := make(map[Date]bool)
	for _, h := range hs {
		dates[h.Date] = true
		assert.NotEmpty(t, h.Name)
	}
	// Independence Day 2026 falls on a Saturday and is observed Friday.
	assert.True(t, dates[MustParse("2026-07-03")])
	assert.False(t, dates[MustParse("2026-07-04")])
	assert.True(t, dates[MustParse("2026-11-26")], "thanksgiving")

	for i := 1; i < len(hs); i++ {
		assert.False(t, hs[i].Date.Before(hs[i-1].Date), "suggestions must be sorted")
	}
}
