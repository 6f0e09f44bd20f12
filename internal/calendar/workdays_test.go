package calendar

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingDaysBetween_Scenarios(t *testing.T) {
	weekendsOnly := New(nil)

	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		// Thu 2, Fri 3 counted; Sat 4, Sun 5 skipped; Mon 6, Tue 7, Wed 8 counted.
		{"forward across weekend", "2025-01-01", "2025-01-08", 5},
		{"backward across weekend", "2025-01-08", "2025-01-01", -5},
		{"same day", "2025-01-08", "2025-01-08", 0},
		{"next day", "2025-01-06", "2025-01-07", 1},
		{"friday to monday", "2025-01-03", "2025-01-06", 1},
		{"saturday to monday counts only monday", "2025-01-04", "2025-01-06", 1},
		{"monday back to saturday lands only on weekend", "2025-01-06", "2025-01-04", 0},
		{"friday to sunday", "2025-01-03", "2025-01-05", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := weekendsOnly.WorkingDaysBetween(MustParse(tc.from), MustParse(tc.to))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWorkingDaysBetween_SkipsHolidays(t *testing.T) {
	cal := New(DefaultHolidays())

	// Wed 26 -> Mon Dec 1 crosses Thanksgiving, the day after and a weekend.
	assert.Equal(t, 1, cal.WorkingDaysBetween(MustParse("2025-11-26"), MustParse("2025-12-01")))

	// Jan 1 2025 is a holiday: forward from it counts Jan 8 but backward
	// to it does not count Jan 1 itself.
	assert.Equal(t, 5, cal.WorkingDaysBetween(MustParse("2025-01-01"), MustParse("2025-01-08")))
	assert.Equal(t, -4, cal.WorkingDaysBetween(MustParse("2025-01-08"), MustParse("2025-01-01")))
}

// P2: zero distance.
func TestWorkingDaysBetween_SameDayIsZero(t *testing.T) {
	cal := New(DefaultHolidays())
	for d := MustParse("2024-12-20"); d.Before(MustParse("2025-01-10")); d = d.AddDays(1) {
		assert.Equal(t, 0, cal.WorkingDaysBetween(d, d), "date %s", d)
	}
}

// P3: sign symmetry. The stepping walk counts the destination but not the
// origin, so the property holds when both endpoints are working days.
func TestWorkingDaysBetween_SignSymmetry(t *testing.T) {
	cal := New(DefaultHolidays())
	rng := rand.New(rand.NewSource(7))
	base := MustParse("2024-11-01")

	for trial := 0; trial < 300; trial++ {
		from := nextWorkingDay(cal, base.AddDays(rng.Intn(1000)))
		to := nextWorkingDay(cal, base.AddDays(rng.Intn(1000)))
		if from == to {
			continue
		}
		fwd := cal.WorkingDaysBetween(from, to)
		back := cal.WorkingDaysBetween(to, from)
		assert.Equal(t, fwd, -back, "trial %d: %s <-> %s", trial, from, to)
	}
}

func TestShift_Scenarios(t *testing.T) {
	weekendsOnly := New(nil)

	tests := []struct {
		name string
		date string
		n    int
		want string
	}{
		{"forward five skips weekend", "2025-01-03", 5, "2025-01-10"},
		{"backward five skips weekend", "2025-01-10", -5, "2025-01-03"},
		{"friday plus one is monday", "2025-01-03", 1, "2025-01-06"},
		{"monday minus one is friday", "2025-01-06", -1, "2025-01-03"},
		{"saturday plus one is monday", "2025-01-04", 1, "2025-01-06"},
		{"sunday minus one is friday", "2025-01-05", -1, "2025-01-03"},
		{"zero on weekend is unchanged", "2025-01-04", 0, "2025-01-04"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := weekendsOnly.Shift(MustParse(tc.date), tc.n)
			assert.Equal(t, MustParse(tc.want), got)
		})
	}
}

func TestShift_SkipsHolidays(t *testing.T) {
	cal := New(DefaultHolidays())

	// Fri Jan 17 2025 + 1 skips the weekend and MLK Day.
	assert.Equal(t, MustParse("2025-01-21"), cal.Shift(MustParse("2025-01-17"), 1))
	// Wed before Thanksgiving + 1 lands on the following Monday.
	assert.Equal(t, MustParse("2025-12-01"), cal.Shift(MustParse("2025-11-26"), 1))
	// Backward over Christmas 2024 (Dec 23-25 are all off).
	assert.Equal(t, MustParse("2024-12-20"), cal.Shift(MustParse("2024-12-26"), -1))
}

// P5 and scenario D: a zero shift never moves a date, holiday or not.
func TestShift_ZeroIsIdentity(t *testing.T) {
	cal := New(DefaultHolidays())
	holiday := MustParse("2025-07-04")
	_, isHoliday := cal.IsHoliday(holiday)
	require.True(t, isHoliday)

	assert.Equal(t, holiday, cal.Shift(holiday, 0))
	for d := MustParse("2025-06-25"); d.Before(MustParse("2025-07-15")); d = d.AddDays(1) {
		assert.Equal(t, d, cal.Shift(d, 0))
	}
}

// P4: stepping n working days and measuring back yields n.
func TestShift_DistanceConsistency(t *testing.T) {
	cal := New(DefaultHolidays())
	rng := rand.New(rand.NewSource(42))
	base := MustParse("2024-11-01")

	for trial := 0; trial < 500; trial++ {
		d := nextWorkingDay(cal, base.AddDays(rng.Intn(1000)))
		n := rng.Intn(401) - 200

		shifted := cal.Shift(d, n)
		assert.Equal(t, n, cal.WorkingDaysBetween(d, shifted), "trial %d: %s shifted by %d -> %s", trial, d, n, shifted)
		if n != 0 {
			assert.True(t, cal.IsWorkingDay(shifted), "trial %d: non-zero shift must land on a working day", trial)
		}
	}
}

// P6: large shifts terminate and stay consistent.
func TestShift_LargeMagnitudes(t *testing.T) {
	cal := New(DefaultHolidays())
	d := MustParse("2025-03-03")

	for _, n := range []int{10000, -10000} {
		shifted := cal.Shift(d, n)
		assert.Equal(t, n, cal.WorkingDaysBetween(d, shifted))

		// At most 2 weekend days per 5 working days plus every holiday.
		span := shifted.Time().Sub(d.Time()).Hours() / 24
		if span < 0 {
			span = -span
		}
		assert.LessOrEqual(t, span, float64(10000)*7/5+float64(len(cal.Holidays()))+7)
	}
}

func TestShift_PreservesRelativeShape(t *testing.T) {
	cal := New(DefaultHolidays())
	oldStart := MustParse("2025-02-03")
	newStart := MustParse("2025-03-03")
	n := cal.WorkingDaysBetween(oldStart, newStart)

	schedule := []Date{
		MustParse("2025-02-03"),
		MustParse("2025-02-04"),
		MustParse("2025-02-05"),
		MustParse("2025-02-06"),
		MustParse("2025-02-07"),
	}
	var prev Date
	for i, d := range schedule {
		got := cal.Shift(d, n)
		if i == 0 {
			assert.Equal(t, newStart, got)
		} else {
			assert.Equal(t, 1, cal.WorkingDaysBetween(prev, got), "consecutive working days stay consecutive")
		}
		prev = got
	}
}

func nextWorkingDay(cal *Calendar, d Date) Date {
	for !cal.IsWorkingDay(d) {
		d = d.AddDays(1)
	}
	return d
}
