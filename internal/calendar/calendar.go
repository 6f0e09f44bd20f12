// Package calendar implements the working-day calendar used to move
// manpower schedules when a project's start date changes.
//
// A working day is any UTC day that is not a Saturday, not a Sunday and
// not in the calendar's holiday set. Distances and shifts are computed by
// stepping one calendar day at a time and counting only the working days
// landed on; the stepping rule is part of the stored-data contract and must
// not be replaced with a closed-form count.
package calendar

import (
	"fmt"
	"sort"
	"time"
)

// Holiday is a configured non-working day.
type Holiday struct {
	Date Date
	Name string
}

// Calendar is an immutable holiday set combined with the weekend rule.
// The zero value and a nil *Calendar both behave as "weekends only".
// All methods are safe for concurrent use.
type Calendar struct {
	holidays map[Date]string
	first    Date
	last     Date
}

// New builds a Calendar from holidays. Duplicate dates keep the first name.
func New(holidays []Holiday) *Calendar {
	c := &Calendar{holidays: make(map[Date]string, len(holidays))}
	for _, h := range holidays {
		if _, dup := c.holidays[h.Date]; dup {
			continue
		}
		c.holidays[h.Date] = h.Name
		if c.first.IsZero() || h.Date.Before(c.first) {
			c.first = h.Date
		}
		if c.last.IsZero() || h.Date.After(c.last) {
			c.last = h.Date
		}
	}
	return c
}

// FromStrings builds a Calendar from YYYY-MM-DD strings.
func FromStrings(dates []string) (*Calendar, error) {
	holidays := make([]Holiday, 0, len(dates))
	for i, s := range dates {
		d, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("holiday %d: %w", i, err)
		}
		holidays = append(holidays, Holiday{Date: d})
	}
	return New(holidays), nil
}

// IsWeekend reports whether d falls on Saturday or Sunday.
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether d is a configured holiday and returns its name.
func (c *Calendar) IsHoliday(d Date) (string, bool) {
	if c == nil {
		return "", false
	}
	name, ok := c.holidays[d]
	return name, ok
}

// IsWorkingDay reports whether d is neither a weekend day nor a holiday.
// Dates outside the configured holiday horizon only get the weekend rule.
func (c *Calendar) IsWorkingDay(d Date) bool {
	if IsWeekend(d) {
		return false
	}
	_, holiday := c.IsHoliday(d)
	return !holiday
}

// Holidays returns the configured holidays in date order.
func (c *Calendar) Holidays() []Holiday {
	if c == nil {
		return nil
	}
	out := make([]Holiday, 0, len(c.holidays))
	for d, name := range c.holidays {
		out = append(out, Holiday{Date: d, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Horizon returns the first and last configured holiday. ok is false for
// an empty calendar.
func (c *Calendar) Horizon() (first, last Date, ok bool) {
	if c == nil || len(c.holidays) == 0 {
		return Date{}, Date{}, false
	}
	return c.first, c.last, true
}

// Covers reports whether d lies within the holiday horizon.
func (c *Calendar) Covers(d Date) bool {
	first, last, ok := c.Horizon()
	return ok && !d.Before(first) && !d.After(last)
}
