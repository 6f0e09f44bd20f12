package calendar

import (
	"sort"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// federalHolidays are the US federal holidays the portal observes.
var federalHolidays = []*cal.Holiday{
	us.NewYear,
	us.MlkDay,
	us.PresidentsDay,
	us.MemorialDay,
	us.Juneteenth,
	us.IndependenceDay,
	us.LaborDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
}

// SuggestFederalHolidays returns the observed dates of US federal holidays
// in year, sorted by date. It is a starting point for the configured list;
// company day-off dates still have to be added by hand.
func SuggestFederalHolidays(year int) []Holiday {
	var out []Holiday
	for _, h := range federalHolidays {
		_, observed := h.Calc(year)
		if observed.IsZero() {
			continue
		}
		y, m, d := observed.Date()
		out = append(out, Holiday{Date: NewDate(y, m, d), Name: h.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
