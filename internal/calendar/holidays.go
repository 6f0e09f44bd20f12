package calendar

// DefaultHolidays is the portal's company holiday list: US federal holidays
// plus designated day-off ("DDO") dates from late 2024 through mid 2027.
// Deployments override it through configuration.
func DefaultHolidays() []Holiday {
	out := make([]Holiday, 0, len(defaultHolidays))
	for _, h := range defaultHolidays {
		out = append(out, Holiday{Date: MustParse(h[0]), Name: h[1]})
	}
	return out
}

var defaultHolidays = [][2]string{
	{"2024-11-11", "Veterans Day"},
	{"2024-11-28", "Thanksgiving"},
	{"2024-11-29", "Day after Thanksgiving"},
	{"2024-12-23", "DDO"},
	{"2024-12-24", "Christmas Eve"},
	{"2024-12-25", "Christmas"},
	{"2025-01-01", "New Year"},
	{"2025-01-20", "MLK Day"},
	{"2025-02-10", "DDO"},
	{"2025-02-17", "Presidents Day"},
	{"2025-04-18", "DDO"},
	{"2025-05-23", "DDO"},
	{"2025-05-26", "Memorial Day"},
	{"2025-07-04", "Independence Day"},
	{"2025-07-07", "DDO"},
	{"2025-08-29", "DDO"},
	{"2025-09-01", "Labor Day"},
	{"2025-11-11", "Veterans Day"},
	{"2025-11-27", "Thanksgiving"},
	{"2025-11-28", "Day after Thanksgiving"},
	{"2025-12-25", "Christmas"},
	{"2025-12-26", "Day after Christmas"},
	{"2026-01-01", "New Year"},
	{"2026-01-02", "DDO"},
	{"2026-01-19", "MLK Day"},
	{"2026-02-09", "DDO"},
	{"2026-02-16", "Presidents Day"},
	{"2026-04-03", "DDO"},
	{"2026-05-25", "Memorial Day"},
	{"2026-06-19", "Juneteenth"},
	{"2026-07-03", "Independence Day"},
	{"2026-07-06", "DDO"},
	{"2026-08-07", "DDO"},
	{"2026-09-04", "DDO"},
	{"2026-09-07", "Labor Day"},
	{"2026-11-11", "Veterans Day"},
	{"2026-11-26", "Thanksgiving"},
	{"2026-11-27", "Day after Thanksgiving"},
	{"2026-12-24", "Christmas Eve"},
	{"2026-12-25", "Christmas"},
	{"2027-01-01", "New Year"},
	{"2027-01-18", "MLK Day"},
	{"2027-02-15", "Presidents Day"},
	{"2027-03-26", "DDO"},
	{"2027-05-28", "DDO"},
	{"2027-05-31", "Memorial Day"},
	{"2027-06-18", "Juneteenth"},
	{"2027-07-05", "Independence Day"},
	{"2027-07-08", "DDO"},
}
