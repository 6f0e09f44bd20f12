package config

import (
	"log/slog"

	"github.com/alexanderramin/crewshift/internal/calendar"
)

// Config is the validated runtime configuration.
type Config struct {
	DBPath string
	Listen string
	Log    Log
	Shift  Shift

	// CORSOrigins are the browser origins allowed to call the HTTP API.
	// Empty disables CORS handling.
	CORSOrigins []string

	// Calendar is built once at load time and shared read-only.
	Calendar *calendar.Calendar
	// HolidaysFromDefault is true when no holiday list was configured.
	HolidaysFromDefault bool

	ConfigFileUsed string
}

type Log struct {
	Level  slog.Level
	Format string
	File   string
}

type Shift struct {
	// Atomic runs every shift inside one transaction. When false each write
	// commits on its own and a failure leaves a partly shifted schedule.
	Atomic bool
}
