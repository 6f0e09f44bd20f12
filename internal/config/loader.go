package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AppSlug        = "crewshift"
	EnvPrefix      = "CREWSHIFT"
	DefaultListen  = ":8080"
	configFileName = "crewshift"
)

type Loader struct {
	v          *viper.Viper
	configFile string
	homeDir    string
	dotEnv     []string
}

type LoaderOption func(*Loader)

// WithConfigFile reads exactly this file instead of searching.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.configFile = path
	}
}

// WithHomeDir overrides the user's home directory.
func WithHomeDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.homeDir = dir
	}
}

// WithDotEnv loads these .env files before reading the environment.
// Missing files are skipped.
func WithDotEnv(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.dotEnv = append(l.dotEnv, paths...)
	}
}

func NewLoader(v *viper.Viper, opts ...LoaderOption) *Loader {
	l := &Loader{v: v}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the config file (if any), applies .env and environment
// overrides, and validates the result.
func Load(opts ...LoaderOption) (*Config, error) {
	return NewLoader(viper.New(), opts...).Load()
}

func (l *Loader) Load() (*Config, error) {
	home := l.homeDir
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		home = h
	}

	for _, path := range l.dotEnv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	l.configureViper(home)
	l.setDefaults(home)

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var def Definition
	if err := l.v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg, err := l.build(def, home)
	if err != nil {
		return nil, err
	}
	cfg.ConfigFileUsed = l.v.ConfigFileUsed()
	return cfg, nil
}

func (l *Loader) configureViper(home string) {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName(configFileName)
		l.v.AddConfigPath(".")
		l.v.AddConfigPath(filepath.Join(home, "."+AppSlug))
	}
	l.v.SetConfigType("yaml")
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	l.v.AutomaticEnv()
}

func (l *Loader) setDefaults(home string) {
	l.v.SetDefault("db", filepath.Join(home, "."+AppSlug, AppSlug+".db"))
	l.v.SetDefault("listen", DefaultListen)
	l.v.SetDefault("log.level", "info")
	l.v.SetDefault("log.format", logger.FormatAuto)
	l.v.SetDefault("log.file", "")
	l.v.SetDefault("shift.atomic", true)
}

func (l *Loader) build(def Definition, home string) (*Config, error) {
	level, err := logger.ParseLevel(def.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	format := strings.ToLower(strings.TrimSpace(def.Log.Format))
	if !logger.ValidFormat(format) {
		return nil, fmt.Errorf("log.format: unknown format %q (want auto, text or json)", def.Log.Format)
	}
	if strings.TrimSpace(def.Listen) == "" {
		return nil, fmt.Errorf("listen: address is required")
	}

	cfg := &Config{
		DBPath:      expandHome(def.DB, home),
		Listen:      def.Listen,
		CORSOrigins: def.CORS,
		Log: Log{
			Level:  level,
			Format: format,
			File:   expandHome(def.Log.File, home),
		},
		Shift: Shift{Atomic: def.Shift.Atomic},
	}

	if l.v.IsSet("calendar.holidays") {
		holidays, err := parseHolidays(def.Calendar.Holidays)
		if err != nil {
			return nil, fmt.Errorf("calendar.holidays: %w", err)
		}
		cfg.Calendar = calendar.New(holidays)
	} else {
		cfg.Calendar = calendar.New(calendar.DefaultHolidays())
		cfg.HolidaysFromDefault = true
	}
	return cfg, nil
}

func parseHolidays(entries []any) ([]calendar.Holiday, error) {
	out := make([]calendar.Holiday, 0, len(entries))
	for i, entry := range entries {
		h, err := parseHoliday(entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, h)
	}
	return out, nil
}

func parseHoliday(entry any) (calendar.Holiday, error) {
	switch v := entry.(type) {
	case map[string]any:
		d, err := parseDateValue(v["date"])
		if err != nil {
			return calendar.Holiday{}, err
		}
		name, _ := v["name"].(string)
		return calendar.Holiday{Date: d, Name: name}, nil
	default:
		d, err := parseDateValue(v)
		if err != nil {
			return calendar.Holiday{}, err
		}
		return calendar.Holiday{Date: d}, nil
	}
}

func parseDateValue(v any) (calendar.Date, error) {
	switch d := v.(type) {
	case string:
		return calendar.Parse(d)
	case time.Time:
		return calendar.DateOf(d), nil
	case nil:
		return calendar.Date{}, fmt.Errorf("date is required")
	}
	return calendar.Date{}, fmt.Errorf("unsupported date value %v (%T)", v, v)
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
