package config

// Definition mirrors the configuration file as viper decodes it.
type Definition struct {
	DB       string      `mapstructure:"db"`
	Listen   string      `mapstructure:"listen"`
	CORS     []string    `mapstructure:"cors_origins"`
	Log      LogDef      `mapstructure:"log"`
	Shift    ShiftDef    `mapstructure:"shift"`
	Calendar CalendarDef `mapstructure:"calendar"`
}

type LogDef struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type ShiftDef struct {
	Atomic bool `mapstructure:"atomic"`
}

// CalendarDef lists holidays either as plain dates or as {date, name}
// entries. YAML decodes unquoted dates to time.Time, so entries stay untyped
// until parseHolidays.
type CalendarDef struct {
	Holidays []any `mapstructure:"holidays"`
}
