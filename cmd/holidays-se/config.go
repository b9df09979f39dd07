package main

import (
	"fmt"
	"time"

	seholiday "github.com/nicrgren/holidays-se"
	"github.com/spf13/viper"
)

// Config holds the optional CLI configuration: calendar adjustments applied
// before any query runs.
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
}

// CalendarConfig adjusts the computed Swedish calendar.
type CalendarConfig struct {
	// CustomHolidays are extra holidays, e.g. company days or klämdagar.
	CustomHolidays []CustomHoliday `mapstructure:"custom_holidays"`
	// Suppress removes computed holidays by date (YYYY-MM-DD).
	Suppress []string `mapstructure:"suppress"`
}

// CustomHoliday is a single configured holiday entry.
type CustomHoliday struct {
	Date string `mapstructure:"date"`
	Name string `mapstructure:"name"`
}

const dateLayout = "2006-01-02"

// loadConfig reads the YAML config at path. An empty path yields an empty
// config, leaving the calendar untouched.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	for _, h := range c.Calendar.CustomHolidays {
		if h.Name == "" {
			return fmt.Errorf("calendar.custom_holidays: name is required for %q", h.Date)
		}
		if _, err := time.ParseInLocation(dateLayout, h.Date, seholiday.Location()); err != nil {
			return fmt.Errorf("calendar.custom_holidays: invalid date %q: %w", h.Date, err)
		}
	}
	for _, d := range c.Calendar.Suppress {
		if _, err := time.ParseInLocation(dateLayout, d, seholiday.Location()); err != nil {
			return fmt.Errorf("calendar.suppress: invalid date %q: %w", d, err)
		}
	}
	return nil
}

// apply builds a calendar with the configured adjustments. Call Validate
// first; invalid dates are skipped here.
func (c *Config) apply() *seholiday.Calendar {
	cal := seholiday.New()
	for _, h := range c.Calendar.CustomHolidays {
		t, err := time.ParseInLocation(dateLayout, h.Date, seholiday.Location())
		if err != nil {
			continue
		}
		cal.AddCustomHoliday(t, h.Name)
	}
	for _, d := range c.Calendar.Suppress {
		t, err := time.ParseInLocation(dateLayout, d, seholiday.Location())
		if err != nil {
			continue
		}
		cal.RemoveHoliday(t)
	}
	return cal
}
