package main

import (
	"testing"
	"time"

	seholiday "github.com/nicrgren/holidays-se"
)

func TestParseDateTime(t *testing.T) {
	sthlm := seholiday.Location()

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "date only",
			input: "2020-12-24",
			want:  time.Date(2020, time.December, 24, 0, 0, 0, 0, sthlm),
		},
		{
			name:  "date with time",
			input: "2020-12-24 13:37",
			want:  time.Date(2020, time.December, 24, 13, 37, 0, 0, sthlm),
		},
		{
			name:  "full datetime",
			input: "2020-12-24T13:37:59",
			want:  time.Date(2020, time.December, 24, 13, 37, 59, 0, sthlm),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDateTime(tt.input)
			if err != nil {
				t.Fatalf("parseDateTime(%q) returned error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDateTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.Location() != sthlm {
				t.Errorf("parseDateTime(%q) location = %v, want %v", tt.input, got.Location(), sthlm)
			}
		})
	}
}

func TestParseDateTimeInvalid(t *testing.T) {
	inputs := []string{
		"",
		"not a date",
		"24/12/2020",
		"2020-13-01",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := parseDateTime(input); err == nil {
				t.Errorf("parseDateTime(%q) succeeded, want error", input)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "empty config",
			config: Config{},
		},
		{
			name: "valid custom holiday",
			config: Config{
				Calendar: CalendarConfig{
					CustomHolidays: []CustomHoliday{
						{Date: "2026-05-15", Name: "klämdag"},
					},
				},
			},
		},
		{
			name: "custom holiday missing name",
			config: Config{
				Calendar: CalendarConfig{
					CustomHolidays: []CustomHoliday{
						{Date: "2026-05-15"},
					},
				},
			},
			wantErr: true,
		},
		{
			name: "custom holiday bad date",
			config: Config{
				Calendar: CalendarConfig{
					CustomHolidays: []CustomHoliday{
						{Date: "15/05/2026", Name: "klämdag"},
					},
				},
			},
			wantErr: true,
		},
		{
			name: "valid suppress",
			config: Config{
				Calendar: CalendarConfig{
					Suppress: []string{"2026-01-06"},
				},
			},
		},
		{
			name: "suppress bad date",
			config: Config{
				Calendar: CalendarConfig{
					Suppress: []string{"january 6th"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigApply(t *testing.T) {
	cfg := Config{
		Calendar: CalendarConfig{
			CustomHolidays: []CustomHoliday{
				{Date: "2026-05-15", Name: "klämdag"},
			},
			Suppress: []string{"2026-01-06"},
		},
	}

	cal := cfg.apply()
	sthlm := seholiday.Location()

	custom := time.Date(2026, time.May, 15, 0, 0, 0, 0, sthlm)
	if !cal.IsHoliday(custom) {
		t.Errorf("custom holiday %v not applied", custom)
	}
	if name := cal.HolidayName(custom); name != "klämdag" {
		t.Errorf("HolidayName(%v) = %q, want %q", custom, name, "klämdag")
	}

	suppressed := time.Date(2026, time.January, 6, 0, 0, 0, 0, sthlm)
	if cal.IsHoliday(suppressed) {
		t.Errorf("suppressed holiday %v still reported", suppressed)
	}
}
