// Command holidays-se queries the Swedish holiday calendar: list the
// holidays of a year, classify days as Weekday, DayBeforeHoliday or
// Holiday, slice datetime ranges into constant-kind runs and find when the
// next run of a kind begins.
//
// Datetimes are read as Europe/Stockholm wall-clock time. An optional YAML
// config adds custom holidays or suppresses computed ones:
//
//	calendar:
//	  custom_holidays:
//	    - date: 2026-05-15
//	      name: klämdag
//	  suppress:
//	    - 2026-01-06
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	seholiday "github.com/nicrgren/holidays-se"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool
	logger     *zap.Logger
	cal        *seholiday.Calendar
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "holidays-se",
		Short: "Swedish holiday calendar and day-kind queries",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogger()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cal = cfg.apply()

			if n := len(cfg.Calendar.CustomHolidays) + len(cfg.Calendar.Suppress); n > 0 {
				logger.Debug("applied calendar adjustments",
					zap.Int("custom", len(cfg.Calendar.CustomHolidays)),
					zap.Int("suppressed", len(cfg.Calendar.Suppress)))
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd(), kindCmd(), slicesCmd(), nextCmd())

	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [year]",
		Short: "List the holidays of a year (default: current year)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := time.Now().In(seholiday.Location()).Year()
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q: %w", args[0], err)
				}
				year = y
			}

			logger.Debug("listing holidays", zap.Int("year", year))
			for _, h := range cal.HolidaysInYear(year) {
				fmt.Printf("%s %-9s %s\n", h.Date.Format("2006-01-02"), h.Date.Weekday(), h.Name)
			}
			return nil
		},
	}
}

func kindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kind <datetime>",
		Short: "Classify a day as Weekday, DayBeforeHoliday or Holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseDateTime(args[0])
			if err != nil {
				return err
			}

			kind := cal.DayKindOf(t)
			if name := cal.HolidayName(t); name != "" {
				fmt.Printf("%s (%s)\n", kind, name)
			} else {
				fmt.Println(kind)
			}
			return nil
		},
	}
}

func slicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slices <start> <end>",
		Short: "Split a datetime range into runs of constant day kind",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDateTime(args[0])
			if err != nil {
				return err
			}
			end, err := parseDateTime(args[1])
			if err != nil {
				return err
			}

			slices, err := cal.Slices(start, end)
			if err != nil {
				return err
			}

			count := 0
			for s := range slices {
				fmt.Printf("%s .. %s  %s\n",
					s.Start.Format("2006-01-02 15:04"),
					s.End.Format("2006-01-02 15:04"),
					s.Kind)
				count++
			}
			logger.Debug("sliced range",
				zap.Time("start", start),
				zap.Time("end", end),
				zap.Int("slices", count))
			return nil
		},
	}
}

func nextCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "next <kind>",
		Short: "Find when the next run of a day kind begins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := seholiday.ParseDayKind(args[0])
			if err != nil {
				return err
			}

			t := time.Now().In(seholiday.Location())
			if from != "" {
				t, err = parseDateTime(from)
				if err != nil {
					return err
				}
			}

			start := cal.NextKindStart(kind, t)
			fmt.Println(start.Format("2006-01-02 15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Search from this datetime instead of now")
	return cmd
}

// dateTimeLayouts are the accepted input formats, tried in order.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDateTime reads a datetime as Europe/Stockholm wall-clock time.
func parseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, seholiday.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q (expected YYYY-MM-DD, optionally with HH:MM)", s)
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}
