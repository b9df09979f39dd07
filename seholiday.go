// Package seholiday provides Swedish holiday lookups, day-kind
// classification and business day utilities.
//
// Holiday dates are computed per year from the rules of the Swedish
// calendar (fixed dates, Easter-derived dates and weekday-window dates such
// as midsommardagen), so the calendar needs no dataset and has no expiry.
// The de facto full-day eves julafton, nyårsafton and midsommarafton are
// listed as holidays in their own right; påskafton and pingstafton always
// fall on Saturdays and classify as day-before-holiday instead.
//
// All time.Time inputs are normalized to Europe/Stockholm before extracting
// the calendar date, so the correct Swedish holiday is returned regardless
// of the input timezone.
//
// Basic usage with package-level functions:
//
//	t := time.Date(2020, 12, 25, 0, 0, 0, 0, seholiday.Location())
//	seholiday.IsHoliday(t)    // true
//	seholiday.HolidayName(t)  // "juldagen"
//	seholiday.DayKindOf(t)    // KindHoliday
//
// For isolated custom holiday management, create a Calendar instance:
//
//	cal := seholiday.New()
//	cal.AddCustomHoliday(t, "klämdag")
package seholiday

import (
	"sort"
	"sync"
	"time"
)

// Holiday represents a single holiday entry.
type Holiday struct {
	Date time.Time // The date of the holiday (midnight, Europe/Stockholm).
	Name string    // The Swedish name of the holiday (e.g., "juldagen").
}

// Calendar computes holiday data per year and supports custom holidays.
// Create one with [New]. All methods are safe for concurrent use.
type Calendar struct {
	mu      sync.RWMutex
	years   map[int]map[date]string
	custom  map[date]string
	removed map[date]bool
}

// New creates a new Calendar backed by the computed Swedish holiday rules.
func New() *Calendar {
	return &Calendar{
		years:   make(map[int]map[date]string),
		custom:  make(map[date]string),
		removed: make(map[date]bool),
	}
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New()

// yearHolidays returns the computed holiday set for a year, filling the
// cache on first use. A duplicate computation under contention is harmless
// since computeYear is deterministic.
func (c *Calendar) yearHolidays(year int) map[date]string {
	c.mu.RLock()
	hs, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return hs
	}

	hs = computeYear(year)
	c.mu.Lock()
	c.years[year] = hs
	c.mu.Unlock()
	return hs
}

// lookup returns the holiday name for a date, checking custom holidays
// first, then computed holidays (unless removed).
func (c *Calendar) lookup(d date) (string, bool) {
	hs := c.yearHolidays(d.year)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if name, ok := c.custom[d]; ok {
		return name, true
	}
	if c.removed[d] {
		return "", false
	}
	if name, ok := hs[d]; ok {
		return name, true
	}
	return "", false
}

// IsHoliday reports whether the given date is a holiday (computed or
// custom). The input time is converted to Europe/Stockholm before
// extracting the calendar date, so the result is always correct for the
// Swedish calendar regardless of the input timezone.
//
// Sundays are not holiday entries; they classify as holidays through
// [Calendar.DayKindOf] instead.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.lookup(dateFromTime(t))
	return ok
}

// HolidayName returns the holiday name for the given date, or an empty
// string if it is not a holiday.
func (c *Calendar) HolidayName(t time.Time) string {
	name, _ := c.lookup(dateFromTime(t))
	return name
}

// HolidaysInYear returns all holidays in the given year, sorted by date.
func (c *Calendar) HolidaysInYear(year int) []Holiday {
	from := date{year: year, month: time.January, day: 1}
	to := date{year: year, month: time.December, day: 31}
	return c.holidaysInRange(from, to)
}

// HolidaysInMonth returns all holidays in the given year and month, sorted
// by date.
func (c *Calendar) HolidaysInMonth(year int, month time.Month) []Holiday {
	from := date{year: year, month: month, day: 1}
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	to := date{year: year, month: month, day: lastDay}
	return c.holidaysInRange(from, to)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive,
// sorted by date. If from is after to, returns nil.
func (c *Calendar) HolidaysBetween(from, to time.Time) []Holiday {
	fromD := dateFromTime(from)
	toD := dateFromTime(to)
	if toD.before(fromD) {
		return nil
	}
	return c.holidaysInRange(fromD, toD)
}

// holidaysInRange collects holidays within the given date range (inclusive).
func (c *Calendar) holidaysInRange(from, to date) []Holiday {
	var result []Holiday
	for year := from.year; year <= to.year; year++ {
		hs := c.yearHolidays(year)

		c.mu.RLock()
		for d, name := range hs {
			if c.removed[d] {
				continue
			}
			if _, ok := c.custom[d]; ok {
				continue
			}
			if d.inRange(from, to) {
				result = append(result, Holiday{Date: d.toTime(), Name: name})
			}
		}
		c.mu.RUnlock()
	}

	c.mu.RLock()
	for d, name := range c.custom {
		if d.inRange(from, to) {
			result = append(result, Holiday{Date: d.toTime(), Name: name})
		}
	}
	c.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

// AddCustomHoliday registers a custom holiday on the given date.
// If a custom holiday already exists on that date, it is overwritten.
// If a computed holiday exists on the same date, this custom holiday takes
// precedence in lookups and list APIs.
func (c *Calendar) AddCustomHoliday(t time.Time, name string) {
	d := dateFromTime(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom[d] = name
}

// RemoveCustomHoliday removes a previously added custom holiday.
// Has no effect if no custom holiday exists on that date.
func (c *Calendar) RemoveCustomHoliday(t time.Time) {
	d := dateFromTime(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.custom, d)
}

// RemoveHoliday suppresses a computed holiday so it no longer appears in
// queries. Has no effect on custom holidays. Use [Calendar.RestoreHoliday]
// to undo. Suppressing nyårsafton voids the day-before-holiday contract
// described in [Calendar.DayKindOf].
func (c *Calendar) RemoveHoliday(t time.Time) {
	d := dateFromTime(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removed[d] = true
}

// RestoreHoliday restores a previously removed computed holiday.
func (c *Calendar) RestoreHoliday(t time.Time) {
	d := dateFromTime(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.removed, d)
}

// --- Package-level convenience functions ---

// IsHoliday reports whether the given date is a holiday.
func IsHoliday(t time.Time) bool { return defaultCal.IsHoliday(t) }

// HolidayName returns the holiday name for the given date, or "".
func HolidayName(t time.Time) string { return defaultCal.HolidayName(t) }

// HolidaysInYear returns all holidays in the given year, sorted by date.
func HolidaysInYear(year int) []Holiday { return defaultCal.HolidaysInYear(year) }

// HolidaysInMonth returns all holidays in the given year and month, sorted by date.
func HolidaysInMonth(year int, month time.Month) []Holiday {
	return defaultCal.HolidaysInMonth(year, month)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive.
func HolidaysBetween(from, to time.Time) []Holiday {
	return defaultCal.HolidaysBetween(from, to)
}

// AddCustomHoliday registers a custom holiday on the default calendar.
func AddCustomHoliday(t time.Time, name string) { defaultCal.AddCustomHoliday(t, name) }

// RemoveCustomHoliday removes a custom holiday from the default calendar.
func RemoveCustomHoliday(t time.Time) { defaultCal.RemoveCustomHoliday(t) }

// RemoveHoliday suppresses a computed holiday on the default calendar.
func RemoveHoliday(t time.Time) { defaultCal.RemoveHoliday(t) }

// RestoreHoliday restores a suppressed computed holiday on the default calendar.
func RestoreHoliday(t time.Time) { defaultCal.RestoreHoliday(t) }
