package seholiday

import "time"

// IsBusinessDay reports whether the given date is a business day (neither a
// weekend nor a holiday). The date is interpreted in Europe/Stockholm.
// Listed eves count as holidays, so julafton and midsommarafton are not
// business days.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	wd := t.In(stockholm).Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !c.IsHoliday(t)
}

// NextHoliday returns the next holiday strictly after the given date.
func (c *Calendar) NextHoliday(t time.Time) Holiday {
	next := dateFromTime(t).toTime().AddDate(0, 0, 1)
	return c.NextUpcomingHoliday(next)
}

// PreviousHoliday returns the most recent holiday strictly before the given
// date.
func (c *Calendar) PreviousHoliday(t time.Time) Holiday {
	prev := dateFromTime(dateFromTime(t).toTime().AddDate(0, 0, -1))
	for year := prev.year; ; year-- {
		to := date{year: year, month: time.December, day: 31}
		if year == prev.year {
			to = prev
		}
		from := date{year: year, month: time.January, day: 1}
		if hs := c.holidaysInRange(from, to); len(hs) > 0 {
			return hs[len(hs)-1]
		}
	}
}

// NextBusinessDay returns the next business day on or after the given date.
// If t itself is a business day, it returns t (normalized to midnight,
// Europe/Stockholm). Returns the zero time if no business day is found
// within 366 days.
func (c *Calendar) NextBusinessDay(t time.Time) time.Time {
	cur := dateFromTime(t).toTime()
	for i := 0; i < 366; i++ {
		if c.IsBusinessDay(cur) {
			return cur
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return time.Time{}
}

// PreviousBusinessDay returns the most recent business day on or before the
// given date. If t itself is a business day, it returns t (normalized to
// midnight, Europe/Stockholm). Returns the zero time if no business day is
// found within 366 days.
func (c *Calendar) PreviousBusinessDay(t time.Time) time.Time {
	cur := dateFromTime(t).toTime()
	for i := 0; i < 366; i++ {
		if c.IsBusinessDay(cur) {
			return cur
		}
		cur = cur.AddDate(0, 0, -1)
	}
	return time.Time{}
}

// BusinessDaysBetween returns the count of business days in the range
// [from, to] inclusive. If from is after to, returns 0.
func (c *Calendar) BusinessDaysBetween(from, to time.Time) int {
	fromD := dateFromTime(from)
	toD := dateFromTime(to)
	if toD.before(fromD) {
		return 0
	}

	count := 0
	cur := fromD.toTime()
	end := toD.toTime()
	for !cur.After(end) {
		if c.IsBusinessDay(cur) {
			count++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return count
}

// --- Package-level convenience functions ---

// IsBusinessDay reports whether the given date is a business day.
func IsBusinessDay(t time.Time) bool { return defaultCal.IsBusinessDay(t) }

// NextHoliday returns the next holiday strictly after the given date.
func NextHoliday(t time.Time) Holiday { return defaultCal.NextHoliday(t) }

// PreviousHoliday returns the most recent holiday strictly before the given date.
func PreviousHoliday(t time.Time) Holiday { return defaultCal.PreviousHoliday(t) }

// NextBusinessDay returns the next business day on or after the given date.
func NextBusinessDay(t time.Time) time.Time { return defaultCal.NextBusinessDay(t) }

// PreviousBusinessDay returns the most recent business day on or before the given date.
func PreviousBusinessDay(t time.Time) time.Time { return defaultCal.PreviousBusinessDay(t) }

// BusinessDaysBetween returns the count of business days in the range [from, to].
func BusinessDaysBetween(from, to time.Time) int { return defaultCal.BusinessDaysBetween(from, to) }
