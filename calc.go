package seholiday

import "time"

// computeYear derives the Swedish holiday set for one year. Unlike calendars
// published as datasets, every Swedish holiday follows from a rule: a fixed
// date, an offset from Easter Sunday, or a weekday within a fixed window.
//
// The eves julafton, nyårsafton and midsommarafton are listed as holidays
// in their own right. Påskafton and pingstafton are NOT entries: they
// always fall on Saturdays and classify as day-before-holiday through the
// Saturday rule, never as holidays. Day-kind classification depends on
// nyårsafton being present: the day-before-holiday rule compares
// day-of-year ordinals and cannot see across a year boundary, so
// December 30 is only recognized as an eve because December 31 is an entry
// of its own.
func computeYear(year int) map[date]string {
	hs := make(map[date]string, 16)

	// Fixed dates.
	hs[date{year, time.January, 1}] = "nyårsdagen"
	hs[date{year, time.January, 6}] = "trettondedag jul"
	hs[date{year, time.May, 1}] = "första maj"
	hs[date{year, time.June, 6}] = "Sveriges nationaldag"
	hs[date{year, time.December, 24}] = "julafton"
	hs[date{year, time.December, 25}] = "juldagen"
	hs[date{year, time.December, 26}] = "annandag jul"
	hs[date{year, time.December, 31}] = "nyårsafton"

	// Easter-derived.
	easter := easterSunday(year)
	atOffset := func(days int, name string) {
		hs[dateFromTime(easter.AddDate(0, 0, days))] = name
	}
	atOffset(-2, "långfredagen")
	atOffset(0, "påskdagen")
	atOffset(1, "annandag påsk")
	atOffset(39, "Kristi himmelsfärdsdag")
	atOffset(49, "pingstdagen")

	// Weekday-window.
	hs[weekdayInWindow(year, time.June, 19, time.Friday)] = "midsommarafton"
	hs[weekdayInWindow(year, time.June, 20, time.Saturday)] = "midsommardagen"
	hs[weekdayInWindow(year, time.October, 31, time.Saturday)] = "alla helgons dag"

	return hs
}

// easterSunday returns Easter Sunday of the given year at midnight in
// Europe/Stockholm, using the Meeus/Jones/Butcher computus for the
// Gregorian calendar.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, stockholm)
}

// weekdayInWindow returns the date of the first occurrence of wd within the
// seven-day window starting at the given day of month. Midsommardagen is the
// Saturday in June 20-26; alla helgons dag the Saturday in October 31 to
// November 6.
func weekdayInWindow(year int, month time.Month, startDay int, wd time.Weekday) date {
	start := time.Date(year, month, startDay, 0, 0, 0, 0, stockholm)
	offset := (int(wd) - int(start.Weekday()) + 7) % 7
	return dateFromTime(start.AddDate(0, 0, offset))
}
