package seholiday

import "time"

// stockholm is the Europe/Stockholm timezone used to normalize all input
// times to the Swedish calendar date before holiday lookups. When no IANA
// timezone database is available, plain CET is used as a fallback; summer
// instants then resolve to the wrong calendar date near midnight, so ship
// tzdata on platforms that lack it.
var stockholm = loadStockholm()

func loadStockholm() *time.Location {
	if loc, err := time.LoadLocation("Europe/Stockholm"); err == nil {
		return loc
	}
	return time.FixedZone("CET", 60*60)
}

// Location returns the timezone the calendar interprets dates in
// (Europe/Stockholm).
func Location() *time.Location {
	return stockholm
}

// date is an internal comparable key for map lookups.
// Users work with time.Time; this type is not exported.
type date struct {
	year  int
	month time.Month
	day   int
}

// dateFromTime converts a time.Time to a date by first normalizing to
// Europe/Stockholm. This ensures that a moment in time always maps to the
// correct Swedish calendar date regardless of the input timezone.
func dateFromTime(t time.Time) date {
	st := t.In(stockholm)
	y, m, d := st.Date()
	return date{year: y, month: m, day: d}
}

// toTime returns local midnight of the date in Europe/Stockholm.
func (d date) toTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, stockholm)
}

// weekday returns the day of week of the date.
func (d date) weekday() time.Weekday {
	return d.toTime().Weekday()
}

// ordinal returns the 1-based day-of-year of the date.
func (d date) ordinal() int {
	return d.toTime().YearDay()
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d date) after(other date) bool {
	return other.before(d)
}

func (d date) inRange(from, to date) bool {
	return !d.before(from) && !to.before(d)
}
