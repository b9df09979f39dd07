package seholiday

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"
)

// DayKind classifies a calendar day of the Swedish calendar.
type DayKind int

const (
	// KindWeekday is an ordinary working day.
	KindWeekday DayKind = iota + 1
	// KindDayBeforeHoliday is the day immediately preceding a holiday.
	// Every Saturday is one, since every Sunday is a holiday.
	KindDayBeforeHoliday
	// KindHoliday is a Sunday or a day listed in the holiday calendar.
	KindHoliday
)

// String returns the name of the kind.
func (k DayKind) String() string {
	switch k {
	case KindWeekday:
		return "Weekday"
	case KindDayBeforeHoliday:
		return "DayBeforeHoliday"
	case KindHoliday:
		return "Holiday"
	default:
		return fmt.Sprintf("DayKind(%d)", int(k))
	}
}

// ParseDayKind converts a kind name as printed by [DayKind.String] into a
// DayKind. Matching is case-insensitive and accepts dashes ("weekday",
// "day-before-holiday", "holiday").
func ParseDayKind(s string) (DayKind, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "")) {
	case "weekday":
		return KindWeekday, nil
	case "daybeforeholiday":
		return KindDayBeforeHoliday, nil
	case "holiday":
		return KindHoliday, nil
	default:
		return 0, fmt.Errorf("unknown day kind %q", s)
	}
}

// DayKindSlice is a maximal run of consecutive instants sharing one
// DayKind. The range is half-open: [Start, End).
type DayKindSlice struct {
	Start time.Time
	End   time.Time
	Kind  DayKind
}

// ErrInvalidRange is returned by [Calendar.Slices] when the range end
// precedes its start.
var ErrInvalidRange = errors.New("seholiday: range end precedes start")

// NextUpcomingHoliday returns the nearest holiday on or after the given
// date, inclusive: if t's own date is a holiday, that entry is returned.
// The calendar is perpetual, so a next holiday always exists.
func (c *Calendar) NextUpcomingHoliday(t time.Time) Holiday {
	d := dateFromTime(t)
	for year := d.year; ; year++ {
		from := date{year: year, month: time.January, day: 1}
		if year == d.year {
			from = d
		}
		to := date{year: year, month: time.December, day: 31}
		if hs := c.holidaysInRange(from, to); len(hs) > 0 {
			return hs[0]
		}
	}
}

// DayKindOf classifies the calendar day the given instant falls on.
//
// Sundays are unconditionally holidays. Otherwise the day is a holiday when
// it is itself the next upcoming holiday, a day-before-holiday when it
// immediately precedes one or is a Saturday, and a weekday in every other
// case. A listed holiday that also precedes another holiday classifies as
// KindHoliday; the holiday check runs first.
//
// The day-before check compares day-of-year ordinals, which cannot reach
// across a year boundary. December 30 still classifies correctly because
// nyårsafton (December 31) is a holiday entry of its own; see computeYear.
func (c *Calendar) DayKindOf(t time.Time) DayKind {
	d := dateFromTime(t)
	if d.weekday() == time.Sunday {
		return KindHoliday
	}

	next := c.NextUpcomingHoliday(t)
	ord := d.ordinal()
	nextOrd := dateFromTime(next.Date).ordinal()

	switch {
	case ord == nextOrd:
		return KindHoliday
	case ord == nextOrd-1 || d.weekday() == time.Saturday:
		return KindDayBeforeHoliday
	default:
		return KindWeekday
	}
}

// Slices splits the half-open range [start, end) into maximal runs of
// constant day kind. The returned sequence is lazy and can be ranged over
// more than once; each pass restarts from start.
//
// The first slice starts exactly at start and the last slice ends exactly
// at end, even when those instants fall mid-day. Every interior boundary is
// a local midnight in start's own timezone, computed with wall-clock
// arithmetic so a slice spanning a DST transition keeps the correct bounds.
// An empty range (start == end) yields no slices. A range whose end
// precedes its start is rejected with [ErrInvalidRange].
func (c *Calendar) Slices(start, end time.Time) (iter.Seq[DayKindSlice], error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: [%s, %s)", ErrInvalidRange,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return c.sliceSeq(start, &end), nil
}

// SlicesFrom is the unbounded variant of [Calendar.Slices]: it yields
// day-kind slices from start onward and never stops on its own. The
// consumer bounds the iteration by breaking out.
func (c *Calendar) SlicesFrom(start time.Time) iter.Seq[DayKindSlice] {
	return c.sliceSeq(start, nil)
}

// sliceSeq produces the slice sequence, with an optional exclusive limit.
// Each yielded slice is found by probing forward one local calendar day at
// a time until the kind changes or the limit cuts the run short, so a full
// bounded traversal costs one classification per day in the range.
func (c *Calendar) sliceSeq(start time.Time, limit *time.Time) iter.Seq[DayKindSlice] {
	return func(yield func(DayKindSlice) bool) {
		cursor := start
		for limit == nil || cursor.Before(*limit) {
			kind := c.DayKindOf(cursor)
			step := cursor

			for {
				next := nextLocalMidnight(step)

				// The limit falls before the next day boundary: the
				// remainder of the range is the final slice.
				if limit != nil && limit.Before(next) {
					if !yield(DayKindSlice{Start: cursor, End: *limit, Kind: kind}) {
						return
					}
					cursor = *limit
					break
				}

				if c.DayKindOf(next) != kind {
					if !yield(DayKindSlice{Start: cursor, End: next, Kind: kind}) {
						return
					}
					cursor = next
					break
				}

				step = next
			}
		}
	}
}

// NextKindStart returns the start of the next run of the given kind at or
// after from. If from already lies inside such a run, from itself is
// returned unchanged.
func (c *Calendar) NextKindStart(kind DayKind, from time.Time) time.Time {
	for s := range c.SlicesFrom(from) {
		if s.Kind == kind {
			return s.Start
		}
	}
	// SlicesFrom never stops on its own; every kind recurs within days.
	panic("seholiday: unbounded slice sequence terminated")
}

// nextLocalMidnight returns midnight at the start of the calendar day
// following t, in t's own location. Wall-clock arithmetic keeps the result
// correct across DST transitions, where a day spans 23 or 25 hours.
func nextLocalMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}

// --- Package-level convenience functions ---

// NextUpcomingHoliday returns the nearest holiday on or after the given date.
func NextUpcomingHoliday(t time.Time) Holiday { return defaultCal.NextUpcomingHoliday(t) }

// DayKindOf classifies the calendar day the given instant falls on.
func DayKindOf(t time.Time) DayKind { return defaultCal.DayKindOf(t) }

// Slices splits [start, end) into maximal runs of constant day kind.
func Slices(start, end time.Time) (iter.Seq[DayKindSlice], error) {
	return defaultCal.Slices(start, end)
}

// SlicesFrom yields day-kind slices from start onward, unbounded.
func SlicesFrom(start time.Time) iter.Seq[DayKindSlice] { return defaultCal.SlicesFrom(start) }

// NextKindStart returns the start of the next run of the given kind at or after from.
func NextKindStart(kind DayKind, from time.Time) time.Time {
	return defaultCal.NextKindStart(kind, from)
}
