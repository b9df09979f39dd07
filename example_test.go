package seholiday_test

import (
	"fmt"
	"time"

	seholiday "github.com/nicrgren/holidays-se"
)

var sthlm = seholiday.Location()

func ExampleIsHoliday() {
	t := time.Date(2020, time.December, 25, 0, 0, 0, 0, sthlm)
	fmt.Println(seholiday.IsHoliday(t))
	// Output: true
}

func ExampleHolidayName() {
	t := time.Date(2020, time.December, 25, 0, 0, 0, 0, sthlm)
	fmt.Println(seholiday.HolidayName(t))
	// Output: juldagen
}

func ExampleHolidaysInMonth() {
	holidays := seholiday.HolidaysInMonth(2020, time.December)
	for _, h := range holidays {
		fmt.Printf("%s: %s\n", h.Date.Format("01-02"), h.Name)
	}
	// Output:
	// 12-24: julafton
	// 12-25: juldagen
	// 12-26: annandag jul
	// 12-31: nyårsafton
}

func ExampleDayKindOf() {
	saturday := time.Date(2020, time.September, 19, 0, 0, 0, 0, sthlm)
	sunday := time.Date(2020, time.September, 20, 0, 0, 0, 0, sthlm)
	fmt.Println(seholiday.DayKindOf(saturday))
	fmt.Println(seholiday.DayKindOf(sunday))
	// Output:
	// DayBeforeHoliday
	// Holiday
}

func ExampleSlices() {
	start := time.Date(2020, time.September, 18, 0, 0, 0, 0, sthlm) // Friday
	end := time.Date(2020, time.September, 21, 13, 15, 0, 0, sthlm) // Monday

	slices, err := seholiday.Slices(start, end)
	if err != nil {
		panic(err)
	}
	for s := range slices {
		fmt.Printf("%s .. %s %s\n",
			s.Start.Format("01-02 15:04"), s.End.Format("01-02 15:04"), s.Kind)
	}
	// Output:
	// 09-18 00:00 .. 09-19 00:00 Weekday
	// 09-19 00:00 .. 09-20 00:00 DayBeforeHoliday
	// 09-20 00:00 .. 09-21 00:00 Holiday
	// 09-21 00:00 .. 09-21 13:15 Weekday
}

func ExampleNextKindStart() {
	// Saturday afternoon: the next weekday begins Monday at midnight.
	from := time.Date(2020, time.October, 24, 13, 37, 0, 0, sthlm)
	next := seholiday.NextKindStart(seholiday.KindWeekday, from)
	fmt.Println(next.Format("2006-01-02 15:04"))
	// Output: 2020-10-26 00:00
}

func ExampleIsBusinessDay() {
	fmt.Println(seholiday.IsBusinessDay(time.Date(2020, time.September, 17, 0, 0, 0, 0, sthlm))) // Thursday
	fmt.Println(seholiday.IsBusinessDay(time.Date(2020, time.September, 19, 0, 0, 0, 0, sthlm))) // Saturday
	fmt.Println(seholiday.IsBusinessDay(time.Date(2020, time.June, 19, 0, 0, 0, 0, sthlm)))      // midsommarafton
	// Output:
	// true
	// false
	// false
}

func ExampleNew() {
	cal := seholiday.New()
	day := time.Date(2020, time.September, 16, 0, 0, 0, 0, sthlm)
	cal.AddCustomHoliday(day, "företagsdagen")
	fmt.Println(cal.IsHoliday(day))
	fmt.Println(cal.HolidayName(day))
	// Output:
	// true
	// företagsdagen
}
