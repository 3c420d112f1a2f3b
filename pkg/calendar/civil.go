package calendar

import (
	"fmt"
	"time"
)

// DateTime is a Gregorian calendar date and time broken into its civil
// components. It carries no location; zone handling stays with the caller.
type DateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// RecurringYear marks a holiday entry that matches its day and month in
// every year.
const RecurringYear = 1970

// Now returns the current date and time in the given location.
// A nil location falls back to the local zone.
func Now(loc *time.Location) DateTime {
	if loc == nil {
		loc = time.Local
	}
	t := time.Now().In(loc)
	return FromTime(t)
}

// FromTime converts a time.Time into its civil components.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// IsZero reports whether dt is the zero value, used to represent "no date".
func (dt DateTime) IsZero() bool {
	return dt == DateTime{}
}

// Date returns a copy of dt with the time components cleared.
func (dt DateTime) Date() DateTime {
	return DateTime{Year: dt.Year, Month: dt.Month, Day: dt.Day}
}

// SameDay reports whether dt and other fall on the same calendar day.
func (dt DateTime) SameDay(other DateTime) bool {
	return dt.Year == other.Year && dt.Month == other.Month && dt.Day == other.Day
}

// Time converts dt to a time.Time in the given location.
func (dt DateTime) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, 0, loc)
}

// Validate checks that every component is within calendar range.
// The day check is leap-year aware.
func (dt DateTime) Validate() error {
	if dt.Year < 1 || dt.Year > 9999 {
		return fmt.Errorf("year %d out of range 1-9999", dt.Year)
	}
	if dt.Month < time.January || dt.Month > time.December {
		return fmt.Errorf("month %d out of range 1-12", int(dt.Month))
	}
	if dt.Day < 1 || dt.Day > DaysIn(dt.Month, dt.Year) {
		return fmt.Errorf("day %d out of range for %s %d", dt.Day, dt.Month, dt.Year)
	}
	if dt.Hour < 0 || dt.Hour > 23 {
		return fmt.Errorf("hour %d out of range 0-23", dt.Hour)
	}
	if dt.Minute < 0 || dt.Minute > 59 {
		return fmt.Errorf("minute %d out of range 0-59", dt.Minute)
	}
	if dt.Second < 0 || dt.Second > 59 {
		return fmt.Errorf("second %d out of range 0-59", dt.Second)
	}
	return nil
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month and year.
func DaysIn(month time.Month, year int) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// ISOWeekday returns the weekday of the given day with Monday as 1 and
// Sunday as 7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
