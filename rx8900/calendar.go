package rx8900

import (
	"errors"
	"fmt"
	"time"
)

// Epoch arithmetic counts naive local seconds from 1970-01-01 00:00:00. Every
// year divisible by four is a leap year, which is exact across the range the
// two-digit year register can hold.

const (
	secondsPerDay = 86400

	// MaxEpoch is the first second after the range of the year register
	// (2070-01-01 00:00:00).
	MaxEpoch = 3155760000
)

// ErrOutOfRange is returned for calendar or alarm values the chip can't hold.
var ErrOutOfRange = errors.New("value out of range")

// DateTime is a calendar reading as the chip stores it. Fields are not kept
// consistent with each other when set individually; Weekday in particular is
// recomputed whenever the clock is written.
type DateTime struct {
	Year    int // full year; a value below 100 is taken as 20xx
	Month   int // 1-12
	Day     int // 1-31
	Weekday time.Weekday
	Hour    int // 0-23
	Minute  int
	Second  int
}

// monthThreshold holds, per month, the day of the year (counted from zero)
// that every day of that month is above, for a non-leap year. January's -1
// makes it the fallback when scanning downwards.
var monthThreshold = [13]int{0, -1, 30, 58, 89, 119, 150, 180, 211, 242, 272, 303, 333}

func isLeap(year int) bool {
	return year%4 == 0
}

func threshold(month int, leap bool) int {
	t := monthThreshold[month]
	if leap && month >= 3 {
		t++
	}
	return t
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// yearStart returns the number of days from the epoch to the first day of the
// year that is offset years after 1970.
func yearStart(offset int64) int64 {
	// offset*365 + ceil((offset-2)/4)
	return offset*365 - floorDiv(-(offset-2), 4)
}

// DaysSinceEpoch returns the number of whole days in s.
func DaysSinceEpoch(s int64) int64 {
	return floorDiv(s, secondsPerDay)
}

// YearOf returns the calendar year containing s.
func YearOf(s int64) int {
	// floor((days + 0.5) / 365.25), kept in integers
	return 1970 + int(floorDiv(4*DaysSinceEpoch(s)+2, 1461))
}

// DayOfYear returns the day within the year of s, with January 1st as 0.
func DayOfYear(s int64) int {
	offset := int64(YearOf(s) - 1970)
	return int(DaysSinceEpoch(s) - yearStart(offset))
}

func monthDay(s int64) (month, day int) {
	yday := DayOfYear(s)
	leap := isLeap(YearOf(s))
	for m := 12; m > 1; m-- {
		if t := threshold(m, leap); yday > t {
			return m, yday - t
		}
	}
	return 1, yday + 1
}

// MonthOf returns the month (1-12) of s.
func MonthOf(s int64) int {
	m, _ := monthDay(s)
	return m
}

// DayOf returns the day of the month (1-31) of s.
func DayOf(s int64) int {
	_, d := monthDay(s)
	return d
}

// WeekdayOf returns the day of the week of s. The epoch falls on a Thursday.
func WeekdayOf(s int64) time.Weekday {
	return time.Weekday(floorMod(DaysSinceEpoch(s)+4, 7))
}

func HourOf(s int64) int {
	return int(floorMod(floorDiv(s, 3600), 24))
}

func MinuteOf(s int64) int {
	return int(floorMod(floorDiv(s, 60), 60))
}

func SecondOf(s int64) int {
	return int(floorMod(s, 60))
}

// ToEpoch converts a calendar reading to epoch seconds. Years below 100 are
// taken to be in the 21st century. A month outside 1-12 adds neither the month
// nor the day to the result.
func ToEpoch(year, month, day, hour, minute, second int) int64 {
	if year < 100 {
		year += 2000
	}
	days := yearStart(int64(year - 1970))
	if month >= 1 && month <= 12 {
		days += int64(threshold(month, isLeap(year)) + day)
	}
	return ((days*24+int64(hour))*60+int64(minute))*60 + int64(second)
}

// FromEpoch splits epoch seconds into a calendar reading, including the
// weekday.
func FromEpoch(s int64) DateTime {
	month, day := monthDay(s)
	return DateTime{
		Year:    YearOf(s),
		Month:   month,
		Day:     day,
		Weekday: WeekdayOf(s),
		Hour:    HourOf(s),
		Minute:  MinuteOf(s),
		Second:  SecondOf(s),
	}
}

// FromTime takes the wall clock fields of t, ignoring its location.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Weekday: t.Weekday(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
	}
}

// Epoch returns dt as epoch seconds. The Weekday field is not used.
func (dt DateTime) Epoch() int64 {
	return ToEpoch(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}

// Time returns dt as a time.Time in UTC.
func (dt DateTime) Time() time.Time {
	year := dt.Year
	if year < 100 {
		year += 2000
	}
	return time.Date(year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, 0, time.UTC)
}

// Validate reports whether every field of dt fits in the chip's registers.
func (dt DateTime) Validate() error {
	year := dt.Year
	if year < 100 {
		year += 2000
	}
	switch {
	case year < 1970 || year > 2069:
		return fmt.Errorf("year %d: %w", dt.Year, ErrOutOfRange)
	case dt.Month < 1 || dt.Month > 12:
		return fmt.Errorf("month %d: %w", dt.Month, ErrOutOfRange)
	case dt.Day < 1 || dt.Day > 31:
		return fmt.Errorf("day %d: %w", dt.Day, ErrOutOfRange)
	case dt.Hour < 0 || dt.Hour > 23:
		return fmt.Errorf("hour %d: %w", dt.Hour, ErrOutOfRange)
	case dt.Minute < 0 || dt.Minute > 59:
		return fmt.Errorf("minute %d: %w", dt.Minute, ErrOutOfRange)
	case dt.Second < 0 || dt.Second > 59:
		return fmt.Errorf("second %d: %w", dt.Second, ErrOutOfRange)
	}
	return nil
}
