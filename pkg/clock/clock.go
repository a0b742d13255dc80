// Package clock parses and formats the two date/time shapes the agenda
// speaks: DD/MM/YYYY dates and HHMM times of day.
package clock

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

const (
	// DateLayout is the wire and display format for calendar dates.
	DateLayout = "02/01/2006"

	timeOfDayLayout = "1504"
)

// TimeOfDay is a time of day expressed as minutes since midnight.
// Values compare directly with <, <= and friends.
type TimeOfDay int

// ParseTimeOfDay parses a strict 4-digit HHMM string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != len(timeOfDayLayout) {
		return 0, fmt.Errorf("time %q must be in HHMM format", s)
	}
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// MustTimeOfDay is ParseTimeOfDay for trusted literals.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// AlignedTo reports whether the time falls on a multiple of the given
// slot size in minutes.
func (t TimeOfDay) AlignedTo(minutes int) bool {
	return minutes > 0 && int(t)%minutes == 0
}

// String renders the time as HH:mm for display.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ParseDate parses a strict DD/MM/YYYY string into the midnight instant of
// that day in local time. Impossible calendar dates are rejected.
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("date %q must be in DD/MM/YYYY format", s)
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date as dd/MM/yyyy for display.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Combine anchors a time of day on the given date's day.
func Combine(date time.Time, t TimeOfDay) time.Time {
	day := StartOfDay(date)
	return day.Add(time.Duration(t) * time.Minute)
}

// StartOfDay truncates an instant to the midnight that began its day.
func StartOfDay(t time.Time) time.Time {
	return now.New(t).BeginningOfDay()
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// AgeYears is the number of whole years elapsed from birth to ref.
func AgeYears(birth, ref time.Time) int {
	years := ref.Year() - birth.Year()
	if birth.AddDate(years, 0, 0).After(ref) {
		years--
	}
	return years
}
