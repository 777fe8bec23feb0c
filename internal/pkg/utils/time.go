package utils

import (
	"time"

	"github.com/lakshana011/HealUp/internal/pkg/constvars"
)

func ParseCalendarDate(value string) (time.Time, error) {
	return time.Parse(constvars.DateOnlyFormat, value)
}

func FormatCalendarDate(t time.Time) string {
	return t.Format(constvars.DateOnlyFormat)
}

// TruncateToDay maps an instant to its calendar date at UTC midnight. Reading
// the date in t's own zone first, then pinning to UTC, keeps every date
// comparison on one axis regardless of the zones the inputs arrive in.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsBeforeToday reports whether t falls strictly before today's date,
// ignoring the time-of-day and zone on both sides.
func IsBeforeToday(t, now time.Time) bool {
	return TruncateToDay(t).Before(TruncateToDay(now))
}
