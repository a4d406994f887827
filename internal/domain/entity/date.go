package entity

import (
	"time"

	"ludoteca/internal/errors"
)

// DateLayout is the ISO calendar date format used on every external surface.
const DateLayout = time.DateOnly

// NewDate returns the calendar date y-m-d at UTC midnight.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateDate drops the time-of-day part of t, keeping its calendar date.
func TruncateDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}

	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", value)
	}

	return date, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateRange is a closed interval of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two dates, dropping any time-of-day part.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: TruncateDate(start), End: TruncateDate(end)}
}

// Overlaps reports whether both ranges share at least one day.
// A range ending on day X and one starting on day X overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// Days returns the inclusive number of days covered by the range.
// It is zero or negative when End precedes Start.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}
