package utils

import "time"

// PeriodOf returns the billing period containing t: the first day of its
// calendar month, at midnight UTC.
func PeriodOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// CurrentPeriod returns the period for the current month.
func CurrentPeriod() time.Time {
	return PeriodOf(time.Now().UTC())
}

// DueDateFor returns the due date for a period: the first day of the
// following month.
func DueDateFor(period time.Time) time.Time {
	return period.AddDate(0, 1, 0)
}

// ValidatePeriod checks that a period value is well formed (first day of a
// month, no time-of-day component).
func ValidatePeriod(period time.Time) error {
	if period.IsZero() {
		return NewValidationError("period is required")
	}
	p := period.UTC()
	if p.Day() != 1 || p.Hour() != 0 || p.Minute() != 0 || p.Second() != 0 || p.Nanosecond() != 0 {
		return NewValidationError("period must be the first day of a month")
	}
	return nil
}
