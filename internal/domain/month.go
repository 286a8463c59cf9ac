package domain

import (
	"fmt"
	"time"
)

// MonthKey identifies a calendar month. Its text form is "YYYY-MM".
type MonthKey struct {
	Year  int
	Month time.Month
}

// ParseMonthKey parses "YYYY-MM". It returns ErrInvalidMonth on malformed input.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return MonthKey{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// String returns the zero-padded "YYYY-MM" form.
func (m MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label returns the display form, e.g. "June 2025".
func (m MonthKey) Label() string {
	return fmt.Sprintf("%s %d", m.Month.String(), m.Year)
}

// Previous returns the month before m, rolling the year under January.
func (m MonthKey) Previous() MonthKey {
	if m.Month == time.January {
		return MonthKey{Year: m.Year - 1, Month: time.December}
	}
	return MonthKey{Year: m.Year, Month: m.Month - 1}
}

// Before reports whether m is earlier than o.
func (m MonthKey) Before(o MonthKey) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// Contains reports whether t falls in m.
func (m MonthKey) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Start returns midnight UTC on the first day of m.
func (m MonthKey) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in m.
func (m MonthKey) DaysIn() int {
	return m.Start().AddDate(0, 1, -1).Day()
}

// MonthBucket is a selectable month for dropdowns and filters.
// swagger:model MonthBucket
type MonthBucket struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
