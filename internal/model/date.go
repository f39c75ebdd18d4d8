package model

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// DateLayout is the ISO calendar date layout used for storage and forms.
const DateLayout = "2006-01-02"

// shortLayout renders dates as "Jan 20" (en-US, no year).
const shortLayout = "Jan 2"

// Date is a calendar day with no time of day.
type Date struct {
	t time.Time
}

// NewDate returns the date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the UTC calendar date of now, the day posted dates are
// stamped with regardless of the server's zone.
func Today(now time.Time) Date {
	y, m, d := now.UTC().Date()
	return NewDate(y, m, d)
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// ParseOptionalDate parses s and returns nil when s is blank or malformed.
func ParseOptionalDate(s string) *Date {
	if s == "" {
		return nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}

// String returns the ISO form of the date.
func (d Date) String() string { return d.t.Format(DateLayout) }

// Short returns the board's display form, e.g. "Jan 20".
func (d Date) Short() string { return d.t.Format(shortLayout) }

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int { return d.t.Compare(other.t) }

// DaysUntil returns the whole number of days from today until d. It is
// negative when d is in the past.
func (d Date) DaysUntil(today Date) int {
	return int(math.Round(d.t.Sub(today.t).Hours() / 24))
}

// MarshalJSON encodes the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes an ISO date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
