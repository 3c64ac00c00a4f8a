package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for review dates in the store.
const DateLayout = "2006-01-02"

// Date is a day-precision calendar date. It marshals as "YYYY-MM-DD",
// which is what the store's date columns expect.
type Date struct {
	time.Time
}

// NewDate builds a Date from its components, validating them the way a
// calendar would: the month must be 1..12 and the day must exist in that
// month of that year. The bool result is false for any impossible date.
func NewDate(year, month, day int) (Date, bool) {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return Date{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (Feb 30 -> Mar 2); a changed
	// component means the input was not a real date.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return Date{}, false
	}
	return Date{t}, true
}

func (d Date) String() string { return d.Format(DateLayout) }

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON accepts a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date: expected quoted string, got %s", s)
	}
	t, err := time.ParseInLocation(DateLayout, s[1:len(s)-1], time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
