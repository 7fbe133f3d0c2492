// Package date provides a calendar date without a time-of-day component.
//
// Release dates and birthdays are dates, not instants: they serialize as
// "YYYY-MM-DD" in JSON and map to the Postgres DATE type.
package date

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Layout is the wire format for dates.
const Layout = "2006-01-02"

// Date is a calendar date. The zero value represents an absent date.
//
// The embedded instant is always midnight UTC, so two Dates built from the
// same calendar day compare equal regardless of source time zone.
type Date struct {
	time.Time
}

// New returns the Date for the given calendar day.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of truncates an instant to its calendar day.
func Of(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day.
func Today() Date {
	return Of(time.Now())
}

// Parse reads a "YYYY-MM-DD" string.
func Parse(value string) (Date, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("date: invalid value %q: %w", value, err)
	}
	return Of(t), nil
}

// String implements [fmt.Stringer].
func (d Date) String() string {
	return d.Format(Layout)
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string,
// or null for the zero value.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(Layout) + `"`), nil
}

// UnmarshalJSON accepts a quoted "YYYY-MM-DD" string or null.
func (d *Date) UnmarshalJSON(raw []byte) error {
	value := string(raw)
	if value == "null" {
		*d = Date{}
		return nil
	}
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return fmt.Errorf("date: invalid JSON value %s", value)
	}

	parsed, err := Parse(value[1 : len(value)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements [driver.Valuer] so the date binds to DATE columns.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Scan implements [sql.Scanner] accepting DATE column values.
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Of(value)
		return nil
	case string:
		parsed, err := Parse(value)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("date: cannot scan %T", src)
	}
}
