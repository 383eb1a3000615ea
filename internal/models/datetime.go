package models

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the wire format for all timestamps:
// ISO-8601 local date-time without a zone offset.
const DateTimeLayout = "2006-01-02T15:04:05"

// DateTime wraps time.Time to marshal in DateTimeLayout.
type DateTime struct {
	time.Time
}

// NewDateTime builds a DateTime from a time.Time.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", d.Time.Format(DateTimeLayout))), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	// Tolerate fractional seconds which some clients send.
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05.999999999", s)
		if err != nil {
			return err
		}
	}
	d.Time = t
	return nil
}
