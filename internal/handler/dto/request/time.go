package request

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"
)

const localDateTimeLayout = "2006-01-02T15:04:05"

var ErrInvalidDateTime = errs.Validation("date-time must be RFC 3339 or yyyy-MM-ddTHH:mm:ss")

// DateTime accepts RFC 3339 values and zone-less local date-times, read as UTC.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.ParseInLocation(localDateTimeLayout, s, time.UTC)
	if err != nil {
		return ErrInvalidDateTime
	}
	d.Time = t
	return nil
}

func (d *DateTime) Value() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
