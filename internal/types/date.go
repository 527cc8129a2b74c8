package types

import (
	"strings"
	"time"

	ierr "github.com/promokit/promokit/internal/errors"
)

// DateFormat is the wire format for calendar dates in rule records and
// in the shop's local-time input.
const DateFormat = "2006-01-02"

// Date is a calendar date without a time component
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string into a Date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ierr.WithError(err).
			WithHintf("Date must be in %s format", DateFormat).
			Mark(ierr.ErrValidation)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateFormat)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string into the date
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
