package elimu

import (
	"fmt"
	"strings"
	"time"
)

// Date handles date-only JSON values such as job and scholarship deadlines.
// The backend emits them as YYYY-MM-DD but occasionally as full timestamps.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time value
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler for Date
func (d *Date) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)

	if str == "" || str == "null" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, str); err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("unable to parse date: %s", str)
}

// MarshalJSON implements json.Marshaler for Date
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, d.Time.Format("2006-01-02"))), nil
}

// String returns the date as YYYY-MM-DD
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// Passed reports whether the date lies strictly before today
func (d Date) Passed() bool {
	if d.Time.IsZero() {
		return false
	}
	today := time.Now().Truncate(24 * time.Hour)
	return d.Time.Before(today)
}
