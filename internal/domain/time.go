package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ISOLayout is the ISO-8601 layout used for every timestamp on the wire
const ISOLayout = "2006-01-02T15:04:05.000000Z07:00"

// ISOTime is a time.Time that encodes as ISO-8601 and decodes from the
// formats produced by common ISO-8601 writers
type ISOTime struct {
	time.Time
}

// NewISOTime wraps t
func NewISOTime(t time.Time) ISOTime {
	return ISOTime{Time: t}
}

// String formats the time with ISOLayout
func (t ISOTime) String() string {
	return t.Time.Format(ISOLayout)
}

// MarshalJSON implements json.Marshaler
func (t ISOTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements custom JSON unmarshalling for flexible timestamp parsing
func (t *ISOTime) UnmarshalJSON(b []byte) error {
	// null leaves the zero time, like time.Time
	if string(b) == "null" {
		return nil
	}
	s := strings.Trim(string(b), "\"")

	parsed, err := ParseISOTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (t ISOTime) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// ParseISOTime tries the supported timestamp formats in order
func ParseISOTime(s string) (time.Time, error) {
	formats := []string{
		ISOLayout,
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999", // isoformat() without timezone
		"2006-01-02T15:04:05",
		time.DateTime,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", s)
}
