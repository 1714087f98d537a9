package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ClockTime is a time of day with minute precision
type ClockTime struct {
	Hour   int
	Minute int
}

var clockTimeLayouts = []string{"15:04", "3:04 PM", "3:04PM", "03:04 PM"}

// ParseClockTime accepts 24h "15:04" or 12h "3:04 pm" forms
func ParseClockTime(value string) (ClockTime, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	for _, layout := range clockTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return ClockTime{}, fmt.Errorf("invalid time of day %q", value)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On places the clock time on the calendar day of date, in loc
func (c ClockTime) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, loc)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
