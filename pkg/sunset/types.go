package sunset

import (
	"encoding/json"
	"fmt"
	"time"
)

// SunEvents is a time series of SunEvent.
type SunEvents []SunEvent

// SunEvent is a sunrise or sunset event.
type SunEvent struct {
	Time  time.Time
	Event Event
}

func (s SunEvent) String() string {
	return fmt.Sprintf("%s %s", s.Time.Format(time.RFC822), s.Event)
}

// MarshalJSON encodes the event with a unix timestamp in seconds, matching the
// x values of tide points.
func (s SunEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X     int64  `json:"x"`
		Event string `json:"event"`
	}{s.Time.Unix(), s.Event.String()})
}

// Event encodes a sunrise or sunset event.
type Event bool

const (
	Sunrise Event = true
	Sunset  Event = false
)

func (e Event) String() string {
	if e == Sunrise {
		return "Sunrise"
	}
	return "Sunset"
}
