// Package sunset lists sunrises and sunsets near a tide station so night time
// can be shaded behind the tide chart.
package sunset

import (
	"math"
	"sort"
	"time"

	"github.com/keep94/sunrise"

	"github.com/spencer-p/tidetimes/pkg/geo"
)

const day = 24 * time.Hour

// GetSunEvents returns the ordered sun events at p between start and
// start+duration inclusive, in UTC. Places with polar day or night on a given
// date contribute no events for it.
func GetSunEvents(start time.Time, duration time.Duration, p geo.Point) SunEvents {
	start = start.UTC()
	end := start.Add(duration)

	// Begin a day early: the sunrise package works by UTC calendar day and an
	// evening west of Greenwich ends after midnight UTC.
	var s sunrise.Sunrise
	s.Around(p.Lat, p.Long, start.Add(-day))

	numDays := int(math.Ceil(duration.Hours()/24)) + 2
	var events SunEvents
	for i := 0; i < numDays; i++ {
		rise, set := s.Sunrise().UTC(), s.Sunset().UTC()
		s.AddDays(1)
		if !rise.Before(set) {
			continue
		}
		for _, e := range []SunEvent{{rise, Sunrise}, {set, Sunset}} {
			if !e.Time.Before(start) && !e.Time.After(end) {
				events = append(events, e)
			}
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	return events
}

// Between returns the events that fall within [from, to].
func (events SunEvents) Between(from, to time.Time) SunEvents {
	var result SunEvents
	for _, e := range events {
		if !e.Time.Before(from) && !e.Time.After(to) {
			result = append(result, e)
		}
	}
	return result
}
