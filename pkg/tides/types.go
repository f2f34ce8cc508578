package tides

import (
	"context"
	"fmt"
	"time"

	"github.com/spencer-p/tidetimes/pkg/geo"
)

// Sample is a single water height observation.
type Sample struct {
	Time time.Time
	// Height in meters above the source's datum.
	Height float64
}

// ClassifiedSample is a Sample tagged by Classify. At most one of HighTide and
// LowTide is set.
type ClassifiedSample struct {
	Sample
	HighTide bool
	LowTide  bool
}

// Series is a time series of ClassifiedSample, ordered by strictly increasing
// time.
type Series []ClassifiedSample

// Kind is the extremum a classified sample represents, if any.
type Kind uint

const (
	None Kind = iota
	High
	Low
)

func (k Kind) String() string {
	switch k {
	case High:
		return "High Tide"
	case Low:
		return "Low Tide"
	default:
		return "None"
	}
}

// Kind reports which extremum s is.
func (s ClassifiedSample) Kind() Kind {
	switch {
	case s.HighTide:
		return High
	case s.LowTide:
		return Low
	default:
		return None
	}
}

// Event reports whether s is a high or low tide.
func (s ClassifiedSample) Event() bool {
	return s.HighTide || s.LowTide
}

func (s ClassifiedSample) String() string {
	return fmt.Sprintf("{t: %s, v: %f, type: %s}",
		s.Time.Format(time.RFC822),
		s.Height,
		s.Kind())
}

// Events returns the high and low tides of the series, in order.
func (s Series) Events() Series {
	var events Series
	for _, cs := range s {
		if cs.Event() {
			events = append(events, cs)
		}
	}
	return events
}

// Query describes a span of heights to request from a Source.
type Query struct {
	Point geo.Point
	// Station is used by station based sources such as NOAA.
	Station int
	Start   time.Time
	Horizon time.Duration
	Step    time.Duration
}

// End is the last instant covered by the query.
func (q Query) End() time.Time {
	return q.Start.Add(q.Horizon)
}

// Source supplies raw samples, already ordered by time.
type Source interface {
	Heights(ctx context.Context, q Query) ([]Sample, error)
}
