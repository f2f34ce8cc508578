// Package visualize prepares a classified tide series for a chart widget. It
// does no drawing: it produces the points, event markers, current tide marker,
// axis bounds and initial zoom window the front end plots.
package visualize

import (
	"encoding/json"
	"io"
	"time"

	"github.com/spencer-p/tidetimes/pkg/sunset"
	"github.com/spencer-p/tidetimes/pkg/tides"
	"github.com/spencer-p/tidetimes/pkg/timetricks"
	"github.com/spencer-p/tidetimes/pkg/viewport"
)

// Point is one sample in the form the chart consumes.
type Point struct {
	// Unix time in seconds
	X int64 `json:"x"`
	// Height rounded to centimeters
	Y          float64 `json:"y"`
	IsHighTide bool    `json:"isHighTide"`
	IsLowTide  bool    `json:"isLowTide"`
	Time       string  `json:"time"`
	Date       string  `json:"date"`
}

// Marker is a high or low tide labelled for a tooltip.
type Marker struct {
	Point
	Type string `json:"type"`
}

// Chart is everything the front end needs to draw one tide chart.
type Chart struct {
	Points  []Point          `json:"tides"`
	Events  []Marker         `json:"events"`
	Current *Point           `json:"current,omitempty"`
	Window  viewport.Window  `json:"window"`
	YMin    float64          `json:"yMin"`
	YMax    float64          `json:"yMax"`
	Sun     sunset.SunEvents `json:"sun,omitempty"`
}

type Tidal struct {
	date      time.Time
	series    tides.Series
	sunEvents sunset.SunEvents
}

func NewTidal(series tides.Series, sunEvents sunset.SunEvents) *Tidal {
	return &Tidal{
		series:    series,
		sunEvents: sunEvents,
	}
}

// SetDate sets the instant the chart is centered on.
func (img *Tidal) SetDate(t time.Time) {
	img.date = t
}

// Chart lays out the series around the date set with SetDate.
func (img *Tidal) Chart() Chart {
	c := Chart{
		Points: Points(img.series),
		Events: []Marker{},
		Window: img.window(),
	}

	for _, cs := range img.series {
		if cs.Event() {
			c.Events = append(c.Events, Marker{Point: toPoint(cs), Type: cs.Kind().String()})
		}
	}

	if cur, ok := viewport.Closest(img.series, img.date); ok {
		p := toPoint(cur)
		c.Current = &p
	}

	if lo, hi, ok := viewport.HeightBounds(img.series); ok {
		c.YMin, c.YMax = lo, hi
	}

	if len(img.series) > 0 {
		c.Sun = img.sunEvents.Between(
			earliest(img.series[0].Time, c.Window.Start),
			latest(img.series[len(img.series)-1].Time, c.Window.End))
	}
	return c
}

// Encode writes the chart as JSON.
func (img *Tidal) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(img.Chart())
}

// window is the zoom window at the chart's date. When the date falls exactly
// on a tide event the computed window has no width, and the chart falls back
// to the window it would show with no events at all.
func (img *Tidal) window() viewport.Window {
	w := viewport.Compute(img.series, img.date)
	if w.Degenerate() {
		return viewport.Fallback(img.date)
	}
	return w
}

// Points converts a series to chart points.
func Points(series tides.Series) []Point {
	points := make([]Point, len(series))
	for i, cs := range series {
		points[i] = toPoint(cs)
	}
	return points
}

func toPoint(cs tides.ClassifiedSample) Point {
	t := cs.Time.UTC()
	return Point{
		X:          t.Unix(),
		Y:          tides.RoundHeight(cs.Height),
		IsHighTide: cs.HighTide,
		IsLowTide:  cs.LowTide,
		Time:       timetricks.Clock(t),
		Date:       timetricks.Date(t),
	}
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
