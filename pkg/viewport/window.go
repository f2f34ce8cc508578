// Package viewport chooses which slice of a classified tide series to show
// around the current time.
package viewport

import (
	"encoding/json"
	"time"

	"github.com/spencer-p/tidetimes/pkg/tides"
)

const (
	// EventCap is how far the window reaches past a lone tide event.
	EventCap = 12 * time.Hour
	// FallbackHalfSpan is half the width of the window used when there are no
	// tide events near now.
	FallbackHalfSpan = 6 * time.Hour
	// PaddingRatio of the raw span is added to each side of the window.
	PaddingRatio = 0.1
)

// Window is an inclusive time range to display.
type Window struct {
	Start time.Time
	End   time.Time
}

// Span is the width of the window.
func (w Window) Span() time.Duration {
	return w.End.Sub(w.Start)
}

// Degenerate reports whether the window has no width.
func (w Window) Degenerate() bool {
	return !w.Start.Before(w.End)
}

// Contains reports whether t falls within the window, inclusive of both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// MarshalJSON encodes the bounds as unix milliseconds, the unit chart axes
// take for zoom limits.
func (w Window) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start int64 `json:"start"`
		End   int64 `json:"end"`
	}{w.Start.UnixMilli(), w.End.UnixMilli()})
}

// Compute picks the window to display at now.
//
// The anchor is the first sample at or after now. From there the nearest tide
// event is searched backward and forward, both searches including the anchor
// itself. When now is past the last sample the anchor is the end of the
// series, so only the backward search can find anything. With events on both
// sides the window runs from one to the other. With only one, it extends
// EventCap away from it, clipped to the series. With none, including for an
// empty series, it is FallbackHalfSpan either side of now.
//
// The result is padded by PaddingRatio of its width on each side so the
// events never sit on the edge of the display.
func Compute(series tides.Series, now time.Time) Window {
	return pad(raw(series, now))
}

func raw(series tides.Series, now time.Time) Window {
	if len(series) == 0 {
		return fallback(now)
	}
	anchor := anchorIndex(series, now)

	prev, havePrev := eventBefore(series, anchor)
	next, haveNext := eventAfter(series, anchor)

	switch {
	case havePrev && haveNext:
		return Window{Start: prev, End: next}
	case havePrev:
		return Window{Start: prev, End: earliest(series[len(series)-1].Time, prev.Add(EventCap))}
	case haveNext:
		return Window{Start: latest(series[0].Time, next.Add(-EventCap)), End: next}
	default:
		return fallback(now)
	}
}

// Fallback is the padded window used when no tide events are near now.
func Fallback(now time.Time) Window {
	return pad(fallback(now))
}

func fallback(now time.Time) Window {
	return Window{Start: now.Add(-FallbackHalfSpan), End: now.Add(FallbackHalfSpan)}
}

func pad(w Window) Window {
	padding := time.Duration(float64(w.Span()) * PaddingRatio)
	return Window{Start: w.Start.Add(-padding), End: w.End.Add(padding)}
}

// anchorIndex finds the first sample at or after t, or len(series) if every
// sample is earlier.
func anchorIndex(series tides.Series, t time.Time) int {
	for i := range series {
		if !series[i].Time.Before(t) {
			return i
		}
	}
	return len(series)
}

func eventBefore(series tides.Series, from int) (time.Time, bool) {
	for i := min(from, len(series)-1); i >= 0; i-- {
		if series[i].Event() {
			return series[i].Time, true
		}
	}
	return time.Time{}, false
}

func eventAfter(series tides.Series, from int) (time.Time, bool) {
	for i := from; i < len(series); i++ {
		if series[i].Event() {
			return series[i].Time, true
		}
	}
	return time.Time{}, false
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
