package viewport

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/spencer-p/tidetimes/pkg/tides"
)

// axisMargin is left above and below the whole meters that bound the data.
const axisMargin = 0.5

// Closest returns the sample nearest to t, used to mark the current tide.
// Before the first sample or after the last it clamps to that sample. When t
// is exactly halfway between two samples the later one wins.
func Closest(series tides.Series, t time.Time) (tides.ClassifiedSample, bool) {
	if len(series) == 0 {
		return tides.ClassifiedSample{}, false
	}

	i := 0
	for i < len(series) && series[i].Time.Before(t) {
		i++
	}
	if i == 0 {
		return series[0], true
	}
	if i == len(series) {
		return series[len(series)-1], true
	}

	prev, next := series[i-1], series[i]
	if t.Sub(prev.Time) < next.Time.Sub(t) {
		return prev, true
	}
	return next, true
}

// HeightBounds returns the vertical axis range for the series: the lowest
// height floored and the highest ceiled to whole meters, each pushed out by
// half a meter. An empty series reports ok false.
func HeightBounds(series tides.Series) (lo, hi float64, ok bool) {
	if len(series) == 0 {
		return 0, 0, false
	}
	heights := make([]float64, len(series))
	for i := range series {
		heights[i] = series[i].Height
	}
	return math.Floor(floats.Min(heights)) - axisMargin, math.Ceil(floats.Max(heights)) + axisMargin, true
}
