package tides

// Classify tags every interior sample that is strictly higher than both of its
// neighbors as a high tide, and strictly lower than both as a low tide. The
// first and last samples have only one neighbor and are never tagged. Equal
// neighbors never qualify, so a flat top or a double peak of equal heights
// records no extremum at all.
//
// The input is not modified and the result has the same length and order.
func Classify(samples []Sample) Series {
	series := make(Series, len(samples))
	for i := range samples {
		series[i].Sample = samples[i]
	}
	if len(samples) < 3 {
		return series
	}

	for i := 1; i < len(samples)-1; i++ {
		prev, cur, next := samples[i-1].Height, samples[i].Height, samples[i+1].Height
		if cur > prev && cur > next {
			series[i].HighTide = true
		} else if cur < prev && cur < next {
			series[i].LowTide = true
		}
	}
	return series
}
