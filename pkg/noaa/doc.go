// Package noaa implements queries to NOAA CO-OPS to retrieve tide data.  Tide
// data is requested as an hourly time series per station (see tides.Query).  A
// successful query returns the predicted water height for every hour in
// meters above MLLW. All times are UTC.
package noaa
