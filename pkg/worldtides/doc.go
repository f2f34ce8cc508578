// Package worldtides queries the WorldTides v2 API for predicted water heights
// at a latitude and longitude. Heights are returned in meters above Lowest
// Astronomical Tide at a fixed step, all times UTC.
package worldtides
