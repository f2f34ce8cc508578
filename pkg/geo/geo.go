// Package geo parses and validates the coordinates callers hand us before any
// tide data is requested for them.
package geo

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// literalPoint matches a "lat,long" pair typed straight into a search box.
var literalPoint = regexp.MustCompile(`^-?\d+\.\d+,-?\d+\.\d+$`)

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat  float64 `json:"latitude"`
	Long float64 `json:"longitude"`
}

// Valid reports whether p lies within [-90,90] x [-180,180].
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Long >= -180 && p.Long <= 180
}

func (p Point) String() string {
	return fmt.Sprintf("%g, %g", p.Lat, p.Long)
}

// ParsePoint parses latitude and longitude query values. Missing, non-numeric
// and out of range values all fail with ErrInvalidCoordinates.
func ParsePoint(lat, long string) (Point, error) {
	if lat == "" || long == "" {
		return Point{}, fmt.Errorf("%w: latitude and longitude are required", ErrInvalidCoordinates)
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: latitude %q: %v", ErrInvalidCoordinates, lat, err)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(long), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: longitude %q: %v", ErrInvalidCoordinates, long, err)
	}
	p := Point{Lat: la, Long: lo}
	if !p.Valid() {
		return Point{}, fmt.Errorf("%w: %s out of range", ErrInvalidCoordinates, p)
	}
	return p, nil
}

// ParseLocation accepts the literal "lat,long" form, e.g. "37.7749,-122.4194".
// Place names are not resolved here.
func ParseLocation(s string) (Point, error) {
	s = strings.TrimSpace(s)
	if !literalPoint.MatchString(s) {
		return Point{}, fmt.Errorf("%w: %q is not a lat,long pair", ErrInvalidCoordinates, s)
	}
	parts := strings.SplitN(s, ",", 2)
	return ParsePoint(parts[0], parts[1])
}
