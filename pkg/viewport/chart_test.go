package viewport

import (
	"testing"
	"time"

	"github.com/spencer-p/tidetimes/pkg/tides"
)

func TestClosest(t *testing.T) {
	series := hourlyFrom(8, 0.5, 1.0, 1.5)

	table := []struct {
		name string
		t    time.Time
		want time.Time
	}{
		{"before the series", at(2, 0), at(8, 0)},
		{"after the series", at(23, 0), at(10, 0)},
		{"exact match", at(9, 0), at(9, 0)},
		{"nearer the earlier sample", at(8, 20), at(8, 0)},
		{"nearer the later sample", at(8, 40), at(9, 0)},
		{"halfway goes to the later sample", at(9, 30), at(10, 0)},
	}
	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Closest(series, tc.t)
			if !ok {
				t.Fatalf("no sample found")
			}
			if !got.Time.Equal(tc.want) {
				t.Errorf("got sample at %v, want %v", got.Time, tc.want)
			}
		})
	}

	if _, ok := Closest(nil, at(0, 0)); ok {
		t.Errorf("found a sample in an empty series")
	}
}

func TestHeightBounds(t *testing.T) {
	lo, hi, ok := HeightBounds(hourlyFrom(0, 0.3, 1.7, -0.2, 2.0))
	if !ok {
		t.Fatalf("no bounds for a non-empty series")
	}
	if lo != -1.5 || hi != 2.5 {
		t.Errorf("got [%v, %v], want [-1.5, 2.5]", lo, hi)
	}

	if _, _, ok := HeightBounds(tides.Series{}); ok {
		t.Errorf("got bounds for an empty series")
	}
}
