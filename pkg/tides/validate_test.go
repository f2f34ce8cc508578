package tides

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	dup := hourly(1, 2, 3)
	dup[2].Time = dup[1].Time

	backwards := hourly(1, 2, 3)
	backwards[0], backwards[2] = backwards[2], backwards[0]

	nan := hourly(1, 2, 3)
	nan[1].Height = math.NaN()

	table := []struct {
		name    string
		samples []Sample
		want    error
	}{
		{"empty", nil, nil},
		{"ordered", hourly(1, 2, 3, 2, 1), nil},
		{"duplicate timestamp", dup, ErrUnordered},
		{"out of order", backwards, ErrUnordered},
		{"nan height", nan, ErrBadHeight},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.samples)
			if tc.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

// The classifier stays permissive: unordered input is classified by position
// without complaint.
func TestClassifyUnorderedIsPermissive(t *testing.T) {
	samples := hourly(1.0, 1.5, 1.0)
	samples[0].Time, samples[2].Time = samples[2].Time, samples[0].Time
	if got := kinds(Classify(samples)); got != "-H-" {
		t.Errorf("got %q, want %q", got, "-H-")
	}
}
