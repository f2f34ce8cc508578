package tides

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrUnordered = errors.New("samples not in strictly increasing time order")
	ErrBadHeight = errors.New("sample height is not a finite number")
)

// Validate checks what Classify and the windowing code assume but never
// verify: timestamps strictly increase and every height is finite. Sources
// call it on decoded data so malformed upstream payloads fail at the boundary.
func Validate(samples []Sample) error {
	for i, s := range samples {
		if math.IsNaN(s.Height) || math.IsInf(s.Height, 0) {
			return fmt.Errorf("sample %d at %s: %w", i, s.Time.Format(time.RFC3339), ErrBadHeight)
		}
		if i > 0 && !s.Time.After(samples[i-1].Time) {
			return fmt.Errorf("sample %d at %s follows %s: %w",
				i, s.Time.Format(time.RFC3339), samples[i-1].Time.Format(time.RFC3339), ErrUnordered)
		}
	}
	return nil
}
