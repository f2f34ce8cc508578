package worldtides

import (
	"errors"

	"github.com/spencer-p/tidetimes/pkg/tides"
	"github.com/spencer-p/tidetimes/pkg/timetricks"
)

var ErrMissingKey = errors.New("worldtides: no API key configured")

// Height is one entry of the heights array.
type Height struct {
	// Unix time in seconds
	DT int64 `json:"dt"`
	// Height in meters
	Height float64 `json:"height"`
}

// Result is the data type returned by the WorldTides API. Only the fields we
// use are decoded.
type Result struct {
	Status    int      `json:"status"`
	Error     string   `json:"error"`
	Copyright string   `json:"copyright"`
	Station   string   `json:"station"`
	Heights   []Height `json:"heights"`
}

// Samples converts the heights to tide samples in UTC.
func (r *Result) Samples() []tides.Sample {
	samples := make([]tides.Sample, len(r.Heights))
	for i, h := range r.Heights {
		samples[i] = tides.Sample{
			Time:   timetricks.Unix(h.DT),
			Height: h.Height,
		}
	}
	return samples
}
