package noaa

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spencer-p/tidetimes/pkg/tides"
)

const predTimeFormat = "2006-01-02 15:04"

// Prediction holds a single predicted water height.
type Prediction struct {
	// UTC time of prediction
	Time Time `json:"t"`
	// Height in meters
	Height Height `json:"v"`
}

// Verify the custom types can be unmarshaled
var _ json.Unmarshaler = &Time{}
var _ json.Unmarshaler = new(Height)

// Predictions is a time series of Prediction.
type Predictions []Prediction

// NOAAResult is the data type returned by the NOAA API. Failed queries still
// return 200 with Error set.
type NOAAResult struct {
	Predictions Predictions `json:"predictions"`
	Error       *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type Time time.Time

func (t *Time) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("prediction time %q not string: %w", buf, err)
	}
	parsed, err := time.ParseInLocation(predTimeFormat, s, time.UTC)
	if err != nil {
		return fmt.Errorf("prediction time %q not in fmt %q: %w", s, predTimeFormat, err)
	}
	*t = Time(parsed)
	return nil
}

type Height float64

func (h *Height) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("water height %q not string: %w", buf, err)
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("water height %q not a float: %w", s, err)
	}
	*h = Height(parsed)
	return nil
}

// Samples converts the predictions to tide samples.
func (preds Predictions) Samples() []tides.Sample {
	samples := make([]tides.Sample, len(preds))
	for i, p := range preds {
		samples[i] = tides.Sample{
			Time:   time.Time(p.Time),
			Height: float64(p.Height),
		}
	}
	return samples
}
