package noaa

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var cmpTime = cmp.Comparer(func(a, b Time) bool {
	return time.Time(a).Equal(time.Time(b))
})

func TestParsePrediction(t *testing.T) {
	table := []struct {
		input   string
		want    Prediction
		wantErr bool
	}{{
		input: `{"t":"2020-10-20 02:00", "v":"1.243"}`,
		want: Prediction{
			Time:   Time(time.Date(2020, time.October, 20, 2, 0, 0, 0, time.UTC)),
			Height: 1.243,
		},
	}, {
		input: `{"t":"2019-09-21 06:00", "v":"-0.078"}`,
		want: Prediction{
			Time:   Time(time.Date(2019, time.September, 21, 6, 0, 0, 0, time.UTC)),
			Height: -0.078,
		},
	}, {
		input:   `{"t":"2019-09-21T06:00", "v":"0.1"}`,
		wantErr: true,
	}, {
		input:   `{"t":"2019-09-21 06:00", "v":0.1}`,
		wantErr: true,
	}}

	for _, test := range table {
		t.Run(test.input, func(t *testing.T) {
			var got Prediction

			dec := json.NewDecoder(bytes.NewBufferString(test.input))
			err := dec.Decode(&got)
			if test.wantErr {
				if err == nil {
					t.Errorf("expected an error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %+v", err)
			}

			if diff := cmp.Diff(got, test.want, cmpTime); diff != "" {
				t.Errorf("incorrect parse (-got,+want): %s", diff)
			}
		})
	}
}
