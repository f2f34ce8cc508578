package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/mux"

	"github.com/spencer-p/tidetimes/pkg/tides"
)

var tstart = time.Date(2024, time.March, 9, 8, 0, 0, 0, time.UTC)

// fakeSource returns hourly samples from tstart, or err.
type fakeSource struct {
	heights []float64
	err     error
	got     tides.Query
}

func (f *fakeSource) Heights(ctx context.Context, q tides.Query) ([]tides.Sample, error) {
	f.got = q
	if f.err != nil {
		return nil, f.err
	}
	samples := make([]tides.Sample, len(f.heights))
	for i, h := range f.heights {
		samples[i] = tides.Sample{Time: tstart.Add(time.Duration(i) * time.Hour), Height: h}
	}
	return samples, nil
}

func newTestRouter(src *fakeSource) *mux.Router {
	r := mux.NewRouter()
	Register(r, &Server{
		Source:     src,
		SourceName: "fake",
		Copyright:  "test data",
		Horizon:    24 * time.Hour,
		Step:       time.Hour,
		Now:        func() time.Time { return tstart.Add(4 * time.Hour) },
	})
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServeTides(t *testing.T) {
	// high at 10:00, low at 14:00
	src := &fakeSource{heights: []float64{0.5, 1.0, 1.5, 1.2, 1.0, 0.7, 0.4, 0.6, 0.9}}
	rec := get(newTestRouter(src), "/api/v1/tides?lat=37.7749&lng=-122.4194")

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body)
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Errorf("response has no request id")
	}

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Location struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"location"`
			Tides []struct {
				X          int64   `json:"x"`
				Y          float64 `json:"y"`
				IsHighTide bool    `json:"isHighTide"`
				IsLowTide  bool    `json:"isLowTide"`
			} `json:"tides"`
			Window struct {
				Start int64 `json:"start"`
				End   int64 `json:"end"`
			} `json:"window"`
			Units     map[string]string `json:"units"`
			Source    string            `json:"source"`
			Timestamp string            `json:"timestamp"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if body.Status != "success" {
		t.Errorf("got status %q", body.Status)
	}
	if body.Data.Location.Latitude != 37.7749 || body.Data.Location.Longitude != -122.4194 {
		t.Errorf("got location %+v", body.Data.Location)
	}
	if len(body.Data.Tides) != 9 || !body.Data.Tides[2].IsHighTide || !body.Data.Tides[6].IsLowTide {
		t.Errorf("got tides %+v", body.Data.Tides)
	}
	wantStart := time.Date(2024, time.March, 9, 9, 36, 0, 0, time.UTC).UnixMilli()
	wantEnd := time.Date(2024, time.March, 9, 14, 24, 0, 0, time.UTC).UnixMilli()
	if body.Data.Window.Start != wantStart || body.Data.Window.End != wantEnd {
		t.Errorf("got window %+v, want [%d, %d]", body.Data.Window, wantStart, wantEnd)
	}
	if diff := cmp.Diff(map[string]string{"height": "meters", "time": "UTC"}, body.Data.Units); diff != "" {
		t.Errorf("wrong units (-want,+got):\n%s", diff)
	}
	if body.Data.Source != "fake" || body.Data.Timestamp != "2024-03-09T12:00:00Z" {
		t.Errorf("got source %q timestamp %q", body.Data.Source, body.Data.Timestamp)
	}

	if src.got.Horizon != 24*time.Hour || src.got.Step != time.Hour {
		t.Errorf("query did not carry the configured horizon and step: %+v", src.got)
	}
}

func TestServeTidesErrors(t *testing.T) {
	table := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{"missing coordinates", "/api/v1/tides", nil, http.StatusBadRequest},
		{"latitude out of range", "/api/v1/tides?lat=91&lng=181", nil, http.StatusBadRequest},
		{"bad now", "/api/v1/tides?lat=1.5&lng=2.5&now=noon", nil, http.StatusBadRequest},
		{"source down", "/api/v1/tides?lat=1.5&lng=2.5", errors.New("boom"), http.StatusServiceUnavailable},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(newTestRouter(&fakeSource{err: tc.err}), tc.target)
			if rec.Code != tc.want {
				t.Errorf("got status %d, want %d", rec.Code, tc.want)
			}
			var body errorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Status != "error" || body.Message == "" || len(body.Errors) == 0 {
				t.Errorf("got error body %+v", body)
			}
		})
	}
}

func TestServeWindow(t *testing.T) {
	src := &fakeSource{heights: []float64{0.5, 1.0, 1.5, 1.2, 1.0, 0.7, 0.4, 0.6, 0.9}}
	rec := get(newTestRouter(src), "/api/v1/window?lat=1.5&lng=2.5&now=2024-03-09T12:00:00Z")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body)
	}

	var got struct {
		Start int64 `json:"start"`
		End   int64 `json:"end"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Start != time.Date(2024, time.March, 9, 9, 36, 0, 0, time.UTC).UnixMilli() {
		t.Errorf("got start %d", got.Start)
	}
	if !src.got.Start.Equal(time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("query started at %v, want the requested now", src.got.Start)
	}
}

func TestRequestIDReused(t *testing.T) {
	const id = "3f8c1d2e-6b0a-4c4e-9d7f-2a1b0c9e8d7f"
	req := httptest.NewRequest(http.MethodGet, "/up", nil)
	req.Header.Set(requestIDHeader, id)
	rec := httptest.NewRecorder()
	newTestRouter(&fakeSource{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("got status %d", rec.Code)
	}
	if got := rec.Header().Get(requestIDHeader); got != id {
		t.Errorf("got request id %q, want %q", got, id)
	}
}
