package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/spencer-p/tidetimes/pkg/geo"
	"github.com/spencer-p/tidetimes/pkg/metrics"
	"github.com/spencer-p/tidetimes/pkg/sunset"
	"github.com/spencer-p/tidetimes/pkg/tides"
	"github.com/spencer-p/tidetimes/pkg/viewport"
	"github.com/spencer-p/tidetimes/pkg/visualize"
)

const requestIDHeader = "X-Request-Id"

type ctxKey int

const requestIDKey ctxKey = iota

// Server answers tide queries from a single Source. Horizon, Step and
// Lookback are passed through to every query.
type Server struct {
	Source tides.Source
	// SourceName labels metrics and the response's source field.
	SourceName string
	Copyright  string
	Station    int
	Horizon    time.Duration
	Step       time.Duration
	// Lookback starts the fetch this long before now.
	Lookback time.Duration
	Log      *zap.SugaredLogger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Register installs /up, /api/v1/tides and /api/v1/window on r.
func Register(r *mux.Router, s *Server) {
	r.Use(requestID)
	r.HandleFunc("/up", handleUp).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/tides", s.serveTides).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/window", s.serveWindow).Methods(http.MethodGet)
}

type units struct {
	Height string `json:"height"`
	Time   string `json:"time"`
}

type tidesData struct {
	Location geo.Point `json:"location"`
	visualize.Chart
	Units     units  `json:"units"`
	Source    string `json:"source"`
	Copyright string `json:"copyright"`
	Timestamp string `json:"timestamp"`
}

type successBody struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type errorBody struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// fetched is one classify pass over freshly fetched samples.
type fetched struct {
	point  geo.Point
	now    time.Time
	start  time.Time
	series tides.Series
}

func (s *Server) serveTides(w http.ResponseWriter, r *http.Request) {
	f, ok := s.fetch(w, r)
	if !ok {
		return
	}

	sun := sunset.GetSunEvents(f.start, s.Lookback+s.Horizon, f.point)
	img := visualize.NewTidal(f.series, sun)
	img.SetDate(f.now)

	writeJSON(w, http.StatusOK, successBody{
		Status: "success",
		Data: tidesData{
			Location:  f.point,
			Chart:     img.Chart(),
			Units:     units{Height: "meters", Time: "UTC"},
			Source:    s.SourceName,
			Copyright: s.Copyright,
			Timestamp: f.now.UTC().Format(time.RFC3339),
		},
	})
}

func (s *Server) serveWindow(w http.ResponseWriter, r *http.Request) {
	f, ok := s.fetch(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, viewport.Compute(f.series, f.now))
}

// fetch validates the request, queries the source and classifies the result.
// On failure it has already written the error response.
func (s *Server) fetch(w http.ResponseWriter, r *http.Request) (fetched, bool) {
	log := s.logger(r.Context())

	point, err := geo.ParsePoint(r.FormValue("lat"), r.FormValue("lng"))
	if err != nil {
		log.Infow("rejected coordinates", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid or missing coordinates",
			"Please provide valid latitude and longitude parameters")
		return fetched{}, false
	}

	now, err := s.parseNow(r.FormValue("now"))
	if err != nil {
		log.Infow("rejected time", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid time", err.Error())
		return fetched{}, false
	}

	q := tides.Query{
		Point:   point,
		Station: s.Station,
		Start:   now.Add(-s.Lookback),
		Horizon: s.Lookback + s.Horizon,
		Step:    s.Step,
	}
	samples, err := s.Source.Heights(r.Context(), q)
	if err != nil {
		metrics.ObserveUpstreamFailure(s.SourceName)
		log.Errorw("failed to fetch tide data", "point", point, "error", err)
		writeError(w, http.StatusServiceUnavailable, "Unable to fetch tide data for the specified location",
			"Failed to retrieve tide data")
		return fetched{}, false
	}

	series := tides.Classify(samples)
	metrics.ObserveSeries(series)
	log.Debugw("classified tide data", "point", point, "samples", len(series), "events", len(series.Events()))

	return fetched{point: point, now: now, start: q.Start, series: series}, true
}

func (s *Server) parseNow(v string) (time.Time, error) {
	if v == "" {
		if s.Now != nil {
			return s.Now(), nil
		}
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("now %q is not RFC 3339: %w", v, err)
	}
	return t, nil
}

func (s *Server) logger(ctx context.Context) *zap.SugaredLogger {
	log := s.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		log = log.With("request_id", id)
	}
	return log
}

func handleUp(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "ok\n")
}

// requestID tags each request with an id, reusing one set by a proxy.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func writeError(w http.ResponseWriter, code int, message string, errs ...string) {
	writeJSON(w, code, errorBody{
		Status:  "error",
		Message: message,
		Errors:  errs,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("failed to encode JSON response", "error", err)
	}
}
