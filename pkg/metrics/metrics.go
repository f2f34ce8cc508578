package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spencer-p/tidetimes/pkg/tides"
)

const subsystem = "tidetimes"

var (
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "request_latency",
			Subsystem: subsystem,
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0, 8.0, 16.0, 32.0},
		},
		[]string{"verb", "path", "code"},
	)

	tideEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "tide_events_total",
			Subsystem: subsystem,
			Help:      "High and low tides found by the classifier.",
		},
		[]string{"kind"},
	)

	upstreamFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "upstream_failures_total",
			Subsystem: subsystem,
			Help:      "Failed fetches from a tide data source.",
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(
		requestLatency,
		tideEvents,
		upstreamFailures,
	)
}

// Handler serves the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveRequestLatency(verb, path, code string, latency float64) {
	requestLatency.With(prometheus.Labels{
		"code": code,
		"verb": verb,
		"path": path,
	}).Observe(latency)
}

// ObserveSeries counts the tide events in a freshly classified series.
func ObserveSeries(series tides.Series) {
	for _, cs := range series {
		if k := cs.Kind(); k != tides.None {
			tideEvents.WithLabelValues(k.String()).Inc()
		}
	}
}

func ObserveUpstreamFailure(source string) {
	upstreamFailures.WithLabelValues(source).Inc()
}

// unmatchedPath labels requests that reached the handler without a mux route.
const unmatchedPath = "unmatched"

// LatencyHandler is router middleware that observes request latency. Requests
// are labelled with their route's path template rather than the raw path so
// the number of series stays bounded.
func LatencyHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()
		verb := r.Method
		path := routePath(r)
		rec := &statusRecorder{ResponseWriter: w}

		// Defer metric observing. Any panics in next are reported as 500 errors
		// and then re-thrown.
		defer func() {
			if err := recover(); err != nil {
				ObserveRequestLatency(verb, path, "500", time.Since(t).Seconds())
				panic(err)
			}
			ObserveRequestLatency(verb, path, rec.code(), time.Since(t).Seconds())
		}()

		next.ServeHTTP(rec, r)
	})
}

func routePath(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedPath
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedPath
	}
	return tmpl
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) code() string {
	if r.status == 0 {
		// Unset, will be set to 200 by stdlib.
		return "200"
	}
	return strconv.Itoa(r.status)
}
