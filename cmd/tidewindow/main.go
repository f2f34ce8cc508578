// Command tidewindow prints a classified tide series for one place and the
// window a chart would open on.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/spencer-p/tidetimes/pkg/geo"
	"github.com/spencer-p/tidetimes/pkg/noaa"
	"github.com/spencer-p/tidetimes/pkg/sunset"
	"github.com/spencer-p/tidetimes/pkg/tides"
	"github.com/spencer-p/tidetimes/pkg/timetricks"
	"github.com/spencer-p/tidetimes/pkg/viewport"
	"github.com/spencer-p/tidetimes/pkg/visualize"
	"github.com/spencer-p/tidetimes/pkg/worldtides"
)

var (
	location = flag.String("location", "36.9510,-122.0260", "Place as lat,long")
	source   = flag.String("source", "noaa", "Tide source: worldtides or noaa")
	key      = flag.String("key", os.Getenv("WORLD_TIDES_API_KEY"), "WorldTides API key (or set WORLD_TIDES_API_KEY)")
	station  = flag.Int("station", 9413745, "NOAA station id")
	horizon  = flag.Duration("horizon", 24*time.Hour, "How far ahead to fetch")
	step     = flag.Duration("step", time.Hour, "Sampling step")
	lookback = flag.Duration("lookback", 6*time.Hour, "How far before now to fetch")
	verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	asJSON   = flag.Bool("json", false, "Print the chart payload as JSON instead of a table")
)

var (
	highColor = color.New(color.FgGreen, color.Bold)
	lowColor  = color.New(color.FgYellow, color.Bold)
	nowColor  = color.New(color.FgRed)
)

func main() {
	flag.Parse()

	zapLogger := zap.NewNop()
	if *verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			zapLogger = l
		}
	}
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	point, err := geo.ParseLocation(*location)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	var src tides.Source
	switch *source {
	case "worldtides":
		src = &worldtides.Client{Key: *key}
	case "noaa":
		src = &noaa.Client{}
	default:
		fmt.Fprintf(os.Stderr, "unknown source %q\n", *source)
		os.Exit(2)
	}

	now := time.Now()
	q := tides.Query{
		Point:   point,
		Station: *station,
		Start:   now.Add(-*lookback),
		Horizon: *lookback + *horizon,
		Step:    *step,
	}
	log.Debugw("fetching", "source", *source, "query", q)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	samples, err := src.Heights(ctx, q)
	if err != nil {
		fmt.Printf("failed to fetch from %s: %v\n", *source, err)
		os.Exit(1)
	}

	series := tides.Classify(samples)
	if *asJSON {
		img := visualize.NewTidal(series, sunset.GetSunEvents(q.Start, q.Horizon, point))
		img.SetDate(now)
		if err := img.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}
	printSeries(os.Stdout, series, now)
}

// printSeries writes one line per sample under a heading for each day. Samples
// inside the window are marked with a bar.
func printSeries(out io.Writer, series tides.Series, now time.Time) {
	w := viewport.Compute(series, now)
	current, _ := viewport.Closest(series, now)

	for i, cs := range series {
		if i == 0 || !timetricks.SameDay(series[i-1].Time, cs.Time) {
			fmt.Fprintln(out, timetricks.Date(cs.Time))
		}

		mark := " "
		if w.Contains(cs.Time) {
			mark = "|"
		}
		line := fmt.Sprintf("%s %8s %6.2f m", mark, timetricks.Clock(cs.Time), tides.RoundHeight(cs.Height))
		switch {
		case cs.HighTide:
			highColor.Fprintln(out, line+" high")
		case cs.LowTide:
			lowColor.Fprintln(out, line+" low")
		case cs.Time.Equal(current.Time):
			nowColor.Fprintln(out, line+" now")
		default:
			fmt.Fprintln(out, line)
		}
	}

	fmt.Fprintf(out, "window: %s to %s (%s)\n",
		w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339), w.Span().Round(time.Minute))
}
