package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/spencer-p/tidetimes/pkg/handlers"
	"github.com/spencer-p/tidetimes/pkg/metrics"
	"github.com/spencer-p/tidetimes/pkg/noaa"
	"github.com/spencer-p/tidetimes/pkg/tides"
	"github.com/spencer-p/tidetimes/pkg/worldtides"
)

type Config struct {
	Port   string `default:"8080"`
	Prefix string `default:"/"`
	Debug  bool   `default:"false"`

	// Source is "worldtides" or "noaa".
	Source        string        `default:"worldtides"`
	WorldTidesKey string        `envconfig:"WORLD_TIDES_API_KEY"`
	WorldTidesURL string        `envconfig:"WORLD_TIDES_URL" default:"https://www.worldtides.info/api/v2"`
	NOAAStation   int           `envconfig:"NOAA_STATION" default:"9413745"`
	Horizon       time.Duration `default:"24h"`
	Step          time.Duration `default:"1h"`
	Lookback      time.Duration `default:"0s"`
}

func newServer(env Config, logger *zap.SugaredLogger) (*handlers.Server, error) {
	httpClient := &http.Client{Timeout: 10 * time.Second}
	srv := &handlers.Server{
		SourceName: env.Source,
		Horizon:    env.Horizon,
		Step:       env.Step,
		Lookback:   env.Lookback,
		Log:        logger,
	}

	var src tides.Source
	switch env.Source {
	case "worldtides":
		if env.WorldTidesKey == "" {
			return nil, worldtides.ErrMissingKey
		}
		src = &worldtides.Client{Key: env.WorldTidesKey, BaseURL: env.WorldTidesURL, HTTP: httpClient}
		srv.SourceName = "WorldTides API"
		srv.Copyright = "Tide data provided by WorldTides"
	case "noaa":
		src = &noaa.Client{HTTP: httpClient}
		srv.SourceName = "NOAA CO-OPS"
		srv.Copyright = "Tide predictions provided by NOAA"
		srv.Station = env.NOAAStation
	default:
		return nil, fmt.Errorf("unknown tide source %q", env.Source)
	}
	srv.Source = src
	return srv, nil
}

func main() {
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}

	var zapLogger *zap.Logger
	var err error
	if env.Debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Printf("can't initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)
	logger := zapLogger.Sugar()

	tideServer, err := newServer(env, logger)
	if err != nil {
		logger.Fatalf("configuring tide source: %v", err)
	}

	r := mux.NewRouter().StrictSlash(true)
	r.Use(metrics.LatencyHandler)
	r.Handle("/metrics", metrics.Handler())
	s := r.PathPrefix(env.Prefix).Subrouter()
	handlers.Register(s, tideServer)

	h := ghandlers.CORS(ghandlers.AllowedMethods([]string{http.MethodGet}))(r)
	h = ghandlers.LoggingHandler(zap.NewStdLog(zapLogger).Writer(), h)

	srv := &http.Server{
		Handler:      h,
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	logger.Infof("Listening and serving on %s%s with source %s", srv.Addr, env.Prefix, tideServer.SourceName)
	logger.Fatal(srv.ListenAndServe())
}
