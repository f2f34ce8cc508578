package noaa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spencer-p/tidetimes/pkg/tides"
)

const (
	NOAA_URL = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"
	TIME_FMT = "20060102 15:04"
)

var ErrNoStation = errors.New("noaa: query has no station")

// Client fetches hourly height predictions from NOAA. The zero value uses the
// public endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

var _ tides.Source = &Client{}

// Heights fetches hourly predictions for q.Station. NOAA only offers a fixed
// one hour interval, so q.Step is ignored.
func (c *Client) Heights(ctx context.Context, q tides.Query) ([]tides.Sample, error) {
	var result NOAAResult

	if q.Station == 0 {
		return nil, ErrNoStation
	}

	// Build request URL first
	addr, err := c.url(q)
	if err != nil {
		return nil, err
	}

	// Make the request to NOAA
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("noaa request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("noaa returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, fmt.Errorf("noaa error: %s", result.Error.Message)
	}

	samples := result.Predictions.Samples()
	if err := tides.Validate(samples); err != nil {
		return nil, fmt.Errorf("noaa predictions: %w", err)
	}
	return samples, nil
}

func (c *Client) url(q tides.Query) (*url.URL, error) {
	base := c.BaseURL
	if base == "" {
		base = NOAA_URL
	}
	addr, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	addr.RawQuery = build(q).Encode()
	return addr, nil
}

func build(q tides.Query) url.Values {
	vals := make(url.Values)
	vals.Add("begin_date", q.Start.UTC().Format(TIME_FMT))
	vals.Add("end_date", q.End().UTC().Format(TIME_FMT))
	vals.Add("station", fmt.Sprintf("%d", q.Station))
	vals.Add("product", "predictions")
	vals.Add("datum", "MLLW")
	vals.Add("time_zone", "gmt")
	vals.Add("interval", "h")
	vals.Add("units", "metric")
	vals.Add("format", "json")
	return vals
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
