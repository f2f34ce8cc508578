package worldtides

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spencer-p/tidetimes/pkg/tides"
)

const (
	DefaultURL = "https://www.worldtides.info/api/v2"
	// Lowest Astronomical Tide
	datum = "LAT"
)

// Client fetches heights from WorldTides. The zero value is not usable; Key
// must be set.
type Client struct {
	Key     string
	BaseURL string
	HTTP    *http.Client
}

var _ tides.Source = &Client{}

// Heights fetches heights for q.Point from q.Start over q.Horizon, one per
// q.Step.
func (c *Client) Heights(ctx context.Context, q tides.Query) ([]tides.Sample, error) {
	if c.Key == "" {
		return nil, ErrMissingKey
	}

	addr, err := c.url(q)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("worldtides request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("worldtides returned %d: %s", resp.StatusCode, body)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding worldtides response: %w", err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("worldtides error (status %d): %s", result.Status, result.Error)
	}

	samples := result.Samples()
	if err := tides.Validate(samples); err != nil {
		return nil, fmt.Errorf("worldtides heights: %w", err)
	}
	return samples, nil
}

func (c *Client) url(q tides.Query) (*url.URL, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultURL
	}
	addr, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	addr.RawQuery = c.build(q).Encode()
	return addr, nil
}

func (c *Client) build(q tides.Query) url.Values {
	vals := make(url.Values)
	vals.Add("heights", "")
	vals.Add("lat", strconv.FormatFloat(q.Point.Lat, 'f', -1, 64))
	vals.Add("lon", strconv.FormatFloat(q.Point.Long, 'f', -1, 64))
	vals.Add("start", strconv.FormatInt(q.Start.Unix(), 10))
	vals.Add("length", strconv.FormatInt(int64(q.Horizon.Seconds()), 10))
	vals.Add("step", strconv.FormatInt(int64(q.Step.Seconds()), 10))
	vals.Add("datum", datum)
	vals.Add("timezone", "UTC")
	vals.Add("key", c.Key)
	return vals
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
