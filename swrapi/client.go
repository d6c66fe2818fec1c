// Package swrapi is a client of the safe withdrawal rate simulation service.
package swrapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/swr-analysis/swr"
)

// DefaultURL is where the simulator listens when started in server mode.
const DefaultURL = "http://localhost:8085"

// ErrAPI is returned when the service rejects a request.
var ErrAPI = errors.New("simulation service error")

// Client calls the simulator's HTTP API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client of the service at baseURL.
func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: new(http.Client)}
}

// WithDailyCache makes the client keep responses on disk in dir, for the rest of the day.
// The simulator is deterministic, so repeated analyses only pay for new scenarios.
func (c *Client) WithDailyCache(dir string) *Client {
	base := c.HTTP.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.HTTP.Transport = &diskCache{base: base, dir: dir}
	return c
}

// Simulate runs one simulation through the /api/simple endpoint.
func (c *Client) Simulate(ctx context.Context, q swr.Query) (swr.Results, error) {
	if err := q.Validate(); err != nil {
		return swr.Results{}, err
	}
	addr := c.BaseURL + "/api/simple?" + q.Values().Encode()
	body, err := c.get(ctx, addr)
	if err != nil {
		return swr.Results{}, err
	}
	return swr.DecodeResults(body)
}

// get performs an HTTP GET request and returns the body of a successful response.
func (c *Client) get(ctx context.Context, addr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	slog.Debug("http", "method", req.Method, "path", req.URL.Path, "status", resp.Status)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: cannot http GET %v%v: %v", ErrAPI, req.URL.Host, req.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	// parameter errors are answered as text with a 200 status.
	if msg, ok := strings.CutPrefix(string(body), "Error:"); ok {
		return nil, fmt.Errorf("%w: %s", ErrAPI, strings.TrimSpace(msg))
	}
	return body, nil
}
