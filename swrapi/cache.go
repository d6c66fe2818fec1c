package swrapi

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
	dir  string // os.TempDir() when empty
	now  func() time.Time
}

// RoundTrip implements the http.RoundTripper interface. Keys include the day, so cached
// responses expire every day. Only successful responses are stored.
func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := c.key(req)

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		slog.Debug("cache hit", "url", req.URL.String())
		return cachedResp, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		slog.Warn("cache write error (ignored)", "error", err)
	}
	return resp, nil
}

func (c *diskCache) key(req *http.Request) string {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	key := fmt.Sprintf("%s %s %s", now().Format(time.DateOnly), req.Method, req.URL.String())
	return fmt.Sprintf("swa-%x", sha1.Sum([]byte(key)))
}

func (c *diskCache) path(key string) string {
	dir := c.dir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, key)
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores a response to disk cache. DumpResponse leaves resp.Body readable.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(key), content, 0644)
}
