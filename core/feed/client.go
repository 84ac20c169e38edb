package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"conference-hub/core/record"

	"go.uber.org/zap"
)

// Client fetches JSON documents from the event feed and related HTTP
// endpoints. Transport failures, non-2xx responses and malformed bodies are
// never surfaced as hard errors: list requests degrade to an empty result
// and single-document requests degrade to absent, with a warn log. Callers
// therefore always get something usable back.
type Client struct {
	http   *http.Client
	base   string
	logger *zap.Logger
}

// NewClient creates a feed client based on the configuration.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		base:   cfg.BaseURI,
		logger: logger,
	}
}

// Records fetches a list-of-objects document from a path relative to the
// configured base URI. Failures degrade to nil.
func (c *Client) Records(ctx context.Context, path string) []record.Record {
	var raw []map[string]any
	if !c.GetJSON(ctx, c.base+path, nil, &raw) {
		return nil
	}
	records := make([]record.Record, 0, len(raw))
	for _, m := range raw {
		records = append(records, record.Record(m))
	}
	return records
}

// Record fetches a single-object document from a path relative to the
// configured base URI. Failures degrade to absent.
func (c *Client) Record(ctx context.Context, path string) (record.Record, bool) {
	var raw map[string]any
	if !c.GetJSON(ctx, c.base+path, nil, &raw) || raw == nil {
		return nil, false
	}
	return record.Record(raw), true
}

// GetJSON issues a GET against an absolute URL with optional query
// parameters and decodes the response body into out. It reports whether a
// document was decoded.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values, out any) bool {
	target := rawURL
	if len(params) > 0 {
		sep := "?"
		if u, err := url.Parse(rawURL); err == nil && u.RawQuery != "" {
			sep = "&"
		}
		target = rawURL + sep + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.logger.Warn("Building feed request failed", zap.String("url", rawURL), zap.Error(err))
		return false
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// PostJSON issues a POST with a JSON body against an absolute URL and
// decodes the response body into out. It reports whether a document was
// decoded.
func (c *Client) PostJSON(ctx context.Context, rawURL string, body any, out any) bool {
	payload, err := json.Marshal(body)
	if err != nil {
		c.logger.Warn("Encoding feed request body failed", zap.String("url", rawURL), zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		c.logger.Warn("Building feed request failed", zap.String("url", rawURL), zap.Error(err))
		return false
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) bool {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Feed request failed", zap.String("url", req.URL.String()), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Feed request returned non-success status",
			zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode))
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("Decoding feed response failed", zap.String("url", req.URL.String()), zap.Error(err))
		return false
	}
	return true
}

// Fetch retrieves raw bytes from an absolute URL. It is used for content
// downloads (e.g. photo bytes) rather than JSON documents.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
