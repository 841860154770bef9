// Package upstream is the JSON-over-HTTP client shared by every backend the
// gateway forwards to.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"Atelier/internal/config"
	"Atelier/internal/fault"
)

// maxBody caps how much of an upstream response is read into memory.
var maxBody int64 = 64 << 20

type Client struct {
	Name       string
	BaseURL    string
	Bearer     string
	HTTPClient *http.Client
}

func NewClient(name string, cfg config.UpstreamConfig) *Client {
	bearer := cfg.Bearer
	if bearer == "" {
		bearer = cfg.APIKey
	}
	return &Client{
		Name:       name,
		BaseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		Bearer:     bearer,
		HTTPClient: &http.Client{Timeout: cfg.TimeoutDuration()},
	}
}

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// PostJSON sends payload and returns the raw JSON answer. bearer overrides the
// configured token when non-empty.
func (c *Client) PostJSON(ctx context.Context, path, bearer string, payload any) (json.RawMessage, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fault.Wrap(fault.KindValidation, err, "encode %s request", c.Name)
	}
	body, _, err := c.do(ctx, http.MethodPost, path, bearer, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		return nil, fault.New(fault.KindUpstream, "%s returned a non-JSON body", c.Name)
	}
	return json.RawMessage(body), nil
}

// Get fetches a binary resource and its content type.
func (c *Client) Get(ctx context.Context, path, bearer string) ([]byte, string, error) {
	return c.do(ctx, http.MethodGet, path, bearer, nil)
}

func (c *Client) do(ctx context.Context, method, path, bearer string, body io.Reader) ([]byte, string, error) {
	if c.BaseURL == "" {
		return nil, "", fault.New(fault.KindConfig, "%s base url is not configured", c.Name)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, "", fault.Wrap(fault.KindInternal, err, "build %s request", c.Name)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer == "" {
		bearer = c.Bearer
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, "", fault.Wrap(fault.KindTimeout, err, "%s %s timed out after %s", method, path, time.Since(start).Round(time.Millisecond))
		}
		return nil, "", fault.Wrap(fault.KindUpstream, err, "%s %s", method, path)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxBody+1))
	if err != nil {
		if isTimeout(err) {
			return nil, "", fault.Wrap(fault.KindTimeout, err, "reading %s response timed out", c.Name)
		}
		return nil, "", fault.Wrap(fault.KindUpstream, err, "read %s response", c.Name)
	}
	if int64(len(data)) > maxBody {
		return nil, "", fault.New(fault.KindUpstream, "%s response too large (over %d bytes)", c.Name, maxBody)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		kind := fault.KindUpstream
		if res.StatusCode == http.StatusNotFound {
			kind = fault.KindNotFound
		}
		return nil, "", fault.Wrap(kind, &StatusError{StatusCode: res.StatusCode, Body: snippet(data)}, "%s %s", method, path)
	}
	return data, res.Header.Get("Content-Type"), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 512 {
		return s[:512] + "..."
	}
	return s
}
