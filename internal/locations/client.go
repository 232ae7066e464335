package locations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/atomicstack/locality-picker/internal/logging/events"
)

const (
	// DefaultEndpoint is the spreadsheet lookup endpoint.
	DefaultEndpoint = "https://api.lowcodeapi.com/googlesheets/spreadsheetid/get"
	// SheetGID and SheetTab pin the worksheet holding the locations.
	SheetGID = "55787554"
	SheetTab = "localalities"

	maxBodyBytes = 8 << 20
	userAgent    = "locality-picker (+https://github.com/atomicstack/locality-picker)"
)

// ClientConfig carries the values the request URL is built from.
type ClientConfig struct {
	Endpoint      string
	APIToken      string
	SpreadsheetID string
	// Timeout bounds the whole request; zero means no timeout.
	Timeout time.Duration
	// MaxBodyBytes caps the accepted response size; zero uses 8 MiB.
	MaxBodyBytes int64
	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
}

// Client performs the single location lookup.
type Client struct {
	cfg  ClientConfig
	http *http.Client
}

// NewClient returns a Client for cfg. An empty endpoint uses DefaultEndpoint.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = maxBodyBytes
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, http: hc}
}

// BuildURL returns the lookup URL for the given endpoint and credentials.
// Missing credentials are not rejected; the server answers such requests
// with a failure that surfaces through Fetch.
func BuildURL(endpoint, apiToken, spreadsheetID string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("spreadsheetId", spreadsheetID)
	q.Set("gid", SheetGID)
	q.Set("tab", SheetTab)
	q.Set("api_token", apiToken)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// RedactURL hides the api_token query value so URLs can be logged or shown.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if _, ok := q["api_token"]; !ok {
		return raw
	}
	q.Set("api_token", "REDACTED")
	u.RawQuery = q.Encode()
	return u.String()
}

// Fetch issues the GET request and parses the envelope. Network failures and
// non-2xx statuses are returned as *FetchError, body problems as *ParseError.
func (c *Client) Fetch(ctx context.Context) ([]*Item, error) {
	target, err := BuildURL(c.cfg.Endpoint, c.cfg.APIToken, c.cfg.SpreadsheetID)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	events.Loader.Request(RedactURL(target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Err: redactURLError(err)}
	}
	defer resp.Body.Close()

	limit := c.cfg.MaxBodyBytes
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &FetchError{Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	oversized := int64(len(body)) > limit
	if oversized {
		body = body[:limit]
	}
	events.Loader.Response(resp.StatusCode, string(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	if oversized {
		return nil, &ParseError{Err: fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, limit)}
	}

	items, err := ParseEnvelope(body)
	if err != nil {
		return nil, err
	}
	events.Loader.Items(Names(items))
	return items, nil
}

func redactURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = RedactURL(ue.URL)
	}
	return err
}
