package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-contentful/internal/logging"
	"github.com/goliatone/go-contentful/pkg/interfaces"
)

// Client exposes the delivery API lookups the page walker depends on.
// Implementations must be safe for concurrent use.
type Client interface {
	Entry(ctx context.Context, id string, opts EntryOptions) (*Entry, error)
	Entries(ctx context.Context, q Query) ([]*Entry, error)
}

// EntryOptions tunes a single-entry lookup.
type EntryOptions struct {
	// Include sets the reference expansion depth resolved server-side.
	Include int
	Locale  string
}

// Query filters a collection lookup.
type Query struct {
	ContentType string
	Locale      string
	Include     int
	Limit       int
}

const defaultHost = "cdn.contentful.com"

// HTTPClient talks to the Contentful Content Delivery API over HTTP.
type HTTPClient struct {
	spaceID     string
	accessKey   string
	environment string
	host        string
	httpc       *http.Client
	logger      interfaces.Logger
}

// Option customises the HTTP client.
type Option func(*HTTPClient)

// WithEnvironment selects the Contentful environment. Defaults to "master".
func WithEnvironment(env string) Option {
	return func(c *HTTPClient) {
		if strings.TrimSpace(env) != "" {
			c.environment = env
		}
	}
}

// WithHost overrides the API host, e.g. to point at the preview API.
func WithHost(host string) Option {
	return func(c *HTTPClient) {
		if trimmed := strings.TrimSpace(host); trimmed != "" {
			c.host = strings.TrimPrefix(strings.TrimPrefix(trimmed, "https://"), "http://")
		}
	}
}

// WithHTTPClient injects the underlying *http.Client. Timeout and retry
// policy belong to the caller; the adapter issues plain blocking requests.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *HTTPClient) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *HTTPClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New constructs a delivery API client for the given space.
func New(spaceID, accessKey string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		spaceID:     spaceID,
		accessKey:   accessKey,
		environment: "master",
		host:        defaultHost,
		httpc:       &http.Client{Timeout: 30 * time.Second},
		logger:      logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Entry fetches a single entry by id. The delivery API only honours include
// depth on collection endpoints, so the lookup filters a collection by
// sys.id the same way the official SDKs do.
func (c *HTTPClient) Entry(ctx context.Context, id string, opts EntryOptions) (*Entry, error) {
	params := url.Values{}
	params.Set("sys.id", id)
	if opts.Include > 0 {
		params.Set("include", strconv.Itoa(opts.Include))
	}
	if opts.Locale != "" {
		params.Set("locale", opts.Locale)
	}

	entries, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &NotFoundError{Kind: "entry", ID: id}
	}
	return entries[0], nil
}

// Entries fetches every entry matching the query.
func (c *HTTPClient) Entries(ctx context.Context, q Query) ([]*Entry, error) {
	params := url.Values{}
	if q.ContentType != "" {
		params.Set("content_type", q.ContentType)
	}
	if q.Locale != "" {
		params.Set("locale", q.Locale)
	}
	if q.Include > 0 {
		params.Set("include", strconv.Itoa(q.Include))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return c.fetch(ctx, params)
}

func (c *HTTPClient) fetch(ctx context.Context, params url.Values) ([]*Entry, error) {
	endpoint := fmt.Sprintf("https://%s/spaces/%s/environments/%s/entries?%s",
		c.host, url.PathEscape(c.spaceID), url.PathEscape(c.environment), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("contentful: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("contentful.client.request", "query", params.Encode())

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contentful: request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, decodeAPIError(res)
	}

	var payload collectionPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("contentful: decode response: %w", err)
	}

	return resolveCollection(&payload), nil
}

func decodeAPIError(res *http.Response) error {
	apiErr := &APIError{StatusCode: res.StatusCode}

	var body struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
		Message   string `json:"message"`
		RequestID string `json:"requestId"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
		apiErr.RequestID = body.RequestID
	}

	if res.StatusCode == http.StatusNotFound {
		return &NotFoundError{Kind: "entry"}
	}
	return apiErr
}
