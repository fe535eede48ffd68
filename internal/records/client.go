package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service is the set of Record Service calls the list view depends on.
// *Client implements it; tests substitute fakes.
type Service interface {
	List(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, data string) error
	Delete(ctx context.Context, id RecordID) error
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// Client talks to the Record Service HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is used when no backend URL is configured.
	DefaultBaseURL = "http://127.0.0.1:5000"

	defaultUserAgent = "stash/0.1"
	requestTimeout   = 10 * time.Second
	requestIDHeader  = "X-Request-ID"

	listPath   = "/api/getdata"
	storePath  = "/api/storedata"
	deletePath = "/api/deletedata/"
)

// NewClient builds a Client for the service rooted at baseURL.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalised service root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// List retrieves every live record in service order.
func (c *Client) List(ctx context.Context) ([]Record, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Record
	if err := c.do(ctx, http.MethodGet, &url.URL{Path: listPath}, nil, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = []Record{}
	}
	return payload, nil
}

// Create stores a new record. The response body is not inspected.
func (c *Client) Create(ctx context.Context, data string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, &url.URL{Path: storePath}, storeRequest{Data: data}, nil)
}

// Delete removes the record with the given id. The id is not checked against
// any local list; the service decides whether it exists.
func (c *Client) Delete(ctx context.Context, id RecordID) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	raw := id.String()
	rel := &url.URL{
		Path:    deletePath + raw,
		RawPath: deletePath + url.PathEscape(raw),
	}
	return c.do(ctx, http.MethodDelete, rel, nil, nil)
}

func (c *Client) do(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request %s: %w", requestID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s %s returned status %d (request %s)", method, rel.Path, resp.StatusCode, requestID)
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response (request %s): %w", requestID, err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse backend url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse backend url %q: missing host", raw)
	}
	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
