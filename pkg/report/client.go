package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Config holds the reporting service endpoint and credentials.
type Config struct {
	BaseURL  string `env:"REPORT_SERVER_URL,required"`
	Username string `env:"REPORT_SERVER_USERNAME"`
	Password string `env:"REPORT_SERVER_PASSWORD"`
}

// Client is the HTTP implementation of Service. Timeouts are left to the
// injected http.Client; the pipeline has no end-to-end deadline of its own.
type Client struct {
	http    *http.Client
	baseURL string
	user    string
	pass    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates a reporting service client.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrRenderFailed)
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid BaseURL: %v", ErrRenderFailed, err)
	}

	c := &Client{
		http:    http.DefaultClient,
		baseURL: cfg.BaseURL,
		user:    cfg.Username,
		pass:    cfg.Password,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type loadRequest struct {
	Path       string            `json:"path"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

type loadResponse struct {
	ExecutionID string `json:"execution_id"`
}

// Load prepares a report execution on the service.
func (c *Client) Load(ctx context.Context, path string, params map[string]string) (Execution, error) {
	var resp loadResponse
	if err := c.post(ctx, "/reports/load", loadRequest{Path: path, Parameters: params}, &resp); err != nil {
		return Execution{}, err
	}
	if resp.ExecutionID == "" {
		return Execution{}, fmt.Errorf("%w: service returned no execution id for %s", ErrRenderFailed, path)
	}
	return Execution{ID: resp.ExecutionID}, nil
}

// Render exports a loaded execution to the requested format and returns the
// raw document bytes.
func (c *Client) Render(ctx context.Context, exec Execution, format string) ([]byte, error) {
	u := fmt.Sprintf("%s/reports/%s/render?format=%s", c.baseURL, url.PathEscape(exec.ID), url.QueryEscape(format))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	c.auth(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: render returned status %d", ErrRenderFailed, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.auth(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", ErrRenderFailed, path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) auth(req *http.Request) {
	if c.user != "" {
		req.SetBasicAuth(c.user, c.pass)
	}
}
