package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Paoox/redsocial-desktop/internal/logx"
)

// Response bodies are snapshots of single records or short lists; anything
// bigger than this is a backend bug, not data.
const maxResponseBytes = 4 << 20

// Client talks to the backend REST API. It is safe for concurrent use by
// independent views; each request carries its own context and correlation id.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates an API client for the given backend origin. The timeout
// bounds every request end to end so a hung backend can never pin a
// loading indicator forever.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executes one request and decodes the JSON reply into out when out is
// non-nil. Non-2xx replies are returned as *Error with the body preserved
// for conflict-field mapping.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	logx.Debug("api request",
		"method", method,
		"path", path,
		"request_id", requestID,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		logx.Error(err, "api request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
		logx.Warn("api request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"request_id", requestID,
		)
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// getJSON issues a GET and decodes the reply.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// sendJSON issues a request with a JSON body and decodes the reply.
func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s %s: encode request: %w", method, path, err)
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(raw), out)
}

// sendMultipart issues a request with a multipart/form-data body built from
// plain fields and an optional single file part, then decodes the reply.
func (c *Client) sendMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("%s %s: write field %s: %w", method, path, name, err)
		}
	}

	if file != nil {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("%s %s: create file part: %w", method, path, err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("%s %s: copy file part: %w", method, path, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("%s %s: finish multipart body: %w", method, path, err)
	}

	return c.do(ctx, method, path, w.FormDataContentType(), &buf, out)
}
