// Package ocr talks to an external text-recognition engine over HTTP.
// The engine accepts a multipart upload and answers with the recognised text.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// ErrUnavailable is returned when no engine is configured or the engine
// cannot produce a result. It wraps domain.ErrUnavailable.
var ErrUnavailable = fmt.Errorf("ocr: %w", domain.ErrUnavailable)

const (
	defaultTimeout = 30 * time.Second
	retryDelay     = 500 * time.Millisecond
	maxResponse    = 1 << 20
)

// Client sends images to the OCR engine.
type Client struct {
	url        string
	language   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the engine at url. An empty url yields a
// client whose every call fails with ErrUnavailable.
func NewClient(url, language string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:        url,
		language:   language,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "ocr"),
	}
}

type response struct {
	Text string `json:"text"`
}

// ExtractText uploads image and returns the recognised text.
func (c *Client) ExtractText(ctx context.Context, image io.Reader, filename string) (string, error) {
	if c.url == "" {
		return "", fmt.Errorf("%w: engine not configured", ErrUnavailable)
	}

	body, contentType, err := c.buildBody(image, filename)
	if err != nil {
		return "", fmt.Errorf("ocr: build request: %w", err)
	}

	c.log.DebugContext(ctx, "ocr request", slog.String("filename", filename), slog.Int("bytes", len(body)))

	resp, err := c.doWithRetry(ctx, body, contentType)
	if err != nil {
		c.log.ErrorContext(ctx, "ocr request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: request failed: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponse))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	var out response
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: decode json: %w", ErrUnavailable, err)
	}

	c.log.DebugContext(ctx, "ocr response",
		slog.Int("status", resp.StatusCode),
		slog.Int("chars", len(out.Text)),
	)

	return out.Text, nil
}

func (c *Client) buildBody(image io.Reader, filename string) ([]byte, string, error) {
	if image == nil {
		return nil, "", errors.New("nil image")
	}
	if filename == "" {
		filename = "image"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, "", fmt.Errorf("copy image: %w", err)
	}
	if c.language != "" {
		if err := mw.WriteField("language", c.language); err != nil {
			return nil, "", fmt.Errorf("write language: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}

	return buf.Bytes(), mw.FormDataContentType(), nil
}

func (c *Client) newRequest(ctx context.Context, body []byte, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, body []byte, contentType string) (*http.Response, error) {
	req, err := c.newRequest(ctx, body, contentType)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "ocr retry", slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(retryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	req, err = c.newRequest(ctx, body, contentType)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}
