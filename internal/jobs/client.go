package jobs

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/careerconnect/internal/logger"
)

const (
	// DefaultTimeout bounds a single provider call.
	DefaultTimeout = 10 * time.Second

	userAgent      = "spigell/careerconnect"
	contentType    = "application/json"
	acceptEncoding = "gzip"
	// Remote feeds can be large; anything past this is a malformed response for us.
	maxBodyBytes = 16 << 20
	previewLen   = 200
)

// Client is the HTTP plumbing shared by all providers.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	logger     *zap.Logger
}

// NewClient returns a client whose calls are bounded by timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(logger *zap.Logger, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		UserAgent: userAgent,
		logger:    logger,
	}
}

// getJSON makes a GET request and decodes the JSON body into target.
// Values listed in secrets are masked in debug logs.
func (c *Client) getJSON(ctx context.Context, endpoint string, q url.Values, target any, secrets ...string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	return c.do(req, target, secrets)
}

// postJSON sends payload as a JSON body and decodes the JSON response into target.
func (c *Client) postJSON(ctx context.Context, endpoint string, payload, target any, secrets ...string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req, target, secrets)
}

func (c *Client) do(req *http.Request, target any, secrets []string) error {
	c.setHeaders(req)

	c.logger.Debug("make request",
		zap.String("method", req.Method),
		zap.String("url", redact(req.URL.String(), secrets)),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &requestError{
			msg: fmt.Sprintf("%s request: %s", req.Method, redact(err.Error(), secrets)),
			err: err,
		}
	}
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return err
		}
		defer gz.Close()
		reader = gz
	}

	data, err := io.ReadAll(io.LimitReader(reader, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	c.logger.Debug("got response",
		zap.Int("status", resp.StatusCode),
		zap.Int("body_length", len(data)),
		zap.String("body_preview", logger.Truncate(string(data), previewLen)),
	)

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", contentType)
	req.Header.Set("Accept-Encoding", acceptEncoding)
}

// requestError keeps the transport error for errors.Is while hiding credentials
// that the transport embeds in its message.
type requestError struct {
	msg string
	err error
}

func (e *requestError) Error() string { return e.msg }

func (e *requestError) Unwrap() error { return e.err }

func redact(s string, secrets []string) string {
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		s = strings.ReplaceAll(s, secret, "***")
		if escaped := url.QueryEscape(secret); escaped != secret {
			s = strings.ReplaceAll(s, escaped, "***")
		}
	}
	return s
}
