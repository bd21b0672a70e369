package replyapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/replydesk/infra/auth"
)

// DefaultTimeout bounds every request to the comment service.
const DefaultTimeout = 20 * time.Second

const genericMessage = "network error"

// Error is what every failed call returns: one operator-readable message
// plus the HTTP status when the server answered.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the text to show an operator for err. A service error
// anywhere in the chain yields its own message without the wrapping context.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return err.Error()
}

// Client is a thin HTTP wrapper for the comment service.
// It handles base URL construction, optional bearer tokens and JSON bodies.
type Client struct {
	baseURL       string
	tokenProvider auth.TokenProvider
	http          *http.Client
	logger        *zap.Logger
}

// NewClient creates a comment service client. tp and logger may be nil.
func NewClient(baseURL string, tp auth.TokenProvider, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		tokenProvider: tp,
		http:          &http.Client{Timeout: timeout},
		logger:        logger,
	}
}

// Get performs a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST with a JSON body and decodes the response into out
// (ignored when out is nil).
func (c *Client) Post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenProvider != nil {
		token, err := c.tokenProvider.AccessToken()
		if err != nil {
			return fmt.Errorf("auth: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logger.Debug("Comment service request",
		zap.String("method", method),
		zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := transportError(err)
		c.logger.Warn("Comment service unreachable",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return apiErr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := statusError(resp.StatusCode, data)
		c.logger.Warn("Comment service error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing response from %s: %w", path, err)
	}
	return nil
}

// errorBody is the subset of error payloads the service (or its gateway) sends.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// statusError prefers the server-supplied message, then its error field,
// then the status text.
func statusError(status int, data []byte) *Error {
	var eb errorBody
	if err := sonic.Unmarshal(data, &eb); err == nil {
		if msg := strings.TrimSpace(eb.Message); msg != "" {
			return &Error{Status: status, Message: msg}
		}
		if msg := strings.TrimSpace(eb.Error); msg != "" {
			return &Error{Status: status, Message: msg}
		}
	}
	msg := fmt.Sprintf("request failed with status %d", status)
	if text := http.StatusText(status); text != "" {
		msg = fmt.Sprintf("%s (%d)", text, status)
	}
	return &Error{Status: status, Message: msg}
}

func transportError(err error) *Error {
	msg := genericMessage
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		msg = err.Error()
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil && strings.TrimSpace(uerr.Err.Error()) != "" {
		msg = uerr.Err.Error()
	}
	return &Error{Message: msg, Err: err}
}
