package apiclient

// Package apiclient implements ports.BackendClient against the document
// management backend's REST API. It is the single chokepoint for token
// attachment and error normalization: every non-2xx response becomes an
// AppError carrying the server-supplied error text.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/docvault/docvault-ui/internal/errors"
	"github.com/docvault/docvault-ui/internal/ports"
)

// genericFailure is the fallback message when the backend returns no error text.
const genericFailure = "API request failed"

// Config controls the backend client.
type Config struct {
	// BaseURL is the API prefix, e.g. "http://backend:5000/api".
	BaseURL string
	// Timeout bounds each request. Defaults to 30s when zero.
	Timeout time.Duration
	// Client overrides the HTTP client (tests). Optional.
	Client *http.Client
	// Logger for request failures. Optional.
	Logger *slog.Logger
}

// Client is the HTTP implementation of ports.BackendClient.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

var _ ports.BackendClient = (*Client)(nil)

// New builds a backend client. The base URL must be non-empty and absolute.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("backend base URL is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend base URL %q is not absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{baseURL: base, client: hc, logger: logger}, nil
}

// call groups the parameters of a JSON round trip.
type call struct {
	method string
	path   string
	token  string
	body   any // marshaled as JSON when non-nil
	out    any // decoded from the response body when non-nil
}

// doJSON performs a JSON request/response cycle against the backend.
func (c *Client) doJSON(ctx context.Context, p call) error {
	var reader io.Reader
	if p.body != nil {
		data, err := json.Marshal(p.body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, p.method, c.baseURL+p.path, reader)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "create request")
	}
	if p.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	setBearer(req, p.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer closeBody(resp, c.logger)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.normalizeError(resp)
	}
	if p.out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(p.out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "decode backend response")
	}
	return nil
}

// normalizeError turns a non-2xx response into an AppError whose message is
// the server-supplied error text, or a generic fallback when absent.
func (c *Client) normalizeError(resp *http.Response) error {
	msg := genericFailure
	var payload struct {
		Error string `json:"error"`
	}
	data, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if readErr == nil && json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		msg = payload.Error
	}

	code := statusErrorCode(resp.StatusCode)
	c.logger.Debug("backend error response",
		slog.Int("status", resp.StatusCode),
		slog.String("code", string(code)),
		slog.String("message", msg))
	return &apperrors.AppError{Code: code, Message: msg}
}

// statusErrorCode maps an HTTP status onto the application error taxonomy.
func statusErrorCode(status int) apperrors.ErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return apperrors.ErrCodeUnauthorized
	case http.StatusForbidden:
		return apperrors.ErrCodeForbidden
	case http.StatusNotFound:
		return apperrors.ErrCodeNotFound
	case http.StatusConflict:
		return apperrors.ErrCodeConflict
	case http.StatusBadRequest:
		return apperrors.ErrCodeValidation
	default:
		return apperrors.ErrCodeUpstream
	}
}

func transportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "backend request canceled")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, "backend request timed out")
	}
	return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "backend unreachable")
}

func setBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func closeBody(resp *http.Response, logger *slog.Logger) {
	if err := resp.Body.Close(); err != nil {
		logger.Debug("close response body", slog.Any("error", err))
	}
}

// jsonBody marshals v into a reader for a request body.
func jsonBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
	}
	return bytes.NewReader(data), nil
}

// decodeJSONBody decodes a success response body into out.
func decodeJSONBody(body io.Reader, out any) error {
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "decode backend response")
	}
	return nil
}

// --- Auth ---

// Login exchanges credentials for a bearer token and the user record.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (ports.LoginResult, error) {
	var out struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	err := c.doJSON(ctx, call{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   map[string]string{"username": creds.Username, "password": creds.Password},
		out:    &out,
	})
	if err != nil {
		return ports.LoginResult{}, err
	}

	result := ports.LoginResult{Token: out.Token}
	if err := json.Unmarshal(out.User, &result.User); err != nil {
		return ports.LoginResult{}, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "decode user payload")
	}
	return result, nil
}

// Logout invalidates the token server-side.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.doJSON(ctx, call{method: http.MethodPost, path: "/auth/logout", token: token})
}

// VerifyToken asks the backend whether the token is still valid.
func (c *Client) VerifyToken(ctx context.Context, token string) (ports.VerifyResult, error) {
	var out ports.VerifyResult
	err := c.doJSON(ctx, call{method: http.MethodGet, path: "/auth/verify", token: token, out: &out})
	if err != nil {
		return ports.VerifyResult{}, err
	}
	return out, nil
}
