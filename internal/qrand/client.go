// Package qrand is a thin client for the quantum random number service.
// Every operation issues exactly one GET request with a fixed timeout and
// no retries; a failed call yields a *RequestError and nothing else.
package qrand

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docdailey/qrand/internal/httpx"
)

const (
	DefaultBaseURL = "https://quantum-server.docdailey.ai"
	DefaultTimeout = 5 * time.Second
)

// Password length limits enforced before any request is made.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// Token length limits in bytes, matching the service's /random/bytes
// contract.
const (
	MinTokenLength = 1
	MaxTokenLength = 65536
)

// Validation errors, raised locally before any network call.
var (
	ErrInvalidKeyBits        = errors.New("key size must be 128, 192, 256, or 512 bits")
	ErrInvalidPasswordLength = fmt.Errorf("password length must be between %d and %d", MinPasswordLength, MaxPasswordLength)
	ErrInvalidTokenLength    = fmt.Errorf("token length must be between %d and %d bytes", MinTokenLength, MaxTokenLength)
)

var validKeyBits = map[int]bool{128: true, 192: true, 256: true, 512: true}

// RequestError reports a call that was attempted but did not complete:
// transport failure, non-2xx HTTP status, or success=false in the payload.
// Callers can treat it as "no randomness available" and carry on.
type RequestError struct {
	Op     string
	Status int // HTTP status, 0 when the request never got a response
	Msg    string
	Err    error
}

func (e *RequestError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	default:
		return fmt.Sprintf("%s: http status %d", e.Op, e.Status)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

// Config carries the client's construction parameters. The zero value is
// usable and talks to the public service with the default timeout.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the underlying client when set; Timeout is
	// ignored in that case.
	HTTPClient *http.Client
}

// Client talks to one quantum service instance. Safe for concurrent use,
// though the CLI tools only ever issue sequential calls.
type Client struct {
	baseURL string
	client  *http.Client
}

// New builds a client from config, filling in defaults for unset fields.
func New(config Config) *Client {
	base := config.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	hc := config.HTTPClient
	if hc == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		client:  hc,
	}
}

// BaseURL reports the resolved service base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Integers requests count integers uniformly drawn from [min, max].
func (c *Client) Integers(ctx context.Context, min, max, count int) ([]int, error) {
	params := url.Values{}
	params.Set("min", strconv.Itoa(min))
	params.Set("max", strconv.Itoa(max))
	params.Set("count", strconv.Itoa(count))

	var values []int
	if err := c.getData(ctx, "random/integers", "/api/v1/random/integers", params, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// Key requests a new encryption key. bits must be one of 128, 192, 256,
// or 512.
func (c *Client) Key(ctx context.Context, bits int) (KeyMaterial, error) {
	if !validKeyBits[bits] {
		return KeyMaterial{}, fmt.Errorf("%w, got %d", ErrInvalidKeyBits, bits)
	}

	params := url.Values{}
	params.Set("level", strconv.Itoa(bits))

	var key KeyMaterial
	if err := c.getData(ctx, "crypto/key", "/api/v1/crypto/key", params, &key); err != nil {
		return KeyMaterial{}, err
	}
	return key, nil
}

// Password requests a password drawn from the enabled character classes.
func (c *Client) Password(ctx context.Context, spec PasswordSpec) (string, error) {
	if spec.Length < MinPasswordLength || spec.Length > MaxPasswordLength {
		return "", fmt.Errorf("%w, got %d", ErrInvalidPasswordLength, spec.Length)
	}

	params := url.Values{}
	params.Set("length", strconv.Itoa(spec.Length))
	params.Set("uppercase", strconv.FormatBool(spec.Uppercase))
	params.Set("lowercase", strconv.FormatBool(spec.Lowercase))
	params.Set("digits", strconv.FormatBool(spec.Digits))
	params.Set("symbols", strconv.FormatBool(spec.Symbols))

	var payload passwordPayload
	if err := c.getData(ctx, "crypto/password", "/api/v1/crypto/password", params, &payload); err != nil {
		return "", err
	}
	return payload.Password, nil
}

// UUID requests a service-generated UUID v4 and validates its shape
// locally before handing it back.
func (c *Client) UUID(ctx context.Context) (string, error) {
	var payload uuidPayload
	if err := c.getData(ctx, "crypto/uuid", "/api/v1/crypto/uuid", nil, &payload); err != nil {
		return "", err
	}

	id, err := uuid.Parse(payload.UUID)
	if err != nil {
		return "", &RequestError{
			Op:  "crypto/uuid",
			Err: fmt.Errorf("service returned malformed uuid %q: %w", payload.UUID, err),
		}
	}
	return id.String(), nil
}

// Token requests length random bytes as base64. When urlSafe is set the
// encoding is rewritten to the URL-safe alphabet via URLSafe; the bytes
// themselves are never re-encoded.
func (c *Client) Token(ctx context.Context, length int, urlSafe bool) (string, error) {
	if length < MinTokenLength || length > MaxTokenLength {
		return "", fmt.Errorf("%w, got %d", ErrInvalidTokenLength, length)
	}

	params := url.Values{}
	params.Set("count", strconv.Itoa(length))
	params.Set("format", "base64")

	var payload bytesPayload
	if err := c.getData(ctx, "random/bytes", "/api/v1/random/bytes", params, &payload); err != nil {
		return "", err
	}

	token := payload.Bytes
	if urlSafe {
		token = URLSafe(token)
	}
	return token, nil
}

// Health probes /api/v1/health. The endpoint returns a bare JSON document
// rather than the usual envelope and answers 503 when the entropy device
// is down.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	const op = "health"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return HealthStatus{}, &RequestError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		slog.Debug("request failed", "op", op, "err", err)
		return HealthStatus{}, &RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("request failed", "op", op, "status", resp.StatusCode)
		return HealthStatus{}, &RequestError{Op: op, Status: resp.StatusCode, Msg: "service unhealthy"}
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return HealthStatus{}, &RequestError{Op: op, Err: fmt.Errorf("decode health response: %w", err)}
	}
	return status, nil
}

// DeviceInfo requests the entropy device description and buffer state.
func (c *Client) DeviceInfo(ctx context.Context) (DeviceInfo, error) {
	var info DeviceInfo
	if err := c.getData(ctx, "device/info", "/api/v1/device/info", nil, &info); err != nil {
		return DeviceInfo{}, err
	}
	return info, nil
}

// URLSafe converts a standard base64 string to the URL-safe alphabet
// without re-encoding: + and / are substituted and trailing padding is
// stripped.
func URLSafe(s string) string {
	s = strings.ReplaceAll(s, "+", "-")
	s = strings.ReplaceAll(s, "/", "_")
	return strings.TrimRight(s, "=")
}

// getData issues one GET and unpacks the envelope into out. There is no
// retry: any failure surfaces as a *RequestError.
func (c *Client) getData(ctx context.Context, op, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		slog.Debug("request failed", "op", op, "err", err)
		return &RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Debug("request failed", "op", op, "status", resp.StatusCode)
		return &RequestError{Op: op, Status: resp.StatusCode, Msg: http.StatusText(resp.StatusCode)}
	}

	env, err := httpx.DecodeEnvelope(resp.Body)
	if err != nil {
		return &RequestError{Op: op, Status: resp.StatusCode, Err: err}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "unknown error"
		}
		slog.Debug("request failed", "op", op, "service_error", msg)
		return &RequestError{Op: op, Status: resp.StatusCode, Msg: msg}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &RequestError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return nil
}
