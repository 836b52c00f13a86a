package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/UhCardoso/travel-manager-front/internal/client/metrics"
	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/logging"
	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "http://localhost/api"
	DefaultTimeout = 10 * time.Second

	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 4 << 20
)

// TokenSource supplies the bearer token for authenticated calls. An empty
// token means "no session".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// UnauthorizedHandler runs whenever an authenticated call is answered with
// 401, before the error is returned to the caller. Login and register calls
// carry no token, so their 401 is a credential rejection and skips it.
type UnauthorizedHandler func(ctx context.Context)

type Option func(*HTTPClient)

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(c *HTTPClient) { c.onUnauthorized = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithTransport replaces the underlying round tripper (tests, proxies).
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) { c.transport = rt }
}

// WithMetrics counts and times every backend call.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *HTTPClient) { c.metrics = m }
}

type HTTPClient struct {
	baseURL        string
	http           *http.Client
	transport      http.RoundTripper
	tokens         TokenSource
	onUnauthorized UnauthorizedHandler
	metrics        *metrics.Metrics
	log            logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for baseURL. Empty baseURL and a
// non-positive timeout fall back to DefaultBaseURL and DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) (*HTTPClient, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &HTTPClient{baseURL: strings.TrimRight(baseURL, "/")}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		c.log = logging.Nop()
	}

	rt := c.transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	if c.metrics != nil {
		rt = c.metrics.Instrument("backend", rt)
	}
	c.http = &http.Client{Timeout: timeout, Transport: rt}

	return c, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// call describes one backend request.
type call struct {
	method string
	path   string
	query  url.Values
	body   any
	auth   bool
}

func (c *HTTPClient) do(ctx context.Context, cl call, out any) error {
	var payload io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	if cl.auth && c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("%w: read token: %v", ErrLocalDataNotAvailable, err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	log := c.log.With("method", cl.method, "path", cl.path, "request_id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return err
		}
		log.Debug(ctx, "request failed", "error", err, "elapsed", time.Since(start))
		return connectivityError(0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Debug(ctx, "read response failed", "error", err)
		return connectivityError(resp.StatusCode, err)
	}

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(bytes.TrimSpace(body)) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return connectivityError(resp.StatusCode, fmt.Errorf("decode response: %w", err))
		}
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized && cl.auth && c.onUnauthorized != nil {
		log.Info(ctx, "session rejected by backend")
		c.onUnauthorized(ctx)
	}

	return decodeError(resp.StatusCode, body)
}

// decodeError turns a non-2xx response into an *APIError. Any JSON object
// is the backend's own payload and is passed through; field errors may be a
// single string or a list of strings. Only an empty or non-JSON body is a
// connectivity failure.
func decodeError(status int, body []byte) error {
	var raw struct {
		Success bool                       `json:"success"`
		Message string                     `json:"message"`
		Errors  map[string]json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &raw); err == nil && bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		return &APIError{
			StatusCode: status,
			Success:    raw.Success,
			Message:    raw.Message,
			Errors:     fieldMessages(raw.Errors),
		}
	}

	var loose map[string]any
	if err := json.Unmarshal(body, &loose); err == nil && loose != nil {
		// Object whose known keys have unexpected types.
		apiErr := &APIError{StatusCode: status}
		apiErr.Message, _ = loose["message"].(string)
		apiErr.Success, _ = loose["success"].(bool)
		return apiErr
	}

	if status == http.StatusUnauthorized {
		return &APIError{StatusCode: status, Message: "unauthenticated"}
	}
	return connectivityError(status, fmt.Errorf("unexpected status %d", status))
}

// fieldMessages accepts `{"field": ["a", "b"]}` as well as `{"field": "a"}`.
// Values of any other shape are kept as their JSON text.
func fieldMessages(in map[string]json.RawMessage) map[string][]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string][]string, len(in))
	for field, v := range in {
		var list []string
		if err := json.Unmarshal(v, &list); err == nil {
			out[field] = list
			continue
		}
		var one string
		if err := json.Unmarshal(v, &one); err == nil {
			out[field] = []string{one}
			continue
		}
		out[field] = []string{string(v)}
	}
	return out
}

func pageQuery(page int) url.Values {
	if page <= 0 {
		return nil
	}
	return url.Values{"page": {strconv.Itoa(page)}}
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, strconv.FormatInt(id, 10))
}

func (c *HTTPClient) UserLogin(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, call{method: http.MethodPost, path: "/user/login", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UserRegister(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, call{method: http.MethodPost, path: "/user/register", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UserLogout(ctx context.Context) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/user/logout", auth: true}, nil)
}

func (c *HTTPClient) AdminLogin(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, call{method: http.MethodPost, path: "/admin/login", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateTravelRequest(ctx context.Context, req models.CreateTravelRequest) (*models.TravelRequestResponse, error) {
	var out models.TravelRequestResponse
	cl := call{method: http.MethodPost, path: "/user/travel-request/create", body: req.Normalize(), auth: true}
	if err := c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListTravelRequests(ctx context.Context, page int) (*models.TravelRequestPageResponse, error) {
	var out models.TravelRequestPageResponse
	cl := call{method: http.MethodGet, path: "/user/travel-request/all", query: pageQuery(page), auth: true}
	if err := c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CancelTravelRequest(ctx context.Context, id int64) (*models.TravelRequestResponse, error) {
	var out models.TravelRequestResponse
	cl := call{method: http.MethodPatch, path: idPath("/user/travel-request/%s/cancel", id), auth: true}
	if err := c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) TravelRequestDetails(ctx context.Context, id int64) (*models.TravelRequestResponse, error) {
	var out models.TravelRequestResponse
	cl := call{method: http.MethodGet, path: idPath("/user/travel-request/%s/details", id), auth: true}
	if err := c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AdminListTravelRequests(ctx context.Context, page int) (*models.TravelRequestPageResponse, error) {
	var out models.TravelRequestPageResponse
	cl := call{method: http.MethodGet, path: "/admin/travel-request/all", query: pageQuery(page), auth: true}
	if err := c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AdminUpdateTravelRequestStatus(ctx context.Context, id int64, status models.Status) (*models.TravelRequestResponse, error) {
	var out models.TravelRequestResponse
	cl := call{
		method: http.MethodPatch,
		path:   idPath("/admin/travel-request/%s/update", id),
		body:   models.StatusUpdate{Status: status},
		auth:   true,
	}
	if err := c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
