package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"holidaze/internal/domain"
)

const (
	// DefaultBaseURL is the public Noroff v2 API.
	DefaultBaseURL = "https://v2.api.noroff.dev"

	apiKeyHeader    = "X-Noroff-API-Key"
	requestIDHeader = "X-Request-ID"
)

// TokenSource yields the bearer token for a request; "" means anonymous.
type TokenSource interface {
	Token() (string, error)
}

// HTTP talks to the Holidaze API over net/http.
type HTTP struct {
	base    string
	http    *http.Client
	apiKey  string
	tokens  TokenSource
	limiter *rate.Limiter
	log     *zap.Logger
}

// Option configures an HTTP client.
type Option func(*HTTP)

// WithAPIKey sets the API key header sent with every request.
func WithAPIKey(key string) Option { return func(c *HTTP) { c.apiKey = key } }

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option { return func(c *HTTP) { c.tokens = ts } }

// WithRateLimit limits outgoing requests to rps per second with the given
// burst. A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *HTTP) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *HTTP) {
		if l != nil {
			c.log = l
		}
	}
}

// NewHTTP returns a client for base using httpClient (http.DefaultClient when nil).
func NewHTTP(base string, httpClient *http.Client, opts ...Option) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &HTTP{
		base: strings.TrimRight(base, "/"),
		http: httpClient,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the success body of every endpoint.
type envelope struct {
	Data json.RawMessage  `json:"data"`
	Meta *domain.PageMeta `json:"meta"`
}

// do sends one request. in is JSON-encoded when non-nil; the envelope's data
// is decoded into out when out is non-nil. The page meta is returned when the
// response carried one.
func (c *HTTP) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	in, out any,
) (*domain.PageMeta, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return nil, err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if err := c.decorate(req, in != nil); err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	c.log.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", req.Header.Get(requestIDHeader)),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		var eb errorBody
		// An undecodable error body still yields an *Error from the status line.
		_ = json.Unmarshal(raw, &eb)
		return nil, eb.toError(resp)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, path, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, fmt.Errorf("%w: %s %s: no data", ErrMalformedResponse, method, path)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, path, err)
	}
	return env.Meta, nil
}

// decorate sets auth, API key and content headers on req.
func (c *HTTP) decorate(req *http.Request, hasBody bool) error {
	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("load token: %w", err)
		}
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	return nil
}

func listQuery(opts domain.ListOptions) url.Values {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", fmt.Sprint(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", fmt.Sprint(opts.Limit))
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.SortOrder != "" {
		q.Set("sortOrder", opts.SortOrder)
	}
	return q
}

var _ domain.APIClient = (*HTTP)(nil)
