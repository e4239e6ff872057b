package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/deployboard/cli/constants"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Gateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Gateway)

// WithHTTPClient replaces the default client, e.g. with an httptest server's
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		if c != nil {
			g.httpClient = c
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTimeout bounds every request. Zero means requests may hang forever.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		g.httpClient.Timeout = d
	}
}

func New(baseURL string, opts ...Option) *Gateway {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = constants.DefaultAPIURL
	}
	g := &Gateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// APIError is returned for any response outside the 2xx range
type APIError struct {
	StatusCode int
	Message    string
}

func (e APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Response not successful status=%d", e.StatusCode)
	}
	return fmt.Sprintf("Response not successful status=%d: %s", e.StatusCode, e.Message)
}

type Request struct {
	method     string
	path       string
	body       interface{}
	header     http.Header
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func (g *Gateway) NewRequest(method string, path string) *Request {
	header := http.Header{}
	header.Set("x-source", constants.SourceHeader)
	return &Request{
		method:     method,
		path:       path,
		header:     header,
		baseURL:    g.baseURL,
		httpClient: g.httpClient,
		logger:     g.logger,
	}
}

func (r *Request) Body(body interface{}) *Request {
	r.body = body
	return r
}

// Run performs the request and decodes a successful response into resp.
// Transport, status and decoding failures all come back as a single error.
func (r *Request) Run(ctx context.Context, resp interface{}) error {
	var requestBody io.Reader
	if r.body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(r.body); err != nil {
			return errors.Wrap(err, "encode body")
		}
		requestBody = &buf
	}

	endpoint := r.baseURL + r.path
	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, requestBody)
	if err != nil {
		return errors.Wrapf(err, "%s %s", r.method, r.path)
	}

	req.Header = r.header
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json; charset=utf-8")

	start := time.Now()
	res, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Warn("request failed",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.Error(err),
		)
		return errors.Wrapf(err, "%s %s", r.method, r.path)
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, res.Body); err != nil {
		return errors.Wrap(err, "read response")
	}

	r.logger.Debug("request settled",
		zap.String("method", r.method),
		zap.String("path", r.path),
		zap.Int("status", res.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return APIError{StatusCode: res.StatusCode, Message: extractMessage(buf.Bytes())}
	}

	if resp == nil {
		return nil
	}
	if err := json.NewDecoder(&buf).Decode(resp); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	return nil
}

// extractMessage pulls a readable message out of an error body. JSON bodies
// with an error or message field win, otherwise the trimmed text is used.
func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return trimmed
	}
	if payload.Error != "" {
		return payload.Error
	}
	if payload.Message != "" {
		return payload.Message
	}
	return trimmed
}
