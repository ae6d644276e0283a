package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 10 * time.Second

	productsPath = "/discovery-service/api/v1/products"
	searchPath   = "/discovery-service/api/v1/search"

	platformHeader = "X-Source-Platform"
	platformValue  = "web"
)

// Cause classifies where a fetch failed. Callers render the same fallback UI
// for all causes; the distinction exists for logs and tests.
type Cause string

const (
	CauseTransport Cause = "transport"
	CauseAPI       Cause = "api"
	CauseDecode    Cause = "decode"
)

// LoadError is the single error kind surfaced by the client. Network
// failures, non-200 business codes, and malformed payloads all collapse into
// it with a human-readable message.
type LoadError struct {
	Cause   Cause
	Message string
	err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog: %s", e.Message)
}

func (e *LoadError) Unwrap() error { return e.err }

// NormalizeLang constrains lang to the supported set, defaulting to English.
func NormalizeLang(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "bn":
		return "bn"
	default:
		return "en"
	}
}

// Client provides read-only access to the discovery API. It performs no
// retries; retry and caching policy live in the querycache layer.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient constructs a Client with the provided base URL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

// envelope is the outer wrapper returned by every discovery endpoint.
type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// GetCourse fetches the content document for slug in the requested language.
// An HTTP 200 carrying a non-200 business code is a failure, not data.
func (c *Client) GetCourse(ctx context.Context, slug, lang string) (Course, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Course{}, &LoadError{Cause: CauseAPI, Message: "empty course slug"}
	}
	lang = NormalizeLang(lang)

	env, err := c.get(ctx, productsPath+"/"+url.PathEscape(slug), url.Values{"lang": {lang}})
	if err != nil {
		return Course{}, err
	}

	var course Course
	if err := json.Unmarshal(env.Data, &course); err != nil {
		c.logger.Warn("malformed course payload", zap.String("slug", slug), zap.Error(err))
		return Course{}, &LoadError{Cause: CauseDecode, Message: "malformed course payload", err: err}
	}
	return course, nil
}

// Search queries the discovery search endpoint. The result shape varies by
// product type, so the data payload is returned raw.
func (c *Client) Search(ctx context.Context, query, lang string) (json.RawMessage, error) {
	env, err := c.get(ctx, searchPath, url.Values{
		"q":    {strings.TrimSpace(query)},
		"lang": {NormalizeLang(lang)},
	})
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (envelope, error) {
	endpoint := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return envelope{}, &LoadError{Cause: CauseTransport, Message: "build request failed", err: err}
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(platformHeader, platformValue)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("discovery request failed", zap.String("path", path), zap.Error(err))
		return envelope{}, &LoadError{Cause: CauseTransport, Message: "discovery request failed", err: err}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, &LoadError{Cause: CauseDecode, Message: "malformed discovery response", err: err}
	}
	if env.Code != http.StatusOK {
		msg := strings.TrimSpace(env.Message)
		if msg == "" {
			msg = fmt.Sprintf("discovery returned code %d", env.Code)
		}
		c.logger.Warn("discovery business failure",
			zap.String("path", path),
			zap.Int("code", env.Code),
			zap.String("message", msg))
		return envelope{}, &LoadError{Cause: CauseAPI, Message: msg}
	}
	return env, nil
}
