package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jupiterp/jupiterp-go/catalog"
	appErrors "github.com/jupiterp/jupiterp-go/pkg/errors"
	"github.com/jupiterp/jupiterp-go/pkg/metrics"
)

// DefaultBaseURL is the official Jupiterp API endpoint.
const DefaultBaseURL = "https://api.jupiterp.com"

// Client issues requests against the Jupiterp API v0. It holds no mutable
// state, so a single instance is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
	metrics *metrics.Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient injects the HTTP client used for outbound calls. The
// library itself sets no timeout; callers who want one configure it here.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithLogger attaches a logger for per-request debug logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics attaches a recorder that observes every outbound call.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(c *Client) {
		c.metrics = recorder
	}
}

// NewClient constructs a client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, appErrors.ErrMissingBaseURL
	}

	c := &Client{
		baseURL: baseURL,
		httpc:   http.DefaultClient,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewDefaultClient constructs a client against the official Jupiterp API.
func NewDefaultClient(opts ...Option) *Client {
	c, _ := NewClient(DefaultBaseURL, opts...)
	return c
}

// BaseURL returns the base URL this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// requestConfig is the contract every endpoint configuration satisfies.
type requestConfig interface {
	Validate() error
	EncodeQuery() string
}

// Courses fetches basic course records (no sections information). For
// courses with sections, use CoursesWithSections. A nil config fetches with
// no filters applied.
func (c *Client) Courses(ctx context.Context, cfg *CoursesConfig) (*CoursesResponse, error) {
	return fetchList(ctx, c, "courses", cfg, catalog.ParseCourseBasic)
}

// MinifiedCourses fetches course codes and names only.
func (c *Client) MinifiedCourses(ctx context.Context, cfg *CoursesConfig) (*CoursesMinifiedResponse, error) {
	return fetchList(ctx, c, "courses/minified", cfg, catalog.ParseCourseMinified)
}

// CoursesWithSections fetches courses along with their sections.
func (c *Client) CoursesWithSections(ctx context.Context, cfg *CoursesConfig) (*CoursesWithSectionsResponse, error) {
	return fetchList(ctx, c, "courses/withSections", cfg, catalog.ParseCourse)
}

// Sections fetches section records.
func (c *Client) Sections(ctx context.Context, cfg *SectionsConfig) (*SectionsResponse, error) {
	return fetchList(ctx, c, "sections", cfg, catalog.ParseSection)
}

// Instructors fetches all instructors and their average ratings, including
// instructors not actively teaching any courses.
func (c *Client) Instructors(ctx context.Context, cfg *InstructorsConfig) (*InstructorsResponse, error) {
	return fetchList(ctx, c, "instructors", cfg, catalog.ParseInstructor)
}

// ActiveInstructors fetches instructors currently teaching a course, as
// listed on Testudo.
func (c *Client) ActiveInstructors(ctx context.Context, cfg *InstructorsConfig) (*InstructorsResponse, error) {
	return fetchList(ctx, c, "instructors/active", cfg, catalog.ParseInstructor)
}

// noConfig is the configuration of endpoints that take no parameters.
type noConfig struct{}

func (noConfig) Validate() error     { return nil }
func (noConfig) EncodeQuery() string { return "" }

// DeptList fetches the list of department codes.
func (c *Client) DeptList(ctx context.Context) (*DepartmentsResponse, error) {
	return fetchList(ctx, c, "deptList", noConfig{}, func(raw catalog.DepartmentRaw) (string, error) {
		dept, err := catalog.ParseDepartment(raw)
		if err != nil {
			return "", err
		}
		return dept.DeptCode, nil
	})
}

// Health checks API reachability and returns the HTTP status code.
func (c *Client) Health(ctx context.Context) (int, error) {
	resp, err := c.get(ctx, "", "")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// fetchList performs one GET against an endpoint, classifies the outcome,
// and maps the raw records into their domain form.
func fetchList[R any, D any](ctx context.Context, c *Client, path string, cfg requestConfig, parse func(R) (D, error)) (*Response[D], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, path, cfg.EncodeQuery())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	statusMessage := http.StatusText(resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Response[D]{
			StatusCode:    resp.StatusCode,
			StatusMessage: statusMessage,
			ErrorBody:     string(body),
		}, nil
	}

	var raws []R
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}

	data := make([]D, 0, len(raws))
	for _, raw := range raws {
		mapped, err := parse(raw)
		if err != nil {
			return nil, err
		}
		data = append(data, mapped)
	}

	return &Response[D]{
		StatusCode:    resp.StatusCode,
		StatusMessage: statusMessage,
		Data:          data,
	}, nil
}

// get issues a single GET to {base}/v0/{path}?{query}. Transport failures
// propagate unwrapped; the caller owns the response body.
func (c *Client) get(ctx context.Context, path, query string) (*http.Response, error) {
	u := c.baseURL + "/v0/" + path
	if query != "" {
		u += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Debug("api_request_failed",
			zap.String("endpoint", path),
			zap.String("request_id", reqID),
			zap.Duration("latency", duration),
			zap.Error(err),
		)
		return nil, err
	}

	c.metrics.ObserveRequest(path, resp.StatusCode, duration)
	c.logger.Debug("api_request",
		zap.String("endpoint", path),
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", duration),
	)

	return resp, nil
}
