package nflverse

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
	"github.com/riskibarqy/college-fantasy/internal/platform/resilience"
	"github.com/riskibarqy/college-fantasy/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL = "https://github.com/nflverse/nflverse-data/releases/download"
	maxAssetBytes  = 256 << 20
)

var errNflverseTransient = crerr.New("nflverse transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads nflverse release assets. Every method fetches one CSV asset per
// call; concurrent calls for the same asset share a single download.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
	breaker    *resilience.Breaker
	flight     resilience.Group
}

func NewClient(cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL, err := validateHTTPBaseURL(baseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid NFLVERSE_BASE_URL")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout, Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 60 * time.Second
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.Named("nflverse"),
		breaker:    resilience.NewBreaker("nflverse", cfg.CircuitBreaker, isNflverseCircuitFailure, logger),
	}, nil
}

// table is a decoded CSV asset with a lower-cased header index.
type table struct {
	header []string
	rows   [][]string
	index  map[string]int
}

func newTable(header []string, rows [][]string) table {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}
	return table{header: header, rows: rows, index: index}
}

// column returns the index of the first candidate present in the header.
func (t table) column(candidates ...string) int {
	for _, name := range candidates {
		if i, ok := t.index[name]; ok {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// fetchTable downloads and decodes one asset path relative to the base URL.
func (c *Client) fetchTable(ctx context.Context, path string) (table, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	v, err, _ := c.flight.Do(target, func() (any, error) {
		return c.breaker.Execute(func() (any, error) {
			return c.download(ctx, target)
		})
	})
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "nflverse circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return table{}, fmt.Errorf("fetch %s: %w: %w", path, usecase.ErrTransport, err)
		}
		return table{}, fmt.Errorf("fetch %s: %w", path, err)
	}
	out, _ := v.(table)
	return out, nil
}

func (c *Client) download(ctx context.Context, target string) (table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return table{}, crerr.Wrap(err, "create nflverse request")
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return table{}, ctx.Err()
		}
		return table{}, fmt.Errorf("%w: %w: %v", usecase.ErrTransport, errNflverseTransient, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxAssetBytes)); err != nil {
		return table{}, fmt.Errorf("%w: %w: read body: %v", usecase.ErrTransport, errNflverseTransient, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return table{}, fmt.Errorf("%w: %s", usecase.ErrNotYetAvailable, redactURL(target))
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return table{}, fmt.Errorf("%w: %w: status=%d", usecase.ErrTransport, errNflverseTransient, resp.StatusCode)
	case resp.StatusCode/100 != 2:
		return table{}, fmt.Errorf("nflverse status=%d url=%s", resp.StatusCode, redactURL(target))
	}

	reader := csv.NewReader(strings.NewReader(buf.String()))
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = false
	records, err := reader.ReadAll()
	if err != nil {
		return table{}, fmt.Errorf("decode csv %s: %w", redactURL(target), err)
	}
	if len(records) == 0 {
		return table{}, fmt.Errorf("%w: %s is empty", usecase.ErrNotYetAvailable, redactURL(target))
	}
	return newTable(records[0], records[1:]), nil
}

func isNflverseCircuitFailure(err error) bool {
	return stderrors.Is(err, errNflverseTransient)
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	return strings.TrimRight(candidate, "/"), nil
}

func redactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	parsed.RawQuery = ""
	parsed.User = nil
	return parsed.String()
}
