package cfbd

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/college-fantasy/internal/domain/schedule"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
	"github.com/riskibarqy/college-fantasy/internal/platform/resilience"
	"github.com/riskibarqy/college-fantasy/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL = "https://api.collegefootballdata.com"
	maxBodyBytes   = 32 << 20
)

var errCFBDTransient = crerr.New("cfbd transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the collegiate schedule from the CollegeFootballData API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
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
		return nil, crerr.Wrap(err, "invalid CFBD_BASE_URL")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout, Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		logger:     logger.Named("cfbd"),
		breaker:    resilience.NewBreaker("cfbd", cfg.CircuitBreaker, isCFBDCircuitFailure, logger),
	}, nil
}

// gameItem accepts both the camelCase and the older snake_case payloads.
type gameItem struct {
	Week         int    `json:"week"`
	SeasonType   string `json:"seasonType"`
	StartDate    string `json:"startDate"`
	StartTimeTBD bool   `json:"startTimeTBD"`
	HomeTeam     string `json:"homeTeam"`
	AwayTeam     string `json:"awayTeam"`
	LegacyType   string `json:"season_type"`
	LegacyStart  string `json:"start_date"`
	LegacyTBD    bool   `json:"start_time_tbd"`
	LegacyHome   string `json:"home_team"`
	LegacyAway   string `json:"away_team"`
}

func (g gameItem) home() string { return firstNonEmpty(g.HomeTeam, g.LegacyHome) }
func (g gameItem) away() string { return firstNonEmpty(g.AwayTeam, g.LegacyAway) }

func (g gameItem) kickoff() *time.Time {
	if g.StartTimeTBD || g.LegacyTBD {
		return nil
	}
	raw := firstNonEmpty(g.StartDate, g.LegacyStart)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000Z", "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			utc := parsed.UTC()
			return &utc
		}
	}
	return nil
}

// ListCollegiateGames returns regular-season games with raw team names. Games
// whose start time is still to be determined carry a nil Kickoff.
func (c *Client) ListCollegiateGames(ctx context.Context, season int) ([]schedule.CollegiateGame, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(season))
	query.Set("seasonType", "regular")

	var items []gameItem
	if err := c.getJSON(ctx, "/games", query, &items); err != nil {
		return nil, fmt.Errorf("fetch collegiate games season=%d: %w", season, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no collegiate games for season %d", usecase.ErrNotYetAvailable, season)
	}

	out := make([]schedule.CollegiateGame, 0, len(items))
	for _, item := range items {
		seasonType := strings.ToLower(firstNonEmpty(item.SeasonType, item.LegacyType))
		if seasonType != "" && seasonType != "regular" {
			continue
		}
		if item.Week <= 0 {
			continue
		}
		out = append(out, schedule.CollegiateGame{
			Week:    item.Week,
			Kickoff: item.kickoff(),
			HomeRaw: item.home(),
			AwayRaw: item.away(),
		})
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	v, err, _ := c.flight.Do(target, func() (any, error) {
		return c.breaker.Execute(func() (any, error) {
			return c.execute(ctx, target)
		})
	})
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "cfbd circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return fmt.Errorf("%w: %w", usecase.ErrTransport, err)
		}
		return err
	}

	raw, _ := v.([]byte)
	if err := sonic.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) execute(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "create cfbd request")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w: %v", usecase.ErrTransport, errCFBDTransient, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return nil, fmt.Errorf("%w: %w: read body: %v", usecase.ErrTransport, errCFBDTransient, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: status=404", usecase.ErrNotYetAvailable)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: cfbd rejected credentials status=%d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: %w: status=%d body=%s", usecase.ErrTransport, errCFBDTransient, resp.StatusCode, abbreviateBody(buf.String()))
	case resp.StatusCode/100 != 2:
		return nil, fmt.Errorf("cfbd status=%d body=%s", resp.StatusCode, abbreviateBody(buf.String()))
	}
	return append([]byte(nil), buf.B...), nil
}

func isCFBDCircuitFailure(err error) bool {
	return stderrors.Is(err, errCFBDTransient)
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

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func abbreviateBody(body string) string {
	body = strings.TrimSpace(body)
	if len(body) > 256 {
		return body[:256] + "..."
	}
	return body
}
