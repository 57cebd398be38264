package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/college-fantasy/internal/domain/storage"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
	"github.com/riskibarqy/college-fantasy/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxBlobBytes = 32 << 20

var errBlobTransient = crerr.New("blob store transient failure")

type HTTPStoreConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// HTTPStore talks to an object store exposing PUT/HEAD/GET/DELETE by path
// under a base URL, authenticated with a bearer token.
type HTTPStore struct {
	client  *http.Client
	baseURL string
	token   string
	logger  *logging.Logger
	breaker *resilience.Breaker
}

func NewHTTPStore(cfg HTTPStoreConfig) (*HTTPStore, error) {
	baseURL, err := validateHTTPBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid BLOB_BASE_URL")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout, Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	return &HTTPStore{
		client:  client,
		baseURL: baseURL,
		token:   strings.TrimSpace(cfg.Token),
		logger:  logger.Named("blob"),
		breaker: resilience.NewBreaker("blob-http", cfg.CircuitBreaker, isBlobCircuitFailure, logger),
	}, nil
}

func (s *HTTPStore) Put(ctx context.Context, path string, data []byte) error {
	_, _, err := s.do(ctx, http.MethodPut, path, data)
	return err
}

func (s *HTTPStore) Head(ctx context.Context, path string) (bool, error) {
	_, found, err := s.do(ctx, http.MethodHead, path, nil)
	return found, err
}

func (s *HTTPStore) Get(ctx context.Context, path string) ([]byte, bool, error) {
	return s.do(ctx, http.MethodGet, path, nil)
}

func (s *HTTPStore) Delete(ctx context.Context, path string) error {
	_, _, err := s.do(ctx, http.MethodDelete, path, nil)
	return err
}

type blobResponse struct {
	body  []byte
	found bool
}

func (s *HTTPStore) do(ctx context.Context, method, path string, body []byte) ([]byte, bool, error) {
	target := s.baseURL + "/" + strings.TrimLeft(path, "/")
	out, err := s.breaker.Execute(func() (any, error) {
		return s.execute(ctx, method, target, body)
	})
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			s.logger.WarnContext(ctx, "blob circuit breaker rejected request", "method", method, "path", path, "state", s.breaker.State())
		}
		return nil, false, fmt.Errorf("blob %s %s: %w", strings.ToLower(method), path, err)
	}
	resp, _ := out.(blobResponse)
	return resp.body, resp.found, nil
}

func (s *HTTPStore) execute(ctx context.Context, method, target string, body []byte) (blobResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return blobResponse{}, crerr.Wrap(err, "create blob request")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return blobResponse{}, fmt.Errorf("%w: %v", errBlobTransient, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBlobBytes)); err != nil {
		return blobResponse{}, fmt.Errorf("%w: read body: %v", errBlobTransient, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return blobResponse{}, nil
	case resp.StatusCode/100 == 2:
		return blobResponse{body: append([]byte(nil), buf.B...), found: true}, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return blobResponse{}, fmt.Errorf("%w: status=%d body=%s", errBlobTransient, resp.StatusCode, abbreviate(buf.String()))
	default:
		return blobResponse{}, fmt.Errorf("blob store status=%d body=%s", resp.StatusCode, abbreviate(buf.String()))
	}
}

func isBlobCircuitFailure(err error) bool {
	return crerr.Is(err, errBlobTransient)
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", storage.ErrNotConfigured
	}
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

func abbreviate(body string) string {
	body = strings.TrimSpace(body)
	if len(body) > 256 {
		return body[:256] + "..."
	}
	return body
}
