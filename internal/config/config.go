package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/college-fantasy/internal/domain/schedule"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
	"github.com/riskibarqy/college-fantasy/internal/platform/resilience"
	"github.com/robfig/cron/v3"
)

const (
	BlobBackendNone = "none"
	BlobBackendHTTP = "http"
	BlobBackendFS   = "fs"
)

// Config stores runtime configuration for the CLI and its jobs.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level

	UptraceEnabled bool
	UptraceDSN     string

	RedisEnabled       bool
	RedisURL           string
	CacheMemoryEnabled bool
	CacheTTL           time.Duration
	ResultTTL          time.Duration

	BlobBackend string
	BlobBaseURL string
	BlobToken   string
	BlobDir     string
	BlobTimeout time.Duration
	BlobCircuit resilience.CircuitBreakerConfig

	NflverseBaseURL string
	NflverseTimeout time.Duration
	NflverseCircuit resilience.CircuitBreakerConfig

	CFBDBaseURL string
	CFBDToken   string
	CFBDTimeout time.Duration
	CFBDCircuit resilience.CircuitBreakerConfig

	DatasetDir string
	DatasetTTL time.Duration

	CollegeOverridesFile string
	AlignCFBWeekOffset   int
	AlignPolicy          schedule.AlignmentPolicy

	WarmMaxWorkers int
	ScheduleCron   string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	redisEnabled, err := strconv.ParseBool(getEnv("REDIS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REDIS_ENABLED: %w", err)
	}
	redisURL := strings.TrimSpace(getEnv("REDIS_URL", ""))
	if redisEnabled && redisURL == "" {
		return Config{}, fmt.Errorf("REDIS_URL is required when REDIS_ENABLED=true")
	}

	cacheMemoryEnabled, err := strconv.ParseBool(getEnv("CACHE_MEMORY_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_MEMORY_ENABLED: %w", err)
	}
	cacheTTL, err := parsePositiveDuration("CACHE_TTL", "10m")
	if err != nil {
		return Config{}, err
	}
	resultTTL, err := parsePositiveDuration("RESULT_TTL", "168h")
	if err != nil {
		return Config{}, err
	}

	blobBackend := strings.ToLower(strings.TrimSpace(getEnv("BLOB_BACKEND", BlobBackendNone)))
	blobBaseURL := strings.TrimSpace(getEnv("BLOB_BASE_URL", ""))
	blobDir := strings.TrimSpace(getEnv("BLOB_DIR", ""))
	switch blobBackend {
	case BlobBackendNone:
	case BlobBackendHTTP:
		if blobBaseURL == "" {
			return Config{}, fmt.Errorf("BLOB_BASE_URL is required when BLOB_BACKEND=http")
		}
	case BlobBackendFS:
		if blobDir == "" {
			return Config{}, fmt.Errorf("BLOB_DIR is required when BLOB_BACKEND=fs")
		}
	default:
		return Config{}, fmt.Errorf("invalid BLOB_BACKEND %q: valid values are %s, %s, %s", blobBackend, BlobBackendNone, BlobBackendHTTP, BlobBackendFS)
	}
	blobTimeout, err := parsePositiveDuration("BLOB_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	blobCircuit, err := parseCircuit("BLOB")
	if err != nil {
		return Config{}, err
	}

	nflverseTimeout, err := parsePositiveDuration("NFLVERSE_TIMEOUT", "60s")
	if err != nil {
		return Config{}, err
	}
	nflverseCircuit, err := parseCircuit("NFLVERSE")
	if err != nil {
		return Config{}, err
	}

	cfbdTimeout, err := parsePositiveDuration("CFBD_TIMEOUT", "20s")
	if err != nil {
		return Config{}, err
	}
	cfbdCircuit, err := parseCircuit("CFBD")
	if err != nil {
		return Config{}, err
	}

	datasetTTL, err := time.ParseDuration(getEnv("DATASET_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DATASET_TTL: %w", err)
	}
	if datasetTTL < 0 {
		return Config{}, fmt.Errorf("DATASET_TTL must be >= 0")
	}

	offset, err := getEnvAsInt("ALIGN_CFB_WEEK_OFFSET", schedule.DefaultCFBWeekOffset)
	if err != nil {
		return Config{}, fmt.Errorf("parse ALIGN_CFB_WEEK_OFFSET: %w", err)
	}
	if offset < 0 || offset > 4 {
		return Config{}, fmt.Errorf("ALIGN_CFB_WEEK_OFFSET must be between 0 and 4")
	}
	policy, ok := schedule.ParseAlignmentPolicy(getEnv("ALIGN_POLICY", string(schedule.PolicyPerWeek)))
	if !ok {
		return Config{}, fmt.Errorf("invalid ALIGN_POLICY %q: valid values are %s, %s", getEnv("ALIGN_POLICY", ""), schedule.PolicyPerWeek, schedule.PolicyPerGame)
	}

	warmMaxWorkers, err := getEnvAsInt("WARM_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse WARM_MAX_WORKERS: %w", err)
	}
	if warmMaxWorkers < 1 {
		return Config{}, fmt.Errorf("WARM_MAX_WORKERS must be >= 1")
	}

	scheduleCron := strings.TrimSpace(getEnv("SCHEDULE_CRON", "0 11 * * 2"))
	if _, err := cron.ParseStandard(scheduleCron); err != nil {
		return Config{}, fmt.Errorf("parse SCHEDULE_CRON: %w", err)
	}

	return Config{
		AppEnv:               appEnv,
		ServiceName:          strings.TrimSpace(getEnv("APP_SERVICE_NAME", "college-fantasy")),
		ServiceVersion:       strings.TrimSpace(getEnv("APP_SERVICE_VERSION", "dev")),
		LogLevel:             parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		UptraceEnabled:       uptraceEnabled,
		UptraceDSN:           uptraceDSN,
		RedisEnabled:         redisEnabled,
		RedisURL:             redisURL,
		CacheMemoryEnabled:   cacheMemoryEnabled,
		CacheTTL:             cacheTTL,
		ResultTTL:            resultTTL,
		BlobBackend:          blobBackend,
		BlobBaseURL:          blobBaseURL,
		BlobToken:            strings.TrimSpace(getEnv("BLOB_TOKEN", "")),
		BlobDir:              blobDir,
		BlobTimeout:          blobTimeout,
		BlobCircuit:          blobCircuit,
		NflverseBaseURL:      strings.TrimSpace(getEnv("NFLVERSE_BASE_URL", "https://github.com/nflverse/nflverse-data/releases/download")),
		NflverseTimeout:      nflverseTimeout,
		NflverseCircuit:      nflverseCircuit,
		CFBDBaseURL:          strings.TrimSpace(getEnv("CFBD_BASE_URL", "https://api.collegefootballdata.com")),
		CFBDToken:            strings.TrimSpace(getEnv("CFBD_TOKEN", "")),
		CFBDTimeout:          cfbdTimeout,
		CFBDCircuit:          cfbdCircuit,
		DatasetDir:           strings.TrimSpace(getEnv("DATASET_DIR", "")),
		DatasetTTL:           datasetTTL,
		CollegeOverridesFile: strings.TrimSpace(getEnv("COLLEGE_OVERRIDES_FILE", "")),
		AlignCFBWeekOffset:   offset,
		AlignPolicy:          policy,
		WarmMaxWorkers:       warmMaxWorkers,
		ScheduleCron:         scheduleCron,
	}, nil
}

// parseCircuit reads <PREFIX>_CIRCUIT_{ENABLED,FAILURE_COUNT,OPEN_TIMEOUT,HALF_OPEN_MAX_REQ}.
func parseCircuit(prefix string) (resilience.CircuitBreakerConfig, error) {
	defaults := resilience.DefaultCircuitBreakerConfig()
	key := func(name string) string { return prefix + "_CIRCUIT_" + name }

	enabled, err := strconv.ParseBool(getEnv(key("ENABLED"), strconv.FormatBool(defaults.Enabled)))
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %s: %w", key("ENABLED"), err)
	}
	failureCount, err := getEnvAsInt(key("FAILURE_COUNT"), defaults.FailureThreshold)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %s: %w", key("FAILURE_COUNT"), err)
	}
	if failureCount < 1 {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("%s must be >= 1", key("FAILURE_COUNT"))
	}
	openTimeout, err := parsePositiveDuration(key("OPEN_TIMEOUT"), defaults.OpenTimeout.String())
	if err != nil {
		return resilience.CircuitBreakerConfig{}, err
	}
	halfOpenMaxReq, err := getEnvAsInt(key("HALF_OPEN_MAX_REQ"), defaults.HalfOpenMaxReq)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %s: %w", key("HALF_OPEN_MAX_REQ"), err)
	}
	if halfOpenMaxReq < 1 {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("%s must be >= 1", key("HALF_OPEN_MAX_REQ"))
	}

	return resilience.CircuitBreakerConfig{
		Enabled:          enabled,
		FailureThreshold: failureCount,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpenMaxReq,
	}, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
