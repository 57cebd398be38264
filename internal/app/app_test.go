package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/college-fantasy/internal/config"
	"github.com/riskibarqy/college-fantasy/internal/domain/schedule"
	"github.com/riskibarqy/college-fantasy/internal/domain/storage"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
	"github.com/riskibarqy/college-fantasy/internal/platform/resilience"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "college-fantasy",
		CacheMemoryEnabled: true,
		CacheTTL:           time.Minute,
		ResultTTL:          time.Hour,
		BlobBackend:        config.BlobBackendFS,
		BlobDir:            t.TempDir(),
		NflverseTimeout:    time.Second,
		NflverseCircuit:    resilience.DefaultCircuitBreakerConfig(),
		CFBDTimeout:        time.Second,
		CFBDCircuit:        resilience.DefaultCircuitBreakerConfig(),
		DatasetDir:         t.TempDir(),
		AlignCFBWeekOffset: schedule.DefaultCFBWeekOffset,
		AlignPolicy:        schedule.PolicyPerWeek,
		WarmMaxWorkers:     2,
	}
}

func TestNew_WiresServicesOverTieredStore(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := New(ctx, cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer a.Close()

	if a.Alignment == nil || a.Defense == nil || a.Aggregation == nil || a.Warm == nil {
		t.Fatalf("expected every service wired: %+v", a)
	}

	res, err := a.Results.Persist(ctx, "agg:2024:3:ppr:weekly:nok:none", []byte(`{}`), storage.PersistOptions{})
	if err != nil {
		t.Fatalf("persist: %v", err)
	}
	if !res.Stored || res.Backend != storage.BackendPrimary {
		t.Fatalf("expected primary write, got %+v", res)
	}
}

func TestNew_WithoutMemoryCacheFallsBackToBlob(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.CacheMemoryEnabled = false

	a, err := New(ctx, cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer a.Close()

	res, err := a.Results.Persist(ctx, "agg:2024:4:ppr:weekly:nok:none", []byte(`{}`), storage.PersistOptions{})
	if err != nil {
		t.Fatalf("persist: %v", err)
	}
	if res.Backend != storage.BackendFallback {
		t.Fatalf("expected blob write, got %+v", res)
	}
	entries, err := os.ReadDir(filepath.Join(cfg.BlobDir, "cache"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one blob under %s, got %v (%v)", cfg.BlobDir, entries, err)
	}
}

func TestNew_RejectsBadInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "missing overrides file", mutate: func(c *config.Config) { c.CollegeOverridesFile = "/nonexistent/overrides.yaml" }},
		{name: "bad nflverse url", mutate: func(c *config.Config) { c.NflverseBaseURL = "ftp://example.com" }},
		{name: "bad blob url", mutate: func(c *config.Config) {
			c.BlobBackend = config.BlobBackendHTTP
			c.BlobBaseURL = "not a url"
		}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t)
			tc.mutate(&cfg)
			if _, err := New(context.Background(), cfg, logging.NewNop()); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
