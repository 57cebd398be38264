package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/college-fantasy/external/cfbd"
	"github.com/riskibarqy/college-fantasy/external/nflverse"
	"github.com/riskibarqy/college-fantasy/internal/config"
	"github.com/riskibarqy/college-fantasy/internal/domain/college"
	"github.com/riskibarqy/college-fantasy/internal/domain/defense"
	"github.com/riskibarqy/college-fantasy/internal/domain/playerstats"
	"github.com/riskibarqy/college-fantasy/internal/domain/schedule"
	"github.com/riskibarqy/college-fantasy/internal/domain/storage"
	"github.com/riskibarqy/college-fantasy/internal/infrastructure/blob"
	"github.com/riskibarqy/college-fantasy/internal/infrastructure/kv"
	"github.com/riskibarqy/college-fantasy/internal/infrastructure/persistence"
	cacherepo "github.com/riskibarqy/college-fantasy/internal/infrastructure/repository/cache"
	basecache "github.com/riskibarqy/college-fantasy/internal/platform/cache"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
	"github.com/riskibarqy/college-fantasy/internal/usecase"
)

// App holds the wired services shared by every command.
type App struct {
	Alignment   *usecase.AlignmentService
	Defense     *usecase.DefenseService
	Aggregation *usecase.AggregationService
	Warm        *usecase.WarmService
	Results     *persistence.Tiered

	closers []func() error
}

// New builds the object graph from cfg. Close releases network resources.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	a := &App{}

	primary, err := a.primaryStore(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	fallback, err := newBlobStore(cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Results = persistence.NewTiered(primary, fallback, logger)

	datasetStore := a.Results
	if cfg.DatasetDir != "" {
		fsStore, err := blob.NewFSStore(cfg.DatasetDir)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("open dataset dir: %w", err)
		}
		datasetStore = persistence.NewTiered(primary, fsStore, logger)
	}
	datasets := usecase.NewDatasetFetcher(datasetStore, cfg.DatasetTTL, logger)

	overrides, err := college.LoadOverrides(cfg.CollegeOverridesFile)
	if err != nil {
		a.Close()
		return nil, err
	}
	resolver, err := college.NewResolver(college.Catalog, overrides)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("build college resolver: %w", err)
	}

	nflClient, err := nflverse.NewClient(nflverse.ClientConfig{
		BaseURL:        cfg.NflverseBaseURL,
		Timeout:        cfg.NflverseTimeout,
		Logger:         logger,
		CircuitBreaker: cfg.NflverseCircuit,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	cfbdClient, err := cfbd.NewClient(cfbd.ClientConfig{
		BaseURL:        cfg.CFBDBaseURL,
		Token:          cfg.CFBDToken,
		Timeout:        cfg.CFBDTimeout,
		Logger:         logger,
		CircuitBreaker: cfg.CFBDCircuit,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	var (
		stats    playerstats.Source          = nflClient
		averages playerstats.AverageProvider = nflClient
		teams    defense.Source              = nflClient
		pro      schedule.ProSource          = nflClient
		cfb      schedule.CollegiateSource   = cfbdClient
	)
	if cfg.CacheMemoryEnabled {
		memo := basecache.NewStore(cfg.CacheTTL)
		statSource := cacherepo.NewStatSource(nflClient, nflClient, memo)
		scheduleSource := cacherepo.NewScheduleSource(nflClient, cfbdClient, memo)
		stats, averages = statSource, statSource
		pro, cfb = scheduleSource, scheduleSource
		teams = cacherepo.NewTeamWeekSource(nflClient, memo)
	}

	aligner := schedule.NewAligner(cfg.AlignPolicy, schedule.OffsetTable{Offset: cfg.AlignCFBWeekOffset})
	a.Alignment = usecase.NewAlignmentService(pro, cfb, aligner, resolver, datasets, logger)
	a.Defense = usecase.NewDefenseService(teams, datasets, logger)
	a.Aggregation = usecase.NewAggregationService(
		stats,
		averages,
		a.Defense,
		resolver,
		a.Results,
		datasets,
		usecase.AggregationServiceConfig{ResultTTL: cfg.ResultTTL},
		logger,
	)
	a.Warm = usecase.NewWarmService(a.Aggregation, cfg.WarmMaxWorkers, logger)

	return a, nil
}

func (a *App) primaryStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage.KeyValueStore, error) {
	if cfg.RedisEnabled {
		store, err := kv.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	}
	if cfg.CacheMemoryEnabled {
		logger.Debug("redis disabled, results kept in process memory")
		return kv.NewMemoryStore(cfg.ResultTTL), nil
	}
	return nil, nil
}

func newBlobStore(cfg config.Config, logger *logging.Logger) (storage.BlobStore, error) {
	switch cfg.BlobBackend {
	case config.BlobBackendHTTP:
		return blob.NewHTTPStore(blob.HTTPStoreConfig{
			BaseURL:        cfg.BlobBaseURL,
			Token:          cfg.BlobToken,
			Timeout:        cfg.BlobTimeout,
			Logger:         logger,
			CircuitBreaker: cfg.BlobCircuit,
		})
	case config.BlobBackendFS:
		return blob.NewFSStore(cfg.BlobDir)
	default:
		return nil, nil
	}
}

// Close releases connections opened by New.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
