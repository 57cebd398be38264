package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/college-fantasy/internal/domain/defense"
	"github.com/riskibarqy/college-fantasy/internal/domain/lineup"
	"github.com/riskibarqy/college-fantasy/internal/domain/playerstats"
	"github.com/riskibarqy/college-fantasy/internal/domain/schedule"
	"github.com/riskibarqy/college-fantasy/internal/domain/storage"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	datasetStatLines = "stat_lines"
	datasetAverages  = "season_averages"
	datasetRoster    = "roster"

	DefenseStatusOff         = "off"
	DefenseStatusOK          = "ok"
	DefenseStatusStale       = "stale"
	DefenseStatusUnavailable = "unavailable"
)

// AggregateRequest selects one aggregation. A zero Season means the last
// completed professional week.
type AggregateRequest struct {
	Season        int    `json:"season" validate:"omitempty,gte=1999,lte=2100"`
	Week          int    `json:"week" validate:"gte=0,lte=18"`
	Format        string `json:"format" validate:"omitempty,oneof=standard half_ppr ppr"`
	Mode          string `json:"mode" validate:"omitempty,oneof=weekly avg"`
	IncludeKicker bool   `json:"include_kicker"`
	Defense       string `json:"defense" validate:"omitempty,oneof=none approx"`
	// Force recomputes and overwrites any stored payload.
	Force bool `json:"force"`
}

type AggregationResult struct {
	Season          int                       `json:"season"`
	Week            int                       `json:"week"`
	Format          playerstats.ScoringFormat `json:"format"`
	Mode            lineup.Mode               `json:"mode"`
	IncludeKicker   bool                      `json:"include_kicker"`
	DefenseMode     lineup.DefenseMode        `json:"defense_mode"`
	Schools         []lineup.SchoolAggregate  `json:"schools"`
	UnresolvedCount int                       `json:"unresolved_count"`
	DefenseStatus   string                    `json:"defense_status"`
	Sources         []DatasetStatus           `json:"sources"`
	ComputedAt      time.Time                 `json:"computed_at"`

	// Cached is set when the payload came from the persistence layer.
	Cached    bool                  `json:"-"`
	Persisted storage.PersistResult `json:"-"`
}

// Degraded reports whether any input was stale or missing. Degraded results
// are never persisted so a later call can replace them with complete data.
func (r AggregationResult) Degraded() bool {
	if r.DefenseStatus == DefenseStatusStale || r.DefenseStatus == DefenseStatusUnavailable {
		return true
	}
	for _, source := range r.Sources {
		if source.Freshness != FreshnessFresh {
			return true
		}
	}
	return false
}

type aggregateParams struct {
	season        int
	week          int
	format        playerstats.ScoringFormat
	mode          lineup.Mode
	includeKicker bool
	defense       lineup.DefenseMode
}

// AggregationKey is the persistence key for one aggregation payload.
func AggregationKey(season, week int, format playerstats.ScoringFormat, mode lineup.Mode, includeKicker bool, def lineup.DefenseMode) string {
	kicker := "nok"
	if includeKicker {
		kicker = "k"
	}
	return fmt.Sprintf("agg:%d:%d:%s:%s:%s:%s", season, week, format, mode, kicker, def)
}

func (p aggregateParams) key() string {
	return AggregationKey(p.season, p.week, p.format, p.mode, p.includeKicker, p.defense)
}

// AggregationService fetches one week's inputs in parallel, scores every
// college, and persists the payload.
type AggregationService struct {
	stats    playerstats.Source
	averages playerstats.AverageProvider
	defense  *DefenseService
	resolver lineup.Resolver
	store    storage.Persister
	datasets *DatasetFetcher
	validate *validator.Validate
	ttl      time.Duration
	logger   *logging.Logger
	now      func() time.Time
}

type AggregationServiceConfig struct {
	// ResultTTL bounds how long a payload lives in the primary store.
	ResultTTL time.Duration
}

func NewAggregationService(
	stats playerstats.Source,
	averages playerstats.AverageProvider,
	defenseService *DefenseService,
	resolver lineup.Resolver,
	store storage.Persister,
	datasets *DatasetFetcher,
	cfg AggregationServiceConfig,
	logger *logging.Logger,
) *AggregationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AggregationService{
		stats:    stats,
		averages: averages,
		defense:  defenseService,
		resolver: resolver,
		store:    store,
		datasets: datasets,
		validate: validator.New(),
		ttl:      cfg.ResultTTL,
		logger:   logger.Named("aggregation"),
		now:      time.Now,
	}
}

func (s *AggregationService) normalize(ctx context.Context, req AggregateRequest) (aggregateParams, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return aggregateParams{}, fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}

	season, week := req.Season, req.Week
	if season == 0 {
		last := schedule.LastCompletedWeek(s.now().UTC())
		season = last.Season
		if week == 0 {
			week = last.Week
		}
	}
	if week < 1 || week > schedule.FinalWeek {
		return aggregateParams{}, fmt.Errorf("%w: week must be between 1 and %d", ErrInvalidInput, schedule.FinalWeek)
	}

	format, err := playerstats.ParseScoringFormat(req.Format)
	if err != nil {
		return aggregateParams{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	mode, err := lineup.ParseMode(req.Mode)
	if err != nil {
		return aggregateParams{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	def, err := lineup.ParseDefenseMode(req.Defense)
	if err != nil {
		return aggregateParams{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return aggregateParams{
		season:        season,
		week:          week,
		format:        format,
		mode:          mode,
		includeKicker: req.IncludeKicker,
		defense:       def,
	}, nil
}

func (s *AggregationService) Aggregate(ctx context.Context, req AggregateRequest) (AggregationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AggregationService.Aggregate")
	defer span.End()

	params, err := s.normalize(ctx, req)
	if err != nil {
		return AggregationResult{}, err
	}
	key := params.key()
	span.SetAttributes(attribute.String("aggregation.key", key))

	force := req.Force
	var previous *AggregationResult
	if !force {
		if cached, ok := s.readCached(ctx, key); ok {
			if !cached.Degraded() {
				return cached, nil
			}
			// A degraded copy must be overwritten once inputs recover.
			previous, force = &cached, true
		}
	}

	result, err := s.compute(ctx, params)
	if err != nil {
		if previous != nil {
			s.logger.WarnContext(ctx, "recompute failed, serving degraded stored result", "key", key, "error", err)
			return *previous, nil
		}
		recordSpanError(span, err)
		return AggregationResult{}, err
	}

	if result.Degraded() {
		s.logger.WarnContext(ctx, "aggregation inputs degraded, result not persisted", "key", key, "defense_status", result.DefenseStatus)
		result.Persisted = storage.PersistResult{Backend: storage.BackendNone}
		return result, nil
	}

	if s.store != nil {
		raw, err := sonic.Marshal(result)
		if err != nil {
			return AggregationResult{}, fmt.Errorf("encode aggregation result: %w", err)
		}
		persisted, err := s.store.Persist(ctx, key, raw, storage.PersistOptions{TTL: s.ttl, Force: force})
		if err != nil {
			s.logger.WarnContext(ctx, "aggregation result not persisted", "key", key, "error", err)
		}
		result.Persisted = persisted
	}
	return result, nil
}

// Invalidate drops the stored payload for req and returns its key.
func (s *AggregationService) Invalidate(ctx context.Context, req AggregateRequest) (string, error) {
	params, err := s.normalize(ctx, req)
	if err != nil {
		return "", err
	}
	key := params.key()
	if s.store == nil {
		return key, nil
	}
	if err := s.store.Invalidate(ctx, key); err != nil {
		return key, fmt.Errorf("invalidate %s: %w", key, err)
	}
	s.logger.InfoContext(ctx, "aggregation result invalidated", "key", key)
	return key, nil
}

func (s *AggregationService) readCached(ctx context.Context, key string) (AggregationResult, bool) {
	if s.store == nil {
		return AggregationResult{}, false
	}
	raw, found, err := s.store.Read(ctx, key)
	if err != nil || !found {
		return AggregationResult{}, false
	}
	var cached AggregationResult
	if err := sonic.Unmarshal(raw, &cached); err != nil {
		s.logger.WarnContext(ctx, "stored aggregation result is unreadable, recomputing", "key", key, "error", err)
		return AggregationResult{}, false
	}
	cached.Cached = true
	return cached, true
}

func (s *AggregationService) compute(ctx context.Context, params aggregateParams) (AggregationResult, error) {
	if s.stats == nil {
		return AggregationResult{}, fmt.Errorf("%w: stat source is not configured", ErrDependencyUnavailable)
	}

	var (
		lines         []playerstats.StatLine
		linesStatus   DatasetStatus
		averages      map[string]float64
		averageStatus *DatasetStatus
		roster        []playerstats.RosterEntry
		rosterStatus  DatasetStatus
		defResult     defense.Result
		defStatus     *DatasetStatus
		defenseState  = DefenseStatusOff
	)
	useAverages := params.mode == lineup.ModeAvg && params.week > 1 && s.averages != nil
	wantDefense := params.defense == lineup.DefenseApprox

	// The stat fetch is required; everything else degrades.
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		lines, linesStatus, err = fetchDataset(ctx, s.datasets, datasetStatLines,
			datasetKey("stats", params.season, params.week, params.format),
			func(ctx context.Context) ([]playerstats.StatLine, error) {
				return s.stats.ListStatLines(ctx, params.season, params.week, params.format)
			})
		if err != nil {
			return fmt.Errorf("fetch stat lines season=%d week=%d: %w", params.season, params.week, err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		roster, rosterStatus, err = fetchDataset(ctx, s.datasets, datasetRoster,
			datasetKey("roster", params.season),
			func(ctx context.Context) ([]playerstats.RosterEntry, error) {
				return s.stats.ListRoster(ctx, params.season)
			})
		if err != nil && ctx.Err() == nil {
			s.logger.WarnContext(ctx, "roster unavailable, colleges come from stat lines only", "season", params.season, "error", err)
		}
		return nil
	})
	if useAverages {
		p.Go(func(ctx context.Context) error {
			values, status, err := fetchDataset(ctx, s.datasets, datasetAverages,
				datasetKey("avg", params.season, params.week, params.format),
				func(ctx context.Context) (map[string]float64, error) {
					return s.averages.SeasonAverages(ctx, params.season, params.week, params.format)
				})
			if err != nil && ctx.Err() == nil {
				s.logger.WarnContext(ctx, "season averages unavailable, using weekly points", "season", params.season, "week", params.week, "error", err)
			}
			averages, averageStatus = values, &status
			return nil
		})
	}
	if wantDefense && s.defense != nil {
		p.Go(func(ctx context.Context) error {
			result, status, err := s.defense.Approximate(ctx, params.season, params.week)
			defStatus = &status
			switch {
			case err == nil:
				defResult = result
			case errors.Is(err, defense.ErrUnavailable):
				s.logger.WarnContext(ctx, "defense data unavailable, omitting defense rows", "season", params.season, "week", params.week, "error", err)
			case ctx.Err() == nil:
				s.logger.WarnContext(ctx, "defense approximation failed, omitting defense rows", "season", params.season, "week", params.week, "error", err)
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return AggregationResult{}, err
	}

	sources := []DatasetStatus{linesStatus, rosterStatus}
	if averageStatus != nil {
		sources = append(sources, *averageStatus)
	}

	opts := lineup.Options{IncludeKicker: params.includeKicker, DefenseMode: params.defense, Roster: roster}
	if wantDefense {
		defenseState = DefenseStatusUnavailable
		if defStatus != nil {
			sources = append(sources, *defStatus)
			if len(defResult.Rows) > 0 {
				opts.DefenseScores = defResult.ScoreByTeam()
				defenseState = DefenseStatusOK
				if defStatus.Freshness == FreshnessStale {
					defenseState = DefenseStatusStale
				}
			}
		}
	}

	lines = playerstats.AttachColleges(lines, roster)
	out := lineup.Aggregate(lines, params.week, params.mode, averages, s.resolver, opts)
	if out.UnresolvedCount > 0 {
		s.logger.WarnContext(ctx, "players without a resolvable college grouped under Unknown",
			"season", params.season, "week", params.week, "count", out.UnresolvedCount)
	}

	return AggregationResult{
		Season:          params.season,
		Week:            params.week,
		Format:          params.format,
		Mode:            params.mode,
		IncludeKicker:   params.includeKicker,
		DefenseMode:     params.defense,
		Schools:         out.Schools,
		UnresolvedCount: out.UnresolvedCount,
		DefenseStatus:   defenseState,
		Sources:         sources,
		ComputedAt:      s.now().UTC(),
	}, nil
}
