package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/college-fantasy/internal/domain/defense"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const datasetTeamWeeks = "team_weeks"

// DefenseService runs the opponent-swap approximation over a season's team stats.
type DefenseService struct {
	source   defense.Source
	datasets *DatasetFetcher
	logger   *logging.Logger
}

func NewDefenseService(source defense.Source, datasets *DatasetFetcher, logger *logging.Logger) *DefenseService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DefenseService{source: source, datasets: datasets, logger: logger.Named("defense")}
}

// Approximate returns defense rows for week, or the latest week when week <= 0.
// A missing team stats file surfaces as defense.ErrUnavailable.
func (s *DefenseService) Approximate(ctx context.Context, season, week int) (defense.Result, DatasetStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DefenseService.Approximate", attribute.Int("season", season), attribute.Int("week", week))
	defer span.End()

	if err := validateSeason(season); err != nil {
		return defense.Result{}, DatasetStatus{}, err
	}
	if s.source == nil {
		status := DatasetStatus{Name: datasetTeamWeeks, Freshness: FreshnessUnavailable, Reason: "no team stats source configured"}
		return defense.Result{}, status, fmt.Errorf("%w: %w", defense.ErrUnavailable, ErrDependencyUnavailable)
	}

	table, status, err := fetchDataset(ctx, s.datasets, datasetTeamWeeks, datasetKey("team_weeks", season), func(ctx context.Context) (defense.Table, error) {
		return s.source.LoadTeamWeeks(ctx, season)
	})
	if err != nil {
		recordSpanError(span, err)
		if errors.Is(err, ErrNotYetAvailable) {
			return defense.Result{}, status, fmt.Errorf("%w: season %d: %w", defense.ErrUnavailable, season, err)
		}
		return defense.Result{}, status, err
	}

	result, err := defense.Approximate(season, week, table)
	if err != nil {
		recordSpanError(span, err)
		if errors.Is(err, defense.ErrSchemaMismatch) {
			return defense.Result{}, status, fmt.Errorf("approximate defense season=%d: %w: %w", season, ErrSchemaMismatch, err)
		}
		return defense.Result{}, status, fmt.Errorf("approximate defense season=%d: %w", season, err)
	}
	if len(result.MissingFields) > 0 {
		s.logger.WarnContext(ctx, "team stats missing optional columns, scoring them as zero", "season", season, "fields", result.MissingFields)
	}
	return result, status, nil
}
