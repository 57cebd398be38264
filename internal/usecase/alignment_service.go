package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/college-fantasy/internal/domain/college"
	"github.com/riskibarqy/college-fantasy/internal/domain/schedule"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	minSeason      = 1999
	maxSeason      = 2100
	maxCFBWeek     = 20
	datasetProSked = "pro_schedule"
	datasetCFBSked = "cfb_schedule"
)

// WindowSet is one season's professional week windows.
type WindowSet struct {
	Season  int                   `json:"season"`
	Windows []schedule.WeekWindow `json:"windows"`
	// Calendar is set when windows were computed from the fixed weekly cutoff
	// instead of the published schedule.
	Calendar bool          `json:"calendar"`
	Status   DatasetStatus `json:"status"`
}

type CollegiateAlignment struct {
	schedule.Alignment
	CFBSeason int             `json:"cfb_season"`
	CFBWeek   int             `json:"cfb_week"`
	Games     int             `json:"games"`
	Sources   []DatasetStatus `json:"sources"`
}

type KickoffAlignment struct {
	schedule.Alignment
	Kickoff time.Time       `json:"kickoff"`
	Sources []DatasetStatus `json:"sources"`
}

// AlignmentService feeds schedules into the temporal alignment engine.
type AlignmentService struct {
	pro      schedule.ProSource
	cfb      schedule.CollegiateSource
	aligner  schedule.Aligner
	resolver *college.Resolver
	datasets *DatasetFetcher
	logger   *logging.Logger
	now      func() time.Time
}

func NewAlignmentService(
	pro schedule.ProSource,
	cfb schedule.CollegiateSource,
	aligner schedule.Aligner,
	resolver *college.Resolver,
	datasets *DatasetFetcher,
	logger *logging.Logger,
) *AlignmentService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AlignmentService{
		pro:      pro,
		cfb:      cfb,
		aligner:  aligner,
		resolver: resolver,
		datasets: datasets,
		logger:   logger.Named("alignment"),
		now:      time.Now,
	}
}

func validateSeason(season int) error {
	if season < minSeason || season > maxSeason {
		return fmt.Errorf("%w: season must be between %d and %d", ErrInvalidInput, minSeason, maxSeason)
	}
	return nil
}

// WeekWindows returns a season's windows from the published schedule, or from
// the fixed weekly cutoff when the schedule cannot be fetched.
func (s *AlignmentService) WeekWindows(ctx context.Context, season int) (WindowSet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AlignmentService.WeekWindows", attribute.Int("season", season))
	defer span.End()

	if err := validateSeason(season); err != nil {
		return WindowSet{}, err
	}

	games, status, err := fetchDataset(ctx, s.datasets, datasetProSked, datasetKey("schedule", "pro", season), func(ctx context.Context) ([]schedule.ScheduleGame, error) {
		return s.pro.ListProGames(ctx, season)
	})
	if err != nil {
		if ctx.Err() != nil {
			return WindowSet{}, ctx.Err()
		}
		s.logger.WarnContext(ctx, "professional schedule unavailable, using calendar windows", "season", season, "error", err)
		return WindowSet{Season: season, Windows: schedule.Windows(season), Calendar: true, Status: status}, nil
	}

	windows := make([]schedule.WeekWindow, 0, schedule.FinalWeek)
	for _, w := range schedule.BuildWeekWindows(games) {
		if w.Season == season {
			windows = append(windows, w)
		}
	}
	if len(windows) == 0 {
		s.logger.WarnContext(ctx, "professional schedule has no regular-season kickoffs, using calendar windows", "season", season)
		return WindowSet{Season: season, Windows: schedule.Windows(season), Calendar: true, Status: status}, nil
	}
	return WindowSet{Season: season, Windows: windows, Status: status}, nil
}

// spanningWindows joins the previous and given seasons so early kickoffs can
// fall back to the prior season's final week.
func (s *AlignmentService) spanningWindows(ctx context.Context, season int) ([]schedule.WeekWindow, []DatasetStatus, error) {
	var (
		windows []schedule.WeekWindow
		sources []DatasetStatus
	)
	for _, sn := range []int{season - 1, season} {
		if sn < minSeason {
			continue
		}
		set, err := s.WeekWindows(ctx, sn)
		if err != nil {
			return nil, nil, err
		}
		windows = append(windows, set.Windows...)
		set.Status.Name = fmt.Sprintf("%s:%d", set.Status.Name, sn)
		sources = append(sources, set.Status)
	}
	return windows, sources, nil
}

// AlignCollegiateWeek maps a collegiate week of cfbSeason onto a professional week.
func (s *AlignmentService) AlignCollegiateWeek(ctx context.Context, cfbSeason, cfbWeek int) (CollegiateAlignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AlignmentService.AlignCollegiateWeek",
		attribute.Int("cfb_season", cfbSeason), attribute.Int("cfb_week", cfbWeek))
	defer span.End()

	if err := validateSeason(cfbSeason); err != nil {
		return CollegiateAlignment{}, err
	}
	if cfbWeek < 1 || cfbWeek > maxCFBWeek {
		return CollegiateAlignment{}, fmt.Errorf("%w: collegiate week must be between 1 and %d", ErrInvalidInput, maxCFBWeek)
	}

	windows, sources, err := s.spanningWindows(ctx, cfbSeason)
	if err != nil {
		recordSpanError(span, err)
		return CollegiateAlignment{}, err
	}

	games, status, err := fetchDataset(ctx, s.datasets, datasetCFBSked, datasetKey("schedule", "cfb", cfbSeason), func(ctx context.Context) ([]schedule.CollegiateGame, error) {
		return s.cfb.ListCollegiateGames(ctx, cfbSeason)
	})
	sources = append(sources, status)
	if err != nil {
		if ctx.Err() != nil {
			return CollegiateAlignment{}, ctx.Err()
		}
		s.logger.WarnContext(ctx, "collegiate schedule unavailable, aligning by offset table", "season", cfbSeason, "week", cfbWeek, "error", err)
	}

	count := 0
	for i := range games {
		if games[i].Week != cfbWeek {
			continue
		}
		count++
		if s.resolver != nil {
			games[i].HomeCanonical = s.resolver.ResolveName(games[i].HomeRaw).String()
			games[i].AwayCanonical = s.resolver.ResolveName(games[i].AwayRaw).String()
		}
	}

	alignment := s.aligner.MapCFBWeekToWeek(games, windows, cfbWeek, cfbSeason)
	s.logger.DebugContext(ctx, "collegiate week aligned",
		"cfb_season", cfbSeason,
		"cfb_week", cfbWeek,
		"season", alignment.Season,
		"week", alignment.Week,
		"source", alignment.Source,
		"games", count,
	)
	return CollegiateAlignment{
		Alignment: alignment,
		CFBSeason: cfbSeason,
		CFBWeek:   cfbWeek,
		Games:     count,
		Sources:   sources,
	}, nil
}

// AlignKickoff applies the cutoff rule to one kickoff instant.
func (s *AlignmentService) AlignKickoff(ctx context.Context, kickoff time.Time) (KickoffAlignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AlignmentService.AlignKickoff")
	defer span.End()

	if kickoff.IsZero() {
		return KickoffAlignment{}, fmt.Errorf("%w: kickoff is required", ErrInvalidInput)
	}
	kickoff = kickoff.UTC()
	season := kickoff.Year()
	if kickoff.Month() < time.March {
		season--
	}

	windows, sources, err := s.spanningWindows(ctx, season)
	if err != nil {
		recordSpanError(span, err)
		return KickoffAlignment{}, err
	}
	return KickoffAlignment{
		Alignment: s.aligner.MapKickoffToWeek(kickoff, windows, season),
		Kickoff:   kickoff,
		Sources:   sources,
	}, nil
}

// LastCompletedWeek is the most recent professional week whose cutoff has passed.
func (s *AlignmentService) LastCompletedWeek() schedule.SeasonWeek {
	return schedule.LastCompletedWeek(s.now().UTC())
}
