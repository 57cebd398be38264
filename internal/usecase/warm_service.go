package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/college-fantasy/internal/domain/playerstats"
	"github.com/riskibarqy/college-fantasy/internal/domain/schedule"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	warmStatusSuccess = "success"
	warmStatusFailed  = "failed"
	warmStatusSkipped = "skipped"

	defaultWarmWorkers = 4
	maxWarmWorkers     = 16
)

type WarmRequest struct {
	Season int `validate:"gte=1999,lte=2100"`
	// Weeks defaults to every regular-season week up to the last completed one.
	Weeks         []int    `validate:"dive,gte=1,lte=18"`
	Formats       []string `validate:"dive,oneof=standard half_ppr ppr"`
	Mode          string   `validate:"omitempty,oneof=weekly avg"`
	IncludeKicker bool
	Defense       string `validate:"omitempty,oneof=none approx"`
	MaxWorkers    int    `validate:"gte=0"`
	Force         bool
}

type WarmResult struct {
	Season       int              `json:"season"`
	TaskCount    int              `json:"task_count"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	SkippedCount int              `json:"skipped_count"`
	WorkerCount  int              `json:"worker_count"`
	Tasks        []WarmTaskResult `json:"tasks"`
}

type WarmTaskResult struct {
	Week       int    `json:"week"`
	Format     string `json:"format"`
	Key        string `json:"key"`
	Status     string `json:"status"`
	Schools    int    `json:"schools"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

type warmTask struct {
	week   int
	format playerstats.ScoringFormat
}

// WarmService precomputes aggregation payloads for many weeks and formats.
type WarmService struct {
	aggregation *AggregationService
	validate    *validator.Validate
	maxWorkers  int
	logger      *logging.Logger
	now         func() time.Time
	newPool     func(size int) (*ants.Pool, error)
}

func NewWarmService(aggregation *AggregationService, maxWorkers int, logger *logging.Logger) *WarmService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers <= 0 {
		maxWorkers = defaultWarmWorkers
	}
	return &WarmService{
		aggregation: aggregation,
		validate:    validator.New(),
		maxWorkers:  maxWorkers,
		logger:      logger.Named("warm"),
		now:         time.Now,
		newPool:     func(size int) (*ants.Pool, error) { return ants.NewPool(size) },
	}
}

func (s *WarmService) Warm(ctx context.Context, req WarmRequest) (WarmResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmService.Warm", attribute.Int("season", req.Season))
	defer span.End()

	if s.aggregation == nil {
		return WarmResult{}, fmt.Errorf("%w: aggregation service is not configured", ErrDependencyUnavailable)
	}
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return WarmResult{}, fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}

	tasks, err := s.planTasks(req)
	if err != nil {
		return WarmResult{}, err
	}

	workerCount := normalizeWarmWorkerCount(req.MaxWorkers, s.maxWorkers, len(tasks))
	result := WarmResult{
		Season:      req.Season,
		TaskCount:   len(tasks),
		WorkerCount: workerCount,
		Tasks:       make([]WarmTaskResult, 0, len(tasks)),
	}
	if len(tasks) == 0 {
		return result, nil
	}

	results := make(chan WarmTaskResult, len(tasks))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	pool, err := s.newPool(workerCount)
	if err != nil {
		return WarmResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.runWarmTask(ctx, req, task)
			row.DurationMs = time.Since(start).Milliseconds()

			switch row.Status {
			case warmStatusSuccess:
				successCount.Add(1)
			case warmStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			// Tasks already submitted still write to results and the pool.
			workers.Wait()
			return WarmResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].Week != result.Tasks[j].Week {
			return result.Tasks[i].Week < result.Tasks[j].Week
		}
		return result.Tasks[i].Format < result.Tasks[j].Format
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	if result.FailedCount > 0 {
		s.logger.WarnContext(ctx, "warm-up finished with failures",
			"season", req.Season, "failed", result.FailedCount, "tasks", result.TaskCount)
	}
	return result, nil
}

// WarmLatest warms only the last completed professional week. Season and Weeks
// on req are replaced.
func (s *WarmService) WarmLatest(ctx context.Context, req WarmRequest) (WarmResult, error) {
	last := schedule.LastCompletedWeek(s.now().UTC())
	req.Season = last.Season
	req.Weeks = []int{last.Week}
	s.logger.InfoContext(ctx, "warming last completed week", "season", last.Season, "week", last.Week)
	return s.Warm(ctx, req)
}

func (s *WarmService) runWarmTask(ctx context.Context, req WarmRequest, task warmTask) WarmTaskResult {
	aggReq := AggregateRequest{
		Season:        req.Season,
		Week:          task.week,
		Format:        string(task.format),
		Mode:          req.Mode,
		IncludeKicker: req.IncludeKicker,
		Defense:       req.Defense,
		Force:         req.Force,
	}
	row := WarmTaskResult{Week: task.week, Format: string(task.format)}

	params, err := s.aggregation.normalize(ctx, aggReq)
	if err != nil {
		row.Status, row.Message = warmStatusFailed, err.Error()
		return row
	}
	row.Key = params.key()

	out, err := s.aggregation.Aggregate(ctx, aggReq)
	switch {
	case err != nil:
		row.Status, row.Message = warmStatusFailed, err.Error()
	case out.Degraded():
		row.Status, row.Message = warmStatusFailed, "inputs degraded, result not persisted"
	case out.Cached:
		row.Status, row.Message = warmStatusSkipped, "already persisted"
	case out.Persisted.Skipped:
		row.Status, row.Message = warmStatusSkipped, "already persisted by another writer"
	case !out.Persisted.Stored:
		row.Status, row.Message = warmStatusFailed, "computed but not persisted"
	default:
		row.Status = warmStatusSuccess
	}
	row.Schools = len(out.Schools)
	return row
}

func (s *WarmService) planTasks(req WarmRequest) ([]warmTask, error) {
	weeks := req.Weeks
	if len(weeks) == 0 {
		weeks = completedWeeks(req.Season, s.now().UTC())
	}
	final := schedule.FinalWeek
	seenWeeks := make(map[int]struct{}, len(weeks))
	uniqueWeeks := make([]int, 0, len(weeks))
	for _, week := range weeks {
		if week > final {
			return nil, fmt.Errorf("%w: week %d is past the final week %d", ErrInvalidInput, week, final)
		}
		if _, ok := seenWeeks[week]; ok {
			continue
		}
		seenWeeks[week] = struct{}{}
		uniqueWeeks = append(uniqueWeeks, week)
	}

	formats := playerstats.AllFormats
	if len(req.Formats) > 0 {
		formats = make([]playerstats.ScoringFormat, 0, len(req.Formats))
		seen := make(map[playerstats.ScoringFormat]struct{}, len(req.Formats))
		for _, raw := range req.Formats {
			format, err := playerstats.ParseScoringFormat(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			if _, ok := seen[format]; ok {
				continue
			}
			seen[format] = struct{}{}
			formats = append(formats, format)
		}
	}

	tasks := make([]warmTask, 0, len(uniqueWeeks)*len(formats))
	for _, week := range uniqueWeeks {
		for _, format := range formats {
			tasks = append(tasks, warmTask{week: week, format: format})
		}
	}
	return tasks, nil
}

// completedWeeks lists weeks 1..N of season that have passed their cutoff by now.
func completedWeeks(season int, now time.Time) []int {
	last := schedule.LastCompletedWeek(now)
	var upto int
	switch {
	case last.Season > season:
		upto = schedule.LastRegularWeek(season)
	case last.Season == season:
		upto = min(last.Week, schedule.LastRegularWeek(season))
	default:
		return nil
	}
	weeks := make([]int, 0, upto)
	for week := 1; week <= upto; week++ {
		weeks = append(weeks, week)
	}
	return weeks
}

func normalizeWarmWorkerCount(requested, ceiling, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	value := requested
	if value <= 0 {
		value = ceiling
	}
	if value > maxWarmWorkers {
		value = maxWarmWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	if value < 1 {
		value = 1
	}
	return value
}
