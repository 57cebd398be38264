package main

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/college-fantasy/internal/usecase"
)

func bindWarmFlags(cmd *cobra.Command, req *usecase.WarmRequest) {
	cmd.Flags().StringSliceVar(&req.Formats, "formats", nil, "scoring formats to warm (default: all)")
	cmd.Flags().StringVar(&req.Mode, "mode", "weekly", "weekly or avg")
	cmd.Flags().BoolVar(&req.IncludeKicker, "kicker", false, "add a kicker slot to the lineup")
	cmd.Flags().StringVar(&req.Defense, "defense", "none", "none or approx")
	cmd.Flags().IntVar(&req.MaxWorkers, "workers", 0, "concurrent aggregations (default: WARM_MAX_WORKERS)")
	cmd.Flags().BoolVar(&req.Force, "force", false, "recompute and overwrite stored results")
}

func newWarmCmd(opts *rootOptions) *cobra.Command {
	req := usecase.WarmRequest{}
	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Precompute aggregation results for many weeks and formats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts, func(ctx context.Context, rt *runtime) error {
				if req.Season == 0 {
					req.Season = rt.app.Alignment.LastCompletedWeek().Season
				}
				out, err := rt.app.Warm.Warm(ctx, req)
				if err != nil {
					return err
				}
				return rt.print(out)
			})
		},
	}
	cmd.Flags().IntVar(&req.Season, "season", 0, "professional season year (default: season of the last completed week)")
	cmd.Flags().IntSliceVar(&req.Weeks, "weeks", nil, "weeks to warm (default: every completed week)")
	bindWarmFlags(cmd, &req)
	return cmd
}

func newScheduleCmd(opts *rootOptions) *cobra.Command {
	req := usecase.WarmRequest{}
	var runNow bool
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Warm the last completed week on a cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts, func(ctx context.Context, rt *runtime) error {
				logger := rt.logger.Named("scheduler")
				job := func() {
					start := time.Now()
					out, err := rt.app.Warm.WarmLatest(ctx, req)
					if err != nil {
						logger.ErrorContext(ctx, "scheduled warm failed", "error", err)
						return
					}
					logger.InfoContext(ctx, "scheduled warm done",
						"season", out.Season,
						"tasks", out.TaskCount,
						"success", out.SuccessCount,
						"skipped", out.SkippedCount,
						"failed", out.FailedCount,
						"duration", time.Since(start),
					)
				}

				runner := cron.New(
					cron.WithLocation(time.UTC),
					cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
				)
				if _, err := runner.AddFunc(rt.cfg.ScheduleCron, job); err != nil {
					return err
				}
				if runNow {
					job()
				}

				runner.Start()
				logger.Info("scheduler started", "cron", rt.cfg.ScheduleCron)
				<-ctx.Done()
				<-runner.Stop().Done()
				logger.Info("scheduler stopped")
				return nil
			})
		},
	}
	bindWarmFlags(cmd, &req)
	cmd.Flags().BoolVar(&runNow, "run-now", false, "run one warm-up before waiting for the schedule")
	return cmd
}
