package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/college-fantasy/internal/domain/defense"
	"github.com/riskibarqy/college-fantasy/internal/usecase"
)

func bindAggregateFlags(cmd *cobra.Command, req *usecase.AggregateRequest) {
	cmd.Flags().IntVar(&req.Season, "season", 0, "professional season year (default: last completed week)")
	cmd.Flags().IntVar(&req.Week, "week", 0, "professional week")
	cmd.Flags().StringVar(&req.Format, "format", "ppr", "scoring format: standard, half_ppr or ppr")
	cmd.Flags().StringVar(&req.Mode, "mode", "weekly", "weekly or avg")
	cmd.Flags().BoolVar(&req.IncludeKicker, "kicker", false, "add a kicker slot to the lineup")
	cmd.Flags().StringVar(&req.Defense, "defense", "none", "none or approx")
}

func newAggregateCmd(opts *rootOptions) *cobra.Command {
	req := usecase.AggregateRequest{}
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Score every college for one professional week",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts, func(ctx context.Context, rt *runtime) error {
				out, err := rt.app.Aggregation.Aggregate(ctx, req)
				if err != nil {
					return err
				}
				rt.logger.InfoContext(ctx, "aggregation done",
					"season", out.Season,
					"week", out.Week,
					"cached", out.Cached,
					"persisted_backend", out.Persisted.Backend,
				)
				return rt.print(out)
			})
		},
	}
	bindAggregateFlags(cmd, &req)
	cmd.Flags().BoolVar(&req.Force, "force", false, "recompute and overwrite any stored result")
	return cmd
}

func newInvalidateCmd(opts *rootOptions) *cobra.Command {
	req := usecase.AggregateRequest{}
	cmd := &cobra.Command{
		Use:   "invalidate",
		Short: "Drop a stored aggregation result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts, func(ctx context.Context, rt *runtime) error {
				key, err := rt.app.Aggregation.Invalidate(ctx, req)
				if err != nil {
					return err
				}
				return rt.print(map[string]string{"invalidated": key})
			})
		},
	}
	bindAggregateFlags(cmd, &req)
	return cmd
}

func newDefenseCmd(opts *rootOptions) *cobra.Command {
	var season, week int
	cmd := &cobra.Command{
		Use:   "defense",
		Short: "Approximate team defense scores for one week",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts, func(ctx context.Context, rt *runtime) error {
				if season == 0 {
					season = rt.app.Alignment.LastCompletedWeek().Season
				}
				result, status, err := rt.app.Defense.Approximate(ctx, season, week)
				if err != nil {
					return err
				}
				return rt.print(struct {
					Result defense.Result        `json:"result"`
					Source usecase.DatasetStatus `json:"source"`
				}{Result: result, Source: status})
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", 0, "professional season year (default: season of the last completed week)")
	cmd.Flags().IntVar(&week, "week", 0, "professional week; 0 selects the latest week in the dataset")
	return cmd
}
