package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newAlignCmd(opts *rootOptions) *cobra.Command {
	var season, week int
	cmd := &cobra.Command{
		Use:   "align",
		Short: "Map a collegiate season week onto professional season weeks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts, func(ctx context.Context, rt *runtime) error {
				out, err := rt.app.Alignment.AlignCollegiateWeek(ctx, season, week)
				if err != nil {
					return err
				}
				return rt.print(out)
			})
		},
	}
	cmd.Flags().IntVar(&season, "cfb-season", 0, "collegiate season year")
	cmd.Flags().IntVar(&week, "cfb-week", 0, "collegiate regular-season week")
	_ = cmd.MarkFlagRequired("cfb-season")
	_ = cmd.MarkFlagRequired("cfb-week")
	return cmd
}

func newKickoffCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kickoff <RFC3339 time>",
		Short: "Find the professional week a kickoff falls in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kickoff, err := time.Parse(time.RFC3339, args[0])
			if err != nil {
				return fmt.Errorf("parse kickoff %q: %w", args[0], err)
			}
			return withRuntime(cmd, opts, func(ctx context.Context, rt *runtime) error {
				out, err := rt.app.Alignment.AlignKickoff(ctx, kickoff)
				if err != nil {
					return err
				}
				return rt.print(out)
			})
		},
	}
}

func newWindowsCmd(opts *rootOptions) *cobra.Command {
	var season int
	cmd := &cobra.Command{
		Use:   "windows",
		Short: "List a professional season's week windows",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts, func(ctx context.Context, rt *runtime) error {
				if season == 0 {
					season = rt.app.Alignment.LastCompletedWeek().Season
				}
				out, err := rt.app.Alignment.WeekWindows(ctx, season)
				if err != nil {
					return err
				}
				return rt.print(out)
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", 0, "professional season year (default: season of the last completed week)")
	return cmd
}
