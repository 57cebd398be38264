package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/riskibarqy/college-fantasy/internal/app"
	"github.com/riskibarqy/college-fantasy/internal/config"
	"github.com/riskibarqy/college-fantasy/internal/observability"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
)

type rootOptions struct {
	envFile string
	pretty  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "collegefantasy",
		Short:        "Aggregate professional fantasy points by college",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	cmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output")

	cmd.AddCommand(
		newAlignCmd(opts),
		newKickoffCmd(opts),
		newWindowsCmd(opts),
		newDefenseCmd(opts),
		newAggregateCmd(opts),
		newInvalidateCmd(opts),
		newWarmCmd(opts),
		newScheduleCmd(opts),
	)
	return cmd
}

// runtime is the per-invocation environment handed to each command.
type runtime struct {
	cfg    config.Config
	app    *app.App
	logger *logging.Logger
	out    io.Writer
	pretty bool
}

// withRuntime loads configuration, wires the services and runs fn. Telemetry
// and connections are released after fn returns.
func withRuntime(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, rt *runtime) error) error {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", opts.envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewJSONWriter(os.Stderr, cfg.LogLevel).With("service", cfg.ServiceName, "env", cfg.AppEnv)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTelemetry, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	ctx, span := otel.Tracer("college-fantasy/cmd").Start(cmd.Context(), "cli."+cmd.Name())
	defer span.End()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close app", "error", err)
		}
	}()

	return fn(ctx, &runtime{
		cfg:    cfg,
		app:    a,
		logger: logger,
		out:    cmd.OutOrStdout(),
		pretty: opts.pretty,
	})
}

func (rt *runtime) print(v any) error {
	var (
		raw []byte
		err error
	)
	if rt.pretty {
		raw, err = sonic.ConfigStd.MarshalIndent(v, "", "  ")
	} else {
		raw, err = sonic.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	raw = append(raw, '\n')
	_, err = rt.out.Write(raw)
	return err
}
