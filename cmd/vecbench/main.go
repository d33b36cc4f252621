// Command vecbench compares scalar, unaligned SIMD and aligned SIMD float32
// addition and prints the timing report.
//
// Environment:
//
//	VECBENCH_SIMD       force kernel ISA (generic, avx)
//	VECBENCH_LOG_LEVEL  log level on stderr (debug, info, warn, error; default warn)
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/hupe1980/vecbench"
	"github.com/hupe1980/vecbench/metrics/prometheus"
)

// EnvLogLevel selects the stderr log level.
const EnvLogLevel = "VECBENCH_LOG_LEVEL"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vecbench: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(opts ...vecbench.Option) *cobra.Command {
	return &cobra.Command{
		Use:           "vecbench",
		Short:         "Benchmark scalar vs. SIMD vs. aligned SIMD float32 addition",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logLevel(os.Getenv(EnvLogLevel))
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), level, opts...)
		},
	}
}

func logLevel(s string) (slog.Level, error) {
	level := slog.LevelWarn
	if strings.TrimSpace(s) == "" {
		return level, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	return level, nil
}

func run(stdout, stderr io.Writer, level slog.Level, opts ...vecbench.Option) error {
	logger := vecbench.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	reg := prom.NewRegistry()
	collector, err := prometheus.New(reg)
	if err != nil {
		return err
	}

	bm, err := vecbench.New(append([]vecbench.Option{
		vecbench.WithLogger(logger),
		vecbench.WithMetricsCollector(collector),
	}, opts...)...)
	if err != nil {
		return err
	}

	report, err := bm.Run()
	if err != nil {
		return err
	}

	if _, err := report.WriteTo(stdout); err != nil {
		return err
	}

	logGathered(logger, reg)
	return nil
}

// logGathered logs the sample count of every gathered metric family.
func logGathered(logger *vecbench.Logger, g prom.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		logger.Warn("gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		var n uint64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetHistogram() != nil:
				n += m.GetHistogram().GetSampleCount()
			case m.GetCounter() != nil:
				n += uint64(m.GetCounter().GetValue())
			}
		}
		logger.Debug("metrics", "family", mf.GetName(), "count", n)
	}
}
