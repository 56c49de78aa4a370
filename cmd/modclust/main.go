// SPDX-License-Identifier: MIT

// Command modclust clusters an undirected edge list by agglomerative
// modularity maximization.
//
//	modclust -input graph.txt [-partition seed.txt] [-strategy randomized -sample 4 -seed 7]
//	         [-min-gain 0] [-max-merges 0] [-format text|json|yaml] [-output clusters.txt]
//	         [-config modclust.yaml] [-log-level info] [-log-format console|json]
//	         [-metrics-addr :9102] [-metrics-linger 30s]
//
// Every flag except -input, -partition and -config has a config key and a
// MODCLUST_* environment variable (algorithm.sample_size ↔
// MODCLUST_ALGORITHM_SAMPLE_SIZE). Flags win over the environment, which wins
// over the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/modclust/agglomerative"
	"github.com/katalvlaran/modclust/graphio"
	"github.com/katalvlaran/modclust/metrics"
	"github.com/katalvlaran/modclust/partition"
)

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	"strategy":       "algorithm.strategy",
	"sample":         "algorithm.sample_size",
	"seed":           "algorithm.seed",
	"min-gain":       "algorithm.min_gain",
	"max-merges":     "algorithm.max_merges",
	"format":         "output.format",
	"output":         "output.path",
	"log-level":      "logging.level",
	"log-format":     "logging.format",
	"metrics-addr":   "metrics.address",
	"metrics-linger": "metrics.linger",
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "modclust:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("modclust", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", "", "edge list file (required)")
	seedPartition := fs.String("partition", "", "initial partition file, one cluster per line")
	configPath := fs.String("config", "", "config file (yaml, json or toml)")
	fs.String("strategy", "greedy", "greedy or randomized")
	fs.Int("sample", agglomerative.DefaultSampleSize, "rows scanned per join by the randomized strategy")
	fs.Int64("seed", agglomerative.DefaultSeed, "random seed for the randomized strategy")
	fs.Float64("min-gain", agglomerative.DefaultMinGain, "stop when the best join gains no more than this")
	fs.Int("max-merges", 0, "stop after this many joins (0 = no limit)")
	fs.String("format", formatText, "output format: text, json or yaml")
	fs.String("output", "", "output file (default stdout)")
	fs.String("log-level", "info", "log level")
	fs.String("log-format", "console", "log format: console or json")
	fs.String("metrics-addr", "", "serve Prometheus metrics on this address")
	fs.Duration("metrics-linger", 0, "keep serving metrics this long after the run")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		fs.Usage()
		return errors.New("-input is required")
	}

	cfg := NewConfig()
	if *configPath != "" {
		if err := cfg.LoadFromFile(*configPath); err != nil {
			return fmt.Errorf("load config %s: %w", *configPath, err)
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			cfg.Set(key, f.Value.String())
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	runID := uuid.New().String()
	logger := cfg.CreateLogger(stderr).With().Str("run_id", runID).Logger()

	reg := metrics.NewRegistry()
	if addr := cfg.MetricsAddress(); addr != "" {
		srv := serveMetrics(addr, reg, logger)
		defer func() {
			if d := cfg.MetricsLinger(); d > 0 {
				logger.Info().Dur("linger", d).Msg("metrics endpoint lingering")
				select {
				case <-time.After(d):
				case <-ctx.Done():
				}
			}
			shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdown)
		}()
	}

	d, err := readDataset(*input)
	if err != nil {
		return err
	}
	logger.Info().
		Str("input", *input).
		Int("vertices", d.Graph.VertexCount()).
		Int("edges", d.Graph.EdgeCount()).
		Int("self_loops", d.SelfLoops).
		Int("duplicates", d.Duplicates).
		Msg("graph loaded")

	opts := cfg.ClusterOptions(logger, reg)
	if *seedPartition != "" {
		p, perr := readPartition(*seedPartition, d)
		if perr != nil {
			return perr
		}
		opts = append(opts, agglomerative.WithInitialPartition(p))
	}

	res, err := agglomerative.Run(ctx, d.Graph, opts...)
	if err != nil {
		return fmt.Errorf("cluster: %w", err)
	}

	rep := newReport(runID, *input, d, res)
	if err = writeOutput(cfg.OutputPath(), stdout, cfg.OutputFormat(), rep, d, res); err != nil {
		return err
	}

	logger.Info().
		Int("clusters", res.Partition.Len()).
		Int("merges", len(res.Merges)).
		Float64("modularity", res.Modularity).
		Msg("done")

	return nil
}

// writeOutput writes the result to path, or to stdout when path is empty.
// The file is closed before returning so a failed flush is reported.
func writeOutput(path string, stdout io.Writer, format string, rep report, d *graphio.Dataset, res *agglomerative.Result) error {
	if path == "" {
		if err := writeResult(stdout, format, rep, d, res); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err = writeResult(f, format, rep, d, res); err != nil {
		f.Close()
		return fmt.Errorf("write result: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	return nil
}

func readDataset(path string) (*graphio.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return graphio.ReadEdgeList(f)
}

func readPartition(path string, d *graphio.Dataset) (*partition.Partition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open partition: %w", err)
	}
	defer f.Close()

	return graphio.ReadPartition(f, d)
}

func serveMetrics(addr string, reg *metrics.Registry, logger zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("addr", addr).Msg("metrics server failed")
		}
	}()
	logger.Info().Str("addr", addr).Msg("metrics endpoint listening")

	return srv
}
