// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvpca/dataset"
	"github.com/katalvlaran/lvpca/internal/config"
	"github.com/katalvlaran/lvpca/matrix"
	"github.com/katalvlaran/lvpca/pca"
)

// newApp wires the command tree; stdout receives data, stderr receives logs.
func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "lvpca",
		HelpName:  "lvpca",
		Usage:     "principal component analysis over CSV data",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "project a CSV dataset onto its principal components",
				UsageText: "lvpca run -f data.csv [command options]",
				Action:    runAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "csv",
						Aliases:  []string{"f"},
						Usage:    "input CSV file (first line is a header)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output CSV file (default stdout)",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML configuration file",
					},
					&cli.StringFlag{
						Name:  "solver",
						Value: string(pca.DefaultSolver),
						Usage: "eigensolver: jacobi or gonum",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: pca.DefaultWorkers,
						Usage: "covariance worker goroutines (-1 for all CPUs)",
					},
					&cli.Float64Flag{
						Name:  "tolerance",
						Value: pca.DefaultTolerance,
						Usage: "relative Jacobi convergence threshold",
					},
					&cli.IntFlag{
						Name:  "max-rotations",
						Value: pca.DefaultMaxRotations,
						Usage: "Jacobi rotation cap (0 derives it from the dimension)",
					},
					&cli.BoolFlag{
						Name:  "center-projection",
						Usage: "project the centered data instead of the original data",
					},
					&cli.BoolFlag{
						Name:  "check-centered",
						Usage: "fail when the covariance input is not mean-centered",
					},
					&cli.StringFlag{
						Name:  "log-level",
						Value: zapcore.InfoLevel.String(),
						Usage: "debug, info, warn or error",
					},
					&cli.StringFlag{
						Name:  "metrics-file",
						Usage: "write Prometheus metrics in text format to this file",
					},
				},
			},
			{
				Name:      "generate",
				Usage:     "write a random uniform [0,1) dataset",
				UsageText: "lvpca generate --rows 100 --cols 5 [command options]",
				Action:    generateAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "rows",
						Value: 100,
						Usage: "number of samples",
					},
					&cli.IntFlag{
						Name:  "cols",
						Value: 5,
						Usage: "number of features",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Value: 1,
						Usage: "random seed",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output CSV file (default stdout)",
					},
				},
			},
		},
	}
}

// loadConfig layers flags that were set explicitly over the file (or env) config.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return nil, err
	}

	if c.IsSet("solver") {
		cfg.Solver = c.String("solver")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("tolerance") {
		cfg.Tolerance = c.Float64("tolerance")
	}
	if c.IsSet("max-rotations") {
		cfg.MaxRotations = c.Int("max-rotations")
	}
	if c.IsSet("center-projection") {
		cfg.CenterProjection = c.Bool("center-projection")
	}
	if c.IsSet("check-centered") {
		cfg.CheckCentered = c.Bool("check-centered")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds a JSON logger on w using the production encoder settings.
func newLogger(w io.Writer, lvl zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)

	return zap.New(core).With(zap.String("run_id", uuid.NewString()))
}

func runAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := newLogger(c.App.ErrWriter, lvl)
	defer func() { _ = logger.Sync() }()

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, pca.WithLogger(logger))

	var reg *prometheus.Registry
	if c.String("metrics-file") != "" {
		reg = prometheus.NewRegistry()
		m, err := pca.NewMetrics(reg)
		if err != nil {
			return err
		}
		opts = append(opts, pca.WithMetrics(m))
	}

	start := time.Now()
	input := c.String("csv")
	X, err := dataset.ReadCSV(input)
	if err != nil {
		logger.Error("read input", zap.String("path", input), zap.Error(err))
		return err
	}
	res, err := pca.Fit(X, opts...)
	if err != nil {
		logger.Error("fit", zap.Error(err))
		return err
	}
	if err = writeMatrix(c.App.Writer, cfg.Output, res.Projected, dataset.ComponentHeader(res.Projected.Cols())); err != nil {
		return err
	}
	if reg != nil {
		if err = prometheus.WriteToTextfile(c.String("metrics-file"), reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	logger.Info("run complete",
		zap.String("input", input),
		zap.Int("rows", X.Rows()),
		zap.Int("cols", X.Cols()),
		zap.String("solver", cfg.Solver),
		zap.Float64s("explained_variance", res.ExplainedVariance()),
		zap.Int("negative_eigenvalues", len(res.NegativeValues)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

func generateAction(c *cli.Context) error {
	X, err := dataset.Random(c.Int("rows"), c.Int("cols"), c.Int64("seed"))
	if err != nil {
		return fmt.Errorf("generate %dx%d: %w", c.Int("rows"), c.Int("cols"), err)
	}

	return writeMatrix(c.App.Writer, c.String("output"), X, dataset.FeatureHeader(X.Cols()))
}

// writeMatrix writes to path, or to stdout when path is "" or "-".
func writeMatrix(stdout io.Writer, path string, m matrix.Matrix, header []string) (err error) {
	if path == "" || path == "-" {
		return dataset.WriteCSV(stdout, m, header)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	return dataset.WriteCSV(f, m, header)
}
