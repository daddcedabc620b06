package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sixdegrees/builder"
	"github.com/katalvlaran/sixdegrees/config"
	"github.com/katalvlaran/sixdegrees/core"
	"github.com/katalvlaran/sixdegrees/dataset"
	"github.com/katalvlaran/sixdegrees/degrees"
	"github.com/katalvlaran/sixdegrees/driver"
	"github.com/katalvlaran/sixdegrees/logger"
	"github.com/katalvlaran/sixdegrees/metrics"
)

var (
	// errQueriesFailed marks a run where some query named an unknown actor.
	errQueriesFailed = errors.New("one or more queries named an unknown actor")

	// errReported wraps failures already written to the log.
	errReported = errors.New("reported")
)

type flags struct {
	path        bool
	dump        bool
	dumpCast    bool
	verbose     bool
	reference   string
	workers     int
	maxDepth    int
	metricsFile string
	envFile     string
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errQueriesFailed), errors.Is(err, errReported):
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "bacon [flags] <dataset>",
		Short: "Print the Bacon score of actors read from standard input",
		Long: `bacon loads a movie dataset and, for every actor name read from standard
input, prints the number of movies separating that actor from the reference
actor (Kevin Bacon unless overridden).

Dataset format: a "Movie: <title>" line followed by one cast member per line.
Settings may also come from BACON_* environment variables or a .env file;
flags win.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return execute(cmd, args[0], f, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.BoolVarP(&f.path, "path", "l", false, "also print the chain of actors linking each one to the reference")
	fl.BoolVar(&f.dump, "dump", false, "print every actor and their movies before answering queries")
	fl.BoolVar(&f.dumpCast, "dump-cast", false, "with --dump, also list each movie's cast")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	fl.StringVar(&f.reference, "reference", degrees.DefaultReference, "actor distances are measured from")
	fl.IntVar(&f.workers, "workers", 1, "answer queries in parallel with this many workers")
	fl.IntVar(&f.maxDepth, "max-depth", 0, "stop searching beyond this distance (0 = unlimited)")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	fl.StringVar(&f.envFile, "env-file", "", "load settings from this .env file")

	return cmd
}

// resolveConfig layers explicitly set flags over the environment.
func resolveConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.envFile != "" {
		cfg, err = config.LoadFile(f.envFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("path") {
		cfg.ShowPath = f.path
	}
	if fl.Changed("reference") {
		cfg.Reference = f.reference
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}
	if fl.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func execute(cmd *cobra.Command, path string, f flags, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Env, f.verbose, stderr)
	defer logger.Sync(log)

	rec := metrics.New()

	g := core.NewGraph()
	b := builder.New(g, builder.WithLogger(log))
	if err := dataset.Load(path, b); err != nil {
		log.Error("cannot load dataset", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", errReported, err)
	}
	g.Seal()
	stats := g.Stats()
	rec.RecordIngest(b.Report())
	rec.RecordGraph(stats)
	log.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("actors", stats.Actors),
		zap.Int("movies", stats.Movies),
		zap.Int("edges", stats.Edges))

	if f.dump {
		if err := g.Describe(stdout, f.dumpCast); err != nil {
			return fmt.Errorf("dump graph: %w", err)
		}
	}

	eng, err := degrees.New(g,
		degrees.WithReference(cfg.Reference),
		degrees.WithMaxDepth(cfg.MaxDepth),
		degrees.WithPaths(cfg.ShowPath),
		degrees.WithLogger(log))
	if err != nil {
		return err
	}

	sum, runErr := driver.Run(cmd.Context(), eng, stdin, stdout, stderr,
		driver.WithPaths(cfg.ShowPath),
		driver.WithWorkers(cfg.Workers),
		driver.WithRecorder(rec),
		driver.WithLogger(log))

	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Warn("cannot write metrics", zap.Error(err))
		}
	}

	if runErr != nil {
		return runErr
	}
	if sum.Failed() {
		return errQueriesFailed
	}
	return nil
}
