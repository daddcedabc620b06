// Package driver connects a query stream to the degrees engine: one name per
// input line, one report per name, in input order.
//
// Output lines:
//
//	Score: 2
//	Path: Kevin Bacon -> Lori Singer -> Dianne Wiest   (paths enabled)
//	Score: No Bacon!                                    (unreachable)
//
// Unknown names are reported on the error stream as "No actor named X".
package driver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/sixdegrees/degrees"
)

// Sentinel errors for Run.
var (
	// ErrNilEngine is returned when Run is given no engine.
	ErrNilEngine = errors.New("driver: engine is nil")

	// ErrReadQueries wraps failures reading the query stream.
	ErrReadQueries = errors.New("driver: read queries")

	// ErrWriteReport wraps failures writing a report.
	ErrWriteReport = errors.New("driver: write report")
)

const (
	noBaconLine = "Score: No Bacon!"
	pathSep     = " -> "
)

// Recorder receives every answered query. *metrics.Recorder satisfies it.
type Recorder interface {
	RecordQuery(res degrees.Result)
}

// Summary aggregates the outcomes of one Run.
type Summary struct {
	Queries     int
	Reachable   int
	Unreachable int
	Unknown     int
}

// Failed reports whether any query named an actor absent from the graph.
func (s Summary) Failed() bool { return s.Unknown > 0 }

func (s *Summary) add(res degrees.Result) {
	s.Queries++
	switch res.Status {
	case degrees.StatusReachable:
		s.Reachable++
	case degrees.StatusUnknownActor:
		s.Unknown++
	default:
		s.Unreachable++
	}
}

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	paths    bool
	workers  int
	recorder Recorder
	log      *zap.Logger
}

// WithPaths prints the reference-to-actor chain after each reachable score.
// The engine must have been built with degrees.WithPaths(true).
func WithPaths(enabled bool) Option {
	return func(c *runConfig) { c.paths = enabled }
}

// WithWorkers answers queries in parallel when n > 1. All input is read
// before the first answer is written; output order is unchanged.
func WithWorkers(n int) Option {
	return func(c *runConfig) { c.workers = n }
}

// WithRecorder sends every result to rec.
func WithRecorder(rec Recorder) Option {
	return func(c *runConfig) { c.recorder = rec }
}

// WithLogger sets the logger for the run summary. Nil is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(c *runConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// Run reads names from in until EOF and reports each one.
// Per-query outcomes never fail the run; Summary.Failed carries them.
// The returned error is reserved for I/O failures and ctx cancellation.
func Run(ctx context.Context, eng *degrees.Engine, in io.Reader, out, errOut io.Writer, opts ...Option) (Summary, error) {
	var sum Summary
	if eng == nil {
		return sum, ErrNilEngine
	}
	cfg := runConfig{workers: 1, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(out)
	report := func(res degrees.Result) error {
		sum.add(res)
		if cfg.recorder != nil {
			cfg.recorder.RecordQuery(res)
		}
		if err := writeResult(bw, errOut, res, cfg.paths); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteReport, err)
		}
		return nil
	}

	var err error
	if cfg.workers > 1 {
		err = runBatch(ctx, eng, in, cfg.workers, report)
	} else {
		err = runSerial(ctx, eng, in, bw, report)
	}
	if ferr := bw.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("%w: %v", ErrWriteReport, ferr)
	}

	cfg.log.Info("queries answered",
		zap.Int("queries", sum.Queries),
		zap.Int("reachable", sum.Reachable),
		zap.Int("unreachable", sum.Unreachable),
		zap.Int("unknown", sum.Unknown))

	return sum, err
}

// queryLines yields each input line without its "\n" or "\r\n" terminator.
// Lines have no length limit; a final line without a newline is still yielded.
// A read error is yielded once, wrapped in ErrReadQueries, and ends the sequence.
func queryLines(in io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(in)
		for {
			line, err := br.ReadString('\n')
			if line != "" && (err == nil || err == io.EOF) {
				line = strings.TrimSuffix(line, "\n")
				line = strings.TrimSuffix(line, "\r")
				if !yield(line, nil) {
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				yield("", fmt.Errorf("%w: %v", ErrReadQueries, err))
				return
			}
		}
	}
}

// runSerial answers each line as it arrives, flushing after every answer so
// an interactive user sees the score before typing the next name.
func runSerial(ctx context.Context, eng *degrees.Engine, in io.Reader, bw *bufio.Writer, report func(degrees.Result) error) error {
	for name, err := range queryLines(in) {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := report(eng.Query(name)); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteReport, err)
		}
	}
	return nil
}

func runBatch(ctx context.Context, eng *degrees.Engine, in io.Reader, workers int, report func(degrees.Result) error) error {
	var names []string
	for name, err := range queryLines(in) {
		if err != nil {
			return err
		}
		names = append(names, name)
	}

	results, err := eng.QueryAll(ctx, names, workers)
	if err != nil {
		return err
	}
	for _, res := range results {
		if err := report(res); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(out *bufio.Writer, errOut io.Writer, res degrees.Result, paths bool) error {
	var err error
	switch res.Status {
	case degrees.StatusUnknownActor:
		_, err = fmt.Fprintf(errOut, "No actor named %s\n", res.Name)
	case degrees.StatusReachable:
		_, err = fmt.Fprintf(out, "Score: %d\n", res.Distance)
		if err == nil && paths && len(res.Path) > 0 {
			_, err = fmt.Fprintf(out, "Path: %s\n", strings.Join(res.Path, pathSep))
		}
	default:
		_, err = fmt.Fprintln(out, noBaconLine)
	}
	return err
}
