// File: types.go — options, results and sentinel errors.

package degrees

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// DefaultReference is the reference actor when WithReference is not given.
const DefaultReference = "Kevin Bacon"

// Sentinels for per-actor search state.
const (
	unsetDistance = -1
	noPredecessor = -1
)

// Sentinel errors for engine construction and batch execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("degrees: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("degrees: invalid option supplied")
)

// Status classifies the answer to one query.
type Status int

const (
	// StatusReachable: the actor is connected to the reference; Distance is valid.
	StatusReachable Status = iota
	// StatusUnreachable: the actor is known but no chain of movies reaches it
	// (or none within MaxDepth).
	StatusUnreachable
	// StatusUnknownActor: no actor of that name exists in the graph.
	StatusUnknownActor
	// StatusNoReference: the reference actor is absent from the graph, so no
	// actor has a path. Callers report it like StatusUnreachable.
	StatusNoReference
)

// String returns a short lowercase label, also used as a metrics label value.
func (s Status) String() string {
	switch s {
	case StatusReachable:
		return "reachable"
	case StatusUnreachable:
		return "unreachable"
	case StatusUnknownActor:
		return "unknown"
	case StatusNoReference:
		return "no_reference"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the answer to one query.
//   - Distance: number of movie hops from the reference; -1 unless reachable.
//   - Path: reference → … → Name, filled only when paths are enabled.
type Result struct {
	Name     string
	Status   Status
	Distance int
	Path     []string
}

// Reachable reports whether Distance is meaningful.
func (r Result) Reachable() bool { return r.Status == StatusReachable }

// Unknown reports whether the queried name is absent from the graph.
func (r Result) Unknown() bool { return r.Status == StatusUnknownActor }

// Option configures Engine behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// Reference is the name distances are measured from.
	Reference string

	// MaxDepth, if > 0, stops exploring beyond this distance.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Paths enables predecessor-chain reconstruction in Result.Path.
	Paths bool

	// OnEnqueue is called when an actor is discovered, with its distance.
	OnEnqueue func(name string, distance int)

	// OnVisit is called when an actor is dequeued for expansion.
	OnVisit func(name string, distance int)

	// Log receives per-query debug records and configuration warnings.
	Log *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Reference "Kevin Bacon"
//   - no depth limit, no path reconstruction
//   - no-op hooks and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Reference: DefaultReference,
		MaxDepth:  0,
		OnEnqueue: func(string, int) {},
		OnVisit:   func(string, int) {},
		Log:       zap.NewNop(),
	}
}

// WithReference sets the reference actor. An empty name is a violation.
func WithReference(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: reference name is empty", ErrOptionViolation)
			return
		}
		o.Reference = name
	}
}

// WithMaxDepth stops the search at the given distance (inclusive).
//
//	d > 0: limit to distance d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithPaths toggles path reconstruction in results.
func WithPaths(enabled bool) Option {
	return func(o *Options) { o.Paths = enabled }
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(name string, distance int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on dequeue.
func WithOnVisit(fn func(name string, distance int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger sets the engine logger. Nil is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Log = log
		}
	}
}
