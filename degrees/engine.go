package degrees

import (
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/sixdegrees/core"
)

// searchState is the transient per-actor record of one traversal.
type searchState struct {
	visited     bool
	distance    int
	predecessor int
}

// Engine answers distance queries against one graph and reference actor.
// Engine.Query is safe for concurrent use but serialized; use NewSession
// per goroutine (or QueryAll) for parallel queries.
type Engine struct {
	graph *core.Graph
	opts  Options

	mu      sync.Mutex // guards session
	session *Session
}

// New returns an Engine over g.
// Returns ErrGraphNil for a nil graph and ErrOptionViolation for bad options.
// A reference actor missing from g is not an error: every query then reports
// StatusNoReference, and New logs a warning.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &Engine{graph: g, opts: o}
	e.session = e.NewSession()
	if _, ok := g.Actors().Find(o.Reference); !ok {
		o.Log.Warn("reference actor not in graph; every query will report no path",
			zap.String("reference", o.Reference))
	}

	return e, nil
}

// Reference returns the configured reference actor name.
func (e *Engine) Reference() string { return e.opts.Reference }

// Graph returns the graph the engine searches.
func (e *Engine) Graph() *core.Graph { return e.graph }

// Query answers one query using the engine's own session.
func (e *Engine) Query(name string) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.session.Query(name)
}

// Session owns the visited/distance/predecessor state of one traversal at
// a time. A Session is not safe for concurrent use; sessions of the same
// Engine are independent of each other.
type Session struct {
	e     *Engine
	state []searchState
	queue queue
}

// NewSession returns a session with private search state.
func (e *Engine) NewSession() *Session {
	return &Session{e: e}
}

// Query runs one full search and answers for name.
//
// Implementation:
//   - Stage 1: Resolve name; absent → StatusUnknownActor (no traversal).
//   - Stage 2: Reset state for every actor: unvisited, distance unset, no predecessor.
//   - Stage 3: Seed with the reference; absent → StatusNoReference.
//   - Stage 4: BFS; an actor is marked visited when enqueued, never later.
//   - Stage 5: Report distance (and path) if name was visited, else StatusUnreachable.
//
// Complexity:
//   - Time O(|A| + Σ_m |cast(m)|²) worst case, Space O(|A|).
func (s *Session) Query(name string) Result {
	g, o := s.e.graph, s.e.opts
	res := Result{Name: name, Distance: unsetDistance}

	target, ok := g.Actors().Find(name)
	if !ok {
		res.Status = StatusUnknownActor
		o.Log.Debug("query", zap.String("actor", name), zap.Stringer("status", res.Status))
		return res
	}

	s.reset()

	ref, ok := g.Actors().Find(o.Reference)
	if !ok {
		res.Status = StatusNoReference
		o.Log.Debug("query", zap.String("actor", name), zap.Stringer("status", res.Status))
		return res
	}

	s.traverse(ref)

	st := s.state[target.Index()]
	if !st.visited {
		res.Status = StatusUnreachable
	} else {
		res.Status = StatusReachable
		res.Distance = st.distance
		if o.Paths {
			res.Path = s.pathTo(target)
		}
	}
	o.Log.Debug("query",
		zap.String("actor", name),
		zap.Stringer("status", res.Status),
		zap.Int("distance", res.Distance))

	return res
}

// reset clears every actor's transient state, sizing the arena to the graph.
func (s *Session) reset() {
	n := s.e.graph.Actors().Len()
	if cap(s.state) < n {
		s.state = make([]searchState, n)
	}
	s.state = s.state[:n]
	for i := range s.state {
		s.state[i] = searchState{distance: unsetDistance, predecessor: noPredecessor}
	}
	s.queue.reset()
}

// enqueue marks a visited at distance d with predecessor pred, calls
// OnEnqueue, and adds it to the queue.
func (s *Session) enqueue(a *core.Actor, d, pred int) {
	s.state[a.Index()] = searchState{visited: true, distance: d, predecessor: pred}
	s.e.opts.OnEnqueue(a.Name, d)
	s.queue.push(a.Index())
}

// traverse runs BFS from ref until the queue drains.
func (s *Session) traverse(ref *core.Actor) {
	g, o := s.e.graph, s.e.opts

	s.enqueue(ref, 0, noPredecessor)
	for !s.queue.empty() {
		idx := s.queue.pop()
		cur, _ := g.Actors().At(idx)
		d := s.state[idx].distance
		o.OnVisit(cur.Name, d)

		next := d + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		for nbr := range g.NeighborsOfActor(cur) {
			// An actor reached via several movies in this wave is enqueued once.
			if s.state[nbr.Index()].visited {
				continue
			}
			s.enqueue(nbr, next, idx)
		}
	}
}

// pathTo walks predecessors back to the reference and returns names from the
// reference to target.
func (s *Session) pathTo(target *core.Actor) []string {
	actors := s.e.graph.Actors()
	path := make([]string, 0, s.state[target.Index()].distance+1)
	for idx := target.Index(); idx != noPredecessor; idx = s.state[idx].predecessor {
		a, _ := actors.At(idx)
		path = append(path, a.Name)
	}
	// reverse to get reference → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
