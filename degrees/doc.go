// Package degrees provides degrees-of-separation search over a core.Graph:
// the length of the shortest chain of shared movies between a fixed
// reference actor (default "Kevin Bacon") and any queried actor.
//
// What
//
//   - Breadth-first search from the reference over the bipartite graph,
//     projected onto actors: two actors are adjacent iff they share a movie.
//   - Every query starts from clean state. The engine resets each actor to
//     unvisited, distance unset, no predecessor before seeding the search.
//   - An actor is marked visited when it is enqueued, so an actor reachable
//     through several movies of the same wave enters the queue once.
//   - Results distinguish four outcomes:
//   - StatusReachable:    Distance ≥ 0 (0 only for the reference itself)
//   - StatusUnreachable:  known actor, different component
//   - StatusUnknownActor: no such actor in the graph
//   - StatusNoReference:  the reference actor is not in the graph
//   - Optional path reconstruction through predecessor links (WithPaths).
//
// Determinism
//
//	Distances equal the graph-theoretic shortest path length. Which of
//	several equally short paths WithPaths reports follows link order of the
//	graph and is otherwise unspecified.
//
// Concurrency
//
//	Search state lives in a Session, never in the graph. Engine.Query uses an
//	internal session under a mutex; QueryAll runs one session per worker.
//	The graph is only read during queries; seal it first for lock-free reads.
//
// Complexity (A = actors, E = memberships)
//
//   - Reset:    O(|A|)
//   - Traverse: O(Σ_m |cast(m)|²) neighbor yields in the worst case
//   - Memory:   O(|A|) per session
//
// Usage
//
//	eng, err := degrees.New(g,
//	    degrees.WithReference("Kevin Bacon"),
//	    degrees.WithPaths(true),
//	    degrees.WithLogger(log),
//	)
//	res := eng.Query("Tom Hanks")
//	switch res.Status {
//	case degrees.StatusReachable:
//	    fmt.Println(res.Distance, res.Path)
//	case degrees.StatusUnknownActor:
//	    // not in the dataset
//	default:
//	    // no path
//	}
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrOptionViolation   for invalid options (negative MaxDepth, empty reference).
//   - ctx errors from QueryAll.
//
// Per-query conditions are never errors; they are Result.Status values.
package degrees
