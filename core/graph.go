// File: graph.go
// Role: Membership edges (actor↔movie) and adjacency queries.
// Determinism:
//   - MoviesOf/CastOf/NeighborsOfActor follow link order.
// Concurrency:
//   - Unsealed: every call takes g.mu; iterators snapshot under the read lock.
//   - Sealed: topology is immutable, reads run without locking and iterate lazily.

package core

import (
	"fmt"
	"iter"
)

// rlock acquires the read lock unless the graph is sealed and returns the
// matching release function.
func (g *Graph) rlock() func() {
	if g.sealed.Load() {
		return func() {}
	}
	g.mu.RLock()
	return g.mu.RUnlock
}

// Actors returns the actor registry owned by g.
func (g *Graph) Actors() *ActorRegistry { return g.actors }

// Movies returns the movie registry owned by g.
func (g *Graph) Movies() *MovieRegistry { return g.movies }

// Seal freezes the topology. Subsequent creations and links fail with
// ErrSealed; lookups and iteration stop taking the lock. Seal is idempotent.
func (g *Graph) Seal() {
	g.mu.Lock()
	g.sealed.Store(true)
	g.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool { return g.sealed.Load() }

// checkOwned validates that a and m are non-nil entities of g.
func (g *Graph) checkOwned(a *Actor, m *Movie) error {
	if a == nil || m == nil {
		return ErrNilEntity
	}
	if a.owner != g || m.owner != g {
		return ErrForeignEntity
	}
	return nil
}

// LinkActorToMovie records that actor a appears in movie m.
//
// Implementation:
//   - Stage 1: Validate both entities belong to g.
//   - Stage 2: Under the write lock, consult the edge catalog; an existing pair is a no-op.
//   - Stage 3: Append m to a's movies and a to m's cast, then catalog the pair.
//
// Both directions are written inside the same critical section, so no reader
// can observe a half-linked pair.
//
// Returns:
//   - bool: true iff a new edge was created.
//   - error: ErrNilEntity, ErrForeignEntity or ErrSealed.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) LinkActorToMovie(a *Actor, m *Movie) (bool, error) {
	if err := g.checkOwned(a, m); err != nil {
		return false, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed.Load() {
		return false, ErrSealed
	}
	key := edgeKey{actor: a.index, movie: m.index}
	if _, exists := g.edges[key]; exists {
		return false, nil
	}
	a.movies = append(a.movies, m.index)
	m.actors = append(m.actors, a.index)
	g.edges[key] = struct{}{}

	return true, nil
}

// Linked reports whether a appears in m. Nil or foreign entities yield false.
func (g *Graph) Linked(a *Actor, m *Movie) bool {
	if g.checkOwned(a, m) != nil {
		return false
	}
	unlock := g.rlock()
	defer unlock()

	_, ok := g.edges[edgeKey{actor: a.index, movie: m.index}]
	return ok
}

// MoviesOf yields the movies a appears in.
func (g *Graph) MoviesOf(a *Actor) iter.Seq[*Movie] {
	return func(yield func(*Movie) bool) {
		if a == nil || a.owner != g {
			return
		}
		for _, m := range g.moviesOf(a) {
			if !yield(m) {
				return
			}
		}
	}
}

// CastOf yields the actors appearing in m.
func (g *Graph) CastOf(m *Movie) iter.Seq[*Actor] {
	return func(yield func(*Actor) bool) {
		if m == nil || m.owner != g {
			return
		}
		for _, a := range g.castOf(m) {
			if !yield(a) {
				return
			}
		}
	}
}

// NeighborsOfActor yields every actor sharing at least one movie with a,
// derived by walking a's movies and each movie's cast.
//
// An actor sharing k movies with a is yielded k times, and a itself is
// yielded once per movie. The graph does not deduplicate; traversals keep
// their own visited state.
//
// Complexity:
//   - Time O(Σ |cast(m)| for m in movies(a)).
//   - Space O(1) on a sealed graph; O(result) on an unsealed one (snapshot).
func (g *Graph) NeighborsOfActor(a *Actor) iter.Seq[*Actor] {
	return func(yield func(*Actor) bool) {
		if a == nil || a.owner != g {
			return
		}
		if !g.sealed.Load() {
			for _, n := range g.neighborSnapshot(a) {
				if !yield(n) {
					return
				}
			}
			return
		}
		movies := g.movies.registry.arena
		actors := g.actors.registry.arena
		for _, mi := range a.movies {
			for _, ai := range movies[mi].actors {
				if !yield(actors[ai]) {
					return
				}
			}
		}
	}
}

func (g *Graph) neighborSnapshot(a *Actor) []*Actor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*Actor
	for _, mi := range a.movies {
		for _, ai := range g.movies.registry.arena[mi].actors {
			out = append(out, g.actors.registry.arena[ai])
		}
	}
	return out
}

// moviesOf resolves a's movie indices under the read lock.
func (g *Graph) moviesOf(a *Actor) []*Movie {
	unlock := g.rlock()
	defer unlock()

	out := make([]*Movie, len(a.movies))
	for i, mi := range a.movies {
		out[i] = g.movies.registry.arena[mi]
	}
	return out
}

// castOf resolves m's actor indices under the read lock.
func (g *Graph) castOf(m *Movie) []*Actor {
	unlock := g.rlock()
	defer unlock()

	out := make([]*Actor, len(m.actors))
	for i, ai := range m.actors {
		out[i] = g.actors.registry.arena[ai]
	}
	return out
}

// Stats returns catalog sizes.
// Complexity: O(1).
func (g *Graph) Stats() GraphStats {
	unlock := g.rlock()
	defer unlock()

	return GraphStats{
		Actors: len(g.actors.registry.arena),
		Movies: len(g.movies.registry.arena),
		Edges:  len(g.edges),
		Sealed: g.sealed.Load(),
	}
}

// Verify checks the reciprocity invariant: every catalogued edge appears in
// both membership lists exactly once, and nothing else does.
//
// Complexity: O(V + E).
func (g *Graph) Verify() error {
	unlock := g.rlock()
	defer unlock()

	seen := 0
	for _, a := range g.actors.registry.arena {
		for _, mi := range a.movies {
			if _, ok := g.edges[edgeKey{actor: a.index, movie: mi}]; !ok {
				return fmt.Errorf("%w: actor %q lists movie %q",
					ErrAsymmetricEdge, a.Name, g.movies.registry.arena[mi].Title)
			}
			seen++
		}
	}
	cast := 0
	for _, m := range g.movies.registry.arena {
		for _, ai := range m.actors {
			if _, ok := g.edges[edgeKey{actor: ai, movie: m.index}]; !ok {
				return fmt.Errorf("%w: movie %q lists actor %q",
					ErrAsymmetricEdge, m.Title, g.actors.registry.arena[ai].Name)
			}
			cast++
		}
	}
	if seen != len(g.edges) || cast != len(g.edges) {
		return fmt.Errorf("%w: %d edges, %d actor links, %d cast links",
			ErrAsymmetricEdge, len(g.edges), seen, cast)
	}
	return nil
}
