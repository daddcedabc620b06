// File: registry.go
// Role: Deduplicating entity registries (actors by name, movies by title).
// Determinism:
//   - All() yields entities in creation order; the order is not part of the contract.
// Concurrency:
//   - Registries share the owning Graph's lock; see Graph.rlock.

package core

import "iter"

// registry is a hash-keyed arena of entities created on first reference.
// Indices are dense and never reused: the graph never removes entities.
type registry[E any] struct {
	g      *Graph
	byKey  map[string]int
	arena  []*E
	create func(key string, idx int) *E
}

func newRegistry[E any](g *Graph, create func(string, int) *E) registry[E] {
	return registry[E]{g: g, byKey: make(map[string]int), create: create}
}

// find looks up key by exact string equality.
func (r *registry[E]) find(key string) (*E, bool) {
	unlock := r.g.rlock()
	defer unlock()

	idx, ok := r.byKey[key]
	if !ok {
		return nil, false
	}
	return r.arena[idx], true
}

// getOrCreate returns the entity for key, creating it iff absent.
// created reports whether a new entity was allocated.
func (r *registry[E]) getOrCreate(key string) (e *E, created bool, err error) {
	if key == "" {
		return nil, false, ErrEmptyName
	}
	// Fast path: most dataset lines reference entities seen before.
	if e, ok := r.find(key); ok {
		return e, false, nil
	}
	if r.g.sealed.Load() {
		return nil, false, ErrSealed
	}

	r.g.mu.Lock()
	defer r.g.mu.Unlock()

	// Re-check under the write lock; another writer may have won, or Seal
	// may have run since the unlocked check.
	if idx, ok := r.byKey[key]; ok {
		return r.arena[idx], false, nil
	}
	if r.g.sealed.Load() {
		return nil, false, ErrSealed
	}
	idx := len(r.arena)
	e = r.create(key, idx)
	r.arena = append(r.arena, e)
	r.byKey[key] = idx

	return e, true, nil
}

func (r *registry[E]) len() int {
	unlock := r.g.rlock()
	defer unlock()

	return len(r.arena)
}

func (r *registry[E]) at(idx int) (*E, bool) {
	unlock := r.g.rlock()
	defer unlock()

	if idx < 0 || idx >= len(r.arena) {
		return nil, false
	}
	return r.arena[idx], true
}

// all snapshots the arena slice header and yields from it without holding the lock.
// Entities appended after the snapshot are not observed.
func (r *registry[E]) all() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		unlock := r.g.rlock()
		snapshot := r.arena[:len(r.arena):len(r.arena)]
		unlock()

		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}

// ActorRegistry stores actors keyed by name.
type ActorRegistry struct {
	registry registry[Actor]
}

// Find returns the actor named name, if present.
// Complexity: O(1) average.
func (r *ActorRegistry) Find(name string) (*Actor, bool) { return r.registry.find(name) }

// GetOrCreate returns the actor named name, creating it iff absent (idempotent).
//
// Errors:
//   - ErrEmptyName: name == "".
//   - ErrSealed: name is absent and the graph is sealed.
func (r *ActorRegistry) GetOrCreate(name string) (*Actor, error) {
	a, _, err := r.registry.getOrCreate(name)
	return a, err
}

// Len returns the number of registered actors.
func (r *ActorRegistry) Len() int { return r.registry.len() }

// At returns the actor stored at arena index idx.
func (r *ActorRegistry) At(idx int) (*Actor, bool) { return r.registry.at(idx) }

// All yields every registered actor.
func (r *ActorRegistry) All() iter.Seq[*Actor] { return r.registry.all() }

// MovieRegistry stores movies keyed by title.
type MovieRegistry struct {
	registry registry[Movie]
}

// Find returns the movie titled title, if present.
func (r *MovieRegistry) Find(title string) (*Movie, bool) { return r.registry.find(title) }

// GetOrCreate returns the movie titled title, creating it iff absent (idempotent).
// A title repeated later in a dataset therefore resolves to the same Movie.
func (r *MovieRegistry) GetOrCreate(title string) (*Movie, error) {
	m, _, err := r.registry.getOrCreate(title)
	return m, err
}

// GetOrCreateReport is GetOrCreate that also reports whether the movie was new.
// The builder uses it to count merged titles.
func (r *MovieRegistry) GetOrCreateReport(title string) (m *Movie, created bool, err error) {
	return r.registry.getOrCreate(title)
}

// Len returns the number of registered movies.
func (r *MovieRegistry) Len() int { return r.registry.len() }

// At returns the movie stored at arena index idx.
func (r *MovieRegistry) At(idx int) (*Movie, bool) { return r.registry.at(idx) }

// All yields every registered movie.
func (r *MovieRegistry) All() iter.Seq[*Movie] { return r.registry.all() }
