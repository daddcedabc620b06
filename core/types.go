// Package core defines the Actor and Movie entities, their deduplicating
// registries, and the bipartite collaboration Graph that links them.
//
// A single sync.RWMutex on the Graph guards both registries and the edge
// catalog, so the graph can be built and read from several goroutines.
// Once Seal is called the topology is frozen and reads skip the lock.
//
// This file declares Actor, Movie, Graph, sentinel errors and NewGraph.
//
// Errors:
//
//	ErrEmptyName      - actor name or movie title is the empty string.
//	ErrNilEntity      - actor or movie pointer is nil.
//	ErrForeignEntity  - entity was created by a different Graph.
//	ErrSealed         - mutation attempted after Seal.
//	ErrAsymmetricEdge - Verify found a membership link without its reciprocal.
package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates an actor name or movie title is empty.
	ErrEmptyName = errors.New("core: entity name is empty")

	// ErrNilEntity indicates a nil *Actor or *Movie was passed.
	ErrNilEntity = errors.New("core: entity is nil")

	// ErrForeignEntity indicates the entity does not belong to this Graph.
	ErrForeignEntity = errors.New("core: entity belongs to another graph")

	// ErrSealed indicates a structural mutation on a sealed Graph.
	ErrSealed = errors.New("core: graph is sealed")

	// ErrAsymmetricEdge indicates a membership link is missing its reverse direction.
	ErrAsymmetricEdge = errors.New("core: membership edge is not reciprocal")
)

// Actor is a participant in the collaboration graph.
//
// Name is the identity (case-sensitive, unique within its registry).
// The movie list holds arena indices of the movies the actor appears in,
// in link order.
type Actor struct {
	// Name uniquely identifies this Actor within its Graph.
	Name string

	index  int
	owner  *Graph
	movies []int
}

// Index returns the dense arena position of the actor, in [0, Actors().Len()).
// Search engines use it to key per-query state without hashing names.
func (a *Actor) Index() int { return a.index }

// Movie is a grouping entity whose members are the actors that co-appear in it.
type Movie struct {
	// Title uniquely identifies this Movie within its Graph.
	Title string

	index  int
	owner  *Graph
	actors []int
}

// Index returns the dense arena position of the movie.
func (m *Movie) Index() int { return m.index }

// edgeKey identifies one actor↔movie membership.
type edgeKey struct {
	actor int
	movie int
}

// Graph is the bipartite actor↔movie collaboration graph.
//
// Edges are undirected memberships stored twice (actor.movies and movie.actors)
// and catalogued once in edges; LinkActorToMovie writes all three under one lock.
type Graph struct {
	mu     sync.RWMutex // guards registries, edges and membership lists
	sealed atomic.Bool  // set once by Seal; reads become lock-free

	actors *ActorRegistry
	movies *MovieRegistry
	edges  map[edgeKey]struct{}
}

// GraphStats is a snapshot of catalog sizes.
type GraphStats struct {
	Actors int
	Movies int
	Edges  int
	Sealed bool
}

// NewGraph creates an empty, unsealed Graph owning fresh registries.
// Complexity: O(1)
func NewGraph() *Graph {
	g := &Graph{edges: make(map[edgeKey]struct{})}
	g.actors = &ActorRegistry{registry: newRegistry(g, func(name string, idx int) *Actor {
		return &Actor{Name: name, index: idx, owner: g}
	})}
	g.movies = &MovieRegistry{registry: newRegistry(g, func(title string, idx int) *Movie {
		return &Movie{Title: title, index: idx, owner: g}
	})}

	return g
}
