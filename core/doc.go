// Package core provides the bipartite collaboration graph behind the
// degrees-of-separation engine: actors, movies, and the symmetric
// membership edges between them.
//
// The Graph G = (A ∪ M, E) holds:
//
//   - An ActorRegistry keyed by name and a MovieRegistry keyed by title.
//     GetOrCreate is idempotent; re-adding an existing key returns the
//     canonical entity, never a copy.
//   - Entities live in per-registry arenas with dense indices (Actor.Index),
//     so per-query search state can be a plain slice.
//   - Membership edges a↔m recorded in a single catalog plus one list on
//     each side. LinkActorToMovie updates all three atomically and is a
//     no-op for an existing pair.
//
// Lifecycle:
//
//	g := core.NewGraph()
//	a, _ := g.Actors().GetOrCreate("Kevin Bacon")
//	m, _ := g.Movies().GetOrCreate("Footloose")
//	_, _ = g.LinkActorToMovie(a, m)
//	g.Seal() // read-only from here on
//
//	for co := range g.NeighborsOfActor(a) { ... }
//
// After Seal the topology never changes and reads are lock-free, which makes
// one graph safe to share between any number of concurrent searches. Storage
// is owned by the Graph value and released with it.
//
// Complexity:
//
//	Find / GetOrCreate      O(1) average
//	LinkActorToMovie        O(1) amortized
//	NeighborsOfActor(a)     O(Σ |cast(m)|, m ∈ movies(a))
//	Verify                  O(|A| + |M| + |E|)
package core
