// Package builder populates a core.Graph from already-structured dataset
// records: one movie title plus its ordered cast list.
//
// For every record the builder resolves (or creates) the movie, then for each
// participant resolves (or creates) the actor and links the pair. All of it
// goes through the graph's idempotent primitives, which gives:
//
//   - a participant listed twice under one movie produces one edge;
//   - a title listed again later in the dataset merges into the same Movie,
//     whose cast becomes the union of all listings.
//
// Usage:
//
//	g := core.NewGraph()
//	b := builder.New(g, builder.WithLogger(log))
//	if err := b.IngestAll(dataset.Records(r)); err != nil { ... }
//	g.Seal()
//	fmt.Printf("%+v\n", b.Report())
//
// Build wraps the three steps above and returns a sealed graph.
//
// Errors are wrapped with the method name and keep the sentinel for
// errors.Is (ErrEmptyTitle, ErrEmptyParticipant, core.ErrSealed, reader errors).
package builder
