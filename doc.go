// Package sixdegrees computes "degrees of separation" between actors: the
// fewest movies linking any actor to a reference actor, Kevin Bacon unless
// configured otherwise.
//
// The module is split into small packages, each usable on its own:
//
//	core     – Actor and Movie registries plus the bipartite collaboration graph
//	builder  – ingests movie records into a graph, merging repeated titles
//	dataset  – reads the "Movie: <title>" line format into records
//	degrees  – breadth-first Bacon-score engine with per-session search state
//	driver   – answers a stream of names, one report per line
//	config   – BACON_* environment and .env settings
//	logger   – zap logger construction
//	metrics  – Prometheus counters written as a textfile
//
// The bacon command (cmd/bacon) wires them together:
//
//	$ printf 'Lori Singer\nTom Cruise\n' | bacon -l movies.txt
//	Score: 1
//	Path: Kevin Bacon -> Lori Singer
//	Score: 2
//	Path: Kevin Bacon -> Tom Hanks -> Tom Cruise
//
// A typical library flow:
//
//	g, _, err := builder.Build(dataset.Records(f))
//	eng, err := degrees.New(g, degrees.WithPaths(true))
//	res := eng.Query("Lori Singer")
//	fmt.Println(res.Distance, res.Path)
package sixdegrees
