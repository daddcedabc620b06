package builder

import (
	"iter"

	"go.uber.org/zap"

	"github.com/katalvlaran/sixdegrees/core"
)

// Record is one movie listing: a title and its cast in dataset order.
type Record struct {
	Title string
	Cast  []string
}

// Report summarises what ingestion did to the graph.
type Report struct {
	// Records is the number of records ingested.
	Records int
	// MoviesMerged counts records whose title was already registered.
	MoviesMerged int
	// Links counts membership edges created.
	Links int
	// DuplicateLinks counts participants already linked to the movie.
	DuplicateLinks int
	// SkippedNames counts empty cast entries dropped in lenient mode.
	SkippedNames int
	// SkippedRecords counts untitled records dropped in lenient mode.
	SkippedRecords int
}

// Builder ingests records into a graph. It is not safe for concurrent use;
// the graph itself is.
type Builder struct {
	g      *core.Graph
	cfg    builderConfig
	report Report
}

// New returns a Builder writing into g.
func New(g *core.Graph, opts ...Option) *Builder {
	return &Builder{g: g, cfg: newBuilderConfig(opts...)}
}

// Graph returns the graph being built.
func (b *Builder) Graph() *core.Graph { return b.g }

// Report returns the running ingestion counters.
func (b *Builder) Report() Report { return b.report }

// Ingest adds one record.
//
// Implementation:
//   - Stage 1: Resolve or create the movie; a known title merges.
//   - Stage 2: For each participant, resolve or create the actor and link it.
//
// A failure part-way leaves earlier links of the record in place; every link
// is individually reciprocal, so the graph stays consistent.
//
// Errors:
//   - ErrEmptyTitle, ErrEmptyParticipant (strict mode), core.ErrSealed.
//
// In lenient mode an untitled record is dropped whole, cast included, and
// counted in Report.SkippedRecords.
//
// Complexity:
//   - Time O(len(Cast)) amortized.
func (b *Builder) Ingest(rec Record) error {
	if rec.Title == "" {
		if b.cfg.strict {
			return builderErrorf(methodIngest, "%w", ErrEmptyTitle)
		}
		b.report.SkippedRecords++
		b.cfg.log.Debug("untitled record skipped", zap.Int("cast", len(rec.Cast)))
		return nil
	}
	movie, created, err := b.g.Movies().GetOrCreateReport(rec.Title)
	if err != nil {
		return builderErrorf(methodIngest, "movie %q: %w", rec.Title, err)
	}
	if !created {
		b.report.MoviesMerged++
		b.cfg.log.Debug("merging repeated movie title", zap.String("title", rec.Title))
	}

	for _, name := range rec.Cast {
		if name == "" {
			if b.cfg.strict {
				return builderErrorf(methodIngest, "movie %q: %w", rec.Title, ErrEmptyParticipant)
			}
			b.report.SkippedNames++
			continue
		}
		actor, err := b.g.Actors().GetOrCreate(name)
		if err != nil {
			return builderErrorf(methodIngest, "actor %q: %w", name, err)
		}
		linked, err := b.g.LinkActorToMovie(actor, movie)
		if err != nil {
			return builderErrorf(methodIngest, "link %q to %q: %w", name, rec.Title, err)
		}
		if linked {
			b.report.Links++
		} else {
			b.report.DuplicateLinks++
			b.cfg.log.Debug("duplicate participant ignored",
				zap.String("title", rec.Title), zap.String("actor", name))
		}
	}
	b.report.Records++

	return nil
}

// IngestAll consumes records until the sequence ends or yields an error.
// A reader error is returned as-is (wrapped); records before it stay ingested.
func (b *Builder) IngestAll(records iter.Seq2[Record, error]) error {
	for rec, err := range records {
		if err != nil {
			return builderErrorf(methodIngestAll, "read record %d: %w", b.report.Records+1, err)
		}
		if err := b.Ingest(rec); err != nil {
			return builderErrorf(methodIngestAll, "%w", err)
		}
	}
	b.cfg.log.Debug("dataset ingested",
		zap.Int("records", b.report.Records),
		zap.Int("links", b.report.Links),
		zap.Int("movies_merged", b.report.MoviesMerged),
		zap.Int("duplicate_links", b.report.DuplicateLinks))

	return nil
}

// Build creates a graph from records, seals it, and returns it with the report.
// On error no graph is returned: a partial graph must not be queried.
func Build(records iter.Seq2[Record, error], opts ...Option) (*core.Graph, Report, error) {
	b := New(core.NewGraph(), opts...)
	if err := b.IngestAll(records); err != nil {
		return nil, b.Report(), err
	}
	b.g.Seal()

	return b.g, b.Report(), nil
}
