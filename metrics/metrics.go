// Package metrics counts load and query outcomes with Prometheus collectors.
//
// The CLI is a batch job, so nothing is scraped: collectors live on a private
// registry and are written once, at exit, in the node-exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/sixdegrees/builder"
	"github.com/katalvlaran/sixdegrees/core"
	"github.com/katalvlaran/sixdegrees/degrees"
)

// Recorder owns a registry and the collectors registered on it.
// All methods are safe for concurrent use. A nil *Recorder ignores records.
type Recorder struct {
	reg *prometheus.Registry

	queriesTotal  *prometheus.CounterVec
	queryDistance prometheus.Histogram
	graphEntities *prometheus.GaugeVec
	ingestTotal   *prometheus.CounterVec
}

// New returns a Recorder on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,

		// queriesTotal counts answered queries by outcome
		queriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sixdegrees_queries_total",
			Help: "Total queries answered by status",
		}, []string{"status"}),

		// queryDistance tracks the score of reachable actors
		queryDistance: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sixdegrees_query_distance",
			Help:    "Distance from the reference actor for reachable queries",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
		}),

		graphEntities: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sixdegrees_graph_entities",
			Help: "Entities in the loaded graph by kind",
		}, []string{"kind"}),

		ingestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sixdegrees_ingest_events_total",
			Help: "Dataset ingestion events by kind",
		}, []string{"kind"}),
	}
}

// Registry exposes the private registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// RecordQuery counts one answered query.
func (r *Recorder) RecordQuery(res degrees.Result) {
	if r == nil {
		return
	}
	r.queriesTotal.WithLabelValues(res.Status.String()).Inc()
	if res.Reachable() {
		r.queryDistance.Observe(float64(res.Distance))
	}
}

// RecordGraph sets the entity gauges from a loaded graph.
func (r *Recorder) RecordGraph(st core.GraphStats) {
	if r == nil {
		return
	}
	r.graphEntities.WithLabelValues("actors").Set(float64(st.Actors))
	r.graphEntities.WithLabelValues("movies").Set(float64(st.Movies))
	r.graphEntities.WithLabelValues("edges").Set(float64(st.Edges))
}

// RecordIngest adds a builder report to the ingestion counters.
func (r *Recorder) RecordIngest(rep builder.Report) {
	if r == nil {
		return
	}
	r.ingestTotal.WithLabelValues("records").Add(float64(rep.Records))
	r.ingestTotal.WithLabelValues("links").Add(float64(rep.Links))
	r.ingestTotal.WithLabelValues("movies_merged").Add(float64(rep.MoviesMerged))
	r.ingestTotal.WithLabelValues("duplicate_links").Add(float64(rep.DuplicateLinks))
	r.ingestTotal.WithLabelValues("skipped_names").Add(float64(rep.SkippedNames))
	r.ingestTotal.WithLabelValues("skipped_records").Add(float64(rep.SkippedRecords))
}

// WriteTextfile writes every collected metric to path, replacing it
// atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
