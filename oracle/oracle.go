// Package oracle answers "shortest collaboration chain to the reference" queries.
//
// An Oracle is built once from grouped membership records: it owns the
// collaboration index, runs a single BFS rooted at the reference and keeps the
// result. AnswerQuery is then a pure read over that state and may be called
// from any number of goroutines. Rebuilding means constructing a new Oracle
// and swapping it into a Holder.
package oracle

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/collab"
	"github.com/katalvlaran/costar/dfs"
	"github.com/katalvlaran/costar/explain"
	"github.com/katalvlaran/costar/internal/metrics"
)

// ErrEmptyQuery is returned by AnswerQuery for a blank name.
var ErrEmptyQuery = errors.New("oracle: empty query")

// Option configures an Oracle.
type Option func(*options)

type options struct {
	log     *logrus.Logger
	metrics bool
}

// WithLogger sets the logger used for build and query diagnostics.
func WithLogger(log *logrus.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithMetrics enables Prometheus instrumentation of builds and queries.
func WithMetrics(enabled bool) Option {
	return func(o *options) { o.metrics = enabled }
}

// Oracle holds one immutable index plus the BFS rooted at its reference.
type Oracle struct {
	reference string
	index     *collab.Index
	result    *bfs.Result
	explainer *explain.Explainer
	comps     [][]string
	builtAt   time.Time
	log       *logrus.Logger
	metrics   bool
}

// Stats summarises an Oracle.
type Stats struct {
	Reference   string    `json:"reference" yaml:"reference"`
	Nodes       int       `json:"nodes" yaml:"nodes"`
	Edges       int       `json:"edges" yaml:"edges"`
	Groups      int       `json:"groups" yaml:"groups"`
	Reachable   int       `json:"reachable" yaml:"reachable"`
	MaxDistance int       `json:"max_distance" yaml:"max_distance"`
	Conflicts   int       `json:"label_conflicts" yaml:"label_conflicts"`
	Components  int       `json:"components" yaml:"components"`
	Largest     int       `json:"largest_component" yaml:"largest_component"`
	BuiltAt     time.Time `json:"built_at" yaml:"built_at"`
}

// New builds the index from groups and searches it from reference.
// A reference that appears in no group fails with bfs.ErrSourceNotFound.
func New(groups []collab.Group, reference string, opts ...Option) (*Oracle, error) {
	o := options{log: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	idx, err := collab.Build(groups)
	if err != nil {
		return nil, fmt.Errorf("oracle: build index: %w", err)
	}

	start := time.Now()
	res, err := bfs.BFS(idx.Graph(), reference)
	if err != nil {
		return nil, fmt.Errorf("oracle: reference %q: %w", reference, err)
	}
	elapsed := time.Since(start)

	exp, err := explain.New(reference, res, idx.Labels())
	if err != nil {
		return nil, fmt.Errorf("oracle: %w", err)
	}

	comps, err := dfs.Components(idx.Graph())
	if err != nil {
		return nil, fmt.Errorf("oracle: components: %w", err)
	}

	orc := &Oracle{
		reference: reference,
		index:     idx,
		result:    res,
		explainer: exp,
		comps:     comps,
		builtAt:   time.Now(),
		log:       o.log,
		metrics:   o.metrics,
	}

	if orc.metrics {
		metrics.BFSDuration.Observe(elapsed.Seconds())
	}
	orc.log.WithFields(logrus.Fields{
		"reference":  reference,
		"groups":     idx.Groups(),
		"nodes":      idx.Graph().NodeCount(),
		"edges":      idx.Graph().EdgeCount(),
		"reachable":  res.Reached(),
		"conflicts":  idx.Conflicts(),
		"components": len(comps),
		"bfs":        elapsed.String(),
	}).Info("collaboration index built")

	return orc, nil
}

// Reference returns the root of every query.
func (o *Oracle) Reference() string { return o.reference }

// AnswerQuery explains the shortest chain from name to the reference.
//
// Surrounding whitespace is ignored. Unknown and unreachable names are normal
// answers (explain.KindUnknown / KindUnreachable), not errors. Errors are
// ErrEmptyQuery or an explain consistency fault.
func (o *Oracle) AnswerQuery(name string) (explain.Answer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		o.countError("empty_query")

		return explain.Answer{}, ErrEmptyQuery
	}

	ans, err := o.explainer.Explain(name)
	if err != nil {
		o.countError(errorType(err))
		o.log.WithError(err).WithField("name", name).Error("inconsistent collaboration index")

		return ans, fmt.Errorf("oracle: query %q: %w", name, err)
	}

	if o.metrics {
		metrics.QueriesTotal.WithLabelValues(ans.Kind.String()).Inc()
	}
	o.log.WithFields(logrus.Fields{
		"name":     name,
		"kind":     ans.Kind.String(),
		"distance": ans.Distance,
	}).Debug("query answered")

	return ans, nil
}

// Stats returns counters describing the index and search.
func (o *Oracle) Stats() Stats {
	g := o.index.Graph()

	return Stats{
		Reference:   o.reference,
		Nodes:       g.NodeCount(),
		Edges:       g.EdgeCount(),
		Groups:      o.index.Groups(),
		Reachable:   o.result.Reached(),
		MaxDistance: o.result.MaxDistance(),
		Conflicts:   o.index.Conflicts(),
		Components:  len(o.comps),
		Largest:     o.largest(),
		BuiltAt:     o.builtAt,
	}
}

// Component returns the members of the connected component containing name,
// sorted by label, or nil when name is not in the graph.
func (o *Oracle) Component(name string) []string {
	name = strings.TrimSpace(name)
	for _, c := range o.comps {
		i := sort.SearchStrings(c, name)
		if i < len(c) && c[i] == name {
			return append([]string(nil), c...)
		}
	}

	return nil
}

func (o *Oracle) largest() int {
	if len(o.comps) == 0 {
		return 0
	}

	return len(o.comps[0])
}

func (o *Oracle) countError(kind string) {
	if o.metrics {
		metrics.QueryErrorsTotal.WithLabelValues(kind).Inc()
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, explain.ErrMissingEdgeLabel):
		return "missing_label"
	case errors.Is(err, explain.ErrBrokenChain):
		return "broken_chain"
	default:
		return "internal"
	}
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}
