// Package explain reconstructs and renders shortest collaboration chains
// from a BFS result and an edge label lookup.
package explain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/costar/bfs"
)

// Sentinel errors for path explanation.
var (
	// ErrMissingEdgeLabel indicates a (node, parent) pair on a BFS tree path has
	// no label: the labels and the graph were built from inconsistent inputs.
	ErrMissingEdgeLabel = errors.New("explain: missing edge label")

	// ErrBrokenChain indicates the parent links do not lead back to the
	// reference in exactly Distance hops.
	ErrBrokenChain = errors.New("explain: broken parent chain")

	// ErrReferenceMismatch indicates the BFS result is not rooted at the reference.
	ErrReferenceMismatch = errors.New("explain: result not rooted at reference")

	// ErrNilResult is returned when no BFS result is supplied.
	ErrNilResult = errors.New("explain: nil search result")
)

// LabelLookup is the fallible (from, to) → label lookup an Explainer needs.
// *collab.EdgeLabels satisfies it.
type LabelLookup interface {
	Lookup(from, to string) (string, bool)
}

// Kind classifies an Answer.
type Kind int

const (
	// KindUnknown: the target is not a node of the graph at all.
	KindUnknown Kind = iota
	// KindUnreachable: the target is a node but no path leads to the reference.
	KindUnreachable
	// KindReference: the target is the reference itself.
	KindReference
	// KindConnected: a shortest chain exists; Steps holds it.
	KindConnected
)

// String returns the lowercase name used in logs, metrics and JSON.
func (k Kind) String() string {
	switch k {
	case KindUnreachable:
		return "unreachable"
	case KindReference:
		return "reference"
	case KindConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Step is one hop of a chain: Member was connected to Next via Label.
type Step struct {
	Member string `json:"member"`
	Label  string `json:"label"`
	Next   string `json:"next"`
}

// String renders the step as a sentence.
func (s Step) String() string {
	return fmt.Sprintf("%s was connected to %s via %s", s.Member, s.Next, s.Label)
}

// Answer is the outcome of explaining one target.
// Distance is bfs.Unreachable unless Kind is KindReference or KindConnected.
type Answer struct {
	Target    string `json:"name"`
	Reference string `json:"reference"`
	Kind      Kind   `json:"kind"`
	Distance  int    `json:"distance"`
	Steps     []Step `json:"steps"`
}

// Lines renders each step on its own line, target first.
func (a Answer) Lines() []string {
	lines := make([]string, len(a.Steps))
	for i, s := range a.Steps {
		lines[i] = s.String()
	}

	return lines
}

// Explainer answers path queries against one BFS result rooted at the reference.
// It only reads its inputs and is safe for concurrent use.
type Explainer struct {
	reference string
	res       *bfs.Result
	labels    LabelLookup
}

// New creates an Explainer. res must be a BFS result whose Source is reference.
func New(reference string, res *bfs.Result, labels LabelLookup) (*Explainer, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if res.Source != reference {
		return nil, fmt.Errorf("%w: result source %q, reference %q", ErrReferenceMismatch, res.Source, reference)
	}

	return &Explainer{reference: reference, res: res, labels: labels}, nil
}

// Reference returns the label every chain leads to.
func (e *Explainer) Reference() string { return e.reference }

// Explain classifies target and, when connected, walks the parent links
// target → … → reference emitting one Step per hop.
//
// The walk takes exactly Distance hops. A hop without a label yields
// ErrMissingEdgeLabel; a chain that ends early or runs long yields ErrBrokenChain.
func (e *Explainer) Explain(target string) (Answer, error) {
	ans := Answer{Target: target, Reference: e.reference, Kind: KindUnknown, Distance: bfs.Unreachable}

	if target == e.reference {
		ans.Kind = KindReference
		ans.Distance = 0

		return ans, nil
	}

	sr, ok := e.res.Lookup(target)
	if !ok {
		return ans, nil
	}
	if !sr.Reachable() {
		ans.Kind = KindUnreachable

		return ans, nil
	}

	steps := make([]Step, 0, sr.Distance)
	cur := target
	for hop := 0; hop < sr.Distance; hop++ {
		parent, ok := e.res.Nodes[cur].ParentOf()
		if !ok {
			return ans, fmt.Errorf("%w: %q has no parent after %d of %d hops", ErrBrokenChain, cur, hop, sr.Distance)
		}
		label, ok := e.labels.Lookup(cur, parent)
		if !ok {
			return ans, fmt.Errorf("%w: (%q, %q)", ErrMissingEdgeLabel, cur, parent)
		}
		steps = append(steps, Step{Member: cur, Label: label, Next: parent})
		cur = parent
	}
	if cur != e.reference {
		return ans, fmt.Errorf("%w: chain from %q ends at %q", ErrBrokenChain, target, cur)
	}

	ans.Kind = KindConnected
	ans.Distance = sr.Distance
	ans.Steps = steps

	return ans, nil
}
