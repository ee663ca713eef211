package explain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/collab"
	"github.com/katalvlaran/costar/explain"
)

const bacon = "Kevin Bacon"

// newExplainer builds index + BFS + explainer from groups rooted at bacon.
func newExplainer(t *testing.T, groups []collab.Group) *explain.Explainer {
	t.Helper()
	idx, err := collab.Build(groups)
	require.NoError(t, err)
	res, err := bfs.BFS(idx.Graph(), bacon)
	require.NoError(t, err)
	e, err := explain.New(bacon, res, idx.Labels())
	require.NoError(t, err)

	return e
}

// TestExplain_TwoHopScenario is the M1/M2 chain: B → A → Kevin Bacon.
func TestExplain_TwoHopScenario(t *testing.T) {
	e := newExplainer(t, collab.GroupsFromMap(map[string][]string{
		"M1": {bacon, "A"},
		"M2": {"A", "B"},
	}))

	ans, err := e.Explain("B")
	require.NoError(t, err)
	assert.Equal(t, explain.KindConnected, ans.Kind)
	assert.Equal(t, 2, ans.Distance)
	assert.Equal(t, []string{
		"B was connected to A via M2",
		"A was connected to Kevin Bacon via M1",
	}, ans.Lines())

	ans, err = e.Explain("A")
	require.NoError(t, err)
	assert.Equal(t, 1, ans.Distance)
	assert.Equal(t, []explain.Step{{Member: "A", Label: "M1", Next: bacon}}, ans.Steps)
}

// TestExplain_Reference is the terminal case with no edge walk.
func TestExplain_Reference(t *testing.T) {
	e := newExplainer(t, []collab.Group{{Key: "M", Members: []string{bacon, "A"}}})
	ans, err := e.Explain(bacon)
	require.NoError(t, err)
	assert.Equal(t, explain.KindReference, ans.Kind)
	assert.Equal(t, 0, ans.Distance)
	assert.Empty(t, ans.Steps)
}

// TestExplain_UnknownVersusUnreachable separates absent names from disconnected ones.
func TestExplain_UnknownVersusUnreachable(t *testing.T) {
	e := newExplainer(t, []collab.Group{
		{Key: "M", Members: []string{bacon, "A"}},
		{Key: "Island", Members: []string{"X", "Y"}},
	})

	ans, err := e.Explain("Nobody Famous")
	require.NoError(t, err)
	assert.Equal(t, explain.KindUnknown, ans.Kind)
	assert.Equal(t, bfs.Unreachable, ans.Distance)

	ans, err = e.Explain("X")
	require.NoError(t, err)
	assert.Equal(t, explain.KindUnreachable, ans.Kind)
	assert.Equal(t, bfs.Unreachable, ans.Distance)
	assert.Empty(t, ans.Lines())
}

// TestExplain_TripleGroup checks distance 1 for both B and C from the group {A,B,C}.
func TestExplain_TripleGroup(t *testing.T) {
	idx, err := collab.Build([]collab.Group{{Key: "M", Members: []string{"A", "B", "C"}}})
	require.NoError(t, err)
	res, err := bfs.BFS(idx.Graph(), "A")
	require.NoError(t, err)
	e, err := explain.New("A", res, idx.Labels())
	require.NoError(t, err)

	for _, target := range []string{"B", "C"} {
		ans, err := e.Explain(target)
		require.NoError(t, err)
		assert.Equal(t, 1, ans.Distance, target)
		assert.Equal(t, []string{target + " was connected to A via M"}, ans.Lines())
	}
}

// mapLabels is a LabelLookup backed by a plain map, for inconsistent-input tests.
type mapLabels map[collab.Pair]string

func (m mapLabels) Lookup(from, to string) (string, bool) {
	l, ok := m[collab.Pair{From: from, To: to}]
	return l, ok
}

// TestExplain_MissingEdgeLabel reports a consistency fault instead of an empty label.
func TestExplain_MissingEdgeLabel(t *testing.T) {
	idx, err := collab.Build([]collab.Group{{Key: "M", Members: []string{bacon, "A"}}})
	require.NoError(t, err)
	res, err := bfs.BFS(idx.Graph(), bacon)
	require.NoError(t, err)

	e, err := explain.New(bacon, res, mapLabels{})
	require.NoError(t, err)
	_, err = e.Explain("A")
	assert.ErrorIs(t, err, explain.ErrMissingEdgeLabel)
}

// TestExplain_BrokenChain detects parent links that do not lead to the reference.
func TestExplain_BrokenChain(t *testing.T) {
	res := &bfs.Result{
		Source: bacon,
		Order:  []string{bacon, "A"},
		Nodes: map[string]bfs.SearchResult{
			bacon: {Distance: 0},
			"A":   {Distance: 2, Parent: bacon, HasParent: true},
		},
	}
	labels := mapLabels{{From: "A", To: bacon}: "M"}

	e, err := explain.New(bacon, res, labels)
	require.NoError(t, err)
	_, err = e.Explain("A")
	assert.ErrorIs(t, err, explain.ErrBrokenChain)
}

// TestNew_Validation rejects nil and mis-rooted results.
func TestNew_Validation(t *testing.T) {
	_, err := explain.New(bacon, nil, mapLabels{})
	assert.ErrorIs(t, err, explain.ErrNilResult)

	_, err = explain.New(bacon, &bfs.Result{Source: "Somebody Else"}, mapLabels{})
	assert.ErrorIs(t, err, explain.ErrReferenceMismatch)
}

// TestAnswer_JSON renders Kind as its name.
func TestAnswer_JSON(t *testing.T) {
	raw, err := json.Marshal(explain.Answer{Target: "A", Reference: bacon, Kind: explain.KindConnected, Distance: 1,
		Steps: []explain.Step{{Member: "A", Label: "M", Next: bacon}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"A","reference":"Kevin Bacon","kind":"connected","distance":1,
		"steps":[{"member":"A","label":"M","next":"Kevin Bacon"}]}`, string(raw))
}
