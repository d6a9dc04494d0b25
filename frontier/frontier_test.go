package frontier_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bnb/core"
	"github.com/katalvlaran/bnb/frontier"
)

// leaf is a labelled node with fixed bounds; keyCalls counts how often the
// ordering key had to be computed.
type leaf struct {
	core.Bounds
	name     string
	dir      core.Direction
	key      float64
	keyCalls int
}

func (l *leaf) Direction() core.Direction { return l.dir }
func (l *leaf) ComputeUpperBound() error {
	l.keyCalls++
	l.SetUpper(l.key)

	return nil
}
func (l *leaf) ComputeLowerBound() error {
	l.keyCalls++
	l.SetLower(l.key)

	return nil
}
func (l *leaf) InitialSolution() error                   { return nil }
func (l *leaf) HeuristicSolution() (string, error)       { return l.name, nil }
func (l *leaf) Branch() ([]core.Instance[string], error) { return nil, nil }

func mk(name string, dir core.Direction, key float64) *leaf {
	return &leaf{name: name, dir: dir, key: key}
}

// drain pops everything and returns the labels in pop order.
func drain(t *testing.T, f frontier.Frontier[string]) []string {
	t.Helper()
	var out []string
	for !f.IsEmpty() {
		inst, err := f.Pop()
		require.NoError(t, err)
		out = append(out, inst.(*leaf).name)
	}

	return out
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []string{"best_first", "depth_first", "breath_first"} {
		got, err := frontier.ParseStrategy(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}

	got, err := frontier.ParseStrategy("breadth_first")
	require.NoError(t, err)
	assert.Equal(t, frontier.BreadthFirst, got, "alias maps to the canonical identifier")

	for _, s := range []string{"", "random", "BEST_FIRST"} {
		_, err = frontier.ParseStrategy(s)
		assert.ErrorIs(t, err, core.ErrConfiguration, s)
	}
	assert.Len(t, frontier.Strategies(), 3)
}

// TestNew_UnknownStrategy checks nothing is computed on a bad identifier.
func TestNew_UnknownStrategy(t *testing.T) {
	root := mk("root", core.Maximize, 1)
	f, err := frontier.New[string]("greedy_first", root)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, core.ErrConfiguration)
	assert.Equal(t, 0, root.keyCalls)
}

func TestNew_NilRoot(t *testing.T) {
	_, err := frontier.New[string](frontier.DepthFirst, nil)
	assert.ErrorIs(t, err, frontier.ErrNilInstance)
}

func TestNew_SeedsRoot(t *testing.T) {
	for _, s := range frontier.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			root := mk("root", core.Maximize, 5)
			f, err := frontier.New[string](s, root)
			require.NoError(t, err)
			assert.Equal(t, s, f.Strategy())
			assert.Equal(t, 1, f.Len())
			assert.Equal(t, []string{"root"}, drain(t, f))

			_, err = f.Pop()
			assert.ErrorIs(t, err, frontier.ErrEmptyFrontier)
		})
	}
}

// TestNew_BestFirstComputesRootKey checks the ordering key exists before insertion.
func TestNew_BestFirstComputesRootKey(t *testing.T) {
	root := mk("root", core.Minimize, 2)
	_, err := frontier.New[string](frontier.BestFirst, root)
	require.NoError(t, err)
	assert.True(t, root.LowerBoundSet())
	assert.False(t, root.UpperBoundSet())

	dfsRoot := mk("root", core.Minimize, 2)
	_, err = frontier.New[string](frontier.DepthFirst, dfsRoot)
	require.NoError(t, err)
	assert.Equal(t, 0, dfsRoot.keyCalls, "stack does not need a key")
}

func TestBestFirst_Maximize(t *testing.T) {
	f := frontier.NewBestFirst[string](core.Maximize)
	require.NoError(t, f.PushBatch([]core.Instance[string]{
		mk("a", core.Maximize, 10),
		mk("b", core.Maximize, 30),
		mk("c", core.Maximize, 20),
		mk("d", core.Maximize, 30),
	}))
	assert.Equal(t, []string{"b", "d", "c", "a"}, drain(t, f), "descending upper bound, ties FIFO")
}

func TestBestFirst_Minimize(t *testing.T) {
	f := frontier.NewBestFirst[string](core.Minimize)
	require.NoError(t, f.PushBatch([]core.Instance[string]{
		mk("a", core.Minimize, 10),
		mk("b", core.Minimize, -1),
		mk("c", core.Minimize, 4),
	}))
	require.NoError(t, f.Push(mk("d", core.Minimize, 4)))
	assert.Equal(t, []string{"b", "c", "d", "a"}, drain(t, f), "ascending lower bound, ties FIFO")
}

func TestBestFirst_KeyReused(t *testing.T) {
	l := mk("a", core.Maximize, 3)
	l.SetUpper(3)
	f := frontier.NewBestFirst[string](core.Maximize)
	require.NoError(t, f.Push(l))
	assert.Equal(t, 0, l.keyCalls, "cached key is not recomputed")
}

// TestDepthFirst_BatchLeftToRight pins the branch-order convention: the first
// child of a batch is explored first, and a later batch is explored before
// the older siblings.
func TestDepthFirst_BatchLeftToRight(t *testing.T) {
	f := frontier.NewDepthFirst[string]()
	require.NoError(t, f.PushBatch([]core.Instance[string]{
		mk("1", core.Maximize, 0), mk("2", core.Maximize, 0), mk("3", core.Maximize, 0),
	}))
	first, err := f.Pop()
	require.NoError(t, err)
	assert.Equal(t, "1", first.(*leaf).name)

	require.NoError(t, f.PushBatch([]core.Instance[string]{
		mk("1.1", core.Maximize, 0), mk("1.2", core.Maximize, 0),
	}))
	assert.Equal(t, []string{"1.1", "1.2", "2", "3"}, drain(t, f))
}

func TestBreadthFirst_FIFOAndGrowth(t *testing.T) {
	f := frontier.NewBreadthFirst[string]()
	var want []string
	// Interleave pushes and pops so the ring wraps before it grows.
	for i := 0; i < 10; i++ {
		require.NoError(t, f.Push(mk(string(rune('a'+i)), core.Maximize, 0)))
	}
	for i := 0; i < 8; i++ {
		_, err := f.Pop()
		require.NoError(t, err)
	}
	want = append(want, "i", "j")
	batch := make([]core.Instance[string], 0, 40)
	for i := 0; i < 40; i++ {
		name := "n" + string(rune('A'+i))
		batch = append(batch, mk(name, core.Maximize, 0))
		want = append(want, name)
	}
	require.NoError(t, f.PushBatch(batch))
	assert.Equal(t, 42, f.Len())
	assert.Equal(t, want, drain(t, f))
}

func TestPush_Nil(t *testing.T) {
	fs := []frontier.Frontier[string]{
		frontier.NewBestFirst[string](core.Maximize),
		frontier.NewDepthFirst[string](),
		frontier.NewBreadthFirst[string](),
	}
	for _, f := range fs {
		assert.True(t, errors.Is(f.Push(nil), frontier.ErrNilInstance), f.Strategy().String())
	}
}

func TestZeroValueFrontiers(t *testing.T) {
	var bfs frontier.BreadthFirstFrontier[string]
	_, err := bfs.Pop()
	assert.ErrorIs(t, err, frontier.ErrEmptyFrontier)
	for i := 0; i < 20; i++ {
		require.NoError(t, bfs.Push(mk(string(rune('a'+i)), core.Maximize, 0)))
	}
	got := drain(t, &bfs)
	require.Len(t, got, 20)
	assert.Equal(t, "a", got[0])
	assert.Equal(t, "t", got[19])

	var best frontier.BestFirstFrontier[string]
	require.NoError(t, best.PushBatch([]core.Instance[string]{
		mk("low", core.Minimize, 1),
		mk("high", core.Minimize, 9),
		mk("mid", core.Minimize, 5),
	}))
	assert.Equal(t, []string{"low", "mid", "high"}, drain(t, &best), "direction taken from the first node")

	var undeclared frontier.BestFirstFrontier[string]
	err = undeclared.Push(mk("x", core.Direction(0), 1))
	assert.ErrorIs(t, err, core.ErrNotImplemented)
	assert.True(t, undeclared.IsEmpty())
}
