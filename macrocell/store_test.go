package macrocell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conwaylab/go-hashlife/cells"
	"github.com/conwaylab/go-hashlife/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(config.Config{LeafCapacity: 1 << 10, NodeCapacity: 1 << 12})
	require.NoError(t, err)
	return store
}

func TestNewStoreBadConfig(t *testing.T) {
	_, err := NewStore(config.Config{})
	require.ErrorIs(t, err, config.ErrBadCapacity)
}

func TestStoreIdentity(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestHandleSentinel(t *testing.T) {
	assert.True(t, Null.IsNull())
	assert.False(t, Handle(0).IsNull())
	assert.Equal(t, uint32(17), Handle(17).Index())
}

func TestLevelGeometry(t *testing.T) {
	tests := []struct {
		level uint8
		edge  uint64
		far   uint64
	}{
		{3, 8, 2},
		{4, 16, 4},
		{5, 32, 8},
		{10, 1024, 256},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.edge, EdgeLength(tt.level), "edge at level %d", tt.level)
		assert.Equal(t, tt.far, FarSteps(tt.level), "far steps at level %d", tt.level)
	}
}

func TestLeafCanonical(t *testing.T) {
	store := newTestStore(t)

	h, fresh := store.InsertLeaf(cells.Glider())
	require.False(t, h.IsNull())
	assert.True(t, fresh)
	assert.Equal(t, cells.Glider(), store.Leaf(h))

	again, fresh := store.InsertLeaf(cells.Glider())
	assert.False(t, fresh)
	assert.Equal(t, h, again)
	assert.Equal(t, uint32(1), store.LeafCount())
}

func TestNodeCanonical(t *testing.T) {
	store := newTestStore(t)

	leaf, _ := store.InsertLeaf(cells.Block())
	empty, err := store.EmptyLeaf()
	require.NoError(t, err)

	n := Node{NW: leaf, NE: empty, SW: empty, SE: leaf}
	h, fresh := store.InsertNode(n, 4)
	require.False(t, h.IsNull())
	assert.True(t, fresh)
	assert.Equal(t, n, store.NodeAt(h))

	again, fresh := store.InsertNode(n, 4)
	assert.False(t, fresh)
	assert.Equal(t, h, again)

	// A different arrangement of the same children is a different node.
	other, fresh := store.InsertNode(Node{NW: empty, NE: leaf, SW: leaf, SE: empty}, 4)
	assert.True(t, fresh)
	assert.NotEqual(t, h, other)
}

func TestNodeLevelIdentity(t *testing.T) {
	store := newTestStore(t)

	leaf, _ := store.InsertLeaf(cells.Blinker())
	n := Node{leaf, leaf, leaf, leaf}

	h4, fresh := store.InsertNode(n, 4)
	require.True(t, fresh)

	// The same numeric tuple one level up denotes a different region: its
	// children index the node set, not the leaf set. It must colonize its
	// own slot rather than alias the level-4 node.
	h5, fresh := store.InsertNode(n, 5)
	assert.True(t, fresh)
	assert.NotEqual(t, h4, h5)

	again, fresh := store.InsertNode(n, 4)
	assert.False(t, fresh)
	assert.Equal(t, h4, again)

	// Memo slots follow the handle, so a future computed at one level is
	// never served at the other.
	store.SetStepFuture(h4, leaf)
	assert.True(t, store.StepFuture(h5).IsNull())

	// Genuinely nested regions read consistently through their own handles.
	quad, fresh := store.InsertNode(Node{h4, h4, h4, h4}, 5)
	require.True(t, fresh)
	assert.Equal(t, 4*store.Population(h4, 4), store.Population(quad, 5))
}

func TestEmptyCanonical(t *testing.T) {
	store := newTestStore(t)

	a, err := store.Empty(6)
	require.NoError(t, err)
	b, err := store.Empty(6)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Equal(t, uint64(0), store.Population(a, 6))
	assert.False(t, store.CellAt(a, 6, 31, 31))
}

func TestGrowCenterRoundTrip(t *testing.T) {
	store := newTestStore(t)

	leaf, _ := store.InsertLeaf(cells.Glider())
	h4, err := store.GrowLeaf(leaf)
	require.NoError(t, err)

	// Growing pads with dead cells, so the center is recovered exactly.
	center, err := store.Center(h4, LeafLevel+1)
	require.NoError(t, err)
	assert.Equal(t, leaf, center)

	h5, err := store.Grow(h4, 4)
	require.NoError(t, err)
	center, err = store.Center(h5, 5)
	require.NoError(t, err)
	assert.Equal(t, h4, center)

	assert.Equal(t, uint64(5), store.Population(h5, 5))
}

func TestCenterBelowLeaf(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Center(Handle(0), LeafLevel)
	require.ErrorIs(t, err, ErrLevelTooLow)
	_, err = store.Grow(Handle(0), LeafLevel)
	require.ErrorIs(t, err, ErrLevelTooLow)
}

func TestCellAt(t *testing.T) {
	store := newTestStore(t)

	glider := cells.Glider()
	leaf, _ := store.InsertLeaf(glider)
	h4, err := store.GrowLeaf(leaf)
	require.NoError(t, err)

	// The leaf sits in the middle of the 16x16 region, offset by 4 cells.
	for y := 0; y < cells.Rows; y++ {
		for x := 0; x < cells.Columns; x++ {
			want := glider.Cell(x, y)
			assert.Equal(t, want, store.CellAt(h4, 4, uint64(x+4), uint64(y+4)),
				"cell (%d,%d)", x, y)
		}
	}
	assert.False(t, store.CellAt(h4, 4, 0, 0))
	assert.False(t, store.CellAt(h4, 4, 15, 15))
	assert.False(t, store.CellAt(Null, 4, 8, 8), "null reads as dead space")
}

func TestFutureSlots(t *testing.T) {
	store := newTestStore(t)

	leaf, _ := store.InsertLeaf(cells.Block())
	h4, err := store.GrowLeaf(leaf)
	require.NoError(t, err)

	assert.True(t, store.StepFuture(h4).IsNull(), "slots start out unset")
	assert.True(t, store.FarFuture(h4).IsNull())

	store.SetStepFuture(h4, leaf)
	store.SetFarFuture(h4, leaf)
	assert.Equal(t, leaf, store.StepFuture(h4))
	assert.Equal(t, leaf, store.FarFuture(h4))

	// Futures never contribute to identity: the same node is still found.
	again, fresh := store.InsertNode(store.NodeAt(h4), 4)
	assert.False(t, fresh)
	assert.Equal(t, h4, again)
}

func TestClear(t *testing.T) {
	store := newTestStore(t)

	leaf, _ := store.InsertLeaf(cells.Toad())
	h4, err := store.GrowLeaf(leaf)
	require.NoError(t, err)
	store.SetStepFuture(h4, leaf)
	require.NotZero(t, store.LeafCount())
	require.NotZero(t, store.NodeCount())

	epoch := store.Epoch()
	store.Clear()

	assert.Equal(t, epoch+1, store.Epoch())
	assert.Equal(t, uint32(0), store.LeafCount())
	assert.Equal(t, uint32(0), store.NodeCount())
	assert.True(t, store.StepFuture(h4).IsNull(), "futures are wiped with the slots")

	// The store is immediately reusable at full capacity.
	again, fresh := store.InsertLeaf(cells.Toad())
	assert.True(t, fresh)
	require.False(t, again.IsNull())
}

func TestLeafSetFull(t *testing.T) {
	store, err := NewStore(config.Config{LeafCapacity: 2, NodeCapacity: 8})
	require.NoError(t, err)

	a, fresh := store.InsertLeaf(cells.Block())
	require.True(t, fresh)
	_, fresh = store.InsertLeaf(cells.Glider())
	require.True(t, fresh)

	// Novel content is refused as a value result, not a failure...
	h, fresh := store.InsertLeaf(cells.Toad())
	assert.True(t, h.IsNull())
	assert.False(t, fresh)

	// ...while resident content is still found.
	again, fresh := store.InsertLeaf(cells.Block())
	assert.False(t, fresh)
	assert.Equal(t, a, again)

	// Internal paths lift the refusal to ErrStoreFull.
	_, err = store.EmptyLeaf()
	require.ErrorIs(t, err, ErrStoreFull)
}

func TestNodeSetFull(t *testing.T) {
	store, err := NewStore(config.Config{LeafCapacity: 64, NodeCapacity: 2})
	require.NoError(t, err)

	leaf, _ := store.InsertLeaf(cells.Glider())
	h4, err := store.GrowLeaf(leaf)
	require.NoError(t, err)

	// Growing to level 5 needs five fresh nodes; one slot remains.
	_, err = store.Grow(h4, 4)
	require.ErrorIs(t, err, ErrStoreFull)
}
