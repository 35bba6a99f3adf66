package macrocell

import (
	"fmt"

	"github.com/conwaylab/go-hashlife/cells"
)

// Evolver computes the future of stored regions, consulting and filling the
// per-node memo slots as it recurses. Because nodes are canonical, a future
// computed for one occurrence of a region is found by every other
// occurrence, anywhere in the universe.
type Evolver struct {
	store *Store
}

// NewEvolver returns an Evolver over store. The evolver inserts the nodes it
// synthesizes into the same store, so its results are themselves canonical.
func NewEvolver(store *Store) *Evolver {
	return &Evolver{store: store}
}

// Store returns the store this evolver computes into.
func (e *Evolver) Store() *Store { return e.store }

// Advance returns the handle of the center of the region behind h, gens
// generations into the future. The result is one level down; h keeps only
// enough border context to know its center that far ahead, so gens must not
// exceed FarSteps(level). Callers wanting more either loop Advance+Grow or
// Grow first.
//
// gens == 0 returns h unchanged. A full store surfaces as ErrStoreFull; the
// caller recovers by migrating to a larger store.
func (e *Evolver) Advance(h Handle, level uint8, gens uint64) (Handle, error) {
	if gens == 0 {
		return h, nil
	}
	if level <= LeafLevel {
		return Null, ErrLevelTooLow
	}
	if limit := FarSteps(level); gens > limit {
		return Null, fmt.Errorf("%w: %d > %d at level %d", ErrTooManyGenerations, gens, limit, level)
	}
	return e.advance(h, level, gens)
}

// advance requires 1 <= gens <= FarSteps(level) and level > LeafLevel.
//
// Only the two canonical generation counts are memoized: one step, and the
// full far step. Everything in between decomposes into those through the
// recursion, so the slots still absorb nearly all the work.
func (e *Evolver) advance(h Handle, level uint8, gens uint64) (Handle, error) {
	if gens == 1 {
		if f := e.store.StepFuture(h); !f.IsNull() {
			return f, nil
		}
	} else if gens == FarSteps(level) {
		if f := e.store.FarFuture(h); !f.IsNull() {
			return f, nil
		}
	}

	var result Handle
	var err error
	if level == LeafLevel+1 {
		result, err = e.advanceBase(h, gens)
	} else {
		result, err = e.advanceInterior(h, level, gens)
	}
	if err != nil {
		return Null, err
	}

	if gens == 1 {
		e.store.SetStepFuture(h, result)
	}
	if gens == FarSteps(level) {
		e.store.SetFarFuture(h, result)
	}
	return result, nil
}

// advanceBase advances a level-4 region (four leaf children) by gens <= 4,
// entirely in leaf arithmetic: nine overlapping squares one leaf apart,
// advanced in two phases of at most two generations each, recombined from
// their centers.
func (e *Evolver) advanceBase(h Handle, gens uint64) (Handle, error) {
	n := e.store.NodeAt(h)
	nw := e.store.Leaf(n.NW)
	ne := e.store.Leaf(n.NE)
	sw := e.store.Leaf(n.SW)
	se := e.store.Leaf(n.SE)

	grid := [3][3]cells.Square{
		{nw, cells.Horizontal(nw, ne), ne},
		{cells.Vertical(nw, sw), cells.Center(nw, ne, sw, se), cells.Vertical(ne, se)},
		{sw, cells.Horizontal(sw, se), se},
	}

	t1 := min(gens, FarSteps(LeafLevel))
	t2 := gens - t1
	for i := range grid {
		for j := range grid[i] {
			grid[i][j] = leafCenter(grid[i][j], t1)
		}
	}

	quads := [2][2]cells.Square{}
	for i := range quads {
		for j := range quads[i] {
			quads[i][j] = leafCenter(cells.FromCenters(
				grid[i][j], grid[i][j+1], grid[i+1][j], grid[i+1][j+1]), t2)
		}
	}
	return e.store.insertLeafOrErr(cells.FromCenters(
		quads[0][0], quads[0][1], quads[1][0], quads[1][1]))
}

// leafCenter returns s with its central 4x4 advanced t generations and the
// rest forced dead. A lone square cannot see further than two generations,
// so t above 2 is clamped to 2; the phase split in advanceBase never asks
// for more.
func leafCenter(s cells.Square, t uint64) cells.Square {
	switch t {
	case 0:
		return s & cells.CenterMask
	case 1:
		return s.Step() & cells.CenterMask
	case 2:
		return s.Next()
	default: // clamp: longer advances must be split by the caller
		return s.Next()
	}
}

// advanceInterior advances a region at level >= 5 by gens, through the same
// two-phase scheme as advanceBase but one level of handles up: the nine
// overlapping subregions come from child and grandchild combination, and
// each phase re-enters advance one level down.
func (e *Evolver) advanceInterior(h Handle, level uint8, gens uint64) (Handle, error) {
	n := e.store.NodeAt(h)
	nw := e.store.NodeAt(n.NW)
	ne := e.store.NodeAt(n.NE)
	sw := e.store.NodeAt(n.SW)
	se := e.store.NodeAt(n.SE)

	grid := [3][3]Handle{
		{n.NW, Null, n.NE},
		{Null, Null, Null},
		{n.SW, Null, n.SE},
	}
	var err error
	edges := [5]struct {
		i, j int
		n    Node
	}{
		{0, 1, Node{nw.NE, ne.NW, nw.SE, ne.SW}}, // north edge
		{1, 0, Node{nw.SW, nw.SE, sw.NW, sw.NE}}, // west edge
		{1, 1, Node{nw.SE, ne.SW, sw.NE, se.NW}}, // center
		{1, 2, Node{ne.SW, ne.SE, se.NW, se.NE}}, // east edge
		{2, 1, Node{sw.NE, se.NW, sw.SE, se.SW}}, // south edge
	}
	for _, edge := range edges {
		if grid[edge.i][edge.j], err = e.store.insertNodeOrErr(edge.n, level-1); err != nil {
			return Null, err
		}
	}

	t1 := min(gens, FarSteps(level-1))
	t2 := gens - t1
	for i := range grid {
		for j := range grid[i] {
			if grid[i][j], err = e.advanceCentered(grid[i][j], level-1, t1); err != nil {
				return Null, err
			}
		}
	}

	quads := [2][2]Handle{}
	for i := range quads {
		for j := range quads[i] {
			q, err := e.store.insertNodeOrErr(Node{
				grid[i][j], grid[i][j+1], grid[i+1][j], grid[i+1][j+1]}, level-1)
			if err != nil {
				return Null, err
			}
			if quads[i][j], err = e.advanceCentered(q, level-1, t2); err != nil {
				return Null, err
			}
		}
	}
	return e.store.insertNodeOrErr(Node{
		quads[0][0], quads[0][1], quads[1][0], quads[1][1]}, level-1)
}

// advanceCentered returns the center of h advanced by t, one level down;
// t == 0 degenerates to plain center extraction.
func (e *Evolver) advanceCentered(h Handle, level uint8, t uint64) (Handle, error) {
	if t == 0 {
		return e.store.Center(h, level)
	}
	return e.advance(h, level, t)
}
