package macrocell

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/conwaylab/go-hashlife/cells"
	"github.com/conwaylab/go-hashlife/config"
	"github.com/conwaylab/go-hashlife/denseset"
)

// future holds the two memo slots of one interior node: its center one
// generation ahead, and 2^(level-2) generations ahead.
type future struct {
	step Handle
	far  Handle
}

// nodeRecord is the canonical key of an interior node: its child tuple
// together with its level. Child handles at level 4 index the leaf set while
// those above index the node set — two independent index spaces — so the
// same numeric tuple can denote different regions at different levels. The
// level in the key keeps those regions on distinct slots.
type nodeRecord struct {
	node  Node
	level uint8
}

// Store owns all node storage: a canonicalizing set of leaf squares, a
// canonicalizing set of interior nodes, and the futures side table parallel
// to the node slots. Handles issued by a Store are valid until its Clear.
//
// A Store is single-writer; see doc.go for the full caller obligations.
type Store struct {
	id      uuid.UUID
	epoch   uint32
	leaves  *denseset.Set[cells.Square]
	nodes   *denseset.Set[nodeRecord]
	futures []future
}

// NewStore constructs a Store with the fixed capacities from cfg.
func NewStore(cfg config.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	leaves, err := denseset.New(cfg.LeafCapacity, hashSquare)
	if err != nil {
		return nil, fmt.Errorf("leaf set: %w", err)
	}
	nodes, err := denseset.New(cfg.NodeCapacity, hashNodeRecord)
	if err != nil {
		return nil, fmt.Errorf("node set: %w", err)
	}
	s := &Store{
		id:      uuid.New(),
		leaves:  leaves,
		nodes:   nodes,
		futures: make([]future, cfg.NodeCapacity),
	}
	s.resetFutures()
	log.WithFields(log.Fields{
		"store":  s.id,
		"leaves": cfg.LeafCapacity,
		"nodes":  cfg.NodeCapacity,
	}).Debug("macrocell store created")
	return s, nil
}

func (s *Store) resetFutures() {
	for i := range s.futures {
		s.futures[i] = future{step: Null, far: Null}
	}
}

// ID returns the store's identity, used to correlate log output.
func (s *Store) ID() uuid.UUID { return s.id }

// Epoch returns the number of Clears this store has seen. A handle taken
// under an older epoch is stale.
func (s *Store) Epoch() uint32 { return s.epoch }

// LeafCount returns the number of distinct leaf squares stored.
func (s *Store) LeafCount() uint32 { return s.leaves.Len() }

// NodeCount returns the number of distinct interior nodes stored.
func (s *Store) NodeCount() uint32 { return s.nodes.Len() }

// InsertLeaf canonicalizes an 8x8 square. The bool reports whether a new
// slot was taken; (Null, false) means the leaf set is full for this key.
func (s *Store) InsertLeaf(sq cells.Square) (Handle, bool) {
	ref, fresh := s.leaves.Insert(sq)
	if ref == denseset.NoRef {
		return Null, false
	}
	return Handle(ref), fresh
}

// Leaf returns the square behind a leaf handle. The handle must have been
// issued by InsertLeaf on this store since the last Clear.
func (s *Store) Leaf(h Handle) cells.Square {
	return s.leaves.At(denseset.Ref(h))
}

// InsertNode canonicalizes an interior node by its child tuple and level.
// level is the level of the node itself and must be above the leaf level; it
// is part of the identity because equal tuples at different levels denote
// different regions. The bool reports whether a new slot was taken; (Null,
// false) means the node set is full for this key.
func (s *Store) InsertNode(n Node, level uint8) (Handle, bool) {
	ref, fresh := s.nodes.Insert(nodeRecord{node: n, level: level})
	if ref == denseset.NoRef {
		return Null, false
	}
	return Handle(ref), fresh
}

// NodeAt returns the node behind an interior handle. The handle must have
// been issued by InsertNode on this store since the last Clear.
func (s *Store) NodeAt(h Handle) Node {
	return s.nodes.At(denseset.Ref(h)).node
}

// StepFuture returns the memoized one-generation future of h, or Null on a
// cache miss.
func (s *Store) StepFuture(h Handle) Handle {
	return s.futures[h].step
}

// FarFuture returns the memoized 2^(level-2)-generation future of h, or Null
// on a cache miss.
func (s *Store) FarFuture(h Handle) Handle {
	return s.futures[h].far
}

// SetStepFuture fills the one-generation memo slot of h. Filling future
// slots is the evolver's job; the slots never contribute to node identity.
func (s *Store) SetStepFuture(h, f Handle) {
	s.futures[h].step = f
}

// SetFarFuture fills the 2^(level-2)-generation memo slot of h.
func (s *Store) SetFarFuture(h, f Handle) {
	s.futures[h].far = f
}

// Clear resets every slot of both sets and every future in O(capacity),
// without reallocating. All outstanding handles are invalidated; the epoch
// is bumped so long-lived callers can notice.
func (s *Store) Clear() {
	s.leaves.Clear()
	s.nodes.Clear()
	s.resetFutures()
	s.epoch++
	log.WithFields(log.Fields{"store": s.id, "epoch": s.epoch}).
		Debug("macrocell store cleared")
}

// insertLeafOrErr is InsertLeaf with the full-table result lifted to an
// error, for the internal paths that cannot proceed without the slot.
func (s *Store) insertLeafOrErr(sq cells.Square) (Handle, error) {
	h, _ := s.InsertLeaf(sq)
	if h.IsNull() {
		log.WithFields(log.Fields{"store": s.id, "leaves": s.leaves.Len()}).
			Warn("leaf set full")
		return Null, fmt.Errorf("%w: leaf set at %d entries", ErrStoreFull, s.leaves.Len())
	}
	return h, nil
}

func (s *Store) insertNodeOrErr(n Node, level uint8) (Handle, error) {
	h, _ := s.InsertNode(n, level)
	if h.IsNull() {
		log.WithFields(log.Fields{"store": s.id, "nodes": s.nodes.Len()}).
			Warn("node set full")
		return Null, fmt.Errorf("%w: node set at %d entries", ErrStoreFull, s.nodes.Len())
	}
	return h, nil
}

// EmptyLeaf returns the canonical all-dead leaf.
func (s *Store) EmptyLeaf() (Handle, error) {
	return s.insertLeafOrErr(0)
}

// Empty returns the canonical all-dead region at the given level.
func (s *Store) Empty(level uint8) (Handle, error) {
	if level <= LeafLevel {
		return s.EmptyLeaf()
	}
	child, err := s.Empty(level - 1)
	if err != nil {
		return Null, err
	}
	return s.insertNodeOrErr(Node{child, child, child, child}, level)
}

// Center returns the handle of the central region of h, one level down: the
// inner corner quadrant of each child. level is the level of h and must be
// above the leaf level.
func (s *Store) Center(h Handle, level uint8) (Handle, error) {
	if level <= LeafLevel {
		return Null, ErrLevelTooLow
	}
	n := s.NodeAt(h)
	if level == LeafLevel+1 {
		sq := cells.Center(s.Leaf(n.NW), s.Leaf(n.NE), s.Leaf(n.SW), s.Leaf(n.SE))
		return s.insertLeafOrErr(sq)
	}
	nw := s.NodeAt(n.NW)
	ne := s.NodeAt(n.NE)
	sw := s.NodeAt(n.SW)
	se := s.NodeAt(n.SE)
	return s.insertNodeOrErr(Node{nw.SE, ne.SW, sw.NE, se.NW}, level-1)
}

// Grow re-centers h inside a region one level up, padding with empty space,
// so that Center(Grow(h)) == h. level is the level of h and must be above
// the leaf level; use GrowLeaf for leaves.
func (s *Store) Grow(h Handle, level uint8) (Handle, error) {
	if level <= LeafLevel {
		return Null, ErrLevelTooLow
	}
	n := s.NodeAt(h)
	e, err := s.Empty(level - 1)
	if err != nil {
		return Null, err
	}
	nw, err := s.insertNodeOrErr(Node{e, e, e, n.NW}, level)
	if err != nil {
		return Null, err
	}
	ne, err := s.insertNodeOrErr(Node{e, e, n.NE, e}, level)
	if err != nil {
		return Null, err
	}
	sw, err := s.insertNodeOrErr(Node{e, n.SW, e, e}, level)
	if err != nil {
		return Null, err
	}
	se, err := s.insertNodeOrErr(Node{n.SE, e, e, e}, level)
	if err != nil {
		return Null, err
	}
	return s.insertNodeOrErr(Node{nw, ne, sw, se}, level+1)
}

// GrowLeaf lifts an 8x8 leaf into the middle of an empty 16x16 region,
// returning the level-4 handle.
func (s *Store) GrowLeaf(h Handle) (Handle, error) {
	qnw, qne, qsw, qse := cells.Expand(s.Leaf(h))
	var n Node
	var err error
	if n.NW, err = s.insertLeafOrErr(qnw); err != nil {
		return Null, err
	}
	if n.NE, err = s.insertLeafOrErr(qne); err != nil {
		return Null, err
	}
	if n.SW, err = s.insertLeafOrErr(qsw); err != nil {
		return Null, err
	}
	if n.SE, err = s.insertLeafOrErr(qse); err != nil {
		return Null, err
	}
	return s.insertNodeOrErr(n, LeafLevel+1)
}
