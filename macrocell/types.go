package macrocell

import "errors"

// Handle refers to a macrocell or cell square stored in a Store. For now
// just an index; a null handle is indicated by the maximum uint32 value.
type Handle uint32

// Null is the absent-reference sentinel.
const Null = ^Handle(0)

// IsNull reports whether h is the absent-reference sentinel.
func (h Handle) IsNull() bool { return h == Null }

// Index returns the slot index behind h.
func (h Handle) Index() uint32 { return uint32(h) }

// LeafLevel is the level of an 8x8 cell square, the bottom of the tree.
const LeafLevel = 3

// EdgeLength returns the cell width 2^level of a region at the given level.
func EdgeLength(level uint8) uint64 {
	return 1 << level
}

// FarSteps returns the number of generations 2^(level-2) covered by the far
// future slot of a node at the given level.
func FarSteps(level uint8) uint64 {
	return 1 << (level - 2)
}

// Node is a quadrant decomposition record: four child handles, each pointing
// one level down. A node is canonicalized by its children together with its
// level; futures are kept by the Store.
type Node struct {
	NW, NE, SW, SE Handle
}

var (
	ErrStoreFull          = errors.New("macrocell: store full")
	ErrLevelTooLow        = errors.New("macrocell: level must be above the leaf level")
	ErrTooManyGenerations = errors.New("macrocell: generations exceed the far step of this level")
)
