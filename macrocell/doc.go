package macrocell

/*

# Canonical quadtree macrocells

A macrocell is made up of four quadrants, which are either other macrocells
or, at the bottom of the tree, 8x8 cell squares. Structurally identical
macrocells are stored exactly once (hash-consing), so a pattern repeated
anywhere in the universe is represented by one physical node — and any future
computed for it is automatically shared by every occurrence. That sharing is
the entire performance rationale of Hashlife.

## Levels

A node's level is implied by its nesting depth and is never stored; callers
carry it alongside each Handle. A node at level n covers a 2^n x 2^n region:

	level 3   8x8       cells.Square, the leaf
	level 4   16x16     Node of four leaf handles
	level 5   32x32     Node of four level-4 handles
	...

The far step of a level-n node is 2^(n-2) generations, the doubling step that
gives Hashlife its logarithmic advancement.

## Handles

A Handle is a non-owning index into the Store that issued it; leaf handles
index the leaf set and interior handles index the node set, and only the
level tells which is which — a burden of knowledge carried by the caller.
Handles compare equal iff their indices match; because construction always
goes through the canonicalizing store, index equality and structural equality
coincide.

Clear invalidates every outstanding Handle at once. The Store bumps an epoch
counter on each Clear so callers that cache handles long-term can cheaply
detect staleness; it does not police them.

## Futures

Each interior node carries two memo slots: its center one generation ahead,
and its center 2^(level-2) generations ahead. Both results are one level
down. The slots are mutable metadata kept in a side table parallel to the
node slots — a node's identity for hashing and equality is its four children
together with its level, and nothing else. The level matters because a
level-4 tuple indexes the leaf set while higher tuples index the node set:
numerically equal tuples at different levels are different regions, and each
gets its own slot, handle, and futures.

## Failure model

All operations are synchronous value computations. The only "failure to
complete" outcome is exhaustion of a fixed-capacity set, surfaced as
ErrStoreFull; the caller recovers by migrating to a fresh, larger Store or by
Clear. Dereferencing a handle that no set slot backs is a programming error,
not a checked condition.

*/
