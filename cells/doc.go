package cells

/*

# 8x8 cell squares for Hashlife

This package provides the leaf unit of the Hashlife quadtree: a square of 8x8
Game of Life cells packed into a single uint64, together with the bit-parallel
rule evaluator and the compositors used to stitch squares together during
recursive evolution.

It follows the same "functional primitives" style as the rest of the module:

- small, composable functions over plain machine words
- explicit bit layouts
- a burden of knowledge on the caller for hot paths

## Bit layout

Bit `x + 8*y` holds the cell at column x, row y. (0, 0) is the top-left
corner, x grows to the east and y grows to the south:

	y\x  0  1  2  3  4  5  6  7
	0    0  1  2  3  4  5  6  7
	1    8  9 10 11 12 13 14 15
	...
	7   56 57 .. .. .. .. .. 63

## Validity after stepping

A square carries no context about its surroundings, so each application of the
rule loses the outermost ring:

- Step produces one generation; only the interior 6x6 is correct, and the
  border ring is forced dead (InteriorMask).
- Next produces two generations (Step twice); only the central 4x4 survives
  (CenterMask).

Callers that need full-width results must supply overlap via the compositors
(Center, Horizontal, Vertical, FromCenters) before stepping, which is exactly
what the macrocell evolver does.

## The rule, in registers

Step applies the standard Life rule to all 64 cells at once using carry-save
arithmetic: a horizontal full add of each cell with its east and west
neighbours, then a vertical combination of those partial sums, yields the
3-bit neighbourhood count (cell included) per position in three bitmaps.
Counts of 8 and 9 alias to 0 and 1; they behave identically under the rule, so
the overflow is allowed. See Tony Finch's "Life in a Register".

*/
