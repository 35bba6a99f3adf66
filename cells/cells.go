package cells

import (
	"math/bits"
	"strings"
)

// Square is a block of 8x8 Game of Life cells packed into one machine word.
// Bit x + 8*y holds the cell at column x, row y; see doc.go for the layout.
// Squares are immutable values: every operation returns a new Square.
type Square uint64

const (
	Columns = 8
	Rows    = 8
)

const (
	// InteriorMask selects the 6x6 interior, the only region Step can know.
	InteriorMask Square = 0x007e7e7e7e7e7e00

	// CenterMask selects the central 4x4, the only region Next can know.
	CenterMask Square = 0x00003c3c3c3c0000
)

// FromPattern parses Tomas Rokicki's hashlife cell format into a Square.
// Each square is a single line of three characters:
//
//	'.'  dead cell, advances the column
//	'*'  living cell, advances the column
//	'$'  start of next row; unmentioned cells are dead
//
// Any other rune is ignored without advancing state. Cells beyond column 8 or
// row 8 are silently dropped; malformed input is never rejected, it just
// yields whatever bitmap the recognized runes describe.
func FromPattern(format string) Square {
	var bitmap uint64
	row, column := 0, 0
	for _, c := range format {
		switch c {
		case '*':
			if column < Columns && row < Rows {
				bitmap |= 1 << (column + row*Columns)
			}
			column++
		case '.':
			column++
		case '$':
			column = 0
			row++
		}
	}
	return Square(bitmap)
}

// Cell reports whether the cell at column x, row y is alive.
// x and y must be in [0, 8); out of range coordinates are the caller's
// problem.
func (s Square) Cell(x, y int) bool {
	return (s>>(x+y*Columns))&1 == 1
}

// Population returns the number of living cells in the square.
func (s Square) Population() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty reports whether no cell in the square is alive.
func (s Square) IsEmpty() bool {
	return s == 0
}

// Step returns the state of the cells one generation into the future.
// A cell is alive in the next generation iff:
//
//  1. it is alive now and exactly 3 of its neighbourhood of 9 are alive, or
//  2. exactly 3 cells of its neighbourhood of 9 are alive.
//
// The border ring lacks the context to know its true neighbour count and is
// forced dead (InteriorMask).
func (s Square) Step() Square {
	sum1, sum2, sum4 := s.neighbours()
	alive3 := uint64(s) & (^sum1 & ^sum2 & sum4)
	total3 := sum1 & sum2 & ^sum4
	return Square(alive3|total3) & InteriorMask
}

// Next returns the state of the cells two generations into the future,
// computed as two applications of Step. All but the central 4x4 is discarded,
// since only those cells are known for sure after losing the border twice.
func (s Square) Next() Square {
	return s.Step().Step() & CenterMask
}

// neighbours computes the neighbourhood count of every cell (the cell itself
// included) as a 3-bit value spread over three bitmaps: bit k of the count of
// the cell at position p is bit p of sum(1<<k). Counts of 8 and 9 overflow to
// 0 and 1; they act identically under the rule.
//
// The row shifts deliberately go unmasked: the wrapped bits only ever corrupt
// the border columns, which Step discards anyway.
func (s Square) neighbours() (sum1, sum2, sum4 uint64) {
	b := uint64(s)
	west := b << 1
	east := b >> 1
	mid1, mid2 := fullAdd(west, b, east)

	up1 := mid1 << Columns
	up2 := mid2 << Columns
	down1 := mid1 >> Columns
	down2 := mid2 >> Columns

	sum1, sum2a := fullAdd(up1, mid1, down1)
	sum2b, sum4a := fullAdd(up2, mid2, down2)
	sum2, sum4b := halfAdd(sum2a, sum2b)
	sum4 = sum4a ^ sum4b
	return sum1, sum2, sum4
}

// String renders the square as 8 rows of '*' (alive) and '.' (dead).
func (s Square) String() string {
	var b strings.Builder
	b.Grow(Rows * (Columns + 1))
	for y := 0; y < Rows; y++ {
		for x := 0; x < Columns; x++ {
			if s.Cell(x, y) {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
