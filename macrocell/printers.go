package macrocell

import "strings"

// debug utilities

// Render draws the region behind h as one text row per cell row, '*' for
// alive and '.' for dead. Intended for test failure output and debugging;
// levels above 6 or so produce more wall than insight.
func (s *Store) Render(h Handle, level uint8) string {
	edge := EdgeLength(level)
	var b strings.Builder
	b.Grow(int(edge * (edge + 1)))
	for y := uint64(0); y < edge; y++ {
		for x := uint64(0); x < edge; x++ {
			if s.CellAt(h, level, x, y) {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
