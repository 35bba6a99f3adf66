package macrocell

// Read-only navigation over stored regions. These never allocate or insert,
// so they cannot fail on a full store; a Null handle reads as all-dead.

// CellAt reports whether the cell at (x, y) of the region behind h is alive.
// level is the level of h; x and y are region-local, in [0, 2^level), with
// (0, 0) the top-left corner.
func (s *Store) CellAt(h Handle, level uint8, x, y uint64) bool {
	for level > LeafLevel {
		if h.IsNull() {
			return false
		}
		half := EdgeLength(level - 1)
		n := s.NodeAt(h)
		switch {
		case x < half && y < half:
			h = n.NW
		case y < half:
			h = n.NE
			x -= half
		case x < half:
			h = n.SW
			y -= half
		default:
			h = n.SE
			x -= half
			y -= half
		}
		level--
	}
	if h.IsNull() {
		return false
	}
	return s.Leaf(h).Cell(int(x), int(y))
}

// Population returns the number of living cells in the region behind h.
func (s *Store) Population(h Handle, level uint8) uint64 {
	if h.IsNull() {
		return 0
	}
	if level <= LeafLevel {
		return uint64(s.Leaf(h).Population())
	}
	n := s.NodeAt(h)
	return s.Population(n.NW, level-1) +
		s.Population(n.NE, level-1) +
		s.Population(n.SW, level-1) +
		s.Population(n.SE, level-1)
}
