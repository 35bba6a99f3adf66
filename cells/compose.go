package cells

// Quadrant masks, named for the quadrant of the *result* they select.
const (
	nwQuad Square = 0x000000000f0f0f0f
	neQuad Square = 0x00000000f0f0f0f0
	swQuad Square = 0x0f0f0f0f00000000
	seQuad Square = 0xf0f0f0f000000000

	westHalf  Square = 0x0f0f0f0f0f0f0f0f
	eastHalf  Square = 0xf0f0f0f0f0f0f0f0
	northHalf Square = 0x00000000ffffffff
	southHalf Square = 0xffffffff00000000
)

// Center returns the central 8x8 of the 16x16 region formed by the four
// quadrant squares: the inner corner quadrant of each input becomes the
// corresponding quadrant of the result.
func Center(nw, ne, sw, se Square) Square {
	return nw>>36&nwQuad | ne>>28&neQuad | sw<<28&swQuad | se<<36&seQuad
}

// Horizontal returns the central 8x8 of the 8x16 region formed by two
// side-by-side squares: the east half of west joined to the west half of
// east.
func Horizontal(west, east Square) Square {
	return west>>4&westHalf | east<<4&eastHalf
}

// Vertical returns the central 8x8 of the 16x8 region formed by two stacked
// squares: the south half of north joined to the north half of south.
func Vertical(north, south Square) Square {
	return north>>32&northHalf | south<<32&southHalf
}

// FromCenters assembles a square from the central 4x4 of each input: the
// center of nw becomes the northwest quadrant of the result, and so on. This
// is how the evolver recombines partially-advanced squares, whose only valid
// region is their center.
func FromCenters(nw, ne, sw, se Square) Square {
	return nw>>18&nwQuad | ne>>14&neQuad | sw<<14&swQuad | se<<18&seQuad
}

// Expand is the inverse of Center: it spreads the four quadrants of s across
// the inner corners of four otherwise-empty squares, so that
// Center(Expand(s)) == s. Used to lift an 8x8 square into the middle of a
// 16x16 region.
func Expand(s Square) (nw, ne, sw, se Square) {
	nw = (s & nwQuad) << 36
	ne = (s & neQuad) << 28
	sw = (s & swQuad) >> 28
	se = (s & seQuad) >> 36
	return nw, ne, sw, se
}
