package macrocell

import "github.com/conwaylab/go-hashlife/cells"

// mix64 is the splitmix64 finalizer, used to spread raw words over the full
// hash range before reduction.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// hashCombine folds one value into a running seed, golden-ratio style.
func hashCombine(seed, v uint64) uint64 {
	return seed ^ (mix64(v) + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2))
}

// hashSquare hashes a leaf by its bitmap.
func hashSquare(s cells.Square) uint64 {
	return mix64(uint64(s))
}

// hashNodeRecord hashes a node by its four children and its level, and
// nothing else.
func hashNodeRecord(r nodeRecord) uint64 {
	seed := uint64(42)
	seed = hashCombine(seed, uint64(r.node.NW))
	seed = hashCombine(seed, uint64(r.node.NE))
	seed = hashCombine(seed, uint64(r.node.SW))
	seed = hashCombine(seed, uint64(r.node.SE))
	return hashCombine(seed, uint64(r.level))
}
