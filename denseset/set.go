package denseset

import "errors"

// Ref is the slot index of a key stored in a Set. Refs are stable for the
// lifetime of the Set (until Clear).
type Ref uint32

// NoRef is the sentinel "no slot" value, returned by Insert when the probe
// bound is exhausted.
const NoRef = ^Ref(0)

// ProbeBound is the maximum number of slots Insert examines before declaring
// the table full. Lookups are not bounded; absence of deletions means an
// empty sentinel already terminates them.
const ProbeBound = 10

const filledBit = 0x80

var ErrZeroCapacity = errors.New("denseset: capacity must be > 0")

// Set is a fixed-capacity open-addressing set that assigns every distinct
// key exactly one stable Ref. See doc.go for layout and caller obligations.
type Set[K comparable] struct {
	hash      func(K) uint64
	keys      []K
	sentinels []uint8
	size      uint32
}

// New constructs a Set with the given fixed capacity and hash function.
func New[K comparable](capacity uint32, hash func(K) uint64) (*Set[K], error) {
	if capacity == 0 {
		return nil, ErrZeroCapacity
	}
	return &Set[K]{
		hash:      hash,
		keys:      make([]K, capacity),
		sentinels: make([]uint8, capacity),
	}, nil
}

// tag reduces a hash to the 7 high bits stored in the sentinel byte.
func tag(hash uint64) uint8 {
	return uint8(hash >> 57)
}

// Insert looks key up by content and returns its Ref. The bool reports
// whether a new slot was colonized: (ref, false) means the key was already
// present, (ref, true) means it was stored now, and (NoRef, false) means no
// free slot was found within ProbeBound — the table is full for this key.
func (s *Set[K]) Insert(key K) (Ref, bool) {
	h := s.hash(key)
	sent := filledBit | tag(h)
	start := uint32(h % uint64(len(s.keys)))

	if ref, ok := s.find(key, sent, start); ok {
		return ref, false
	}

	i := start
	for probed := 0; probed < ProbeBound; probed++ {
		if s.sentinels[i]&filledBit == 0 {
			s.sentinels[i] = sent
			s.keys[i] = key
			s.size++
			return Ref(i), true
		}
		i++
		if i == uint32(len(s.keys)) {
			i = 0
		}
		if i == start {
			break
		}
	}
	return NoRef, false
}

// Find returns the Ref of key if it is present.
func (s *Set[K]) Find(key K) (Ref, bool) {
	h := s.hash(key)
	return s.find(key, filledBit|tag(h), uint32(h%uint64(len(s.keys))))
}

func (s *Set[K]) find(key K, sent uint8, start uint32) (Ref, bool) {
	i := start
	for {
		if s.sentinels[i]&filledBit == 0 {
			return NoRef, false
		}
		if s.sentinels[i] == sent && s.keys[i] == key {
			return Ref(i), true
		}
		i++
		if i == uint32(len(s.keys)) {
			i = 0
		}
		if i == start {
			return NoRef, false
		}
	}
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.Find(key)
	return ok
}

// At returns the key stored at ref. Occupancy is not checked; passing a ref
// that was never returned by Insert is a programming error and yields the
// zero key or a stale one.
func (s *Set[K]) At(ref Ref) K {
	return s.keys[ref]
}

// Clear resets the occupancy of every slot in O(capacity) without
// reallocating storage. Every previously issued Ref is invalidated.
func (s *Set[K]) Clear() {
	clear(s.sentinels)
	s.size = 0
}

// Len returns the number of stored keys.
func (s *Set[K]) Len() uint32 { return s.size }

// Cap returns the fixed capacity.
func (s *Set[K]) Cap() uint32 { return uint32(len(s.keys)) }
