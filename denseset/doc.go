package denseset

/*

# Fixed-capacity canonicalizing set

Hashlife needs a rather specialized hash table: open addressing, stability of
reference (a stored key never moves, so its slot index is a durable identity),
and no deletions. Entries accumulate until the caller resets the whole table
at once. Those constraints buy a lot of simplicity: no tombstones, no
robin-hood reordering, and the first empty slot met while probing proves
absence.

## Layout

Two parallel fixed-size arrays, allocated once at construction and never
resized:

	+--------------------------+  capacity * sizeof(K)
	| keys                     |  full key payloads
	+--------------------------+  capacity bytes
	| sentinels                |  occupancy bit | 7-bit reduced hash tag
	+--------------------------+

The sentinel byte stores whether a slot is occupied and, if so, the top 7
bits of the key's hash. Most negative probes are resolved by comparing that
one byte, without ever touching the key array.

## Probing

The probe sequence is linear (slot+1, wrapping) from hash mod capacity.
Lookup probes until it finds the key, an empty sentinel, or has wrapped the
whole table. Insertion gives up after ProbeBound slots: a full result is an
ordinary value (NoRef, false), not an error, and the caller decides whether
to migrate to a larger set, Clear, or abort. The bound trades a controlled
false-"full" rate for a worst-case latency bound.

## Caller obligations

- Ref values are meaningful only for the Set that issued them.
- Clear invalidates every previously issued Ref; holding one across Clear
  and passing it to At yields whatever stale key occupies that slot.
- At does not check occupancy. As elsewhere in this module, the hot path
  places a burden of knowledge on the caller.
- Single writer. Concurrent readers during Insert or Clear are not supported.

*/
