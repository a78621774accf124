package rangemap

// Iterator walks the entries of a map in ascending range order. It
// operates on a snapshot, so mutating the map while iterating is safe
// but not reflected.
type Iterator[T1 any] struct {
	current int
	entries []entry[T1]
}

func (r *Iterator[T1]) Next() bool {
	r.current++
	return r.current < len(r.entries)
}

func (r *Iterator[T1]) Entry() Entry[T1] {
	return r.entries[r.current]
}

func (r *Iterator[T1]) Range() Range {
	return r.entries[r.current].rng
}

func (r *Iterator[T1]) Value() T1 {
	return r.entries[r.current].val
}

// IsConsecutive returns whether the current range starts immediately
// after the previous one ends.
func (r *Iterator[T1]) IsConsecutive() bool {
	if r.current < 1 {
		return false
	}
	return r.entries[r.current-1].rng.Adjacent(r.entries[r.current].rng)
}

// KeyIterator expands ranges into their individual keys one at a time,
// in ascending order. Nothing is materialized, so iterating a wide
// range costs the caller only the keys actually pulled.
type KeyIterator struct {
	current int
	id      int64
	ranges  []Range
}

func (r *KeyIterator) Next() bool {
	if r.current < 0 {
		r.current = 0
		if len(r.ranges) == 0 {
			return false
		}
		r.id = r.ranges[0].From
		return true
	}
	if r.current >= len(r.ranges) {
		return false
	}
	if r.id < r.ranges[r.current].To {
		r.id++
		return true
	}
	r.current++
	if r.current >= len(r.ranges) {
		return false
	}
	r.id = r.ranges[r.current].From
	return true
}

func (r *KeyIterator) ID() int64 {
	return r.id
}
