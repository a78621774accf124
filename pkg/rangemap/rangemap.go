package rangemap

import (
	"fmt"
	"reflect"
	"sort"
)

// RangeMap maps disjoint inclusive integer ranges to values of type T1.
// Entries are kept sorted by range start and adjacent entries with equal
// values are merged, so the stored form is always minimal.
//
// A RangeMap is not safe for concurrent use; callers sharing an instance
// across goroutines must serialize access externally.
type RangeMap[T1 any] interface {
	Set(rng Range, val T1) error
	Delete(rng Range) (bool, error)
	Clear()
	Slice(rng Range) (RangeMap[T1], error)

	Has(id int64) bool
	HasAll(rng Range) (bool, error)
	HasAny(rng Range) (bool, error)

	At(i int) (Entry[T1], bool)
	Get(id int64) (Entry[T1], bool)
	IndexOf(id int64) int
	Size() int

	Iterate() *Iterator[T1]
	Keys() *KeyIterator

	GetAll() Entries[T1]
	Ranges() []Range
	Values() []T1
}

// EqualFn reports whether two values are equal for merge purposes.
type EqualFn[T1 any] func(a, b T1) bool

func New[T1 any](equals EqualFn[T1], initEntries Entries[T1]) (RangeMap[T1], error) {
	if equals == nil {
		equals = func(a, b T1) bool { return reflect.DeepEqual(a, b) }
	}
	r := &rangeMap[T1]{
		equals: equals,
	}
	for _, e := range initEntries {
		if err := r.Set(e.Range(), e.Value()); err != nil {
			return nil, err
		}
	}
	return r, nil
}

type rangeMap[T1 any] struct {
	entries []entry[T1]
	equals  EqualFn[T1]
}

func (r *rangeMap[T1]) validate(rng Range) error {
	if !rng.IsValid() {
		return fmt.Errorf("%w: from %d is bigger then to %d", ErrInvalidRange, rng.From, rng.To)
	}
	return nil
}

func (r *rangeMap[T1]) Set(rng Range, val T1) error {
	if err := r.validate(rng); err != nil {
		return err
	}
	r.delete(rng)

	i := r.IndexOf(rng.From)
	// nothing intersects rng after the delete, so i encodes the
	// insertion index
	i = ^i
	r.entries = append(r.entries, entry[T1]{})
	copy(r.entries[i+1:], r.entries[i:])
	r.entries[i] = entry[T1]{rng: rng, val: val}
	r.merge(i)
	return nil
}

// merge collapses the entry at i into its neighbours when they touch
// and carry equal values. The successor goes first: merging into the
// predecessor shifts the index the successor check relies on.
func (r *rangeMap[T1]) merge(i int) {
	if j := i + 1; j < len(r.entries) &&
		r.entries[i].rng.Adjacent(r.entries[j].rng) &&
		r.equals(r.entries[i].val, r.entries[j].val) {
		r.entries[i].rng.To = r.entries[j].rng.To
		r.entries = append(r.entries[:j], r.entries[j+1:]...)
	}
	if j := i - 1; j >= 0 &&
		r.entries[j].rng.Adjacent(r.entries[i].rng) &&
		r.equals(r.entries[j].val, r.entries[i].val) {
		r.entries[j].rng.To = r.entries[i].rng.To
		r.entries = append(r.entries[:i], r.entries[i+1:]...)
	}
}

func (r *rangeMap[T1]) Delete(rng Range) (bool, error) {
	if err := r.validate(rng); err != nil {
		return false, err
	}
	return r.delete(rng), nil
}

func (r *rangeMap[T1]) delete(rng Range) bool {
	i := r.IndexOf(rng.From)
	if i < 0 {
		i = ^i
	}
	if i == len(r.entries) || rng.To < r.entries[i].rng.From {
		return false
	}
	j := r.IndexOf(rng.To)
	if j < 0 {
		// last entry starting at or before rng.To
		j = ^j - 1
	}

	// entries[i..j] intersect rng; keep the trimmed boundary pieces
	// and drop everything in between
	var keep []entry[T1]
	if first := r.entries[i]; first.rng.From < rng.From {
		first.rng.To = rng.From - 1
		keep = append(keep, first)
	}
	if last := r.entries[j]; rng.To < last.rng.To {
		last.rng.From = rng.To + 1
		keep = append(keep, last)
	}
	r.entries = append(r.entries[:i], append(keep, r.entries[j+1:]...)...)
	return true
}

func (r *rangeMap[T1]) Clear() {
	r.entries = nil
}

func (r *rangeMap[T1]) Slice(rng Range) (RangeMap[T1], error) {
	if err := r.validate(rng); err != nil {
		return nil, err
	}
	s := &rangeMap[T1]{equals: r.equals}
	i := r.IndexOf(rng.From)
	if i < 0 {
		i = ^i
	}
	for ; i < len(r.entries) && r.entries[i].rng.From <= rng.To; i++ {
		e := r.entries[i]
		if e.rng.From < rng.From {
			e.rng.From = rng.From
		}
		if rng.To < e.rng.To {
			e.rng.To = rng.To
		}
		s.entries = append(s.entries, e)
	}
	return s, nil
}

func (r *rangeMap[T1]) Has(id int64) bool {
	return r.IndexOf(id) >= 0
}

func (r *rangeMap[T1]) HasAll(rng Range) (bool, error) {
	if err := r.validate(rng); err != nil {
		return false, err
	}
	i := r.IndexOf(rng.From)
	if i < 0 {
		return false, nil
	}
	for r.entries[i].rng.To < rng.To {
		if i+1 == len(r.entries) || !r.entries[i].rng.Adjacent(r.entries[i+1].rng) {
			return false, nil
		}
		i++
	}
	return true, nil
}

func (r *rangeMap[T1]) HasAny(rng Range) (bool, error) {
	if err := r.validate(rng); err != nil {
		return false, err
	}
	i := r.IndexOf(rng.From)
	if i >= 0 {
		return true, nil
	}
	i = ^i
	return i < len(r.entries) && r.entries[i].rng.From <= rng.To, nil
}

func (r *rangeMap[T1]) At(i int) (Entry[T1], bool) {
	if i < 0 {
		i += len(r.entries)
	}
	if i < 0 || i >= len(r.entries) {
		return nil, false
	}
	return r.entries[i], true
}

func (r *rangeMap[T1]) Get(id int64) (Entry[T1], bool) {
	i := r.IndexOf(id)
	if i < 0 {
		return nil, false
	}
	return r.entries[i], true
}

// IndexOf returns the index of the entry covering id. When no entry
// covers id it returns the bitwise complement of the index where an
// entry starting at id would be inserted to keep the order.
func (r *rangeMap[T1]) IndexOf(id int64) int {
	i := sort.Search(len(r.entries), func(i int) bool {
		return id <= r.entries[i].rng.To
	})
	if i < len(r.entries) && r.entries[i].rng.Contains(id) {
		return i
	}
	return ^i
}

func (r *rangeMap[T1]) Size() int {
	return len(r.entries)
}

func (r *rangeMap[T1]) Iterate() *Iterator[T1] {
	entries := make([]entry[T1], len(r.entries))
	copy(entries, r.entries)

	return &Iterator[T1]{current: -1, entries: entries}
}

func (r *rangeMap[T1]) Keys() *KeyIterator {
	return &KeyIterator{current: -1, ranges: r.Ranges()}
}

func (r *rangeMap[T1]) GetAll() Entries[T1] {
	entries := make(Entries[T1], 0, len(r.entries))

	iter := r.Iterate()
	for iter.Next() {
		entries = append(entries, iter.Entry())
	}
	return entries
}

func (r *rangeMap[T1]) Ranges() []Range {
	ranges := make([]Range, 0, len(r.entries))
	for _, e := range r.entries {
		ranges = append(ranges, e.rng)
	}
	return ranges
}

func (r *rangeMap[T1]) Values() []T1 {
	vals := make([]T1, 0, len(r.entries))
	for _, e := range r.entries {
		vals = append(vals, e.val)
	}
	return vals
}
