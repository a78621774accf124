package rangeset

import (
	"github.com/henderiw/rangemap/pkg/rangemap"
)

// RangeSet keeps a disjoint, sorted, minimal collection of inclusive
// integer ranges. It is a RangeMap with every entry carrying the same
// placeholder value, so touching ranges always merge.
//
// A RangeSet is not safe for concurrent use.
type RangeSet interface {
	Add(rng rangemap.Range) error
	Delete(rng rangemap.Range) (bool, error)
	Clear()
	Slice(rng rangemap.Range) (RangeSet, error)

	Has(id int64) bool
	HasAll(rng rangemap.Range) (bool, error)
	HasAny(rng rangemap.Range) (bool, error)

	At(i int) (rangemap.Range, bool)
	Get(id int64) (rangemap.Range, bool)
	IndexOf(id int64) int
	Size() int

	Iterate() *Iterator
	Keys() *rangemap.KeyIterator

	GetAll() []rangemap.Range
}

type placeholder = struct{}

func New(initRanges ...rangemap.Range) (RangeSet, error) {
	m, err := rangemap.New[placeholder](
		func(a, b placeholder) bool { return true },
		nil,
	)
	if err != nil {
		return nil, err
	}
	r := &rangeSet{table: m}
	for _, rng := range initRanges {
		if err := r.Add(rng); err != nil {
			return nil, err
		}
	}
	return r, nil
}

type rangeSet struct {
	table rangemap.RangeMap[placeholder]
}

func (r *rangeSet) Add(rng rangemap.Range) error {
	return r.table.Set(rng, placeholder{})
}

func (r *rangeSet) Delete(rng rangemap.Range) (bool, error) {
	return r.table.Delete(rng)
}

func (r *rangeSet) Clear() {
	r.table.Clear()
}

func (r *rangeSet) Slice(rng rangemap.Range) (RangeSet, error) {
	m, err := r.table.Slice(rng)
	if err != nil {
		return nil, err
	}
	return &rangeSet{table: m}, nil
}

func (r *rangeSet) Has(id int64) bool {
	return r.table.Has(id)
}

func (r *rangeSet) HasAll(rng rangemap.Range) (bool, error) {
	return r.table.HasAll(rng)
}

func (r *rangeSet) HasAny(rng rangemap.Range) (bool, error) {
	return r.table.HasAny(rng)
}

func (r *rangeSet) At(i int) (rangemap.Range, bool) {
	e, ok := r.table.At(i)
	if !ok {
		return rangemap.Range{}, false
	}
	return e.Range(), true
}

func (r *rangeSet) Get(id int64) (rangemap.Range, bool) {
	e, ok := r.table.Get(id)
	if !ok {
		return rangemap.Range{}, false
	}
	return e.Range(), true
}

func (r *rangeSet) IndexOf(id int64) int {
	return r.table.IndexOf(id)
}

func (r *rangeSet) Size() int {
	return r.table.Size()
}

func (r *rangeSet) Iterate() *Iterator {
	return &Iterator{iter: r.table.Iterate()}
}

func (r *rangeSet) Keys() *rangemap.KeyIterator {
	return r.table.Keys()
}

func (r *rangeSet) GetAll() []rangemap.Range {
	return r.table.Ranges()
}

// Iterator walks the ranges of a set in ascending order, hiding the
// placeholder values of the backing map.
type Iterator struct {
	iter *rangemap.Iterator[placeholder]
}

func (r *Iterator) Next() bool {
	return r.iter.Next()
}

func (r *Iterator) Range() rangemap.Range {
	return r.iter.Range()
}
