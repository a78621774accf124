package vlanrange

import (
	"fmt"

	"github.com/henderiw/rangemap/pkg/rangemap"
	"k8s.io/apimachinery/pkg/labels"
)

const (
	vlanMin int64 = 0
	vlanMax int64 = 4095
)

type VLANRanges interface {
	Claim(rng rangemap.Range, d labels.Set) error
	Release(rng rangemap.Range) error
	Update(rng rangemap.Range, d labels.Set) error

	Count() int
	Has(id int64) bool
	Get(id int64) (labels.Set, error)

	IsFree(rng rangemap.Range) bool
	FindFree() (int64, error)

	GetAll() rangemap.Entries[labels.Set]
	GetByLabel(selector labels.Selector) rangemap.Entries[labels.Set]
}

var reserved = []int64{0, 1, 4095}

var initEntries = rangemap.Entries[labels.Set]{
	rangemap.NewEntry[labels.Set](rangemap.MustRange(0, 0), map[string]string{"type": "untagged", "status": "reserved"}),
	rangemap.NewEntry[labels.Set](rangemap.MustRange(1, 1), map[string]string{"type": "untagged", "status": "reserved"}),
	rangemap.NewEntry[labels.Set](rangemap.MustRange(4095, 4095), map[string]string{"type": "untagged", "status": "reserved"}),
}

func New() (VLANRanges, error) {
	t, err := rangemap.New[labels.Set](labels.Equals, initEntries)
	if err != nil {
		return nil, err
	}
	return &vlanRanges{
		table: t,
	}, nil
}

type vlanRanges struct {
	table rangemap.RangeMap[labels.Set]
}

func (r *vlanRanges) validate(rng rangemap.Range) error {
	if !rng.IsValid() {
		return fmt.Errorf("%w: %s", rangemap.ErrInvalidRange, rng)
	}
	if rng.From < vlanMin || rng.To > vlanMax {
		return fmt.Errorf("vlan range %s is outside of %d-%d", rng, vlanMin, vlanMax)
	}
	return nil
}

func (r *vlanRanges) Claim(rng rangemap.Range, d labels.Set) error {
	if err := r.validate(rng); err != nil {
		return err
	}
	if !r.IsFree(rng) {
		return fmt.Errorf("vlan range %s is already claimed", rng)
	}
	return r.table.Set(rng, d)
}

func (r *vlanRanges) Release(rng rangemap.Range) error {
	if err := r.validate(rng); err != nil {
		return err
	}
	for _, id := range reserved {
		if rng.Contains(id) {
			return fmt.Errorf("vlan %d is reserved, cannot be released", id)
		}
	}
	_, err := r.table.Delete(rng)
	return err
}

func (r *vlanRanges) Update(rng rangemap.Range, d labels.Set) error {
	if err := r.validate(rng); err != nil {
		return err
	}
	ok, err := r.table.HasAll(rng)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("vlan range %s not claimed", rng)
	}
	return r.table.Set(rng, d)
}

func (r *vlanRanges) Count() int {
	var count int64

	iter := r.table.Iterate()
	for iter.Next() {
		count += iter.Range().Size()
	}
	return int(count)
}

func (r *vlanRanges) Has(id int64) bool {
	return r.table.Has(id)
}

func (r *vlanRanges) Get(id int64) (labels.Set, error) {
	e, ok := r.table.Get(id)
	if !ok {
		return nil, fmt.Errorf("no match found for: %v", id)
	}
	return e.Value(), nil
}

func (r *vlanRanges) IsFree(rng rangemap.Range) bool {
	ok, err := r.table.HasAny(rng)
	if err != nil {
		return false
	}
	return !ok
}

func (r *vlanRanges) FindFree() (int64, error) {
	next := vlanMin

	iter := r.table.Iterate()
	for iter.Next() {
		rng := iter.Range()
		if next < rng.From {
			return next, nil
		}
		next = rng.To + 1
	}
	if next <= vlanMax {
		return next, nil
	}
	return 0, fmt.Errorf("no free vlan found")
}

func (r *vlanRanges) GetAll() rangemap.Entries[labels.Set] {
	return r.table.GetAll()
}

func (r *vlanRanges) GetByLabel(selector labels.Selector) rangemap.Entries[labels.Set] {
	entries := rangemap.Entries[labels.Set]{}

	iter := r.table.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Value()) {
			entries = append(entries, iter.Entry())
		}
	}
	return entries
}
