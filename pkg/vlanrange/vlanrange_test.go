package vlanrange

import (
	"testing"

	"github.com/henderiw/rangemap/pkg/rangemap"
	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
)

func TestClaim(t *testing.T) {
	cases := map[string]struct {
		newSuccessEntries map[rangemap.Range]labels.Set
		newFailedEntries  map[rangemap.Range]labels.Set
		expectedCount     int
	}{

		"Normal": {
			newSuccessEntries: map[rangemap.Range]labels.Set{
				{From: 10, To: 19}:   map[string]string{"type": "data"},
				{From: 100, To: 100}: map[string]string{"type": "voice"},
			},
			newFailedEntries: map[rangemap.Range]labels.Set{
				{From: 4090, To: 4095}: map[string]string{},
				{From: 4000, To: 4096}: map[string]string{},
				{From: 19, To: 10}:     map[string]string{},
			},
			// 3 reserved vlans plus the claims
			expectedCount: 14,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := New()
			assert.NoError(t, err)

			for rng, d := range tc.newSuccessEntries {
				err := r.Claim(rng, d)
				assert.NoError(t, err)

			}
			for rng, d := range tc.newFailedEntries {
				err := r.Claim(rng, d)
				assert.Error(t, err)
			}
			// check table
			for _, id := range reserved {
				if !r.Has(id) {
					t.Errorf("%s expecting reserved entry: %d\n", name, id)
				}
			}
			for rng := range tc.newSuccessEntries {
				if !r.Has(rng.From) || !r.Has(rng.To) {
					t.Errorf("%s expecting success claim entry: %s\n", name, rng)
				}
			}
			if r.Count() != tc.expectedCount {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedCount, r.Count())
			}
		})
	}
}

func TestFindFree(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	// 0 and 1 are reserved
	id, err := r.FindFree()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), id)

	err = r.Claim(rangemap.MustRange(2, 100), map[string]string{"type": "data"})
	assert.NoError(t, err)

	id, err = r.FindFree()
	assert.NoError(t, err)
	assert.Equal(t, int64(101), id)
}

func TestRelease(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	err = r.Claim(rangemap.MustRange(10, 19), map[string]string{"type": "data"})
	assert.NoError(t, err)

	// reserved vlans cannot be released
	err = r.Release(rangemap.MustRange(0, 5))
	assert.Error(t, err)

	err = r.Release(rangemap.MustRange(10, 12))
	assert.NoError(t, err)
	assert.False(t, r.Has(11))
	assert.True(t, r.Has(13))

	assert.False(t, r.IsFree(rangemap.MustRange(13, 19)))
	assert.True(t, r.IsFree(rangemap.MustRange(10, 12)))
}

func TestUpdate(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	err = r.Update(rangemap.MustRange(10, 19), map[string]string{"type": "voice"})
	assert.Error(t, err)

	err = r.Claim(rangemap.MustRange(10, 19), map[string]string{"type": "data"})
	assert.NoError(t, err)

	err = r.Update(rangemap.MustRange(10, 14), map[string]string{"type": "voice"})
	assert.NoError(t, err)

	d, err := r.Get(12)
	assert.NoError(t, err)
	assert.Equal(t, "voice", d["type"])

	d, err = r.Get(17)
	assert.NoError(t, err)
	assert.Equal(t, "data", d["type"])

	_, err = r.Get(20)
	assert.Error(t, err)
}

func TestGetByLabel(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	err = r.Claim(rangemap.MustRange(10, 19), map[string]string{"type": "data"})
	assert.NoError(t, err)
	err = r.Claim(rangemap.MustRange(30, 39), map[string]string{"type": "voice"})
	assert.NoError(t, err)

	selector, err := labels.Parse("type=data")
	assert.NoError(t, err)

	entries := r.GetByLabel(selector)
	assert.Len(t, entries, 1)
	assert.Equal(t, rangemap.MustRange(10, 19), entries[0].Range())
}

func TestReservedMerged(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	// vlan 0 and 1 carry equal labels, so they are stored as one range
	entries := r.GetAll()
	assert.Len(t, entries, 2)
	assert.Equal(t, rangemap.MustRange(0, 1), entries[0].Range())
	assert.Equal(t, rangemap.MustRange(4095, 4095), entries[1].Range())
}
