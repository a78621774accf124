package iprange

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strings"

	"github.com/henderiw/rangemap/pkg/rangemap"
	"github.com/henderiw/rangemap/pkg/rangeset"
	"go4.org/netipx"
)

// IPRanges tracks claimed IPv4 address ranges. Ranges are given either
// as "from-to" or as a single address, and touching claims collapse
// into one range.
type IPRanges interface {
	Claim(s string) error
	Release(s string) (bool, error)

	Count() int
	Addrs() int64
	Has(addr string) bool

	GetAll() []netipx.IPRange
}

func New(initRanges ...string) (IPRanges, error) {
	s, err := rangeset.New()
	if err != nil {
		return nil, err
	}
	r := &ipRanges{set: s}
	for _, ipRange := range initRanges {
		if err := r.Claim(ipRange); err != nil {
			return nil, err
		}
	}
	return r, nil
}

type ipRanges struct {
	set rangeset.RangeSet
}

func (r *ipRanges) Claim(s string) error {
	rng, err := parseRange(s)
	if err != nil {
		return err
	}
	return r.set.Add(rng)
}

func (r *ipRanges) Release(s string) (bool, error) {
	rng, err := parseRange(s)
	if err != nil {
		return false, err
	}
	return r.set.Delete(rng)
}

func (r *ipRanges) Count() int {
	return r.set.Size()
}

func (r *ipRanges) Addrs() int64 {
	var count int64
	for _, rng := range r.set.GetAll() {
		count += rng.Size()
	}
	return count
}

func (r *ipRanges) Has(addr string) bool {
	a, err := netip.ParseAddr(addr)
	if err != nil {
		return false
	}
	id, err := fromAddr(a)
	if err != nil {
		return false
	}
	return r.set.Has(id)
}

func (r *ipRanges) GetAll() []netipx.IPRange {
	ranges := []netipx.IPRange{}

	iter := r.set.Iterate()
	for iter.Next() {
		rng := iter.Range()
		ranges = append(ranges, netipx.IPRangeFrom(toAddr(rng.From), toAddr(rng.To)))
	}
	return ranges
}

func parseRange(s string) (rangemap.Range, error) {
	var ipRange netipx.IPRange
	if strings.IndexByte(s, '-') >= 0 {
		var err error
		ipRange, err = netipx.ParseIPRange(s)
		if err != nil {
			return rangemap.Range{}, err
		}
	} else {
		a, err := netip.ParseAddr(s)
		if err != nil {
			return rangemap.Range{}, err
		}
		ipRange = netipx.IPRangeFrom(a, a)
	}
	from, err := fromAddr(ipRange.From())
	if err != nil {
		return rangemap.Range{}, err
	}
	to, err := fromAddr(ipRange.To())
	if err != nil {
		return rangemap.Range{}, err
	}
	return rangemap.NewRange(from, to)
}

// fromAddr maps an IPv4 address on the int64 of its big endian uint32.
func fromAddr(a netip.Addr) (int64, error) {
	a = a.Unmap()
	if !a.Is4() {
		return 0, fmt.Errorf("address %s is not ipv4", a)
	}
	b := a.As4()
	return int64(binary.BigEndian.Uint32(b[:])), nil
}

func toAddr(id int64) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(id))
	return netip.AddrFrom4(b)
}
