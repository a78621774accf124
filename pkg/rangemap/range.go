package rangemap

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned when a supplied range is inverted or an
// endpoint cannot be parsed as an integer.
var ErrInvalidRange = errors.New("invalid range")

// Range is the inclusive integer interval [From, To].
type Range struct {
	From int64
	To   int64
}

func NewRange(from, to int64) (Range, error) {
	r := Range{From: from, To: to}
	if !r.IsValid() {
		return Range{}, fmt.Errorf("%w: from %d is bigger then to %d", ErrInvalidRange, from, to)
	}
	return r, nil
}

// MustRange is like NewRange but panics on an invalid range.
func MustRange(from, to int64) Range {
	r, err := NewRange(from, to)
	if err != nil {
		panic(err)
	}
	return r
}

func ParseRange(s string) (Range, error) {
	var r Range
	if s == "" {
		return r, fmt.Errorf("%w: empty range", ErrInvalidRange)
	}
	// skip the first byte so a negative from keeps its sign
	h := strings.IndexByte(s[1:], '-')
	if h == -1 {
		return r, fmt.Errorf("%w: no hyphen in range %q", ErrInvalidRange, s)
	}
	h++
	from, to := s[:h], s[h+1:]
	fromInt, err := strconv.ParseInt(from, 10, 64)
	if err != nil {
		return r, fmt.Errorf("%w: invalid from %q in range %q", ErrInvalidRange, from, s)
	}
	toInt, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return r, fmt.Errorf("%w: invalid to %q in range %q", ErrInvalidRange, to, s)
	}
	return NewRange(fromInt, toInt)
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

func (r Range) IsValid() bool {
	return r.From <= r.To
}

func (r Range) IsZero() bool {
	return r == Range{}
}

// Size returns the number of keys covered by r.
func (r Range) Size() int64 {
	return r.To - r.From + 1
}

func (r Range) Contains(id int64) bool {
	return r.From <= id && id <= r.To
}

func (r Range) Less(other Range) bool {
	if r.From != other.From {
		return r.From < other.From
	}
	return other.To < r.To
}

// Adjacent returns whether r ends immediately before other starts, so
// that their union covers a single gap-free span.
func (r Range) Adjacent(other Range) bool {
	return r.To != math.MaxInt64 && r.To+1 == other.From
}

func (r Range) Overlaps(other Range) bool {
	return r.From <= other.To && other.From <= r.To
}

// EntirelyBefore returns whether r lies entirely before other.
func (r Range) EntirelyBefore(other Range) bool {
	return r.To < other.From
}

// CoveredBy returns whether r is entirely contained within other.
func (r Range) CoveredBy(other Range) bool {
	return other.From <= r.From && r.To <= other.To
}

// InMiddleOf returns whether r is inside other, but not touching the
// edges of other.
func (r Range) InMiddleOf(other Range) bool {
	return other.From < r.From && r.To < other.To
}

// OverlapsStartOf returns whether r entirely overlaps the start of
// other, but not all of other.
func (r Range) OverlapsStartOf(other Range) bool {
	return r.From <= other.From && r.To < other.To
}

// OverlapsEndOf returns whether r entirely overlaps the end of
// other, but not all of other.
func (r Range) OverlapsEndOf(other Range) bool {
	return other.From < r.From && other.To <= r.To
}
