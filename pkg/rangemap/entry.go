package rangemap

type Entry[T1 any] interface {
	Range() Range
	Value() T1
}

type entry[T1 any] struct {
	rng Range
	val T1
}

type Entries[T1 any] []Entry[T1]

func (r entry[T1]) Range() Range { return r.rng }
func (r entry[T1]) Value() T1    { return r.val }

func NewEntry[T1 any](rng Range, val T1) Entry[T1] {
	return entry[T1]{
		rng: rng,
		val: val,
	}
}
