package dlist

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Fill appends the integers from through to, inclusive, in ascending
// order.
func Fill[T constraints.Integer](l *List[T], from, to int) error {
	if err := checkBounds[T](from, to); err != nil {
		return err
	}
	for i := from; ; i++ {
		l.PushBack(T(i))
		if i == to {
			return nil
		}
	}
}

// FillReverse appends the integers from through to, inclusive, in
// descending order, starting with to.
func FillReverse[T constraints.Integer](l *List[T], from, to int) error {
	if err := checkBounds[T](from, to); err != nil {
		return err
	}
	for i := to; ; i-- {
		l.PushBack(T(i))
		if i == from {
			return nil
		}
	}
}

// FillRandom appends size integers drawn independently and uniformly
// from [from, to]. Values are drawn from r, or from the shared source
// of math/rand/v2 if r is nil. Passing a seeded r makes the result
// reproducible.
func FillRandom[T constraints.Integer](l *List[T], from, to, size int, r *rand.Rand) error {
	if err := checkBounds[T](from, to); err != nil {
		return err
	}
	if size < 0 {
		return fmt.Errorf("%w: negative size %v", ErrInvalidRange, size)
	}

	span := uint64(to) - uint64(from) + 1
	for range size {
		l.PushBack(T(from + int(draw(r, span))))
	}
	return nil
}

// checkBounds reports whether [from, to] is ordered and every value in
// it can be stored in a T without wrapping. Checking the endpoints is
// enough because the range is contiguous.
func checkBounds[T constraints.Integer](from, to int) error {
	if from > to {
		return fmt.Errorf("%w: fill from %v to %v", ErrInvalidRange, from, to)
	}
	for _, v := range []int{from, to} {
		t := T(v)
		if int(t) != v || (t < 0) != (v < 0) {
			return fmt.Errorf("%w: %v does not fit in %T", ErrInvalidRange, v, t)
		}
	}
	return nil
}

// draw returns a value in [0, span). A span of zero means that the
// whole range of uint64 was requested.
func draw(r *rand.Rand, span uint64) uint64 {
	switch {
	case r == nil && span == 0:
		return rand.Uint64()
	case r == nil:
		return rand.Uint64N(span)
	case span == 0:
		return r.Uint64()
	default:
		return r.Uint64N(span)
	}
}
