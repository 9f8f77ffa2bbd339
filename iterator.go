package dlist

import (
	"iter"

	"deedles.dev/dlist/internal/list"
)

// An Iterator is a position in a List that moves either forward or
// backward. The zero value is equal to End.
//
// An Iterator refers to a node of the list, so it is invalidated if
// the value it points at is removed.
type Iterator[T any] struct {
	node    *list.DoubleNode[T]
	reverse bool
}

// Begin returns an iterator at the first value of the list moving
// forward. It is equal to End if the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{node: l.nodes.Head()}
}

// End returns the forward iterator positioned past the last value.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// RBegin returns an iterator at the last value of the list moving
// backward. It is equal to REnd if the list is empty.
func (l *List[T]) RBegin() Iterator[T] {
	return Iterator[T]{node: l.nodes.Tail(), reverse: true}
}

// REnd returns the backward iterator positioned before the first
// value.
func (l *List[T]) REnd() Iterator[T] {
	return Iterator[T]{reverse: true}
}

// Valid reports whether the iterator points at a value, meaning that
// it is neither End nor REnd.
func (it Iterator[T]) Valid() bool {
	return it.node != nil
}

// Value returns the value the iterator points at. It panics if the
// iterator is not valid.
func (it Iterator[T]) Value() T {
	return it.node.Val
}

// Next returns an iterator at the following value in the iterator's
// direction. It panics if the iterator is not valid.
func (it Iterator[T]) Next() Iterator[T] {
	if it.reverse {
		return Iterator[T]{node: it.node.Prev(), reverse: true}
	}
	return Iterator[T]{node: it.node.Next()}
}

// Equal reports whether two iterators are at the same node and move in
// the same direction.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node && it.reverse == other.reverse
}

// All returns an iterator over the indices and values of the list from
// front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var i int
		for n := range l.nodes.Nodes() {
			if !yield(i, n.Val) {
				return
			}
			i++
		}
	}
}

// Values returns an iterator over the values of the list from front to
// back. The value being yielded may be removed from the list during
// iteration.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range l.nodes.Nodes() {
			if !yield(n.Val) {
				return
			}
		}
	}
}

// Backward is like Values but runs from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range l.nodes.Backward() {
			if !yield(n.Val) {
				return
			}
		}
	}
}
