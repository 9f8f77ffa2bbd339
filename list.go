package dlist

import (
	"cmp"

	"deedles.dev/dlist/internal/list"
)

// A List is a doubly linked list of values. Values are compared with
// == by the lookup operations and ordered with < by the sorts. There
// is no way to supply a different comparison.
//
// The zero value is an empty list ready to use. A List must not be
// copied after first use; use Clone to get an independent copy.
type List[T cmp.Ordered] struct {
	_     noCopy
	nodes list.Double[T]
}

// New returns an empty list.
func New[T cmp.Ordered]() *List[T] {
	return new(List[T])
}

// Of returns a list containing vals in order.
func Of[T cmp.Ordered](vals ...T) *List[T] {
	l := New[T]()
	for _, v := range vals {
		l.nodes.Push(v)
	}
	return l
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.nodes.Len()
}

// Index returns the position of the first value equal to item, or -1
// if there is none.
func (l *List[T]) Index(item T) int {
	var i int
	for n := range l.nodes.Nodes() {
		if n.Val == item {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether item is in the list.
func (l *List[T]) Contains(item T) bool {
	return l.find(item) != nil
}

// At returns the value at index i. The list is walked from whichever
// end is closer to i.
func (l *List[T]) At(i int) (v T, err error) {
	if err := l.checkIndex(i); err != nil {
		return v, err
	}
	return l.nodes.Node(i).Val, nil
}

// Front returns the first value in the list. It returns false if the
// list is empty.
func (l *List[T]) Front() (v T, ok bool) {
	head := l.nodes.Head()
	if head == nil {
		return v, false
	}
	return head.Val, true
}

// Back returns the last value in the list. It returns false if the
// list is empty.
func (l *List[T]) Back() (v T, ok bool) {
	tail := l.nodes.Tail()
	if tail == nil {
		return v, false
	}
	return tail.Val, true
}

// Swap exchanges the values at indices i and j. The nodes themselves
// stay where they are.
func (l *List[T]) Swap(i, j int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	if err := l.checkIndex(j); err != nil {
		return err
	}
	if i == j {
		return nil
	}

	a, b := l.nodes.Node(i), l.nodes.Node(j)
	a.Val, b.Val = b.Val, a.Val
	return nil
}

// Invert reverses the order of the list in place.
func (l *List[T]) Invert() {
	l.nodes.Reverse()
}

// Clear removes every value from the list. The list can be used again
// afterwards.
func (l *List[T]) Clear() {
	l.nodes.Reset()
}

// Clone returns a new list holding copies of the values of l.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for n := range l.nodes.Nodes() {
		c.nodes.Push(n.Val)
	}
	return c
}

// Slice returns the values of the list in order.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for n := range l.nodes.Nodes() {
		s = append(s, n.Val)
	}
	return s
}

// Check verifies the structure of the list, returning an error that
// describes every broken link it finds. It is intended for tests and
// debugging.
func (l *List[T]) Check() error {
	return l.nodes.Check()
}

func (l *List[T]) find(item T) *list.DoubleNode[T] {
	for n := range l.nodes.Nodes() {
		if n.Val == item {
			return n
		}
	}
	return nil
}

func (l *List[T]) checkIndex(i int) error {
	if i < 0 || i >= l.nodes.Len() {
		return indexError(i, l.nodes.Len())
	}
	return nil
}
