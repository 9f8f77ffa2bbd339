package dlist

import (
	"fmt"

	"deedles.dev/dlist/internal/list"
)

// Position says on which side of an existing value an insertion
// happens.
type Position int

const (
	Before Position = iota
	After
)

func (p Position) String() string {
	switch p {
	case Before:
		return "Before"
	case After:
		return "After"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

func (p Position) valid() error {
	if p != Before && p != After {
		return fmt.Errorf("dlist: invalid position %v", p)
	}
	return nil
}

// PushFront adds item to the front of the list.
func (l *List[T]) PushFront(item T) {
	l.nodes.PushFront(item)
}

// PushBack adds item to the end of the list.
func (l *List[T]) PushBack(item T) {
	l.nodes.Push(item)
}

// Insert adds item in front of the value currently at index. An index
// equal to Len appends item.
func (l *List[T]) Insert(index int, item T) error {
	if err := l.checkInsertIndex(index); err != nil {
		return err
	}
	l.insertAt(index, item)
	return nil
}

// InsertBeside adds item directly before or after the first value
// equal to which.
func (l *List[T]) InsertBeside(which T, pos Position, item T) error {
	if err := pos.valid(); err != nil {
		return err
	}
	n := l.find(which)
	if n == nil {
		return notFoundError(which)
	}
	l.insertBeside(n, pos, item)
	return nil
}

// InsertList adds copies of the values of other, in order, in front
// of the value currently at index. other is not modified and may be l
// itself.
func (l *List[T]) InsertList(index int, other *List[T]) error {
	if err := l.checkInsertIndex(index); err != nil {
		return err
	}
	l.insertAt(index, other.values()...)
	return nil
}

// InsertListBeside adds copies of the values of other, in order,
// directly before or after the first value equal to which.
func (l *List[T]) InsertListBeside(which T, pos Position, other *List[T]) error {
	if err := pos.valid(); err != nil {
		return err
	}
	n := l.find(which)
	if n == nil {
		return notFoundError(which)
	}
	l.insertBeside(n, pos, other.values()...)
	return nil
}

// PushListFront adds copies of the values of other to the front of
// the list.
func (l *List[T]) PushListFront(other *List[T]) {
	l.insertAt(0, other.values()...)
}

// PushListBack adds copies of the values of other to the end of the
// list.
func (l *List[T]) PushListBack(other *List[T]) {
	l.insertAt(l.Len(), other.values()...)
}

// values snapshots the list so that it can be spliced into itself. A
// nil list has no values.
func (l *List[T]) values() []T {
	if l == nil {
		return nil
	}
	return l.Slice()
}

func (l *List[T]) insertAt(index int, vals ...T) {
	var at *list.DoubleNode[T]
	if index < l.nodes.Len() {
		at = l.nodes.Node(index)
	}
	for _, v := range vals {
		l.nodes.InsertBefore(v, at)
	}
}

func (l *List[T]) insertBeside(n *list.DoubleNode[T], pos Position, vals ...T) {
	if pos == Before {
		for _, v := range vals {
			l.nodes.InsertBefore(v, n)
		}
		return
	}

	for _, v := range vals {
		n = l.nodes.InsertAfter(v, n)
	}
}

func (l *List[T]) checkInsertIndex(index int) error {
	if index < 0 || index > l.nodes.Len() {
		return indexError(index, l.nodes.Len())
	}
	return nil
}
