// Package list implements the node chain that backs dlist.List.
package list

import "iter"

// Double is a doubly-linked list. It keeps a reference to both ends
// and a count of its nodes so that pushes at either end and length
// queries are constant time.
//
// The zero value is an empty list.
type Double[T any] struct {
	head, tail *DoubleNode[T]
	len        int
}

// DoubleNode is a node of a [Double].
type DoubleNode[T any] struct {
	Val        T
	prev, next *DoubleNode[T]
}

// Next returns the node after n, or nil if n is the tail.
func (n *DoubleNode[T]) Next() *DoubleNode[T] {
	return n.next
}

// Prev returns the node before n, or nil if n is the head.
func (n *DoubleNode[T]) Prev() *DoubleNode[T] {
	return n.prev
}

// Len returns the number of nodes in the list.
func (ls *Double[T]) Len() int {
	return ls.len
}

// Head returns the first node, or nil if the list is empty.
func (ls *Double[T]) Head() *DoubleNode[T] {
	return ls.head
}

// Tail returns the last node, or nil if the list is empty.
func (ls *Double[T]) Tail() *DoubleNode[T] {
	return ls.tail
}

// Node returns the node at index i, walking from whichever end of the
// list is closer. i must be in [0, Len()).
func (ls *Double[T]) Node(i int) *DoubleNode[T] {
	if i < ls.len/2 {
		cur := ls.head
		for range i {
			cur = cur.next
		}
		return cur
	}

	cur := ls.tail
	for range ls.len - 1 - i {
		cur = cur.prev
	}
	return cur
}

// Push adds a new node containing v to the tail of the list.
func (ls *Double[T]) Push(v T) *DoubleNode[T] {
	if ls.tail == nil {
		return ls.first(v)
	}
	return ls.InsertAfter(v, ls.tail)
}

// PushFront adds a new node containing v to the head of the list.
func (ls *Double[T]) PushFront(v T) *DoubleNode[T] {
	if ls.head == nil {
		return ls.first(v)
	}
	return ls.InsertBefore(v, ls.head)
}

func (ls *Double[T]) first(v T) *DoubleNode[T] {
	n := DoubleNode[T]{Val: v}
	ls.head = &n
	ls.tail = &n
	ls.len = 1
	return &n
}

// InsertBefore adds a new node containing v directly in front of at.
// A nil at stands for the position past the tail, so the new node is
// appended.
func (ls *Double[T]) InsertBefore(v T, at *DoubleNode[T]) *DoubleNode[T] {
	if at == nil {
		return ls.Push(v)
	}

	n := DoubleNode[T]{Val: v, prev: at.prev, next: at}
	if at.prev == nil {
		ls.head = &n
	} else {
		at.prev.next = &n
	}
	at.prev = &n
	ls.len++
	return &n
}

// InsertAfter adds a new node containing v directly behind at. A nil
// at stands for the position before the head, so the new node is
// prepended.
func (ls *Double[T]) InsertAfter(v T, at *DoubleNode[T]) *DoubleNode[T] {
	if at == nil {
		return ls.PushFront(v)
	}

	n := DoubleNode[T]{Val: v, prev: at, next: at.next}
	if at.next == nil {
		ls.tail = &n
	} else {
		at.next.prev = &n
	}
	at.next = &n
	ls.len++
	return &n
}

// Remove removes the given node from the list. The node is cleared
// and must not be used afterwards.
func (ls *Double[T]) Remove(n *DoubleNode[T]) {
	ls.unlink(n, n)
	ls.len--
	*n = DoubleNode[T]{}
}

// RemoveRun removes the nodes from first through last, inclusive.
// last must be first or reachable from first by following next links.
// It returns the number of nodes removed.
func (ls *Double[T]) RemoveRun(first, last *DoubleNode[T]) int {
	ls.unlink(first, last)

	var removed int
	for cur := first; ; {
		next := cur.next
		*cur = DoubleNode[T]{}
		removed++
		if cur == last {
			break
		}
		cur = next
	}
	ls.len -= removed
	return removed
}

// unlink detaches the run [first, last] from its neighbours without
// touching the links inside the run.
func (ls *Double[T]) unlink(first, last *DoubleNode[T]) {
	if first.prev == nil {
		ls.head = last.next
	} else {
		first.prev.next = last.next
	}

	if last.next == nil {
		ls.tail = first.prev
	} else {
		last.next.prev = first.prev
	}
}

// Reverse reverses the order of the list in place by swapping the
// links of every node.
func (ls *Double[T]) Reverse() {
	for cur := ls.head; cur != nil; cur = cur.prev {
		cur.prev, cur.next = cur.next, cur.prev
	}
	ls.head, ls.tail = ls.tail, ls.head
}

// Reset removes every node from the list, clearing each one.
func (ls *Double[T]) Reset() {
	for cur := ls.head; cur != nil; {
		next := cur.next
		*cur = DoubleNode[T]{}
		cur = next
	}
	*ls = Double[T]{}
}

// Nodes returns an iterator over the nodes of the list from head to
// tail. It is safe to remove the currently-yielded node from the list
// during iteration.
func (ls *Double[T]) Nodes() iter.Seq[*DoubleNode[T]] {
	return func(yield func(*DoubleNode[T]) bool) {
		cur := ls.head
		for cur != nil {
			next := cur.next
			if !yield(cur) {
				return
			}
			cur = next
		}
	}
}

// Backward is like Nodes but runs from tail to head.
func (ls *Double[T]) Backward() iter.Seq[*DoubleNode[T]] {
	return func(yield func(*DoubleNode[T]) bool) {
		cur := ls.tail
		for cur != nil {
			prev := cur.prev
			if !yield(cur) {
				return
			}
			cur = prev
		}
	}
}
