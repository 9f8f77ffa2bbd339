package dlist

import "fmt"

// PopFront removes and returns the first value in the list.
func (l *List[T]) PopFront() (v T, err error) {
	head := l.nodes.Head()
	if head == nil {
		return v, ErrEmpty
	}
	v = head.Val
	l.nodes.Remove(head)
	return v, nil
}

// PopBack removes and returns the last value in the list.
func (l *List[T]) PopBack() (v T, err error) {
	tail := l.nodes.Tail()
	if tail == nil {
		return v, ErrEmpty
	}
	v = tail.Val
	l.nodes.Remove(tail)
	return v, nil
}

// Pop removes and returns the value at index.
func (l *List[T]) Pop(index int) (v T, err error) {
	if err := l.checkIndex(index); err != nil {
		return v, err
	}
	n := l.nodes.Node(index)
	v = n.Val
	l.nodes.Remove(n)
	return v, nil
}

// PopItem removes the first value equal to item.
func (l *List[T]) PopItem(item T) error {
	n := l.find(item)
	if n == nil {
		return notFoundError(item)
	}
	l.nodes.Remove(n)
	return nil
}

// PopRangeItem removes the run of values that starts at the first
// value equal to from and ends at the first value equal to until that
// comes after it, both included.
func (l *List[T]) PopRangeItem(from, until T) error {
	first := l.find(from)
	if first == nil {
		return notFoundError(from)
	}

	last := first.Next()
	for last != nil && last.Val != until {
		last = last.Next()
	}
	if last == nil {
		if l.Contains(until) {
			return fmt.Errorf("%w: %v does not occur after %v", ErrInvalidRange, until, from)
		}
		return notFoundError(until)
	}

	l.nodes.RemoveRun(first, last)
	return nil
}

// PopRange removes the values at indices start through end, both
// included.
func (l *List[T]) PopRange(start, end int) error {
	if err := l.checkIndex(start); err != nil {
		return err
	}
	if err := l.checkIndex(end); err != nil {
		return err
	}
	if start > end {
		return fmt.Errorf("%w: start %v is after end %v", ErrInvalidRange, start, end)
	}

	l.nodes.RemoveRun(l.nodes.Node(start), l.nodes.Node(end))
	return nil
}
