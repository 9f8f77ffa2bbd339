package list

// SortInsertion sorts the list using insertion sort. Values are shifted
// between nodes rather than relinking them. The sort is stable.
func (ls *Double[T]) SortInsertion(cmp func(a, b T) int) {
	if ls.head == nil {
		return
	}

	for cur := ls.head.next; cur != nil; cur = cur.next {
		v := cur.Val
		hole := cur
		for hole.prev != nil && cmp(hole.prev.Val, v) > 0 {
			hole.Val = hole.prev.Val
			hole = hole.prev
		}
		hole.Val = v
	}
}

// SortSelection sorts the list using selection sort, swapping the
// minimum of the unsorted suffix into place on each pass. The sort is
// not stable.
func (ls *Double[T]) SortSelection(cmp func(a, b T) int) {
	for cur := ls.head; cur != nil; cur = cur.next {
		low := cur
		for n := cur.next; n != nil; n = n.next {
			if cmp(n.Val, low.Val) < 0 {
				low = n
			}
		}
		if low != cur {
			cur.Val, low.Val = low.Val, cur.Val
		}
	}
}

// SortMerge sorts the list using a top-down merge sort that relinks
// the nodes. The sort is stable.
func (ls *Double[T]) SortMerge(cmp func(a, b T) int) {
	if ls.len < 2 {
		return
	}

	ls.head = mergeSort(ls.head, cmp)
	ls.head.prev = nil

	tail := ls.head
	for tail.next != nil {
		tail = tail.next
	}
	ls.tail = tail
}

func mergeSort[T any](head *DoubleNode[T], cmp func(a, b T) int) *DoubleNode[T] {
	if head == nil || head.next == nil {
		return head
	}

	front, back := frontBackSplit(head)
	return sortedMerge(mergeSort(front, cmp), mergeSort(back, cmp), cmp)
}

// frontBackSplit cuts the chain starting at source in half using a
// slow and a fast cursor. If the chain has an odd number of nodes, the
// extra one stays in the front half. source must have at least two
// nodes.
func frontBackSplit[T any](source *DoubleNode[T]) (front, back *DoubleNode[T]) {
	slow, fast := source, source.next
	for fast != nil {
		fast = fast.next
		if fast != nil {
			slow = slow.next
			fast = fast.next
		}
	}

	back = slow.next
	slow.next = nil
	back.prev = nil
	return source, back
}

// sortedMerge merges two sorted chains into one, taking from front on
// ties. Once either chain runs out the rest of the other is attached
// as is.
func sortedMerge[T any](front, back *DoubleNode[T], cmp func(a, b T) int) *DoubleNode[T] {
	var head, tail *DoubleNode[T]
	attach := func(n *DoubleNode[T]) {
		n.prev = tail
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}

	for front != nil && back != nil {
		if cmp(back.Val, front.Val) < 0 {
			n := back
			back = back.next
			attach(n)
			continue
		}

		n := front
		front = front.next
		attach(n)
	}

	rest := front
	if rest == nil {
		rest = back
	}
	if rest != nil {
		attach(rest)
	}

	return head
}
