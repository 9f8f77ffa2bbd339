package list

import (
	"fmt"

	"cloudeng.io/errors"
)

// Check walks the list in both directions and reports every broken
// structural invariant it finds. It returns nil for a well-formed
// list. Walks are bounded by the cached length so that a cycle can't
// hang it.
func (ls *Double[T]) Check() error {
	var errs errors.M

	if (ls.head == nil) != (ls.tail == nil) {
		errs.Append(fmt.Errorf("head is nil: %v, tail is nil: %v", ls.head == nil, ls.tail == nil))
	}
	if ls.head != nil && ls.head.prev != nil {
		errs.Append(fmt.Errorf("head has a previous node"))
	}
	if ls.tail != nil && ls.tail.next != nil {
		errs.Append(fmt.Errorf("tail has a next node"))
	}
	if ls.len < 0 {
		errs.Append(fmt.Errorf("negative length %v", ls.len))
	}

	var count int
	var last *DoubleNode[T]
	for cur := ls.head; cur != nil && count <= ls.len; cur = cur.next {
		if cur.next != nil && cur.next.prev != cur {
			errs.Append(fmt.Errorf("node %v: next node does not link back", count))
		}
		last = cur
		count++
	}
	if count != ls.len {
		errs.Append(fmt.Errorf("forward walk: counted %v nodes, length is %v", count, ls.len))
	}
	if last != ls.tail {
		errs.Append(fmt.Errorf("forward walk does not end at tail"))
	}

	count, last = 0, nil
	for cur := ls.tail; cur != nil && count <= ls.len; cur = cur.prev {
		if cur.prev != nil && cur.prev.next != cur {
			errs.Append(fmt.Errorf("node %v from tail: previous node does not link forward", count))
		}
		last = cur
		count++
	}
	if count != ls.len {
		errs.Append(fmt.Errorf("backward walk: counted %v nodes, length is %v", count, ls.len))
	}
	if last != ls.head {
		errs.Append(fmt.Errorf("backward walk does not end at head"))
	}

	return errs.Err()
}
