package dlist

import "cmp"

// SortInsertion sorts the list in ascending order using insertion
// sort. It runs in O(n²) time and is stable.
func (l *List[T]) SortInsertion() {
	l.nodes.SortInsertion(cmp.Compare[T])
}

// SortMerge sorts the list in ascending order using a top-down merge
// sort that relinks the nodes rather than moving values. It runs in
// O(n log n) time and is stable.
func (l *List[T]) SortMerge() {
	l.nodes.SortMerge(cmp.Compare[T])
}

// SortSelection sorts the list in ascending order using selection
// sort. It runs in O(n²) time and is not stable.
func (l *List[T]) SortSelection() {
	l.nodes.SortSelection(cmp.Compare[T])
}
