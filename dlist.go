// Package dlist provides a generic doubly linked list with indexed
// access, insertion and removal at arbitrary positions, copy-splicing
// of whole lists, several sorting algorithms, in-place inversion and
// bidirectional iteration.
//
// A List is meant to be used by one goroutine at a time. Callers that
// share a List between goroutines must serialize access themselves.
package dlist

// noCopy makes go vet's copylocks check report a List that is copied
// by value, since a copy would share nodes with the original.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
