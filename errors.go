package dlist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by operations given an index
	// outside of the list.
	ErrIndexOutOfRange = errors.New("dlist: index out of range")

	// ErrItemNotFound is returned by operations that look up a value
	// which isn't in the list.
	ErrItemNotFound = errors.New("dlist: item not found")

	// ErrEmpty is returned when removing from an empty list.
	ErrEmpty = errors.New("dlist: empty list")

	// ErrInvalidRange is returned when the bounds of a range are out
	// of order.
	ErrInvalidRange = errors.New("dlist: invalid range")
)

func indexError(i, length int) error {
	return fmt.Errorf("%w: index %v, length %v", ErrIndexOutOfRange, i, length)
}

func notFoundError(item any) error {
	return fmt.Errorf("%w: %v", ErrItemNotFound, item)
}
