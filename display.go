package dlist

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Display writes the values of the list to w from front to back,
// separated by spaces and followed by a newline.
func (l *List[T]) Display(w io.Writer) error {
	return display(w, l.Values())
}

// DisplayBackwards is like Display but writes the values from back to
// front.
func (l *List[T]) DisplayBackwards(w io.Writer) error {
	return display(w, l.Backward())
}

func display[T any](w io.Writer, seq iter.Seq[T]) error {
	bw := bufio.NewWriter(w)
	sep := ""
	for v := range seq {
		fmt.Fprintf(bw, "%s%v", sep, v)
		sep = " "
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// String formats the list like a slice, for example "[1 2 3]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
