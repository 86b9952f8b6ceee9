// Package linked_list implements a singly-linked list with head insertion,
// head removal and indexed insertion.
//
// The list stores only a pointer to its first node. Every node is reachable
// from exactly one slot (the list's head or its predecessor's next), and the
// length is never cached: Len walks the chain.
package linked_list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/goose-lang/std"
)

type node[T any] struct {
	elem T
	next *node[T]
}

// List is a singly-linked list. The zero value is an empty list.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	head *node[T]
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// From builds a list whose order matches xs.
func From[T any](xs []T) *List[T] {
	l := New[T]()
	slot := &l.head
	for _, x := range xs {
		*slot = &node[T]{elem: x}
		slot = &(*slot).next
	}
	return l
}

// FromSeq is like From, but reads elements from an iterator.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	slot := &l.head
	for x := range seq {
		*slot = &node[T]{elem: x}
		slot = &(*slot).next
	}
	return l
}

// Push inserts elem at the head of the list.
func (l *List[T]) Push(elem T) {
	l.head = &node[T]{elem: elem, next: l.head}
}

// Pop removes the head of the list and returns its element. It returns false
// if the list is empty.
func (l *List[T]) Pop() (T, bool) {
	n := l.head
	if n == nil {
		var zero T
		return zero, false
	}
	l.head = n.next
	n.next = nil
	return n.elem, true
}

// Peek returns the head element without removing it.
func (l *List[T]) Peek() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.elem, true
}

// Insert places elem so that exactly index elements precede it. Inserting at
// index Len() appends. If the list has fewer than index elements, Insert
// returns an error matching ErrOutOfBounds and the list is unchanged.
func (l *List[T]) Insert(index uint64, elem T) error {
	if index == 0 {
		l.Push(elem)
		return nil
	}
	// count is the number of nodes up to and including n
	var count uint64 = 1
	for n := l.head; n != nil; n = n.next {
		if count == index {
			n.next = &node[T]{elem: elem, next: n.next}
			return nil
		}
		count = std.SumAssumeNoOverflow(count, 1)
	}
	return &OutOfBoundsError{Index: index, Len: count - 1}
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len counts the elements by walking the list.
func (l *List[T]) Len() uint64 {
	var count uint64
	for n := l.head; n != nil; n = n.next {
		count = std.SumAssumeNoOverflow(count, 1)
	}
	return count
}

// Iterator is a forward cursor over a List. It never modifies the list.
// The list must not be mutated while the cursor is in use.
type Iterator[T any] struct {
	cur *node[T]
}

// Iter returns a new cursor positioned at the head.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{cur: l.head}
}

// Next returns the element under the cursor and advances it. It returns false
// once every element has been visited.
func (it *Iterator[T]) Next() (T, bool) {
	if it.cur == nil {
		var zero T
		return zero, false
	}
	elem := it.cur.elem
	it.cur = it.cur.next
	return elem, true
}

// All returns an iterator over the elements from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for {
			elem, ok := it.Next()
			if !ok || !yield(elem) {
				return
			}
		}
	}
}

// String renders the list as "1 -> 2 -> None".
func (l *List[T]) String() string {
	var b strings.Builder
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&b, "%v -> ", n.elem)
	}
	b.WriteString("None")
	return b.String()
}
