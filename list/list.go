// Package list implements the intrusive doubly linked list primitive.
//
// This file declares Node, List, and all linking operations.
package list

// Node is the link record embedded inside a stored object.
//
// Value carries the embedding object itself and must be assigned before
// the node is linked into any list. The zero Node is ready to use and
// counts as detached.
type Node[T any] struct {
	prev, next *Node[T]
	list       *List[T]

	// Value is the object this node links. Set once, at construction of
	// the embedding object; the list never reads or writes it.
	Value T
}

// Next returns the following node in the owning list, or nil at the tail.
// Complexity: O(1)
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node in the owning list, or nil at the head.
// Complexity: O(1)
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Attached reports whether the node currently belongs to a list.
// Complexity: O(1)
func (n *Node[T]) Attached() bool { return n.list != nil }

// Detach removes the node from its owning list, if any.
// A detached node may be appended to any list afterwards.
// Complexity: O(1)
func (n *Node[T]) Detach() {
	if n.list != nil {
		n.list.Remove(n)
	}
}

// List is an ordered doubly linked chain of embedded nodes.
// The zero List is empty and ready to use.
type List[T any] struct {
	first, last *Node[T]
	count       int
}

// First returns the head node, or nil when the list is empty.
// Complexity: O(1)
func (l *List[T]) First() *Node[T] { return l.first }

// Last returns the tail node, or nil when the list is empty.
// Complexity: O(1)
func (l *List[T]) Last() *Node[T] { return l.last }

// Len returns the number of nodes in the list.
// Complexity: O(1)
func (l *List[T]) Len() int { return l.count }

// Empty reports whether the list holds no nodes.
// Complexity: O(1)
func (l *List[T]) Empty() bool { return l.first == nil }

// Contains reports whether n is currently a member of l.
// Complexity: O(1)
func (l *List[T]) Contains(n *Node[T]) bool {
	return n != nil && n.list == l
}

// At returns the node at position i (0-based), or nil when i is out of
// range.
// Complexity: O(i)
func (l *List[T]) At(i int) *Node[T] {
	if i < 0 || i >= l.count {
		return nil
	}
	n := l.first
	for ; i > 0; i-- {
		n = n.next
	}

	return n
}

// Append links n at the tail of l. If n already belongs to a list
// (including l itself), it is detached first, so Append doubles as
// move-to-tail.
// Complexity: O(1)
func (l *List[T]) Append(n *Node[T]) {
	n.Detach()

	n.prev = l.last
	if l.last != nil {
		l.last.next = n
	} else {
		l.first = n
	}
	l.last = n

	n.list = l
	l.count++
}

// InsertAfter links n immediately after node `after`, which must be a
// member of l. If n already belongs to a list, it is detached first.
// Complexity: O(1)
func (l *List[T]) InsertAfter(n, after *Node[T]) {
	if after == l.last {
		l.Append(n)
		return
	}
	n.Detach()

	next := after.next
	n.prev = after
	n.next = next
	after.next = n
	next.prev = n

	n.list = l
	l.count++
}

// InsertBefore links n immediately before node `before`, which must be a
// member of l. If n already belongs to a list, it is detached first.
// Complexity: O(1)
func (l *List[T]) InsertBefore(n, before *Node[T]) {
	n.Detach()

	prev := before.prev
	n.next = before
	n.prev = prev
	before.prev = n
	if prev != nil {
		prev.next = n
	} else {
		l.first = n
	}

	n.list = l
	l.count++
}

// Remove unlinks n from l. n must be a member of l.
// The node is left fully detached and reusable.
// Complexity: O(1)
func (l *List[T]) Remove(n *Node[T]) {
	prev, next := n.prev, n.next
	if prev != nil {
		prev.next = next
	} else {
		l.first = next
	}
	if next != nil {
		next.prev = prev
	} else {
		l.last = prev
	}

	n.prev = nil
	n.next = nil
	n.list = nil
	l.count--
}

// RemoveAll detaches every node, leaving the list empty.
// The nodes themselves are untouched apart from their link state.
// Complexity: O(n)
func (l *List[T]) RemoveAll() {
	for n := l.first; n != nil; {
		next := n.next
		n.prev = nil
		n.next = nil
		n.list = nil
		n = next
	}
	l.first = nil
	l.last = nil
	l.count = 0
}

// SpliceAll moves every node of `from` onto the tail of l, preserving
// their relative order. `from` is empty afterwards. Splicing a list onto
// itself is a no-op.
// Complexity: O(len(from)) — each moved node's owner pointer is rewritten.
func (l *List[T]) SpliceAll(from *List[T]) {
	if from == l || from.first == nil {
		return
	}
	for n := from.first; n != nil; n = n.next {
		n.list = l
	}

	from.first.prev = l.last
	if l.last != nil {
		l.last.next = from.first
	} else {
		l.first = from.first
	}
	l.last = from.last
	l.count += from.count

	from.first = nil
	from.last = nil
	from.count = 0
}
