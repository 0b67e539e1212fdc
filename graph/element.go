package graph

import "github.com/katalvlaran/lvlink/list"

// FirstOutgoing returns the first relation starting at e, or nil.
// Complexity: O(1)
func (e *Element[E, R]) FirstOutgoing() *Relation[E, R] {
	return relationOf(e.outgoing.First())
}

// LastOutgoing returns the last relation starting at e, or nil.
// Complexity: O(1)
func (e *Element[E, R]) LastOutgoing() *Relation[E, R] {
	return relationOf(e.outgoing.Last())
}

// FirstIncoming returns the first relation finishing at e, or nil.
// Complexity: O(1)
func (e *Element[E, R]) FirstIncoming() *Relation[E, R] {
	return relationOf(e.incoming.First())
}

// LastIncoming returns the last relation finishing at e, or nil.
// Complexity: O(1)
func (e *Element[E, R]) LastIncoming() *Relation[E, R] {
	return relationOf(e.incoming.Last())
}

// OutgoingCount returns the number of relations starting at e.
// Complexity: O(1)
func (e *Element[E, R]) OutgoingCount() int { return e.outgoing.Len() }

// IncomingCount returns the number of relations finishing at e.
// Complexity: O(1)
func (e *Element[E, R]) IncomingCount() int { return e.incoming.Len() }

// OutgoingAt returns the i-th outgoing relation (0-based), or nil when
// i is out of range.
// Complexity: O(i)
func (e *Element[E, R]) OutgoingAt(i int) *Relation[E, R] {
	return relationOf(e.outgoing.At(i))
}

// IncomingAt returns the i-th incoming relation (0-based), or nil when
// i is out of range.
// Complexity: O(i)
func (e *Element[E, R]) IncomingAt(i int) *Relation[E, R] {
	return relationOf(e.incoming.At(i))
}

// Isolated reports whether e has no relations in either direction.
// Complexity: O(1)
func (e *Element[E, R]) Isolated() bool {
	return e.outgoing.Empty() && e.incoming.Empty()
}

// FindOutgoing scans e's outgoing relations head→tail and returns the
// first one finishing at finish, or nil. Use FindNextOutgoing on the
// result to enumerate parallel relations to the same finish.
// Complexity: O(out-degree)
func (e *Element[E, R]) FindOutgoing(finish *Element[E, R]) *Relation[E, R] {
	for n := e.outgoing.First(); n != nil; n = n.Next() {
		if n.Value.finish == finish {
			return n.Value
		}
	}

	return nil
}

// FindIncoming scans e's incoming relations head→tail and returns the
// first one starting at start, or nil.
// Complexity: O(in-degree)
func (e *Element[E, R]) FindIncoming(start *Element[E, R]) *Relation[E, R] {
	for n := e.incoming.First(); n != nil; n = n.Next() {
		if n.Value.start == start {
			return n.Value
		}
	}

	return nil
}

// PurgeOutgoing destroys every relation starting at e. The relations are
// detached from both endpoint lists and become permanently unusable.
// Complexity: O(out-degree)
func (e *Element[E, R]) PurgeOutgoing() {
	for n := e.outgoing.First(); n != nil; n = e.outgoing.First() {
		n.Value.destroy()
	}
}

// PurgeIncoming destroys every relation finishing at e.
// Complexity: O(in-degree)
func (e *Element[E, R]) PurgeIncoming() {
	for n := e.incoming.First(); n != nil; n = e.incoming.First() {
		n.Value.destroy()
	}
}

// NextElement returns the element after e in its graph's insertion
// order, or nil at the end (or when e is not in a graph).
// Complexity: O(1)
func (e *Element[E, R]) NextElement() *Element[E, R] {
	return elementOf(e.node.Next())
}

// PrevElement returns the element before e in its graph's insertion
// order, or nil at the beginning (or when e is not in a graph).
// Complexity: O(1)
func (e *Element[E, R]) PrevElement() *Element[E, R] {
	return elementOf(e.node.Prev())
}

// relationOf unwraps a relation list node, tolerating nil.
func relationOf[E, R any](n *list.Node[*Relation[E, R]]) *Relation[E, R] {
	if n == nil {
		return nil
	}

	return n.Value
}

// elementOf unwraps an element list node, tolerating nil.
func elementOf[E, R any](n *list.Node[*Element[E, R]]) *Element[E, R] {
	if n == nil {
		return nil
	}

	return n.Value
}
