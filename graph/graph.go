package graph

// Add appends e to the graph's element sequence. An element already
// belonging to another graph is moved; an element already in this graph
// is moved to the tail. The element's relations are untouched.
// Returns ErrNilElement for a nil element.
// Complexity: O(1)
func (g *Graph[E, R]) Add(e *Element[E, R]) error {
	if e == nil {
		return ErrNilElement
	}
	g.elements.Append(&e.node)

	return nil
}

// Remove takes e out of the graph and destroys every relation incident
// to it, in both directions — a relation cannot outlive either endpoint.
// Neighbors keep their other relations; e itself stays usable and may be
// re-added.
// Returns ErrNilElement for nil, ErrNotInGraph when e is not a member.
// Complexity: O(degree)
func (g *Graph[E, R]) Remove(e *Element[E, R]) error {
	if e == nil {
		return ErrNilElement
	}
	if !g.elements.Contains(&e.node) {
		return ErrNotInGraph
	}
	e.PurgeIncoming()
	e.PurgeOutgoing()
	g.elements.Remove(&e.node)

	return nil
}

// Detach takes e out of the graph's element sequence without touching
// its relations. The caller takes responsibility for the dangling
// relations until e is re-added or they are detached.
// Returns ErrNilElement for nil, ErrNotInGraph when e is not a member.
// Complexity: O(1)
func (g *Graph[E, R]) Detach(e *Element[E, R]) error {
	if e == nil {
		return ErrNilElement
	}
	if !g.elements.Contains(&e.node) {
		return ErrNotInGraph
	}
	g.elements.Remove(&e.node)

	return nil
}

// First returns the first element in insertion order, or nil.
// Complexity: O(1)
func (g *Graph[E, R]) First() *Element[E, R] {
	return elementOf(g.elements.First())
}

// Last returns the last element in insertion order, or nil.
// Complexity: O(1)
func (g *Graph[E, R]) Last() *Element[E, R] {
	return elementOf(g.elements.Last())
}

// Len returns the number of elements in the graph.
// Complexity: O(1)
func (g *Graph[E, R]) Len() int { return g.elements.Len() }

// Empty reports whether the graph holds no elements.
// Complexity: O(1)
func (g *Graph[E, R]) Empty() bool { return g.elements.Empty() }

// Contains reports whether e is a member of g.
// Complexity: O(1)
func (g *Graph[E, R]) Contains(e *Element[E, R]) bool {
	return e != nil && g.elements.Contains(&e.node)
}

// Purge destroys every relation in the graph and detaches every
// element, leaving the graph empty. The elements themselves remain
// usable (isolated) afterwards.
// Complexity: O(V + E)
func (g *Graph[E, R]) Purge() {
	for n := g.elements.First(); n != nil; n = n.Next() {
		n.Value.PurgeIncoming()
		n.Value.PurgeOutgoing()
	}
	g.elements.RemoveAll()
}

// Absorb moves every element of other — with all its relations — onto
// the tail of g's element sequence, preserving insertion order.
// other is empty afterwards.
// Complexity: O(len(other))
func (g *Graph[E, R]) Absorb(other *Graph[E, R]) {
	if other == nil {
		return
	}
	g.elements.SpliceAll(&other.elements)
}
