package graph

// NewRelation constructs a directed relation from start to finish
// carrying value. Both endpoints are mandatory; the relation is
// immediately appended to start's outgoing list and finish's incoming
// list. Parallel relations between the same ordered pair are permitted.
// Returns ErrNilElement when either endpoint is nil.
// Complexity: O(1)
func NewRelation[E, R any](start, finish *Element[E, R], value R) (*Relation[E, R], error) {
	if start == nil || finish == nil {
		return nil, ErrNilElement
	}
	r := &Relation[E, R]{start: start, finish: finish, Value: value}
	r.outNode.Value = r
	r.inNode.Value = r

	start.outgoing.Append(&r.outNode)
	finish.incoming.Append(&r.inNode)

	return r, nil
}

// Start returns the element at which r starts, or nil once r is destroyed.
// Complexity: O(1)
func (r *Relation[E, R]) Start() *Element[E, R] { return r.start }

// Finish returns the element at which r finishes, or nil once r is destroyed.
// Complexity: O(1)
func (r *Relation[E, R]) Finish() *Element[E, R] { return r.finish }

// Attached reports whether r is currently linked into its endpoints'
// relation lists.
// Complexity: O(1)
func (r *Relation[E, R]) Attached() bool { return r.outNode.Attached() }

// SetStart re-points the start endpoint. The relation is removed from
// the old start's outgoing list and appended to the tail of the new
// one's, so relative order among siblings changes.
// Returns ErrNilElement for a nil start, ErrRelationDestroyed once the
// relation has been destroyed.
// Complexity: O(1)
func (r *Relation[E, R]) SetStart(start *Element[E, R]) error {
	if start == nil {
		return ErrNilElement
	}
	if r.destroyed() {
		return ErrRelationDestroyed
	}
	r.start = start
	start.outgoing.Append(&r.outNode)

	return nil
}

// SetFinish re-points the finish endpoint. The relation is removed from
// the old finish's incoming list and appended to the tail of the new
// one's.
// Returns ErrNilElement for a nil finish, ErrRelationDestroyed once the
// relation has been destroyed.
// Complexity: O(1)
func (r *Relation[E, R]) SetFinish(finish *Element[E, R]) error {
	if finish == nil {
		return ErrNilElement
	}
	if r.destroyed() {
		return ErrRelationDestroyed
	}
	r.finish = finish
	finish.incoming.Append(&r.inNode)

	return nil
}

// Detach unlinks r from both endpoint lists without destroying it;
// the relation keeps its endpoints and may be re-attached later.
// Complexity: O(1)
func (r *Relation[E, R]) Detach() {
	r.outNode.Detach()
	r.inNode.Detach()
}

// Attach re-appends a detached relation to its current endpoints'
// lists. Attaching an already attached relation moves it to the tails.
// Returns ErrRelationDestroyed once the relation has been destroyed.
// Complexity: O(1)
func (r *Relation[E, R]) Attach() error {
	if r.destroyed() {
		return ErrRelationDestroyed
	}
	r.start.outgoing.Append(&r.outNode)
	r.finish.incoming.Append(&r.inNode)

	return nil
}

// NextOutgoing returns the next relation sharing r's start element, or nil.
// Complexity: O(1)
func (r *Relation[E, R]) NextOutgoing() *Relation[E, R] {
	return relationOf(r.outNode.Next())
}

// PrevOutgoing returns the previous relation sharing r's start element, or nil.
// Complexity: O(1)
func (r *Relation[E, R]) PrevOutgoing() *Relation[E, R] {
	return relationOf(r.outNode.Prev())
}

// NextIncoming returns the next relation sharing r's finish element, or nil.
// Complexity: O(1)
func (r *Relation[E, R]) NextIncoming() *Relation[E, R] {
	return relationOf(r.inNode.Next())
}

// PrevIncoming returns the previous relation sharing r's finish element, or nil.
// Complexity: O(1)
func (r *Relation[E, R]) PrevIncoming() *Relation[E, R] {
	return relationOf(r.inNode.Prev())
}

// FindNextOutgoing continues a FindOutgoing scan past r, returning the
// next sibling relation finishing at finish, or nil. Together with
// Element.FindOutgoing this enumerates parallel relations between the
// same ordered pair.
// Complexity: O(out-degree)
func (r *Relation[E, R]) FindNextOutgoing(finish *Element[E, R]) *Relation[E, R] {
	for n := r.outNode.Next(); n != nil; n = n.Next() {
		if n.Value.finish == finish {
			return n.Value
		}
	}

	return nil
}

// FindNextIncoming continues a FindIncoming scan past r, returning the
// next sibling relation starting at start, or nil.
// Complexity: O(in-degree)
func (r *Relation[E, R]) FindNextIncoming(start *Element[E, R]) *Relation[E, R] {
	for n := r.inNode.Next(); n != nil; n = n.Next() {
		if n.Value.start == start {
			return n.Value
		}
	}

	return nil
}

// destroyed reports whether r has been destroyed (endpoints cleared).
func (r *Relation[E, R]) destroyed() bool { return r.start == nil }

// destroy detaches r from both lists and clears its endpoints and
// payload. A destroyed relation cannot be re-attached; this is the
// removal path used when an endpoint element leaves its graph.
func (r *Relation[E, R]) destroy() {
	r.Detach()
	r.start = nil
	r.finish = nil
	var zero R
	r.Value = zero
}
