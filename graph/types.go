// Package graph declares the Element, Relation, and Graph types and the
// sentinel errors shared by all graph operations.
package graph

import (
	"errors"

	"github.com/katalvlaran/lvlink/list"
)

// Sentinel errors for graph operations.
var (
	// ErrNilElement indicates a nil element was passed where an endpoint
	// or member is mandatory.
	ErrNilElement = errors.New("graph: element is nil")

	// ErrNotInGraph indicates the element is not a member of this graph.
	ErrNotInGraph = errors.New("graph: element not in graph")

	// ErrRelationDestroyed indicates an operation on a relation whose
	// endpoints were destroyed; such a relation cannot be reused.
	ErrRelationDestroyed = errors.New("graph: relation destroyed")
)

// Element is a node of a directed multigraph.
//
// E is the user payload carried in Value; R is the payload type of the
// relations connecting elements. An Element is a single allocation: its
// graph-membership node and both relation lists are embedded.
//
// Invariant: every relation in the outgoing list has this element as
// start; every relation in the incoming list has it as finish.
type Element[E, R any] struct {
	node     list.Node[*Element[E, R]]
	outgoing list.List[*Relation[E, R]]
	incoming list.List[*Relation[E, R]]

	// Value is the user payload. The graph never reads or writes it.
	Value E
}

// NewElement returns a standalone element carrying value.
// The element joins a graph via Graph.Add.
// Complexity: O(1)
func NewElement[E, R any](value E) *Element[E, R] {
	e := &Element[E, R]{Value: value}
	e.node.Value = e

	return e
}

// Relation is a directed edge from a start element to a finish element.
//
// At any live instant the relation is a member of exactly one outgoing
// list and exactly one incoming list; both embedded link nodes move
// together through Detach/Attach.
type Relation[E, R any] struct {
	outNode list.Node[*Relation[E, R]]
	inNode  list.Node[*Relation[E, R]]

	start  *Element[E, R]
	finish *Element[E, R]

	// Value is the user payload. The graph never reads or writes it.
	Value R
}

// Graph owns an insertion-ordered sequence of elements, the sole
// determinant of graph membership. Relation ownership is transitive
// through elements; the graph does not track relations separately.
type Graph[E, R any] struct {
	elements list.List[*Element[E, R]]
}

// NewGraph creates an empty directed multigraph.
// Complexity: O(1)
func NewGraph[E, R any]() *Graph[E, R] {
	return &Graph[E, R]{}
}
