// Package graph provides an intrusive directed multigraph: elements and
// relations carry their own link state, so building and mutating the
// graph never allocates wrapper nodes.
//
// What
//
//   - Element[E, R] is a graph node. It owns two insertion-ordered lists:
//     outgoing relations (where it is the start) and incoming relations
//     (where it is the finish).
//   - Relation[E, R] is a directed edge. A single relation object is
//     simultaneously a member of its start element's outgoing list and
//     its finish element's incoming list — one object, two independent
//     link positions, one per role.
//   - Graph[E, R] owns the insertion-ordered element list, which is the
//     sole record of graph membership, and answers the reachability
//     query Predecessor(first, second).
//   - Parallel relations between the same ordered pair are permitted;
//     FindNextOutgoing/FindNextIncoming enumerate them.
//
// Lifecycle rules
//
//   - A relation requires both endpoints at construction and can never
//     outlive either of them: removing an element from its graph
//     destroys every incident relation, in both directions.
//   - Re-pointing an endpoint (SetStart/SetFinish) detaches the relation
//     from the old owner's list and appends it to the new owner's tail;
//     relative order is not preserved across the move.
//   - Detach leaves a relation free-standing and re-attachable; a
//     destroyed relation (endpoint removed, or graph purged) is
//     permanently unusable and its operations report
//     ErrRelationDestroyed.
//
// Why
//
//   - Organize arbitrary domain objects into dependency structures with
//     O(1) edge attach/detach and O(degree) local queries.
//   - Predecessor gives a single reachability predicate (breadth-first,
//     each element visited at most once) without materializing paths.
//
// Not goals: shortest paths, topological sort, cycle detection beyond
// the reachability predicate, and thread safety — callers synchronize
// externally.
//
// Complexity (V = elements, E = relations, d = degree)
//
//   - Attach / detach / re-point: O(1)
//   - FindOutgoing / FindIncoming: O(d)
//   - Predecessor: O(V + E) time, O(V) scratch space
package graph
