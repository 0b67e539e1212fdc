// Package list provides a generic intrusive doubly linked list,
// the linking primitive underneath the graph and hashtable containers.
//
// What
//
//   - Node[T] is embedded inside the stored object; the object itself is
//     the list entry, so linking never allocates.
//   - O(1) tail append, O(1) insertion before/after a node, and O(1)
//     removal of an arbitrary node given a direct reference to it.
//   - Forward and backward traversal from either end (First/Last,
//     Node.Next/Node.Prev).
//   - O(1) membership test via the node's owning-list pointer.
//   - Bulk splice of an entire list onto another (SpliceAll), used for
//     container teardown and graph merging.
//
// Why
//
//   - A container that holds objects by their embedded nodes can move,
//     reorder, and evict them without bookkeeping maps or per-entry
//     wrapper allocations.
//   - One object may embed several nodes and therefore belong to several
//     independent lists at once — the graph package links every relation
//     into two lists simultaneously this way.
//
// Rules
//
//   - A node belongs to at most one list at a time. Append, InsertAfter
//     and InsertBefore detach the node from its previous list first, so
//     moving an entry between lists is a single call.
//   - Node.Value must be set to the embedding object before the node is
//     linked; the list never touches it.
//   - Not safe for concurrent mutation; callers synchronize externally.
//
// Complexity (n = list length)
//
//   - Append / InsertAfter / InsertBefore / Remove / Contains: O(1)
//   - At(i): O(i); RemoveAll / SpliceAll: O(n)
package list
