package graph

// Predecessor reports whether a directed path of relations leads from
// first to second.
//
// The search is breadth-first over outgoing relations with an explicit
// frontier queue and visited set local to the call; the graph's element
// sequence is never disturbed. Each element is enqueued at most once.
// first == second is not automatically true: a path (possibly a cycle
// back to first) must actually exist.
// Complexity: O(V + E) time, O(V) space
func (g *Graph[E, R]) Predecessor(first, second *Element[E, R]) bool {
	if first == nil || second == nil {
		return false
	}

	visited := make(map[*Element[E, R]]struct{}, g.elements.Len())
	queue := make([]*Element[E, R], 0, g.elements.Len())
	visited[first] = struct{}{}
	queue = append(queue, first)

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		for n := e.outgoing.First(); n != nil; n = n.Next() {
			finish := n.Value.finish
			if finish == second {
				return true
			}
			if _, seen := visited[finish]; seen {
				continue
			}
			visited[finish] = struct{}{}
			queue = append(queue, finish)
		}
	}

	return false
}
