package graph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlink/graph"
)

type node = graph.Element[string, string]

// el builds a standalone element with a name payload.
func el(name string) *node {
	return graph.NewElement[string, string](name)
}

// elems walks g in insertion order and collects payloads.
func elems(g *graph.Graph[string, string]) []string {
	var out []string
	for e := g.First(); e != nil; e = e.NextElement() {
		out = append(out, e.Value)
	}

	return out
}

// relate links start→finish or fails the test.
func relate(t *testing.T, start, finish *node) *graph.Relation[string, string] {
	t.Helper()
	r, err := graph.NewRelation(start, finish, start.Value+"->"+finish.Value)
	if err != nil {
		t.Fatalf("NewRelation(%s,%s): %v", start.Value, finish.Value, err)
	}

	return r
}

func TestNewRelation_RequiresBothEndpoints(t *testing.T) {
	a := el("A")
	if _, err := graph.NewRelation[string, string](nil, a, ""); !errors.Is(err, graph.ErrNilElement) {
		t.Errorf("nil start: want ErrNilElement, got %v", err)
	}
	if _, err := graph.NewRelation[string, string](a, nil, ""); !errors.Is(err, graph.ErrNilElement) {
		t.Errorf("nil finish: want ErrNilElement, got %v", err)
	}
}

func TestRelation_SplicesIntoBothListsAtOnce(t *testing.T) {
	a, b := el("A"), el("B")
	r := relate(t, a, b)

	if a.FirstOutgoing() != r || a.OutgoingCount() != 1 {
		t.Errorf("relation missing from A's outgoing list")
	}
	if b.FirstIncoming() != r || b.IncomingCount() != 1 {
		t.Errorf("relation missing from B's incoming list")
	}
	if r.Start() != a || r.Finish() != b {
		t.Errorf("endpoints: got %v→%v", r.Start(), r.Finish())
	}
	if a.Isolated() || b.Isolated() {
		t.Errorf("endpoints must not report isolated")
	}
}

func TestElement_FindOutgoingAndDetach(t *testing.T) {
	a, b := el("A"), el("B")
	r := relate(t, a, b)

	if got := a.FindOutgoing(b); got != r {
		t.Fatalf("FindOutgoing(B) = %v; want the attached relation", got)
	}
	if got := b.FindIncoming(a); got != r {
		t.Fatalf("FindIncoming(A) = %v; want the attached relation", got)
	}

	r.Detach()
	if got := a.FindOutgoing(b); got != nil {
		t.Errorf("after Detach: FindOutgoing(B) = %v; want nil", got)
	}
	if !a.Isolated() || !b.Isolated() {
		t.Errorf("after Detach both endpoints must be isolated")
	}

	// a detached relation is free-standing and re-attachable
	if err := r.Attach(); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if got := b.FindIncoming(a); got != r {
		t.Errorf("after Attach: FindIncoming(A) = %v; want relation back", got)
	}
}

func TestRelation_FindNextEnumeratesParallelEdges(t *testing.T) {
	a, b, c := el("A"), el("B"), el("C")
	r1 := relate(t, a, b)
	relate(t, a, c) // noise between the parallels
	r2 := relate(t, a, b)
	r3 := relate(t, a, b)

	got := a.FindOutgoing(b)
	if got != r1 {
		t.Fatalf("first parallel = %v; want r1", got)
	}
	if got = got.FindNextOutgoing(b); got != r2 {
		t.Fatalf("second parallel = %v; want r2", got)
	}
	if got = got.FindNextOutgoing(b); got != r3 {
		t.Fatalf("third parallel = %v; want r3", got)
	}
	if got = got.FindNextOutgoing(b); got != nil {
		t.Fatalf("after last parallel: got %v; want nil", got)
	}

	// incoming side enumerates the same chain
	if in := b.FindIncoming(a); in != r1 || in.FindNextIncoming(a) != r2 {
		t.Errorf("incoming enumeration out of order")
	}
}

func TestRelation_SetStartMovesToNewTail(t *testing.T) {
	a, b, c := el("A"), el("B"), el("C")
	moved := relate(t, a, b)
	relate(t, c, b) // pre-existing tail of C's outgoing list

	if err := moved.SetStart(c); err != nil {
		t.Fatalf("SetStart: %v", err)
	}
	if a.OutgoingCount() != 0 {
		t.Errorf("A still owns %d outgoing relations", a.OutgoingCount())
	}
	if c.OutgoingCount() != 2 || c.LastOutgoing() != moved {
		t.Errorf("moved relation must sit at C's tail")
	}
	if moved.Start() != c {
		t.Errorf("Start() = %v; want C", moved.Start())
	}
	if err := moved.SetStart(nil); !errors.Is(err, graph.ErrNilElement) {
		t.Errorf("SetStart(nil): want ErrNilElement, got %v", err)
	}
}

func TestRelation_SetFinishMovesToNewTail(t *testing.T) {
	a, b, c := el("A"), el("B"), el("C")
	moved := relate(t, a, b)

	if err := moved.SetFinish(c); err != nil {
		t.Fatalf("SetFinish: %v", err)
	}
	if b.IncomingCount() != 0 {
		t.Errorf("B still owns %d incoming relations", b.IncomingCount())
	}
	if c.FirstIncoming() != moved || moved.Finish() != c {
		t.Errorf("relation must now finish at C")
	}
}

func TestGraph_MembershipOrderAndCounts(t *testing.T) {
	g := graph.NewGraph[string, string]()
	a, b, c := el("A"), el("B"), el("C")
	for _, e := range []*node{a, b, c} {
		if err := g.Add(e); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if g.Len() != 3 || g.Empty() {
		t.Fatalf("Len = %d; want 3", g.Len())
	}
	if got, want := elems(g), []string{"A", "B", "C"}; !equal(got, want) {
		t.Errorf("order = %v; want %v", got, want)
	}
	if !g.Contains(b) {
		t.Errorf("Contains(B) = false")
	}
	if g.First() != a || g.Last() != c {
		t.Errorf("First/Last mismatch")
	}
	if b.PrevElement() != a || b.NextElement() != c {
		t.Errorf("element neighbors mismatch")
	}
	if err := g.Add(nil); !errors.Is(err, graph.ErrNilElement) {
		t.Errorf("Add(nil): want ErrNilElement, got %v", err)
	}
}

func TestGraph_RemoveDestroysIncidentRelations(t *testing.T) {
	g := graph.NewGraph[string, string]()
	a, b, c := el("A"), el("B"), el("C")
	for _, e := range []*node{a, b, c} {
		_ = g.Add(e)
	}
	relate(t, b, a) // incoming to A
	ab := relate(t, a, b)
	relate(t, a, c) // outgoing from A
	relate(t, b, c) // untouched bystander

	if err := g.Remove(a); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if g.Contains(a) || g.Len() != 2 {
		t.Errorf("A still counted as a member")
	}
	if !a.Isolated() {
		t.Errorf("removed element keeps relations")
	}
	// neighbors' counts decreased accordingly
	if b.OutgoingCount() != 1 || b.IncomingCount() != 0 {
		t.Errorf("B degree = out %d / in %d; want 1 / 0", b.OutgoingCount(), b.IncomingCount())
	}
	if c.IncomingCount() != 1 {
		t.Errorf("C in-degree = %d; want 1 (B→C survives)", c.IncomingCount())
	}
	// destroyed relations are permanently unusable
	if err := ab.Attach(); !errors.Is(err, graph.ErrRelationDestroyed) {
		t.Errorf("Attach on destroyed: want ErrRelationDestroyed, got %v", err)
	}
	if err := ab.SetStart(b); !errors.Is(err, graph.ErrRelationDestroyed) {
		t.Errorf("SetStart on destroyed: want ErrRelationDestroyed, got %v", err)
	}

	if err := g.Remove(a); !errors.Is(err, graph.ErrNotInGraph) {
		t.Errorf("double Remove: want ErrNotInGraph, got %v", err)
	}
}

func TestGraph_DetachKeepsRelations(t *testing.T) {
	g := graph.NewGraph[string, string]()
	a, b := el("A"), el("B")
	_ = g.Add(a)
	_ = g.Add(b)
	r := relate(t, a, b)

	if err := g.Detach(a); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if g.Contains(a) {
		t.Errorf("detached element still a member")
	}
	if a.FindOutgoing(b) != r {
		t.Errorf("Detach must not touch relations")
	}
	if err := g.Detach(a); !errors.Is(err, graph.ErrNotInGraph) {
		t.Errorf("double Detach: want ErrNotInGraph, got %v", err)
	}
}

func TestGraph_PurgeLeavesIsolatedElements(t *testing.T) {
	g := graph.NewGraph[string, string]()
	a, b := el("A"), el("B")
	_ = g.Add(a)
	_ = g.Add(b)
	relate(t, a, b)
	relate(t, b, a)

	g.Purge()
	if !g.Empty() {
		t.Fatalf("graph not empty after Purge")
	}
	if !a.Isolated() || !b.Isolated() {
		t.Errorf("elements keep relations after Purge")
	}

	// purged elements stay usable
	_ = g.Add(a)
	if g.Len() != 1 {
		t.Errorf("re-Add after Purge failed")
	}
}

func TestGraph_AbsorbMovesEverything(t *testing.T) {
	g1 := graph.NewGraph[string, string]()
	g2 := graph.NewGraph[string, string]()
	a, b, c := el("A"), el("B"), el("C")
	_ = g1.Add(a)
	_ = g2.Add(b)
	_ = g2.Add(c)
	bc := relate(t, b, c)

	g1.Absorb(g2)
	if !g2.Empty() {
		t.Fatalf("source graph not empty after Absorb")
	}
	if got, want := elems(g1), []string{"A", "B", "C"}; !equal(got, want) {
		t.Errorf("order after Absorb = %v; want %v", got, want)
	}
	if b.FindOutgoing(c) != bc {
		t.Errorf("relations must travel with their elements")
	}
	g1.Absorb(nil) // tolerated
	if g1.Len() != 3 {
		t.Errorf("Absorb(nil) must be a no-op")
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
