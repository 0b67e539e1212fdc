// Package lvlink is a small library of intrusive (embeddable) containers:
// a directed multigraph and a dynamically growing hash table, both built
// on a shared intrusive doubly linked list.
//
// 🚀 What is lvlink?
//
//	"Intrusive" means the link state lives inside your own objects instead
//	of in wrapper nodes allocated by the container. Attaching, detaching
//	and re-pointing are O(1) pointer surgery with zero allocation:
//		• list/      — generic doubly linked list with embeddable nodes:
//		               O(1) append/remove, bidirectional traversal, bulk splice
//		• graph/     — directed multigraph of elements and relations; every
//		               relation is simultaneously a member of its start
//		               element's outgoing list and its finish element's
//		               incoming list; reachability via Graph.Predecessor
//		• hashtable/ — chained hash table with cached 32-bit hashes,
//		               same-key grouping, and load-factor-driven resizing
//
// ✨ Why choose lvlink?
//
//   - One allocation per object – elements and relations carry their own links
//   - Rock-solid lifecycle rules – a relation can never outlive an endpoint
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – insertion order is the iteration order, everywhere
//
// Quick ASCII example:
//
//	    A ──▶ B ──▶ C
//
//	two relations make A a predecessor of C: Predecessor(A, C) == true.
//
// Dive into the package docs of list, graph and hashtable for the full
// contracts, complexity notes, and runnable examples.
//
//	go get github.com/katalvlaran/lvlink
package lvlink
