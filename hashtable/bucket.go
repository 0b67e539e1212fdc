package hashtable

// bucket is one slot's ordered chain of elements. Chain surgery lives
// here; the owning table's live count is adjusted alongside every link
// change so the two can never drift apart.
type bucket[K comparable, V any] struct {
	first, last *Element[K, V]
	table       *Table[K, V]
}

// makeBuckets allocates a zeroed bucket array wired back to t.
func makeBuckets[K comparable, V any](t *Table[K, V], n int) []bucket[K, V] {
	buckets := make([]bucket[K, V], n)
	for i := range buckets {
		buckets[i].table = t
	}

	return buckets
}

// append links a detached element at the chain tail.
func (b *bucket[K, V]) append(e *Element[K, V]) {
	if b.last != nil {
		b.last.next = e
		e.prev = b.last
		b.last = e
	} else {
		b.first = e
		b.last = e
	}

	e.bucket = b
	b.table.count++
}

// insertAfter links a detached element immediately after `after`,
// which must be a member of b.
func (b *bucket[K, V]) insertAfter(e, after *Element[K, V]) {
	e.prev = after
	next := after.next
	e.next = next
	if next != nil {
		next.prev = e
	} else {
		b.last = e
	}
	after.next = e

	e.bucket = b
	b.table.count++
}

// remove unlinks a member element, leaving it fully detached.
func (b *bucket[K, V]) remove(e *Element[K, V]) {
	b.table.count--

	prev, next := e.prev, e.next
	if prev != nil {
		prev.next = next
	}
	if next != nil {
		next.prev = prev
	}
	if b.first == e {
		b.first = next
	}
	if b.last == e {
		b.last = prev
	}

	e.prev = nil
	e.next = nil
	e.bucket = nil
}

// removeAll detaches every chain element without touching the table
// count; callers reset it in bulk.
func (b *bucket[K, V]) removeAll() {
	for e := b.first; e != nil; {
		next := e.next
		e.prev = nil
		e.next = nil
		e.bucket = nil
		e = next
	}
	b.first = nil
	b.last = nil
}
