package hashtable

// Len returns the number of live elements in the table.
// Complexity: O(1)
func (t *Table[K, V]) Len() int { return t.count }

// BucketCount returns the current bucket array size.
// Complexity: O(1)
func (t *Table[K, V]) BucketCount() int { return len(t.buckets) }

// Threshold returns the live count at which the next insertion of an
// unattached element grows the table.
// Complexity: O(1)
func (t *Table[K, V]) Threshold() int { return t.resizeLimit }

// bucketFor routes a hash value to its bucket by masking; the bucket
// array size is always a power of two.
func (t *Table[K, V]) bucketFor(hash uint32) *bucket[K, V] {
	return &t.buckets[hash&uint32(len(t.buckets)-1)]
}

// Insert places e into the table under the key currently extracted from
// its payload.
//
// If e is already attached (to this or any table) it is unlinked first,
// so Insert doubles as re-indexing after a key change. If e was
// unattached and the live count has reached the threshold, the table
// resizes before the insertion proceeds. The key's hash is cached on
// the element. The target bucket is scanned tail→head for an equal key:
// on a match the element is placed immediately after it, grouping
// same-key entries in insertion order; otherwise it is appended at the
// bucket tail.
// Returns ErrNilElement for a nil element.
// Complexity: amortized O(1) + O(chain)
func (t *Table[K, V]) Insert(e *Element[K, V]) error {
	if e == nil {
		return ErrNilElement
	}
	if b := e.bucket; b == nil {
		if t.count >= t.resizeLimit {
			t.resize()
		}
	} else {
		b.remove(e)
	}

	key := t.key(e.Value)
	e.hash = t.hash(key)

	b := t.bucketFor(e.hash)
	for after := b.last; after != nil; after = after.prev {
		if t.key(after.Value) == key {
			b.insertAfter(e, after)
			return nil
		}
	}
	b.append(e)

	return nil
}

// Find returns the first element whose key equals key, or nil. The
// routed bucket is scanned head→tail, so among duplicates the
// earliest-inserted one is returned.
// Complexity: O(chain)
func (t *Table[K, V]) Find(key K) *Element[K, V] {
	b := t.bucketFor(t.hash(key))
	for e := b.first; e != nil; e = e.next {
		if t.key(e.Value) == key {
			return e
		}
	}

	return nil
}

// FindNext continues a duplicate-key scan past prev, returning the next
// element with an equal key in the same bucket, or nil. A nil prev
// behaves like Find.
// Complexity: O(chain)
func (t *Table[K, V]) FindNext(key K, prev *Element[K, V]) *Element[K, V] {
	if prev == nil {
		return t.Find(key)
	}
	for e := prev.next; e != nil; e = e.next {
		if t.key(e.Value) == key {
			return e
		}
	}

	return nil
}

// Remove unlinks e from its bucket in O(1) via the back-reference,
// decrements the live count, and clears the back-reference.
// Returns ErrNilElement for nil, ErrNotInTable when e is unattached or
// attached to a different table.
// Complexity: O(1)
func (t *Table[K, V]) Remove(e *Element[K, V]) error {
	if e == nil {
		return ErrNilElement
	}
	if e.bucket == nil || e.bucket.table != t {
		return ErrNotInTable
	}
	e.bucket.remove(e)

	return nil
}

// RemoveAll detaches every element from every bucket without destroying
// them; the count resets to zero and the elements stay reusable.
// Complexity: O(n + buckets)
func (t *Table[K, V]) RemoveAll() {
	for i := len(t.buckets) - 1; i >= 0; i-- {
		t.buckets[i].removeAll()
	}
	t.count = 0
}

// Purge detaches every element and zeroes its payload and cached hash,
// releasing whatever the payloads referenced. The elements cannot carry
// stale state back into a table afterwards.
// Complexity: O(n + buckets)
func (t *Table[K, V]) Purge() {
	var zero V
	for i := len(t.buckets) - 1; i >= 0; i-- {
		b := &t.buckets[i]
		for e := b.first; e != nil; {
			next := e.next
			e.prev = nil
			e.next = nil
			e.bucket = nil
			e.hash = 0
			e.Value = zero
			e = next
		}
		b.first = nil
		b.last = nil
	}
	t.count = 0
}

// FirstInBucket returns the head of bucket i's chain, or nil when the
// bucket is empty or i is out of range.
// Complexity: O(1)
func (t *Table[K, V]) FirstInBucket(i int) *Element[K, V] {
	if i < 0 || i >= len(t.buckets) {
		return nil
	}

	return t.buckets[i].first
}

// LastInBucket returns the tail of bucket i's chain, or nil when the
// bucket is empty or i is out of range.
// Complexity: O(1)
func (t *Table[K, V]) LastInBucket(i int) *Element[K, V] {
	if i < 0 || i >= len(t.buckets) {
		return nil
	}

	return t.buckets[i].last
}

// resize doubles the bucket array and redistributes every live element
// by its cached hash — no key is re-extracted and no hash recomputed.
// Old buckets are drained last→first and each chain head→tail, which
// keeps insertion order among equal keys. The threshold doubles and the
// old array is released.
// Complexity: O(n)
func (t *Table[K, V]) resize() {
	newBuckets := makeBuckets(t, len(t.buckets)*2)
	mask := uint32(len(newBuckets) - 1)

	t.count = 0
	for i := len(t.buckets) - 1; i >= 0; i-- {
		b := &t.buckets[i]
		for e := b.first; e != nil; {
			next := e.next
			e.prev = nil
			e.next = nil
			newBuckets[e.hash&mask].append(e)
			e = next
		}
		b.first = nil
		b.last = nil
	}

	t.buckets = newBuckets
	t.resizeLimit *= 2
}
