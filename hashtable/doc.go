// Package hashtable provides an intrusive, dynamically growing hash
// table with chained buckets: stored objects embed their own link state,
// so insert, find and remove are amortized O(1) with one allocation per
// object, ever.
//
// What
//
//   - Element[K, V] carries the chain links, a back-reference to its
//     current bucket, a cached 32-bit hash, and the user payload.
//   - Table[K, V] owns the bucket array (always a power of two), routes
//     hash→bucket by masking, and doubles the bucket count whenever the
//     live element count reaches bucketCount × maxAverageDepth.
//   - Keys are extracted from payloads by a caller-supplied key
//     function and hashed by a caller-supplied hash function; keys only
//     need equality (comparable). FNV-1a helpers are provided for
//     callers without a preferred hash.
//
// Ordering
//
//   - Within a bucket, entries sharing a key are grouped together in
//     insertion order: Insert scans the bucket tail→head for an equal
//     key and places the new element immediately after the match, so
//     Find (head→tail) always returns the earliest-inserted duplicate.
//     Resizing preserves insertion order among equal keys.
//
// Lifecycle
//
//   - An element is {unattached, attached(bucket)}. Insert moves
//     unattached→attached, or attached→attached(elsewhere) — inserting
//     an attached element first unlinks it, which is how a key change
//     is re-indexed. Remove, RemoveAll and Purge move elements back to
//     unattached; Purge additionally zeroes payloads to release the
//     references they hold.
//
// Sizing
//
//   - Resize is the only super-constant operation, O(live count).
//     Callers with strict per-call latency bounds should pre-size via
//     WithBucketCount / WithMaxAverageDepth to avoid mid-sequence
//     resize spikes.
//
// Not thread-safe; callers synchronize externally.
//
// Complexity (n = live elements, b = buckets)
//
//   - Insert / Find / Remove: amortized O(1) (O(chain) scan per bucket)
//   - Resize: O(n); RemoveAll / Purge: O(n + b)
package hashtable
