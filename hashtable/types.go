// Package hashtable declares the Element and Table types, construction
// options, and sentinel errors.
package hashtable

import "errors"

// Sentinel errors for hash table construction and mutation.
var (
	// ErrNilElement indicates a nil element was passed to a mutating call.
	ErrNilElement = errors.New("hashtable: element is nil")

	// ErrNilFunc indicates a missing key or hash function at construction.
	ErrNilFunc = errors.New("hashtable: key and hash functions are mandatory")

	// ErrBucketCount indicates an initial bucket count that is not a
	// positive power of two.
	ErrBucketCount = errors.New("hashtable: bucket count must be a positive power of two")

	// ErrMaxAverageDepth indicates a non-positive growth threshold factor.
	ErrMaxAverageDepth = errors.New("hashtable: max average depth must be positive")

	// ErrNotInTable indicates the element is not attached to this table.
	ErrNotInTable = errors.New("hashtable: element not in table")
)

// Default sizing used when no options are supplied.
const (
	// DefaultBucketCount is the initial bucket array size.
	DefaultBucketCount = 16

	// DefaultMaxAverageDepth is the average chain depth that triggers a
	// resize: the table grows once count ≥ buckets × depth.
	DefaultMaxAverageDepth = 4
)

// Element is an entry embeddable in a hash table bucket chain.
//
// V is the user payload; K is the key type the owning table extracts
// from it. The cached hash is computed once per Insert and never
// recomputed implicitly, so a payload's key may change freely between
// insertions.
type Element[K comparable, V any] struct {
	prev, next *Element[K, V]
	bucket     *bucket[K, V]
	hash       uint32

	// Value is the user payload. The table reads it only through the
	// key function supplied at construction.
	Value V
}

// NewElement returns an unattached element carrying value.
// Complexity: O(1)
func NewElement[K comparable, V any](value V) *Element[K, V] {
	return &Element[K, V]{Value: value}
}

// NextInBucket returns the following element in the same bucket chain,
// or nil at the chain tail (or when unattached).
// Complexity: O(1)
func (e *Element[K, V]) NextInBucket() *Element[K, V] { return e.next }

// PrevInBucket returns the preceding element in the same bucket chain,
// or nil at the chain head (or when unattached).
// Complexity: O(1)
func (e *Element[K, V]) PrevInBucket() *Element[K, V] { return e.prev }

// Attached reports whether e currently belongs to a bucket.
// Complexity: O(1)
func (e *Element[K, V]) Attached() bool { return e.bucket != nil }

// HashValue returns the 32-bit hash cached at the last insertion.
// Complexity: O(1)
func (e *Element[K, V]) HashValue() uint32 { return e.hash }

// Option configures a Table before creation.
type Option func(*config)

type config struct {
	bucketCount     int
	maxAverageDepth int
}

// WithBucketCount sets the initial bucket array size; n must be a
// positive power of two (validated by New).
func WithBucketCount(n int) Option {
	return func(c *config) { c.bucketCount = n }
}

// WithMaxAverageDepth sets the average chain depth that triggers
// growth; d must be positive (validated by New).
func WithMaxAverageDepth(d int) Option {
	return func(c *config) { c.maxAverageDepth = d }
}

// Table is a dynamically growing chained hash table over embedded
// elements. It holds back-references only and never copies payloads;
// element lifetime belongs to the caller.
type Table[K comparable, V any] struct {
	key  func(V) K
	hash func(K) uint32

	buckets     []bucket[K, V]
	count       int
	resizeLimit int
}

// New creates an empty table. key extracts the key from a payload and
// hash maps a key to a 32-bit value; both are mandatory. The growth
// threshold is bucketCount × maxAverageDepth.
// Returns ErrNilFunc, ErrBucketCount, or ErrMaxAverageDepth on invalid
// configuration.
// Complexity: O(bucketCount)
func New[K comparable, V any](key func(V) K, hash func(K) uint32, opts ...Option) (*Table[K, V], error) {
	if key == nil || hash == nil {
		return nil, ErrNilFunc
	}
	cfg := config{
		bucketCount:     DefaultBucketCount,
		maxAverageDepth: DefaultMaxAverageDepth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.bucketCount <= 0 || cfg.bucketCount&(cfg.bucketCount-1) != 0 {
		return nil, ErrBucketCount
	}
	if cfg.maxAverageDepth <= 0 {
		return nil, ErrMaxAverageDepth
	}

	t := &Table[K, V]{
		key:         key,
		hash:        hash,
		resizeLimit: cfg.bucketCount * cfg.maxAverageDepth,
	}
	t.buckets = makeBuckets(t, cfg.bucketCount)

	return t, nil
}
