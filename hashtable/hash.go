package hashtable

// FNV-1a parameters (32-bit).
const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619
)

// HashString returns the 32-bit FNV-1a hash of s, a ready-made hash
// function for string-keyed tables.
// Complexity: O(len(s))
func HashString(s string) uint32 {
	h := fnvOffset32
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime32
	}

	return h
}

// HashBytes returns the 32-bit FNV-1a hash of b.
// Complexity: O(len(b))
func HashBytes(b []byte) uint32 {
	h := fnvOffset32
	for _, c := range b {
		h ^= uint32(c)
		h *= fnvPrime32
	}

	return h
}

// HashUint32 mixes x through FNV-1a byte by byte, spreading nearby
// integer keys across buckets.
// Complexity: O(1)
func HashUint32(x uint32) uint32 {
	h := fnvOffset32
	for i := 0; i < 4; i++ {
		h ^= x & 0xff
		h *= fnvPrime32
		x >>= 8
	}

	return h
}
