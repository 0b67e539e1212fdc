package hashtable_test

import (
	"testing"

	"github.com/katalvlaran/lvlink/hashtable"
)

// benchTable builds a table over *rec with an identity hash, sized by opts.
func benchTable(b *testing.B, opts ...hashtable.Option) *hashtable.Table[uint32, *rec] {
	b.Helper()
	tbl, err := hashtable.New(recKey, identity, opts...)
	if err != nil {
		b.Fatal(err)
	}

	return tbl
}

// BenchmarkInsertFind_Growing measures the amortized path including
// resize spikes, starting from the default table size.
func BenchmarkInsertFind_Growing(b *testing.B) {
	const n = 4096
	elems := make([]*recElem, n)
	for i := range elems {
		elems[i] = newRec(uint32(i), "x")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tbl := benchTable(b)
		for _, e := range elems {
			_ = tbl.Insert(e)
		}
		for k := uint32(0); k < n; k++ {
			if tbl.Find(k) == nil {
				b.Fatal("lost element")
			}
		}
		tbl.RemoveAll()
	}
}

// BenchmarkInsertFind_PreSized shows the effect of pre-sizing: the same
// workload with no mid-sequence resizes.
func BenchmarkInsertFind_PreSized(b *testing.B) {
	const n = 4096
	elems := make([]*recElem, n)
	for i := range elems {
		elems[i] = newRec(uint32(i), "x")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tbl := benchTable(b, hashtable.WithBucketCount(2048), hashtable.WithMaxAverageDepth(2))
		for _, e := range elems {
			_ = tbl.Insert(e)
		}
		for k := uint32(0); k < n; k++ {
			if tbl.Find(k) == nil {
				b.Fatal("lost element")
			}
		}
		tbl.RemoveAll()
	}
}

// BenchmarkRemoveInsert_Cycle measures the O(1) detach/attach cycle of a
// single resident element in a populated table.
func BenchmarkRemoveInsert_Cycle(b *testing.B) {
	tbl := benchTable(b, hashtable.WithBucketCount(1024))
	for k := uint32(0); k < 1000; k++ {
		_ = tbl.Insert(newRec(k, "resident"))
	}
	e := tbl.Find(500)
	if e == nil {
		b.Fatal("setup failed")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tbl.Remove(e)
		_ = tbl.Insert(e)
	}
}
