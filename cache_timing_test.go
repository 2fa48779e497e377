package lrucache

import (
	"testing"
)

func benchmarkPut[P Policy](b *testing.B) {
	c := New[int, int, P](b.N + 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(i, i)
	}
}

func BenchmarkCachePut(b *testing.B) {
	b.Run("recycle", benchmarkPut[Recycle])
	b.Run("append", benchmarkPut[Append])
}

func benchmarkGet[P Policy](b *testing.B) {
	const size = 8192

	c := New[int, int, P](size)
	for i := 0; i < size; i++ {
		c.Put(i, i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(i % size)
	}
}

func BenchmarkCacheGet(b *testing.B) {
	b.Run("recycle", benchmarkGet[Recycle])
	b.Run("append", benchmarkGet[Append])
}

func BenchmarkCachePeek(b *testing.B) {
	const size = 8192

	c := New[int, int, Recycle](size)
	for i := 0; i < size; i++ {
		c.Put(i, i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Peek(i % size)
	}
}

// benchmarkChurn keeps the cache full so every other Put evicts.
func benchmarkChurn[P Policy](b *testing.B) {
	const size = 1024

	c := New[int, int, P](size)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(i%(size*2), i)
	}
}

func BenchmarkCacheChurn(b *testing.B) {
	b.Run("recycle", benchmarkChurn[Recycle])
	b.Run("append", benchmarkChurn[Append])
}

func BenchmarkCacheMixed(b *testing.B) {
	const size = 1024

	c := New[int, int, Recycle](size)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			c.Put(i%(size*2), i)
		} else {
			c.Get(i % (size * 2))
		}
	}
}
