package cache_test

import (
	"testing"

	"github.com/ihorborys/rangecache/pkg/cache"
)

func BenchmarkLRU_Get(b *testing.B) {
	c, err := cache.New[int, int](1024)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1024; i++ {
		c.Put(i, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(i % 1024)
	}
}

func BenchmarkLRU_Put(b *testing.B) {
	c, err := cache.New[int, int](1024)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(i%4096, i)
	}
}

func BenchmarkLRU_PutEvicting(b *testing.B) {
	c, err := cache.New[int, int](64)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(i, i)
	}
}
