package genpool_test

import (
	"math/rand"
	"testing"

	"github.com/hupe1980/genpool"
)

// Benchmark insert with roster growth
func BenchmarkPoolInsert(b *testing.B) {
	pool := genpool.New[int]()

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		pool.Insert(i)
	}
}

// Benchmark insert into recycled slots
func BenchmarkPoolInsertReuse(b *testing.B) {
	pool := genpool.New[int]()

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		h := pool.Insert(i)
		pool.Remove(h)
	}
}

// Benchmark lookups that hit
func BenchmarkPoolGetHit(b *testing.B) {
	pool := genpool.New[int]()

	handles := make([]genpool.Handle, 1024)
	for i := range handles {
		handles[i] = pool.Insert(i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		if _, ok := pool.Get(handles[i%len(handles)]); !ok {
			b.Fatal("lookup missed")
		}
	}
}

// Benchmark lookups that miss on stale handles
func BenchmarkPoolGetStale(b *testing.B) {
	pool := genpool.New[int]()

	handles := make([]genpool.Handle, 1024)
	for i := range handles {
		handles[i] = pool.Insert(i)
	}
	for _, h := range handles {
		pool.Remove(h)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		if _, ok := pool.Get(handles[i%len(handles)]); ok {
			b.Fatal("stale lookup hit")
		}
	}
}

// Benchmark steady-state churn: remove a random value, insert a new one
func BenchmarkPoolChurn(b *testing.B) {
	const size = 4096

	pool := genpool.New[int]()
	rng := rand.New(rand.NewSource(42))

	handles := make([]genpool.Handle, size)
	for i := range handles {
		handles[i] = pool.Insert(i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		victim := rng.Intn(size)
		pool.Remove(handles[victim])
		handles[victim] = pool.Insert(i)
	}
}

// Benchmark dense iteration
func BenchmarkPoolIterate(b *testing.B) {
	pool := genpool.New[int]()
	for i := 0; i < 8192; i++ {
		pool.Insert(i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		sum := 0
		for v := range pool.Values() {
			sum += v
		}
		if sum == 0 {
			b.Fatal("unexpected zero sum")
		}
	}
}

// Benchmark handle validation
func BenchmarkPoolContains(b *testing.B) {
	pool := genpool.New[int]()
	h := pool.Insert(1)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		if !pool.Contains(h) {
			b.Fatal("handle went stale")
		}
	}
}
