package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sssp/pqueue"
)

// benchQueue pushes N random decreasing-cost updates over K identifiers and drains the queue.
func benchQueue(b *testing.B, mk func() pqueue.Queue[int, int]) {
	const N, K = 20000, 2000
	r := rand.New(rand.NewSource(3))
	ids := make([]int, N)
	costs := make([]int, N)
	for i := range ids {
		ids[i] = r.Intn(K)
		costs[i] = N - i // later pushes are cheaper
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := mk()
		for j := range ids {
			q.Push(ids[j], costs[j])
		}
		for !q.Empty() {
			_, _ = q.Pop()
		}
	}
}

func BenchmarkLazy(b *testing.B) {
	benchQueue(b, func() pqueue.Queue[int, int] { return pqueue.NewLazy[int, int]() })
}

func BenchmarkIndexed(b *testing.B) {
	benchQueue(b, func() pqueue.Queue[int, int] { return pqueue.NewIndexed[int, int]() })
}
