package par

import (
	"testing"
)

func TestStreamWorkers(t *testing.T) {
	s := NewStream(4)
	defer s.Close()

	if s.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", s.Workers())
	}
}

func TestStreamLaunchesOrdered(t *testing.T) {
	s := NewStream(4)
	defer s.Close()

	n := 1 << 14
	a := make([]int, n)
	b := make([]int, n)

	// The second launch reads what the first wrote; issue order must hold
	// even though Launch returns before the work runs.
	s.Launch(n, 4, func(part, lo, hi int) {
		for i := lo; i < hi; i++ {
			a[i] = i
		}
	})
	s.Launch(n, 4, func(part, lo, hi int) {
		for i := lo; i < hi; i++ {
			b[i] = a[i] * 2
		}
	})
	s.Fence()

	for i := range b {
		if b[i] != i*2 {
			t.Fatalf("b[%d] = %d, want %d", i, b[i], i*2)
		}
	}
}

func TestStreamManyLaunchesFIFO(t *testing.T) {
	s := NewStream(2)
	defer s.Close()

	// Enough launches to overflow the queue buffer and block the issuer.
	var seq []int
	for k := range 100 {
		s.Launch(1, 1, func(part, lo, hi int) {
			seq = append(seq, k)
		})
	}
	s.Fence()

	if len(seq) != 100 {
		t.Fatalf("len(seq) = %d, want 100", len(seq))
	}
	for k := range seq {
		if seq[k] != k {
			t.Fatalf("seq[%d] = %d, want %d", k, seq[k], k)
		}
	}
}

func TestStreamFenceIdle(t *testing.T) {
	s := NewStream(2)
	defer s.Close()

	// Nothing pending; Fence must return.
	s.Fence()
	s.Fence()
}

func TestStreamCloseDrains(t *testing.T) {
	s := NewStream(4)

	n := 1 << 14
	out := make([]int, n)
	s.Launch(n, 4, func(part, lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = i + 1
		}
	})
	s.Close()

	for i := range out {
		if out[i] != i+1 {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], i+1)
		}
	}
}

func TestStreamCloseMultipleTimes(t *testing.T) {
	s := NewStream(2)
	s.Close()
	s.Close() // Should not panic
}

func TestClosedStreamFallback(t *testing.T) {
	s := NewStream(4)
	s.Close()

	n := 100
	results := make([]int, n)

	// Should still work (inline fallback)
	s.Launch(n, 4, func(part, lo, hi int) {
		for i := lo; i < hi; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestStreamLaunchZeroN(t *testing.T) {
	s := NewStream(2)
	defer s.Close()

	var called bool
	s.Launch(0, 2, func(part, lo, hi int) {
		called = true
	})
	s.Fence()

	if called {
		t.Error("Launch with n=0 should not call body")
	}
}

func BenchmarkStreamLaunchFence(b *testing.B) {
	s := NewStream(0)
	defer s.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Launch(n, s.Workers(), func(part, lo, hi int) {
			for j := lo; j < hi; j++ {
				_ = j * j
			}
		})
		s.Fence()
	}
}
