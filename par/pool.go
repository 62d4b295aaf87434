// Copyright 2025 The stride Authors. SPDX-License-Identifier: Apache-2.0

package par

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker engine. Workers are spawned once at creation
// and reused across launches, so each launch costs a channel send and a
// WaitGroup wait rather than goroutine spawn and teardown. Create one Pool
// and share it across many kernel calls:
//
//	pool := par.NewPool(0)
//	defer pool.Close()
//
//	for _, row := range rows {
//	    algo.ExclusiveSum(pool, row)
//	}
type Pool struct {
	workers   int
	workC     chan poolTask
	closeOnce sync.Once
	closed    atomic.Bool
}

// poolTask is one chunk of one launch.
type poolTask struct {
	fn      func()
	barrier *sync.WaitGroup
}

// NewPool creates a pool with the given number of workers, spawned
// immediately and kept until Close. If workers <= 0, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		// Buffer enough for all workers to have pending work
		workC: make(chan poolTask, workers*2),
	}

	for range workers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for task := range p.workC {
		task.fn()
		task.barrier.Done()
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close shuts down the pool's workers. Pending work completes first.
// Launches issued after Close run inline on the calling goroutine, so a
// closed Pool still satisfies the Engine contract. Closing multiple times
// is safe; Close must not race with Launch.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Launch runs body over parts chunks of [0, n), fanning the chunks across
// the pool's workers. It blocks until every chunk has run, so a launch on a
// Pool is complete when Launch returns and Fence never has work to wait for.
func (p *Pool) Launch(n, parts int, body func(part, lo, hi int)) {
	if n <= 0 || parts <= 0 {
		return
	}

	if parts == 1 || p.closed.Load() {
		Serial{}.Launch(n, parts, body)
		return
	}

	var wg sync.WaitGroup
	wg.Add(parts)

	for part := range parts {
		lo, hi := Chunk(n, parts, part)
		if lo >= hi {
			// No work for this chunk
			wg.Done()
			continue
		}

		p.workC <- poolTask{
			fn: func() {
				body(part, lo, hi)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// Fence returns immediately: Pool launches block until complete.
func (p *Pool) Fence() {}
