// Copyright 2025 The stride Authors. SPDX-License-Identifier: Apache-2.0

package par

import (
	"sync"
	"sync/atomic"
)

// streamQueueDepth bounds how many launches may sit queued before Launch
// blocks the issuer.
const streamQueueDepth = 8

// Stream is an asynchronous engine shaped like a device queue: Launch
// enqueues and returns immediately, a single runner goroutine executes the
// queued launches in issue order, and Fence blocks until the queue has
// drained. Each launch's chunks fan out across an inner Pool, so launches
// are internally parallel while staying ordered with respect to each other.
//
// Results of a launch must not be read until Fence has returned:
//
//	stream := par.NewStream(0)
//	defer stream.Close()
//
//	algo.ExclusiveSum(stream, offsets)
//	stream.Fence()
//	// offsets is now valid
type Stream struct {
	pool    *Pool
	launchC chan streamLaunch

	mu      sync.Mutex
	idle    sync.Cond
	pending int

	closeOnce sync.Once
	closed    atomic.Bool
}

// streamLaunch is one queued launch.
type streamLaunch struct {
	n, parts int
	body     func(part, lo, hi int)
}

// NewStream creates a stream backed by a pool with the given number of
// workers (<= 0 means GOMAXPROCS). The runner goroutine and the pool persist
// until Close.
func NewStream(workers int) *Stream {
	s := &Stream{
		pool:    NewPool(workers),
		launchC: make(chan streamLaunch, streamQueueDepth),
	}
	s.idle.L = &s.mu

	go s.run()

	return s
}

// run executes queued launches in issue order.
func (s *Stream) run() {
	for l := range s.launchC {
		s.pool.Launch(l.n, l.parts, l.body)

		s.mu.Lock()
		s.pending--
		if s.pending == 0 {
			s.idle.Broadcast()
		}
		s.mu.Unlock()
	}
}

// Workers returns the number of workers in the inner pool.
func (s *Stream) Workers() int {
	return s.pool.Workers()
}

// Launch enqueues body over parts chunks of [0, n) and returns without
// waiting for it to run. Launches execute in issue order. On a closed
// Stream the launch runs inline instead.
func (s *Stream) Launch(n, parts int, body func(part, lo, hi int)) {
	if n <= 0 || parts <= 0 {
		return
	}

	if s.closed.Load() {
		Serial{}.Launch(n, parts, body)
		return
	}

	s.mu.Lock()
	s.pending++
	s.mu.Unlock()

	s.launchC <- streamLaunch{n: n, parts: parts, body: body}
}

// Fence blocks until every launch issued so far has completed and its
// effects are visible to the caller.
func (s *Stream) Fence() {
	s.mu.Lock()
	for s.pending > 0 {
		s.idle.Wait()
	}
	s.mu.Unlock()
}

// Close drains queued launches, stops the runner, and shuts down the inner
// pool. Launches issued after Close run inline. Closing multiple times is
// safe; Close must not race with Launch.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.launchC)
		s.Fence()
		s.pool.Close()
	})
}
