// Copyright 2025 stride Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package par

import (
	"github.com/strideio/stride/arith"

	"golang.org/x/sys/cpu"
)

// MinGrain is the smallest index count worth handing to an extra chunk.
// Dispatching a chunk on a pooled engine costs a few microseconds, so a
// chunk needs a few thousand step calls before the fan-out pays off. 2048
// gives a clear win for the memory-bound kernels in algo.
const MinGrain = 2048

// partsFor returns the number of chunks a driver requests for n indices on
// e: enough to feed every worker, but never so many that a chunk falls
// below MinGrain.
func partsFor(e Engine, n int) int {
	return max(1, min(e.Workers(), (n+MinGrain-1)/MinGrain))
}

// padded is a per-chunk accumulator slot padded out to its own cache line
// so that workers writing neighbouring slots do not contend.
type padded[T arith.Number] struct {
	val T
	_   cpu.CacheLinePad
}

// For runs body for every index in [0, n) on e; nil selects Default().
// Chunks may run concurrently, so body must not touch state shared across
// indices without its own synchronization. On an asynchronous engine the
// effects are visible only after e.Fence().
func For(e Engine, n int, body func(i int)) {
	if n <= 0 {
		return
	}
	if e == nil {
		e = Default()
	}

	e.Launch(n, partsFor(e, n), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			body(i)
		}
	})
}

// ScanFunc is the step a Scan replays over every index. A step must fold
// index i's contribution into *update on every call. When final is true,
// *update holds at entry the fold of all indices before i, and the step
// additionally applies whatever write it owns for index i.
//
// Steps are also called with final == false, during provisional passes whose
// only product is *update; in that mode a step must not write to shared
// state.
type ScanFunc[T arith.Number] func(i int, update *T, final bool)

// Scan runs step over [0, n) on e with as-if-sequential accumulator
// semantics: the final pass observes exactly the *update sequence a single
// left-to-right loop from zero would produce. nil selects Default(). On an
// asynchronous engine the effects are visible only after e.Fence().
//
// On a parallel engine the scan is two passes sharing one chunk
// decomposition: a provisional pass folds each chunk into a private total,
// the totals are combined into per-chunk seeds, and a final pass replays
// each chunk from its seed with final set. A single-chunk scan skips
// straight to the final pass. The passes are issued as ordered launches, so
// no fence is needed between them even on an asynchronous engine.
func Scan[T arith.Number](e Engine, n int, step ScanFunc[T]) {
	if n <= 0 {
		return
	}
	if e == nil {
		e = Default()
	}

	parts := partsFor(e, n)
	if parts == 1 {
		e.Launch(n, 1, func(_, lo, hi int) {
			var update T
			for i := lo; i < hi; i++ {
				step(i, &update, true)
			}
		})
		return
	}

	totals := make([]padded[T], parts)

	e.Launch(n, parts, func(part, lo, hi int) {
		var update T
		for i := lo; i < hi; i++ {
			step(i, &update, false)
		}
		totals[part].val = update
	})

	// Exclusive combine of the chunk totals, producing each chunk's seed.
	e.Launch(1, 1, func(_, _, _ int) {
		var run T
		for part := range totals {
			v := totals[part].val
			totals[part].val = run
			run += v
		}
	})

	e.Launch(n, parts, func(part, lo, hi int) {
		update := totals[part].val
		for i := lo; i < hi; i++ {
			step(i, &update, true)
		}
	})
}

// ReduceFunc is the step a Reduce folds over every index: it adds index i's
// contribution into *update.
type ReduceFunc[T arith.Number] func(i int, update *T)

// Reduce folds step over [0, n) on e and adds the result into *out. *out is
// a seed: Reduce combines into whatever value it already holds. nil selects
// Default(). Chunks fold into private zero accumulators and the chunk
// partials are added into *out in chunk order, so a given engine reduces a
// given input deterministically. On an asynchronous engine *out is valid
// only after e.Fence().
func Reduce[T arith.Number](e Engine, n int, step ReduceFunc[T], out *T) {
	if n <= 0 {
		return
	}
	if e == nil {
		e = Default()
	}

	parts := partsFor(e, n)
	if parts == 1 {
		e.Launch(n, 1, func(_, lo, hi int) {
			var update T
			for i := lo; i < hi; i++ {
				step(i, &update)
			}
			*out += update
		})
		return
	}

	partials := make([]padded[T], parts)

	e.Launch(n, parts, func(part, lo, hi int) {
		var update T
		for i := lo; i < hi; i++ {
			step(i, &update)
		}
		partials[part].val = update
	})

	e.Launch(1, 1, func(_, _, _ int) {
		for part := range partials {
			*out += partials[part].val
		}
	})
}
