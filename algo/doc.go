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

// Package algo provides the data-parallel primitives shared by stride's
// sparse matrix and graph kernels: prefix sums, sum reductions, and
// tolerance-based comparison.
//
// Every function takes the engine to run on as its first argument; nil
// selects par.Default(). A kernel operates over the whole of the slices it
// is handed, so restrict work to a prefix by passing a subslice. Kernels own
// no memory and keep no state across calls.
//
// Callers are responsible for exclusive access to the operand slices for
// the duration of a call and, on an asynchronous engine, until the next
// Fence. The kernels take no locks.
//
// # Example Usage
//
//	import (
//	    "github.com/strideio/stride/algo"
//	    "github.com/strideio/stride/par"
//	)
//
//	// Turn per-row entry counts into CSR row offsets.
//	func RowOffsets(e par.Engine, counts []int) {
//	    algo.ExclusiveSum(e, counts)
//	}
package algo
