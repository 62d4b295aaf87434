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

package algo

import (
	"github.com/strideio/stride/arith"
	"github.com/strideio/stride/par"
)

// Sum adds the sum of data's elements into *out. *out is a seed: start it at
// zero for a plain total, or leave a running tally in place to accumulate
// across calls. On an asynchronous engine *out is valid only after e.Fence().
//
// Example:
//
//	var total int
//	algo.Sum(nil, []int{1, 2, 3, 4}, &total)
//	// total = 10
func Sum[T arith.Number](e par.Engine, data []T, out *T) {
	par.Reduce(e, len(data), func(i int, update *T) {
		*update += data[i]
	}, out)
}

// SumDiff adds the sum of ends[i] - begins[i] into *out. Like Sum, *out is a
// seed. begins and ends must have the same length; the kernel does not
// check. With CSR row begin and end offsets the result is the total entry
// count.
//
// Example:
//
//	begins := []int{0, 2, 5}
//	ends := []int{2, 5, 9}
//	var entries int
//	algo.SumDiff(nil, begins, ends, &entries)
//	// entries = 9
func SumDiff[T arith.Number](e par.Engine, begins, ends []T, out *T) {
	par.Reduce(e, len(begins), func(i int, update *T) {
		*update += ends[i] - begins[i]
	}, out)
}
