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

// ExclusiveSum replaces data with its exclusive prefix sum in place:
// data[i] becomes the sum of the original data[0:i], so data[0] is 0 and no
// element includes its own original value. The last element plus the last
// original value is the total.
//
// Example:
//
//	counts := []int{2, 3, 4}
//	algo.ExclusiveSum(nil, counts)
//	// counts = [0, 2, 5]
//
// If you need to preserve the original, copy first:
//
//	offsets := slices.Clone(counts)
//	algo.ExclusiveSum(e, offsets)
func ExclusiveSum[T arith.Number](e par.Engine, data []T) {
	par.Scan(e, len(data), func(i int, update *T, final bool) {
		val := data[i]
		if final {
			data[i] = *update
		}
		*update += val
	})
}

// InclusiveSum replaces data with its inclusive prefix sum in place:
// data[i] becomes the sum of the original data[0:i+1], so every element
// includes its own original value and the last element is the total.
//
// Example:
//
//	data := []int{1, 2, 3, 4}
//	algo.InclusiveSum(nil, data)
//	// data = [1, 3, 6, 10]
func InclusiveSum[T arith.Number](e par.Engine, data []T) {
	par.Scan(e, len(data), func(i int, update *T, final bool) {
		*update += data[i]
		if final {
			data[i] = *update
		}
	})
}
