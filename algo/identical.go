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
	"cmp"

	"github.com/strideio/stride/arith"
	"github.com/strideio/stride/par"
)

// Identical reports whether view1 and view2 agree elementwise within eps:
// true when the lengths match and |view1[i] - view2[i]| <= eps at every
// index. A length mismatch returns false without launching any work. eps
// must be non-negative; eps 0 demands exact equality. A NaN difference does
// not count as a mismatch.
//
// Identical fences the engine before returning, so the result is valid on
// asynchronous engines.
//
// Example:
//
//	a := []float64{1.0, 2.0}
//	b := []float64{1.0, 2.0 + 1e-6}
//	algo.Identical(nil, a, b, 1e-3) // true
//	algo.Identical(nil, a, b, 1e-8) // false
func Identical[T arith.Number](e par.Engine, view1, view2 []T, eps T) bool {
	return IdenticalFunc(e, view1, view2, eps, arith.AbsDiff[T])
}

// IdenticalFunc is Identical for element types the built-in arithmetic does
// not cover: mag maps an element pair to the magnitude of its difference in
// any ordered type M, and an index mismatches when that magnitude exceeds
// eps. The two views may have different element types as long as mag
// accepts both.
//
// Example:
//
//	algo.IdenticalFunc(e, c1, c2, float32(1e-3), arith.MagDiff64)
func IdenticalFunc[V1, V2 any, M cmp.Ordered](e par.Engine, view1 []V1, view2 []V2, eps M, mag func(V1, V2) M) bool {
	if len(view1) != len(view2) {
		return false
	}
	if e == nil {
		e = par.Default()
	}

	var mismatches int
	par.Reduce(e, len(view1), func(i int, update *int) {
		if mag(view1[i], view2[i]) > eps {
			*update++
		}
	}, &mismatches)

	// The count is not readable until the engine has drained.
	e.Fence()

	return mismatches == 0
}
