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

// Serial is the inline engine: every launch runs to completion on the
// calling goroutine before Launch returns, chunks in chunk order. It is the
// reference for the as-if-sequential semantics of the drivers and the engine
// STRIDE_SERIAL forces.
//
// The zero value is ready to use.
type Serial struct{}

// Workers reports 1.
func (Serial) Workers() int { return 1 }

// Launch runs body over every non-empty chunk inline.
func (Serial) Launch(n, parts int, body func(part, lo, hi int)) {
	for part := range parts {
		lo, hi := Chunk(n, parts, part)
		if lo >= hi {
			continue
		}
		body(part, lo, hi)
	}
}

// Fence is a no-op: launches complete before Launch returns.
func (Serial) Fence() {}
