/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "time"

// Generator produces the unique, time-ordered suffix tokens attached to a
// root identifier at construction time.
//
// # Contract
//
// Implementations MUST satisfy all of the following:
//
//   - Uniqueness: no two calls to Next, across the lifetime of the
//     generator, return the same token — even when invoked concurrently
//     and even when the underlying clock does not advance between calls.
//   - Ordering: tokens MUST sort lexicographically in call order. A token
//     returned by an earlier call MUST compare strictly less than a token
//     returned by a later call on the same generator.
//   - Grammar safety: tokens MUST NOT contain the ':' or '/' delimiter
//     characters and MUST be non-empty.
//   - Concurrency: Next MUST be safe for concurrent use from multiple
//     goroutines without external synchronization.
//
// Implementations SHOULD derive tokens from a monotonic reading of time so
// that the ordering property reflects real creation order, with a
// tie-breaking component for calls within the same time quantum.
type Generator interface {
	// Next returns a fresh suffix token. It returns an error only when the
	// entropy source fails or the tie-breaking space for the current time
	// quantum is exhausted; both conditions are exceptional.
	Next() (string, error)
}

// Clock abstracts the time source used by generators, so that tests can
// substitute a deterministic implementation for the wall clock.
//
// Implementations MUST be safe for concurrent use. Now MAY return the same
// instant on consecutive calls; generators are responsible for breaking
// ties, not clocks.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time
}
