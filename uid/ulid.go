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

package uid

import (
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"

	"dirpx.dev/ern/apis"
)

// Monotonic generates ULID suffix tokens that are strictly increasing in
// call order, even across concurrent callers and even when the clock does
// not advance between calls.
//
// The millisecond timestamp of each ULID comes from the configured clock;
// within a single millisecond, monotonic entropy breaks ties by
// incrementing the random component. A clock reading earlier than the last
// one used is clamped to the last quantum, so a frozen or regressing
// (fake) clock can never produce out-of-order tokens.
//
// ULID strings are 26 characters of Crockford base32: lexicographic order
// equals chronological order, and neither ':' nor '/' can appear, which is
// exactly the contract apis.Generator demands.
type Monotonic struct {
	clock apis.Clock

	// mu serializes clock reads and entropy draws; ulid.MonotonicEntropy
	// is not safe for concurrent use.
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	lastMS  uint64
}

// NewMonotonic returns a Monotonic generator reading time from clock.
// A nil clock selects SystemClock.
func NewMonotonic(clock apis.Clock) *Monotonic {
	if clock == nil {
		clock = SystemClock()
	}
	return &Monotonic{
		clock:   clock,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Next returns a fresh ULID string. It implements apis.Generator.
func (g *Monotonic) Next() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := ulid.Timestamp(g.clock.Now())
	if ms < g.lastMS {
		// Clock went backwards; stay in the last quantum so the
		// monotonic entropy keeps the ordering strict.
		ms = g.lastMS
	}
	g.lastMS = ms

	id, err := ulid.New(ms, g.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
