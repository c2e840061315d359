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

// Package uid provides the suffix generators that make root identifiers
// unique and time-ordered, plus the process-wide default generator shared
// by everything that constructs roots without an explicit generator.
//
// The default is a single Monotonic instance: one shared generator means
// one total order over every suffix produced in the process. It can be
// swapped (typically for a Monotonic over a deterministic clock in tests)
// via SetDefault; readers always observe a consistent snapshot through an
// atomic pointer, so swapping is safe while other goroutines generate.
package uid

import (
	"sync/atomic"

	"dirpx.dev/ern/apis"
)

// holder wraps the current default generator so the atomic pointer always
// refers to an immutable snapshot.
type holder struct {
	gen apis.Generator
}

var global atomic.Pointer[holder]

// init seeds the global state with a system-clock Monotonic generator.
func init() {
	global.Store(&holder{gen: NewMonotonic(nil)})
}

// Default returns the process-wide default generator.
func Default() apis.Generator {
	return global.Load().gen
}

// SetDefault replaces the process-wide default generator. A nil g resets
// to a fresh system-clock Monotonic generator.
//
// Swapping the default mid-process forfeits the single total order that a
// lone Monotonic instance guarantees; suffixes remain unique, but tokens
// from the old and new generator only order correctly against each other
// to millisecond resolution.
func SetDefault(g apis.Generator) {
	if g == nil {
		g = NewMonotonic(nil)
	}
	global.Store(&holder{gen: g})
}
