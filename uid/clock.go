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
	"time"

	"dirpx.dev/ern/apis"
)

// ClockFunc adapts a plain function to the apis.Clock interface, the same
// way http.HandlerFunc adapts handlers. It is the intended seam for
// deterministic tests: a fixed or scripted function stands in for the wall
// clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns the wall clock in UTC.
func SystemClock() apis.Clock {
	return ClockFunc(func() time.Time {
		return time.Now().UTC()
	})
}
