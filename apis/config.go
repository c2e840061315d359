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

// Config carries the default component values used when an ERN is built
// from partial information. It is passed by value and should be treated
// as immutable by implementations.
type Config struct {
	// Domain is the default domain (namespace/environment) used when none
	// is supplied, e.g. by the builder or the package-level constructors.
	Domain string

	// Category is the default resource category used when none is supplied.
	Category string

	// Account is the default owning account used when none is supplied.
	Account string

	// RootBase is the default base name for a generated root identifier.
	// The generated unique suffix is always appended to it at construction
	// time; RootBase itself never carries a suffix.
	RootBase string
}
