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
	"github.com/google/uuid"
)

// UUIDv7 generates RFC 9562 version-7 UUID suffix tokens. Like ULIDs they
// are time-ordered and collision-resistant, which makes them a drop-in
// alternative where consumers standardize on UUIDs.
//
// Note that a UUID's canonical form contains '-' characters, so a root
// suffix produced by this generator is not recognized as a suffix when its
// ERN is re-parsed: ordering of re-parsed values then falls back to plain
// name comparison. The package default is Monotonic for this reason.
type UUIDv7 struct{}

// NewUUIDv7 returns a UUIDv7 generator.
func NewUUIDv7() *UUIDv7 {
	return &UUIDv7{}
}

// Next returns a fresh UUIDv7 string. It implements apis.Generator.
func (*UUIDv7) Next() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
