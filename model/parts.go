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

package model

import (
	"strings"
)

// Parts is the ordered hierarchical path suffix of an ERN, from root to
// leaf. The empty sequence is valid and denotes an identifier with no
// sub-path.
//
// Parts values are treated as immutable: every method that "modifies" a
// sequence returns a new one and never aliases the receiver's backing
// array with the result.
type Parts []Part

// NewParts returns a Parts sequence holding the given parts, in order.
// Each Part has already been validated at its own construction; no
// per-sequence validation applies.
func NewParts(parts ...Part) Parts {
	if len(parts) == 0 {
		return nil
	}
	out := make(Parts, len(parts))
	copy(out, parts)
	return out
}

// ParseParts validates every value and returns them as a Parts sequence.
// Validation is atomic: a single invalid value fails the whole call and no
// partial sequence is returned.
func ParseParts(values ...string) (Parts, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make(Parts, 0, len(values))
	for _, v := range values {
		p, err := NewPart(v)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Add returns a new sequence with part appended.
func (ps Parts) Add(part Part) Parts {
	out := make(Parts, len(ps), len(ps)+1)
	copy(out, ps)
	return append(out, part)
}

// Concat returns a new sequence holding ps followed by other.
func (ps Parts) Concat(other Parts) Parts {
	if len(other) == 0 {
		return NewParts(ps...)
	}
	out := make(Parts, 0, len(ps)+len(other))
	out = append(out, ps...)
	return append(out, other...)
}

// HasPrefix reports whether ps begins with the whole of prefix.
// Every sequence has the empty sequence as a prefix.
func (ps Parts) HasPrefix(prefix Parts) bool {
	if len(prefix) > len(ps) {
		return false
	}
	for i, p := range prefix {
		if !ps[i].Equal(p) {
			return false
		}
	}
	return true
}

// Equal reports whether ps and other hold the same parts in the same order.
func (ps Parts) Equal(other Parts) bool {
	if len(ps) != len(other) {
		return false
	}
	return ps.HasPrefix(other)
}

// String joins the parts with '/'.
func (ps Parts) String() string {
	switch len(ps) {
	case 0:
		return ""
	case 1:
		return ps[0].String()
	}
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteString(pathDelimiter)
		}
		b.WriteString(p.String())
	}
	return b.String()
}
