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

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"

	"dirpx.dev/ern/apis"
)

// suffixSeparator joins a root's base name and its generated suffix in the
// canonical name. It is not reserved by the grammar, so a base name may
// itself contain it; ParseRoot resolves the ambiguity by checking whether
// the tail is a syntactically valid suffix token.
const suffixSeparator = "-"

// Root is the unique base identifier of an ERN.
//
// A Root combines a caller-supplied base name with a generated, strictly
// increasing, collision-resistant suffix assigned exactly once at
// construction time. Two roots created from the same base name at
// different instants are therefore distinct, and their ordering matches
// creation order.
//
// There are two distinct entry points into the type:
//
//   - NewRoot generates a fresh suffix via an apis.Generator.
//   - ParseRoot preserves a literal name as already encoded in a canonical
//     string, so that parsing never breaks round-trip equality.
type Root struct {
	base   string
	suffix string
}

// NewRoot validates base and returns a Root carrying a freshly generated
// suffix.
//
// An empty base yields ErrEmptyValue; a base containing ':' or '/' yields
// ErrInvalidFormat. A generator failure is returned verbatim.
func NewRoot(base string, g apis.Generator) (Root, error) {
	if err := validateSegment("Root", base); err != nil {
		return Root{}, err
	}
	suffix, err := g.Next()
	if err != nil {
		return Root{}, err
	}
	return Root{base: base, suffix: suffix}, nil
}

// ParseRoot validates value as a root segment of a canonical string and
// returns it with the encoded name preserved verbatim.
//
// If the text after the last '-' is a valid ULID, it is recognized as the
// generated suffix; otherwise the whole value is taken as the base name
// with no suffix. Either way Name reproduces value exactly, so recognition
// only affects ordering granularity, never the canonical form.
func ParseRoot(value string) (Root, error) {
	if err := validateSegment("Root", value); err != nil {
		return Root{}, err
	}
	if i := strings.LastIndex(value, suffixSeparator); i > 0 {
		tail := value[i+1:]
		if _, err := ulid.ParseStrict(tail); err == nil {
			return Root{base: value[:i], suffix: tail}, nil
		}
	}
	return Root{base: value}, nil
}

// ValidateRootBase checks that base is usable as the base name of a root:
// non-empty and free of the reserved grammar delimiters. NewRoot applies
// the same check; this is for callers that want to validate a base before
// spending a generator token on it.
func ValidateRootBase(base string) error {
	return validateSegment("Root", base)
}

// Base returns the caller-supplied base name.
func (r Root) Base() string {
	return r.base
}

// Suffix returns the generated suffix, or "" when the root was parsed from
// a name whose suffix is not recognizable.
func (r Root) Suffix() string {
	return r.suffix
}

// Name returns the canonical composite name: the base joined with the
// suffix, or the base alone when there is no suffix.
func (r Root) Name() string {
	if r.suffix == "" {
		return r.base
	}
	return r.base + suffixSeparator + r.suffix
}

// String returns Name().
func (r Root) String() string {
	return r.Name()
}

// IsZero reports whether r is the zero value.
func (r Root) IsZero() bool {
	return r.base == ""
}

// Equal reports whether r and other encode the same canonical name.
func (r Root) Equal(other Root) bool {
	return r.Name() == other.Name()
}

// Compare orders roots by creation time.
//
// When both roots carry a generated suffix, the suffixes are compared
// first: they encode the creation instant and a tie-breaking component, so
// this orders roots chronologically regardless of their base names. Equal
// suffixes (possible only across distinct generators) fall back to the
// base name. When either side has no recognized suffix, the full names are
// compared lexicographically.
//
// The result is -1, 0, or +1 per the usual Compare convention.
func (r Root) Compare(other Root) int {
	if r.suffix != "" && other.suffix != "" {
		if c := strings.Compare(r.suffix, other.suffix); c != 0 {
			return c
		}
		return strings.Compare(r.base, other.base)
	}
	return strings.Compare(r.Name(), other.Name())
}

// MarshalText implements encoding.TextMarshaler.
func (r Root) MarshalText() ([]byte, error) {
	return []byte(r.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseRoot: the
// literal name is preserved, never regenerated.
func (r *Root) UnmarshalText(text []byte) error {
	nr, err := ParseRoot(string(text))
	if err != nil {
		return err
	}
	*r = nr
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Root) MarshalYAML() (any, error) {
	return r.Name(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseRoot.
func (r *Root) UnmarshalYAML(value *yaml.Node) error {
	s, err := yamlString(value)
	if err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}
