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
	"gopkg.in/yaml.v3"
)

// Part is one level of the hierarchical path suffix of an ERN.
// It is immutable once constructed.
type Part struct {
	value string
}

// NewPart validates value and returns it as a Part.
//
// An empty value yields ErrEmptyValue. A value containing ':' or '/'
// yields ErrInvalidFormat: those characters are grammar delimiters and can
// never appear inside a path segment.
func NewPart(value string) (Part, error) {
	if err := validateSegment("Part", value); err != nil {
		return Part{}, err
	}
	return Part{value: value}, nil
}

// String returns the raw part string.
func (p Part) String() string {
	return p.value
}

// IsZero reports whether p is the zero value.
func (p Part) IsZero() bool {
	return p.value == ""
}

// Equal reports whether p and other hold the same segment string.
func (p Part) Equal(other Part) bool {
	return p.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (p Part) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same
// validation as NewPart.
func (p *Part) UnmarshalText(text []byte) error {
	np, err := NewPart(string(text))
	if err != nil {
		return err
	}
	*p = np
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Part) MarshalYAML() (any, error) {
	return p.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same validation as
// NewPart.
func (p *Part) UnmarshalYAML(value *yaml.Node) error {
	s, err := yamlString(value)
	if err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}
