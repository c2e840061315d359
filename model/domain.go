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

	"dirpx.dev/ern/config"
)

// Domain names the namespace or environment an identifier belongs to,
// e.g. a tenant or system name. It is immutable once constructed.
type Domain struct {
	value string
}

// NewDomain validates value and returns it as a Domain.
// An empty value yields ErrEmptyValue.
func NewDomain(value string) (Domain, error) {
	if err := validateNonEmpty("Domain", value); err != nil {
		return Domain{}, err
	}
	return Domain{value: value}, nil
}

// DefaultDomain returns the default domain, config.DefaultDomain.
func DefaultDomain() Domain {
	return Domain{value: config.DefaultDomain}
}

// String returns the raw domain string.
func (d Domain) String() string {
	return d.value
}

// IsZero reports whether d is the zero value (not constructed through
// NewDomain or DefaultDomain).
func (d Domain) IsZero() bool {
	return d.value == ""
}

// Equal reports whether d and other hold the same domain string.
func (d Domain) Equal(other Domain) bool {
	return d.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (d Domain) MarshalText() ([]byte, error) {
	return []byte(d.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same
// validation as NewDomain.
func (d *Domain) UnmarshalText(text []byte) error {
	nd, err := NewDomain(string(text))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Domain) MarshalYAML() (any, error) {
	return d.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same validation as
// NewDomain.
func (d *Domain) UnmarshalYAML(value *yaml.Node) error {
	s, err := yamlString(value)
	if err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
