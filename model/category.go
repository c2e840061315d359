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

// Category classifies the kind of resource an identifier names.
// It is immutable once constructed.
type Category struct {
	value string
}

// NewCategory validates value and returns it as a Category.
// An empty value yields ErrEmptyValue.
func NewCategory(value string) (Category, error) {
	if err := validateNonEmpty("Category", value); err != nil {
		return Category{}, err
	}
	return Category{value: value}, nil
}

// DefaultCategory returns the default category, config.DefaultCategory.
func DefaultCategory() Category {
	return Category{value: config.DefaultCategory}
}

// String returns the raw category string.
func (c Category) String() string {
	return c.value
}

// IsZero reports whether c is the zero value.
func (c Category) IsZero() bool {
	return c.value == ""
}

// Equal reports whether c and other hold the same category string.
func (c Category) Equal(other Category) bool {
	return c.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same
// validation as NewCategory.
func (c *Category) UnmarshalText(text []byte) error {
	nc, err := NewCategory(string(text))
	if err != nil {
		return err
	}
	*c = nc
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Category) MarshalYAML() (any, error) {
	return c.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same validation as
// NewCategory.
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	s, err := yamlString(value)
	if err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}
