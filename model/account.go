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

// Account identifies the owner of the named resource.
// It is immutable once constructed.
type Account struct {
	value string
}

// NewAccount validates value and returns it as an Account.
// An empty value yields ErrEmptyValue.
func NewAccount(value string) (Account, error) {
	if err := validateNonEmpty("Account", value); err != nil {
		return Account{}, err
	}
	return Account{value: value}, nil
}

// DefaultAccount returns the default account, config.DefaultAccount.
func DefaultAccount() Account {
	return Account{value: config.DefaultAccount}
}

// String returns the raw account string.
func (a Account) String() string {
	return a.value
}

// IsZero reports whether a is the zero value.
func (a Account) IsZero() bool {
	return a.value == ""
}

// Equal reports whether a and other hold the same account string.
func (a Account) Equal(other Account) bool {
	return a.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same
// validation as NewAccount.
func (a *Account) UnmarshalText(text []byte) error {
	na, err := NewAccount(string(text))
	if err != nil {
		return err
	}
	*a = na
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Account) MarshalYAML() (any, error) {
	return a.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same validation as
// NewAccount.
func (a *Account) UnmarshalYAML(value *yaml.Node) error {
	s, err := yamlString(value)
	if err != nil {
		return err
	}
	return a.UnmarshalText([]byte(s))
}
