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
	"errors"
	"fmt"
)

var (
	// ErrEmptyValue indicates that a component was constructed from an
	// empty string. Every component of an ERN must be non-empty.
	ErrEmptyValue = errors.New("ern(model): value cannot be empty")
	// ErrInvalidFormat indicates that a value contains one of the reserved
	// grammar delimiters (':' or '/'), or that a string does not match the
	// canonical ERN grammar.
	ErrInvalidFormat = errors.New("ern(model): invalid format")
)

// ComponentError reports which component of an ERN failed validation and
// why. It wraps one of the sentinel errors above, so callers can classify
// failures with errors.Is while still seeing the offending component and
// value in the message.
type ComponentError struct {
	// Component is the name of the failing component, e.g. "Domain" or "Part".
	Component string
	// Value is the rejected input.
	Value string
	// Err is the underlying error kind (ErrEmptyValue or ErrInvalidFormat).
	Err error
}

// Error implements the error interface.
func (e *ComponentError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Err.Error(), e.Component, e.Value)
}

// Unwrap returns the underlying error kind.
func (e *ComponentError) Unwrap() error {
	return e.Err
}

// emptyErr reports an empty value for the named component.
func emptyErr(component string) error {
	return &ComponentError{Component: component, Err: ErrEmptyValue}
}

// delimiterErr reports a reserved delimiter inside the named component.
func delimiterErr(component, value string) error {
	return &ComponentError{Component: component, Value: value, Err: ErrInvalidFormat}
}
