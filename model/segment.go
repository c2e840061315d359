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

	"gopkg.in/yaml.v3"
)

// Reserved grammar delimiters. They separate the positional fields (':')
// and the hierarchical path ('/') of the canonical form and therefore must
// never appear inside a segment that is itself subdivided.
const (
	fieldDelimiter = ":"
	pathDelimiter  = "/"
)

// validateNonEmpty rejects empty input for the named component.
func validateNonEmpty(component, value string) error {
	if value == "" {
		return emptyErr(component)
	}
	return nil
}

// validateSegment rejects empty input and reserved delimiters for the
// named component.
func validateSegment(component, value string) error {
	if strings.ContainsAny(value, fieldDelimiter+pathDelimiter) {
		return delimiterErr(component, value)
	}
	return validateNonEmpty(component, value)
}

// yamlString decodes a YAML scalar node into a string.
func yamlString(value *yaml.Node) (string, error) {
	var s string
	if err := value.Decode(&s); err != nil {
		return "", err
	}
	return s, nil
}
