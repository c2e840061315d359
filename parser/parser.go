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

// Package parser decodes canonical ERN strings into model.Ern values.
//
// The grammar is:
//
//	ern        = "ern:" domain ":" category ":" account ":" root ["/" path]
//	path       = part *("/" part)
//
// Parsing is a single forward pass with no backtracking: split on ':' into
// exactly five fields, check the literal prefix, hand fields 2-4 to the
// segment constructors, then split the final field once on '/' into the
// root segment and the optional path. Any component failure aborts the
// whole parse; no partially valid Ern is ever observable.
//
// The root segment is preserved verbatim (model.ParseRoot): the parser
// never regenerates a unique suffix, because doing so would break the
// round-trip guarantee parse(format(e)) == e.
package parser

import (
	"fmt"
	"strings"

	"dirpx.dev/ern/model"
)

// fieldCount is the number of ':'-separated fields in a canonical string:
// the prefix token plus the four positional components.
const fieldCount = 5

// ErnParser decodes one canonical ERN string.
type ErnParser struct {
	input string
}

// New returns an ErnParser for input.
func New(input string) *ErnParser {
	return &ErnParser{input: input}
}

// Parse is shorthand for New(input).Parse().
func Parse(input string) (model.Ern, error) {
	return New(input).Parse()
}

// Parse decodes the parser's input into a model.Ern, enforcing the
// grammar strictly. Structural failures (wrong field count, wrong prefix)
// wrap model.ErrInvalidFormat; component failures propagate unchanged from
// the component constructors.
func (p *ErnParser) Parse() (model.Ern, error) {
	fields := strings.SplitN(p.input, ":", fieldCount)
	if len(fields) != fieldCount || fields[0] != model.Prefix {
		return model.Ern{}, fmt.Errorf("ern(parser): %q is not a canonical ERN string: %w", p.input, model.ErrInvalidFormat)
	}

	domain, err := model.NewDomain(fields[1])
	if err != nil {
		return model.Ern{}, err
	}
	category, err := model.NewCategory(fields[2])
	if err != nil {
		return model.Ern{}, err
	}
	account, err := model.NewAccount(fields[3])
	if err != nil {
		return model.Ern{}, err
	}

	// The final field is the root segment, optionally followed by the
	// hierarchical path.
	rootPath := strings.SplitN(fields[4], "/", 2)
	root, err := model.ParseRoot(rootPath[0])
	if err != nil {
		return model.Ern{}, err
	}

	var parts model.Parts
	if len(rootPath) == 2 {
		parts, err = model.ParseParts(strings.Split(rootPath[1], "/")...)
		if err != nil {
			return model.Ern{}, err
		}
	}

	return model.NewErn(domain, category, account, root, parts), nil
}
