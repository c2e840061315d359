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

package ern

import (
	"fmt"

	"dirpx.dev/ern/apis"
	"dirpx.dev/ern/config"
	"dirpx.dev/ern/model"
	"dirpx.dev/ern/parser"
	"dirpx.dev/ern/uid"
)

// Parse decodes a canonical ERN string. The root segment, including any
// generated suffix embedded in the string, is preserved verbatim, so
// Parse(e.String()) always equals e.
func Parse(input string) (model.Ern, error) {
	return parser.Parse(input)
}

// MustParse is like Parse but panics on error. Use it for literals known
// to be valid at compile time.
func MustParse(input string) model.Ern {
	e, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return e
}

// New validates each raw component, generates a fresh root from rootBase
// using the process-wide generator, and assembles the Ern. The first
// invalid component aborts construction.
func New(domain, category, account, rootBase string, parts ...string) (model.Ern, error) {
	d, err := model.NewDomain(domain)
	if err != nil {
		return model.Ern{}, err
	}
	c, err := model.NewCategory(category)
	if err != nil {
		return model.Ern{}, err
	}
	a, err := model.NewAccount(account)
	if err != nil {
		return model.Ern{}, err
	}
	r, err := NewRoot(rootBase)
	if err != nil {
		return model.Ern{}, err
	}
	ps, err := model.ParseParts(parts...)
	if err != nil {
		return model.Ern{}, err
	}
	return model.NewErn(d, c, a, r, ps), nil
}

// NewRoot generates a Root from base using the process-wide generator.
func NewRoot(base string) (model.Root, error) {
	return model.NewRoot(base, uid.Default())
}

// Default returns an Ern built entirely from defaults: default domain,
// category and account, an empty path, and a root generated from the
// default base name at the moment of the call. Two Default values are
// therefore never equal.
//
// Default panics only when the generator fails, which for the stock
// generator means the process entropy source is broken.
func Default() model.Ern {
	return model.NewErn(
		model.DefaultDomain(),
		model.DefaultCategory(),
		model.DefaultAccount(),
		mustDefaultRoot(),
		nil,
	)
}

// WithRoot returns an Ern with a root generated from base and every other
// field at its default.
func WithRoot(base string) (model.Ern, error) {
	r, err := NewRoot(base)
	if err != nil {
		return model.Ern{}, err
	}
	return model.NewErn(model.DefaultDomain(), model.DefaultCategory(), model.DefaultAccount(), r, nil), nil
}

// WithDomain returns an Ern with the given domain and every other field
// at its default.
func WithDomain(value string) (model.Ern, error) {
	d, err := model.NewDomain(value)
	if err != nil {
		return model.Ern{}, err
	}
	return model.NewErn(d, model.DefaultCategory(), model.DefaultAccount(), mustDefaultRoot(), nil), nil
}

// WithCategory returns an Ern with the given category and every other
// field at its default.
func WithCategory(value string) (model.Ern, error) {
	c, err := model.NewCategory(value)
	if err != nil {
		return model.Ern{}, err
	}
	return model.NewErn(model.DefaultDomain(), c, model.DefaultAccount(), mustDefaultRoot(), nil), nil
}

// WithAccount returns an Ern with the given account and every other field
// at its default.
func WithAccount(value string) (model.Ern, error) {
	a, err := model.NewAccount(value)
	if err != nil {
		return model.Ern{}, err
	}
	return model.NewErn(model.DefaultDomain(), model.DefaultCategory(), a, mustDefaultRoot(), nil), nil
}

// WithNewRoot returns an Ern sharing e's domain, category, account and
// parts, but re-rooted on a root freshly generated from base. It starts a
// new lineage for an existing logical resource while preserving its path.
func WithNewRoot(e model.Ern, base string) (model.Ern, error) {
	r, err := NewRoot(base)
	if err != nil {
		return model.Ern{}, err
	}
	return e.WithRoot(r), nil
}

// Generator returns the process-wide suffix generator.
func Generator() apis.Generator {
	return uid.Default()
}

// SetGenerator replaces the process-wide suffix generator; a nil value
// resets to the stock monotonic generator. Tests typically install a
// generator over a deterministic clock here.
func SetGenerator(g apis.Generator) {
	uid.SetDefault(g)
}

// mustDefaultRoot generates a root from the default base name, panicking
// on generator failure (see Default).
func mustDefaultRoot() model.Root {
	r, err := NewRoot(config.DefaultRootBase)
	if err != nil {
		panic(fmt.Errorf("ern: default root generation failed: %w", err))
	}
	return r
}
