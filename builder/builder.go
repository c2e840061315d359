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

// Package builder provides a fluent, validating path to constructing a
// model.Ern from independently supplied components.
//
// Every setter applies the same validation as the direct component
// constructors and does so eagerly: the first invalid value sticks, the
// remaining calls become no-ops, and Build reports that first error.
// Fields never supplied fall back to the configured defaults, and a root
// suffix is generated exactly once, inside Build. No Ern escapes
// construction with an invalid component.
package builder

import (
	"dirpx.dev/ern/apis"
	"dirpx.dev/ern/config"
	"dirpx.dev/ern/model"
	"dirpx.dev/ern/uid"
)

// Builder accumulates ERN components. The zero value is not ready for
// use; obtain instances through New. A Builder is not safe for concurrent
// use; it is intended as a short-lived, single-goroutine value.
type Builder struct {
	cfg apis.Config
	gen apis.Generator

	domain   model.Domain
	category model.Category
	account  model.Account
	root     model.Root
	rootBase string
	parts    model.Parts

	err error
}

// Option configures a Builder during construction.
type Option func(*Builder)

// WithConfig sets the defaults used for fields never supplied.
func WithConfig(cfg apis.Config) Option {
	return func(b *Builder) {
		b.cfg = cfg
	}
}

// WithGenerator sets the suffix generator used when Build has to create a
// root. A nil g leaves the process-wide default in place.
func WithGenerator(g apis.Generator) Option {
	return func(b *Builder) {
		if g != nil {
			b.gen = g
		}
	}
}

// New returns a Builder seeded with the default configuration and the
// process-wide default generator.
func New(opts ...Option) *Builder {
	b := &Builder{
		cfg: config.DefaultConfig(),
		gen: uid.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Domain supplies the domain component.
func (b *Builder) Domain(value string) *Builder {
	if b.err != nil {
		return b
	}
	b.domain, b.err = model.NewDomain(value)
	return b
}

// Category supplies the category component.
func (b *Builder) Category(value string) *Builder {
	if b.err != nil {
		return b
	}
	b.category, b.err = model.NewCategory(value)
	return b
}

// Account supplies the account component.
func (b *Builder) Account(value string) *Builder {
	if b.err != nil {
		return b
	}
	b.account, b.err = model.NewAccount(value)
	return b
}

// Root supplies the base name for the root component. The unique suffix
// is generated later, in Build, so calling Root repeatedly does not burn
// generator tokens.
func (b *Builder) Root(base string) *Builder {
	if b.err != nil {
		return b
	}
	if err := model.ValidateRootBase(base); err != nil {
		b.err = err
		return b
	}
	b.rootBase = base
	return b
}

// ParsedRoot supplies a complete root carried over from elsewhere, e.g.
// one decoded from a canonical string. Build will not generate a suffix
// for it.
func (b *Builder) ParsedRoot(root model.Root) *Builder {
	if b.err != nil {
		return b
	}
	b.root = root
	return b
}

// Part appends one path segment.
func (b *Builder) Part(value string) *Builder {
	if b.err != nil {
		return b
	}
	p, err := model.NewPart(value)
	if err != nil {
		b.err = err
		return b
	}
	b.parts = b.parts.Add(p)
	return b
}

// Parts appends several path segments, in order. Validation is atomic:
// one invalid value fails the call and none of the values are appended.
func (b *Builder) Parts(values ...string) *Builder {
	if b.err != nil {
		return b
	}
	ps, err := model.ParseParts(values...)
	if err != nil {
		b.err = err
		return b
	}
	b.parts = b.parts.Concat(ps)
	return b
}

// Build assembles the Ern. Fields never supplied take their configured
// defaults; when no complete root was supplied, one is generated from the
// supplied (or default) base name. Build returns the first error recorded
// by any setter, or the root generation error, if any.
func (b *Builder) Build() (model.Ern, error) {
	if b.err != nil {
		return model.Ern{}, b.err
	}

	domain := b.domain
	if domain.IsZero() {
		d, err := model.NewDomain(b.cfg.Domain)
		if err != nil {
			return model.Ern{}, err
		}
		domain = d
	}
	category := b.category
	if category.IsZero() {
		c, err := model.NewCategory(b.cfg.Category)
		if err != nil {
			return model.Ern{}, err
		}
		category = c
	}
	account := b.account
	if account.IsZero() {
		a, err := model.NewAccount(b.cfg.Account)
		if err != nil {
			return model.Ern{}, err
		}
		account = a
	}

	root := b.root
	if root.IsZero() {
		base := b.rootBase
		if base == "" {
			base = b.cfg.RootBase
		}
		r, err := model.NewRoot(base, b.gen)
		if err != nil {
			return model.Ern{}, err
		}
		root = r
	}

	return model.NewErn(domain, category, account, root, b.parts), nil
}
