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
)

// Prefix is the literal grammar token identifying a canonical ERN string.
const Prefix = "ern"

// Ern is an Entity Resource Name: the aggregate identifier combining
// Domain, Category, Account, Root and Parts.
//
// An Ern is an immutable value. Every "modification" method (AddPart,
// WithRoot, WithParts, Parent, Join) returns a new Ern and never mutates
// the receiver. Equality is structural over all five fields; ordering is
// defined by the Root alone, making Erns naturally sortable by creation
// time regardless of their other fields.
//
// The zero Ern is not a valid identifier; construct values through NewErn,
// the builder, the parser, or the package-level ern constructors.
type Ern struct {
	domain   Domain
	category Category
	account  Account
	root     Root
	parts    Parts
}

// NewErn returns an Ern with the given components. Every argument has
// already been validated by its own constructor, so aggregation never
// fails.
func NewErn(domain Domain, category Category, account Account, root Root, parts Parts) Ern {
	return Ern{
		domain:   domain,
		category: category,
		account:  account,
		root:     root,
		parts:    NewParts(parts...),
	}
}

// Domain returns the domain component.
func (e Ern) Domain() Domain {
	return e.domain
}

// Category returns the category component.
func (e Ern) Category() Category {
	return e.category
}

// Account returns the account component.
func (e Ern) Account() Account {
	return e.account
}

// Root returns the root component.
func (e Ern) Root() Root {
	return e.root
}

// Parts returns a copy of the hierarchical path suffix.
func (e Ern) Parts() Parts {
	return NewParts(e.parts...)
}

// WithRoot returns a new Ern sharing the receiver's domain, category,
// account and parts but carrying root instead. It re-roots an existing
// logical resource lineage while preserving its path.
func (e Ern) WithRoot(root Root) Ern {
	e.root = root
	return e
}

// AddPart validates value and returns a new Ern with the path extended by
// one segment.
func (e Ern) AddPart(value string) (Ern, error) {
	p, err := NewPart(value)
	if err != nil {
		return Ern{}, err
	}
	e.parts = e.parts.Add(p)
	return e, nil
}

// WithParts validates values and returns a new Ern with the entire path
// replaced. Validation is atomic: a single invalid value fails the call
// and the receiver's path is never partially replaced.
func (e Ern) WithParts(values ...string) (Ern, error) {
	ps, err := ParseParts(values...)
	if err != nil {
		return Ern{}, err
	}
	e.parts = ps
	return e, nil
}

// IsChildOf reports whether e names a resource strictly below other:
// domain, category, account and root are identical and other's path is a
// strict prefix of e's.
func (e Ern) IsChildOf(other Ern) bool {
	return e.domain.Equal(other.domain) &&
		e.category.Equal(other.category) &&
		e.account.Equal(other.account) &&
		e.root.Equal(other.root) &&
		len(other.parts) < len(e.parts) &&
		e.parts.HasPrefix(other.parts)
}

// Parent returns the Ern naming the next level up: the receiver with its
// last path segment stripped. The second return is false when the path is
// empty, i.e. a root-level identifier has no parent.
func (e Ern) Parent() (Ern, bool) {
	if len(e.parts) == 0 {
		return Ern{}, false
	}
	e.parts = NewParts(e.parts[:len(e.parts)-1]...)
	return e, true
}

// Join composes a hierarchical path from parent and child: the result
// keeps the receiver's domain, category, account and root, and its path is
// the receiver's path followed by child's. The child's identity fields are
// discarded; the operation is intentionally asymmetric.
func (e Ern) Join(child Ern) Ern {
	e.parts = e.parts.Concat(child.parts)
	return e
}

// Equal reports structural equality over all five fields.
func (e Ern) Equal(other Ern) bool {
	return e.domain.Equal(other.domain) &&
		e.category.Equal(other.category) &&
		e.account.Equal(other.account) &&
		e.root.Equal(other.root) &&
		e.parts.Equal(other.parts)
}

// Compare orders Erns by their root components alone; see Root.Compare.
func (e Ern) Compare(other Ern) int {
	return e.root.Compare(other.root)
}

// IsZero reports whether e is the zero value.
func (e Ern) IsZero() bool {
	return e.root.IsZero()
}

// String returns the canonical serialization:
//
//	ern:<domain>:<category>:<account>:<root>[/<parts>]
//
// where the path suffix appears only when Parts is non-empty.
func (e Ern) String() string {
	var b strings.Builder
	b.WriteString(Prefix)
	b.WriteString(fieldDelimiter)
	b.WriteString(e.domain.String())
	b.WriteString(fieldDelimiter)
	b.WriteString(e.category.String())
	b.WriteString(fieldDelimiter)
	b.WriteString(e.account.String())
	b.WriteString(fieldDelimiter)
	b.WriteString(e.root.Name())
	if len(e.parts) > 0 {
		b.WriteString(pathDelimiter)
		b.WriteString(e.parts.String())
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler with the canonical form.
func (e Ern) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// MarshalYAML implements yaml.Marshaler with the canonical form.
//
// Decoding a canonical string back into an Ern goes through the parser
// package (or ern.Parse); the grammar lives there, not here.
func (e Ern) MarshalYAML() (any, error) {
	return e.String(), nil
}
