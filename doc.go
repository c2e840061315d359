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

// Package ern creates, validates, parses and formats Entity Resource
// Names: structured, hierarchical identifier strings that uniquely name
// resources within a distributed system.
//
// An ERN has the canonical form
//
//	ern:<domain>:<category>:<account>:<root>[/<part>[/<part>...]]
//
// where domain names the namespace or environment, category classifies
// the resource kind, account identifies the owner, root is the unique
// base identifier of the resource lineage, and the optional parts form a
// hierarchical path below the root.
//
// # Design
//
// The package is a thin facade over five implementation packages:
//
//   - model holds the typed components (Domain, Category, Account, Part,
//     Parts, Root) and the Ern aggregate. Every component is an immutable
//     value created through a validating constructor; every "modifying"
//     operation on an Ern returns a new value. Equality is structural;
//     ordering is defined by the root alone, so Erns sort by creation
//     time regardless of their other fields.
//
//   - uid generates the unique suffix attached to every freshly created
//     root. The stock generator combines a millisecond clock reading with
//     monotonic entropy (ULID), so suffixes are globally unique and
//     strictly increasing even for concurrent creations within the same
//     millisecond. The clock is an interface, and the process-wide
//     default generator can be swapped for a deterministic one in tests.
//
//   - parser decodes a canonical string back into the same aggregate the
//     constructors produce. Parsing preserves the root suffix embedded in
//     the string rather than generating a new one; both construction
//     paths converge on the same value and the same serialization, which
//     is what makes Parse(e.String()) == e hold.
//
//   - builder offers a fluent, validating construction path for callers
//     assembling an Ern from scattered inputs, with configured defaults
//     for fields never supplied.
//
//   - apis and config carry the shared contracts (Generator, Clock,
//     Config) and the default component values.
//
// # Usage
//
// Construct programmatically:
//
//	e, err := ern.New("custom", "service", "account123", "orders", "eu", "batch-7")
//	// e.String() -> "ern:custom:service:account123:orders-01J9Z...J4/eu/batch-7"
//
// or parse an existing canonical string:
//
//	e, err := ern.Parse("ern:custom:service:account123:root/resource/subresource")
//
// and derive related identifiers without mutating anything:
//
//	child, err := e.AddPart("leaf")
//	parent, ok := child.Parent()
//	scoped := parent.Join(child)
//
// # Concurrency
//
// All identifier types are immutable values: they can be shared freely
// across goroutines without synchronization. The only concurrency-
// sensitive machinery is suffix generation, which is serialized inside
// the generator; see package uid. No operation in this module blocks,
// suspends, or performs I/O.
//
// # Errors
//
// Validation fails fast: the first invalid component aborts a
// construction or parse, and no partially valid Ern is ever observable.
// Failures wrap two sentinel kinds — model.ErrEmptyValue for empty
// components and model.ErrInvalidFormat for reserved delimiters or a
// malformed canonical string — and carry the component name and offending
// value for diagnostics.
package ern
