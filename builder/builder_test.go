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

package builder_test

import (
	"errors"
	"strings"
	"testing"

	"dirpx.dev/ern/builder"
	"dirpx.dev/ern/config"
	"dirpx.dev/ern/model"
	"dirpx.dev/ern/parser"
)

// seqGen hands out a scripted token sequence for deterministic roots.
type seqGen struct {
	tokens []string
	next   int
}

func (g *seqGen) Next() (string, error) {
	if g.next >= len(g.tokens) {
		return "", errors.New("seqGen: out of tokens")
	}
	tok := g.tokens[g.next]
	g.next++
	return tok, nil
}

// TestBuild_AllFields drives the full fluent path and checks the
// canonical result.
func TestBuild_AllFields(t *testing.T) {
	e, err := builder.New(builder.WithGenerator(&seqGen{tokens: []string{"TOK"}})).
		Domain("custom").
		Category("service").
		Account("account123").
		Root("orders").
		Part("resource").
		Part("subresource").
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := "ern:custom:service:account123:orders-TOK/resource/subresource"
	if got := e.String(); got != want {
		t.Fatalf("String mismatch: got=%q want=%q", got, want)
	}
}

// TestBuild_Defaults asserts fields never supplied take the configured
// defaults, and that the root still gets a generated suffix.
func TestBuild_Defaults(t *testing.T) {
	e, err := builder.New(builder.WithGenerator(&seqGen{tokens: []string{"TOK"}})).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := e.Domain().String(); got != config.DefaultDomain {
		t.Fatalf("Domain mismatch: got=%q want=%q", got, config.DefaultDomain)
	}
	if got := e.Category().String(); got != config.DefaultCategory {
		t.Fatalf("Category mismatch: got=%q want=%q", got, config.DefaultCategory)
	}
	if got := e.Account().String(); got != config.DefaultAccount {
		t.Fatalf("Account mismatch: got=%q want=%q", got, config.DefaultAccount)
	}
	if got := e.Root().Base(); got != config.DefaultRootBase {
		t.Fatalf("Root base mismatch: got=%q want=%q", got, config.DefaultRootBase)
	}
	if got := e.Root().Suffix(); got != "TOK" {
		t.Fatalf("Root suffix mismatch: got=%q want=%q", got, "TOK")
	}
}

// TestBuild_CustomConfig asserts WithConfig overrides the defaults.
func TestBuild_CustomConfig(t *testing.T) {
	cfg := config.NewConfig(
		config.WithDomain("tenant-a"),
		config.WithCategory("queue"),
	)
	e, err := builder.New(
		builder.WithConfig(cfg),
		builder.WithGenerator(&seqGen{tokens: []string{"TOK"}}),
	).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := e.Domain().String(); got != "tenant-a" {
		t.Fatalf("Domain mismatch: got=%q", got)
	}
	if got := e.Category().String(); got != "queue" {
		t.Fatalf("Category mismatch: got=%q", got)
	}
	if got := e.Account().String(); got != config.DefaultAccount {
		t.Fatalf("Account mismatch: got=%q", got)
	}
}

// TestBuild_FirstErrorWins asserts the first invalid component is the one
// reported, later setters are no-ops, and no Ern is produced.
func TestBuild_FirstErrorWins(t *testing.T) {
	e, err := builder.New(builder.WithGenerator(&seqGen{tokens: []string{"TOK"}})).
		Domain("custom").
		Category(""). // first failure
		Account("").  // masked by the first
		Part("bad:part").
		Build()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, model.ErrEmptyValue) {
		t.Fatalf("expected ErrEmptyValue, got %v", err)
	}
	var cerr *model.ComponentError
	if !errors.As(err, &cerr) || cerr.Component != "Category" {
		t.Fatalf("expected the Category failure, got %v", err)
	}
	if !e.IsZero() {
		t.Fatalf("expected zero Ern on failure, got %q", e)
	}
}

// TestBuild_InvalidRootBase covers eager validation in Root.
func TestBuild_InvalidRootBase(t *testing.T) {
	_, err := builder.New().Root("a/b").Build()
	if !errors.Is(err, model.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

// TestBuild_ParsedRoot asserts a carried-over root is used verbatim with
// no generator call.
func TestBuild_ParsedRoot(t *testing.T) {
	r, err := model.ParseRoot("orders-LEGACY")
	if err != nil {
		t.Fatalf("ParseRoot failed: %v", err)
	}

	// The scripted generator has no tokens: any generation attempt fails.
	e, err := builder.New(builder.WithGenerator(&seqGen{})).
		ParsedRoot(r).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := e.Root().Name(); got != "orders-LEGACY" {
		t.Fatalf("Root mismatch: got=%q", got)
	}
}

// TestBuild_PartsAtomic asserts the variadic Parts setter validates
// atomically.
func TestBuild_PartsAtomic(t *testing.T) {
	_, err := builder.New(builder.WithGenerator(&seqGen{tokens: []string{"TOK"}})).
		Parts("ok", "bad/part", "alsook").
		Build()
	if !errors.Is(err, model.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

// TestBuild_RoundTrip pushes a built Ern through the parser and back.
func TestBuild_RoundTrip(t *testing.T) {
	e, err := builder.New().
		Domain("custom").
		Category("service").
		Account("account123").
		Root("orders").
		Parts("eu", "batch-7").
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.HasPrefix(e.String(), "ern:custom:service:account123:orders-") {
		t.Fatalf("unexpected canonical form: %q", e)
	}

	back, err := parser.Parse(e.String())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !back.Equal(e) {
		t.Fatalf("round trip mismatch: got=%q want=%q", back, e)
	}
}
