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

package config_test

import (
	"testing"

	"dirpx.dev/ern/config"
)

// TestDefaultConfig asserts the documented defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if cfg.Domain != config.DefaultDomain {
		t.Fatalf("Domain mismatch: got=%q want=%q", cfg.Domain, config.DefaultDomain)
	}
	if cfg.Category != config.DefaultCategory {
		t.Fatalf("Category mismatch: got=%q want=%q", cfg.Category, config.DefaultCategory)
	}
	if cfg.Account != config.DefaultAccount {
		t.Fatalf("Account mismatch: got=%q want=%q", cfg.Account, config.DefaultAccount)
	}
	if cfg.RootBase != config.DefaultRootBase {
		t.Fatalf("RootBase mismatch: got=%q want=%q", cfg.RootBase, config.DefaultRootBase)
	}
}

// TestNewConfig_Options asserts each option lands on its field and
// untouched fields keep their defaults.
func TestNewConfig_Options(t *testing.T) {
	cfg := config.NewConfig(
		config.WithDomain("tenant-a"),
		config.WithAccount("acct-9"),
		config.WithRootBase("orders"),
	)
	if cfg.Domain != "tenant-a" {
		t.Fatalf("Domain mismatch: got=%q", cfg.Domain)
	}
	if cfg.Category != config.DefaultCategory {
		t.Fatalf("Category mismatch: got=%q", cfg.Category)
	}
	if cfg.Account != "acct-9" {
		t.Fatalf("Account mismatch: got=%q", cfg.Account)
	}
	if cfg.RootBase != "orders" {
		t.Fatalf("RootBase mismatch: got=%q", cfg.RootBase)
	}
}

// TestNewConfig_ClampsEmpty asserts empty option values reset to the
// defaults instead of leaking invalid components into construction.
func TestNewConfig_ClampsEmpty(t *testing.T) {
	cfg := config.NewConfig(
		config.WithDomain(""),
		config.WithCategory(""),
		config.WithAccount(""),
		config.WithRootBase(""),
	)
	if cfg != config.DefaultConfig() {
		t.Fatalf("empty options not clamped: %+v", cfg)
	}
}
