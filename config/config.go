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

package config

import (
	"dirpx.dev/ern/apis"
)

const (
	// DefaultDomain is the default for Domain: the namespace an identifier
	// belongs to when none is given.
	DefaultDomain = "acton"
	// DefaultCategory is the default for Category.
	DefaultCategory = "entity"
	// DefaultAccount is the default for Account.
	DefaultAccount = "account"
	// DefaultRootBase is the default base name for generated roots.
	DefaultRootBase = "root"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure every field is usable; empty fields fall back to defaults.
	return clamp(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Domain:   DefaultDomain,
		Category: DefaultCategory,
		Account:  DefaultAccount,
		RootBase: DefaultRootBase,
	}
}

// clamp replaces empty fields with their defaults so that a Config obtained
// through NewConfig can always produce valid components.
func clamp(cfg apis.Config) apis.Config {
	if cfg.Domain == "" {
		cfg.Domain = DefaultDomain
	}
	if cfg.Category == "" {
		cfg.Category = DefaultCategory
	}
	if cfg.Account == "" {
		cfg.Account = DefaultAccount
	}
	if cfg.RootBase == "" {
		cfg.RootBase = DefaultRootBase
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithDomain sets the default domain. An empty value resets to the default.
func WithDomain(domain string) Option {
	return func(c *apis.Config) {
		c.Domain = domain
	}
}

// WithCategory sets the default category. An empty value resets to the default.
func WithCategory(category string) Option {
	return func(c *apis.Config) {
		c.Category = category
	}
}

// WithAccount sets the default account. An empty value resets to the default.
func WithAccount(account string) Option {
	return func(c *apis.Config) {
		c.Account = account
	}
}

// WithRootBase sets the default root base name. An empty value resets to the default.
func WithRootBase(base string) Option {
	return func(c *apis.Config) {
		c.RootBase = base
	}
}
