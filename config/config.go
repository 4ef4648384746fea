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
	"dirpx.dev/ext/apis"
)

const (
	// DefaultOverwrite represents the default for Overwrite.
	// Re-registration silently replaces the previous entry.
	DefaultOverwrite = apis.OverwriteAllow
	// DefaultMixinReplace represents the default for MixinReplace.
	// When true, mixin members replace existing entries.
	DefaultMixinReplace = true
	// DefaultMixinNaming represents the default for MixinNaming.
	DefaultMixinNaming = apis.NamingExact
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Overwrite:    DefaultOverwrite,
		MixinReplace: DefaultMixinReplace,
		MixinNaming:  DefaultMixinNaming,
		MaxUnwrap:    DefaultMaxUnwrap,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithOverwrite sets the Overwrite policy.
func WithOverwrite(p apis.OverwritePolicy) Option {
	return func(c *apis.Config) {
		c.Overwrite = p
	}
}

// WithMixinReplace sets the MixinReplace option.
func WithMixinReplace(replace bool) Option {
	return func(c *apis.Config) {
		c.MixinReplace = replace
	}
}

// WithMixinNaming sets the MixinNaming option.
func WithMixinNaming(n apis.Naming) Option {
	return func(c *apis.Config) {
		c.MixinNaming = n
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}
