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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dirpx.dev/ext/apis"
)

var (
	// ErrInvalidPolicy is returned for an unknown overwrite policy spelling.
	ErrInvalidPolicy = errors.New("ext(config): invalid overwrite policy")
	// ErrInvalidNaming is returned for an unknown mixin naming spelling.
	ErrInvalidNaming = errors.New("ext(config): invalid mixin naming")
)

// File is the YAML form of apis.Config. Omitted fields keep their defaults.
//
//	overwrite: warn
//	mixin:
//	  replace: false
//	  naming: snake
//	max_unwrap: 4
type File struct {
	Overwrite string    `yaml:"overwrite,omitempty"`
	Mixin     MixinFile `yaml:"mixin,omitempty"`
	MaxUnwrap *int      `yaml:"max_unwrap,omitempty"`
}

// MixinFile holds the mixin section of File.
type MixinFile struct {
	Replace *bool  `yaml:"replace,omitempty"`
	Naming  string `yaml:"naming,omitempty"`
}

// Load decodes a YAML document from r into an apis.Config.
// An empty document yields DefaultConfig.
func Load(r io.Reader) (apis.Config, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return apis.Config{}, fmt.Errorf("ext(config): decode: %w", err)
	}
	return f.Config()
}

// LoadFile reads and decodes the YAML file at path.
func LoadFile(path string) (apis.Config, error) {
	fh, err := os.Open(path)
	if err != nil {
		return apis.Config{}, err
	}
	defer fh.Close()
	return Load(fh)
}

// Config converts f into an apis.Config on top of the defaults.
func (f File) Config() (apis.Config, error) {
	opts := make([]Option, 0, 4)
	if f.Overwrite != "" {
		p, err := ParsePolicy(f.Overwrite)
		if err != nil {
			return apis.Config{}, err
		}
		opts = append(opts, WithOverwrite(p))
	}
	if f.Mixin.Replace != nil {
		opts = append(opts, WithMixinReplace(*f.Mixin.Replace))
	}
	if f.Mixin.Naming != "" {
		n, err := ParseNaming(f.Mixin.Naming)
		if err != nil {
			return apis.Config{}, err
		}
		opts = append(opts, WithMixinNaming(n))
	}
	if f.MaxUnwrap != nil {
		opts = append(opts, WithMaxUnwrap(*f.MaxUnwrap))
	}
	return NewConfig(opts...), nil
}

// ParsePolicy parses "allow", "warn" or "deny" (case-insensitive).
func ParsePolicy(s string) (apis.OverwritePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "allow":
		return apis.OverwriteAllow, nil
	case "warn":
		return apis.OverwriteWarn, nil
	case "deny":
		return apis.OverwriteDeny, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

// ParseNaming parses "exact", "lower" or "snake" (case-insensitive).
func ParseNaming(s string) (apis.Naming, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return apis.NamingExact, nil
	case "lower":
		return apis.NamingLower, nil
	case "snake":
		return apis.NamingSnake, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNaming, s)
}
