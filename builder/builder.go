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

package builder

import (
	"github.com/rs/zerolog"

	"dirpx.dev/ext/apis"
	"dirpx.dev/ext/registry"
	"dirpx.dev/ext/resolver"
	"dirpx.dev/ext/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds an empty extension table for owner.
func (b *builder) BuildRegistry(cfg apis.Config, owner string, log zerolog.Logger) apis.Registry {
	return registry.New(cfg, owner, log)
}

// BuildResolver builds the call resolver for class over reg.
func (b *builder) BuildResolver(cfg apis.Config, class string, reg apis.Registry, log zerolog.Logger) apis.Resolver {
	return resolver.New(class, reg, log)
}

// BuildMixer builds the default mixin chain: Provider -> Reflect.
func (b *builder) BuildMixer(cfg apis.Config, log zerolog.Logger) apis.Mixer {
	return strategy.NewMixer(cfg, log,
		strategy.NewProviderStrategy(),
		strategy.NewReflectStrategy(),
	)
}
