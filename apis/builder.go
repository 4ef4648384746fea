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

package apis

import "github.com/rs/zerolog"

// Builder composes the per-class pieces from a Config.
type Builder interface {
	// BuildRegistry constructs an empty extension table for the class owner.
	BuildRegistry(cfg Config, owner string, log zerolog.Logger) Registry
	// BuildResolver constructs a Resolver over reg for the class named class.
	BuildResolver(cfg Config, class string, reg Registry, log zerolog.Logger) Resolver
	// BuildMixer constructs the mixin strategy chain.
	BuildMixer(cfg Config, log zerolog.Logger) Mixer
}
