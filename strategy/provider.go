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

package strategy

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"

	"dirpx.dev/ext/apis"
	uref "dirpx.dev/ext/utils/reflect"
)

// NewProviderStrategy creates an apis.Strategy that imports the map of a
// source implementing apis.Provider.
func NewProviderStrategy() apis.Strategy {
	return &providerStrategy{}
}

// providerStrategy is the reflection-free fast path: a source that describes
// its own extensions is taken at its word. Names are used as given.
type providerStrategy struct{}

// Ensure providerStrategy implements apis.Strategy.
var _ apis.Strategy = (*providerStrategy)(nil)

// TryImport adapts every value of src.Extensions().
func (*providerStrategy) TryImport(src any, _ apis.Config) ([]apis.Member, bool, error) {
	p, ok := src.(apis.Provider)
	if !ok {
		return nil, false, nil
	}

	ext := p.Extensions()
	out := make([]apis.Member, 0, len(ext))
	for name, v := range ext {
		fn, err := uref.Adapt(v)
		if err != nil {
			return nil, true, fmt.Errorf("extension %q: %w", name, err)
		}
		out = append(out, apis.Member{Name: name, Func: fn})
	}
	sort.Slice(out, func(i, j int) bool {
		return natural.Less(out[i].Name, out[j].Name)
	})
	return out, true, nil
}
