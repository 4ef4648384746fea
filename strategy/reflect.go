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
	"dirpx.dev/ext/apis"
	uref "dirpx.dev/ext/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that harvests the exported
// methods of a source via reflection.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. Every exported method in the
// source's method set becomes a member, bound to the source and named
// according to cfg.MixinNaming.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// TryImport handles every non-nil source.
func (reflectStrategy) TryImport(src any, cfg apis.Config) ([]apis.Member, bool, error) {
	if src == nil {
		return nil, false, nil
	}
	members, err := uref.Methods(src)
	if err != nil {
		return nil, true, err
	}
	for i := range members {
		members[i].Name = uref.MethodName(members[i].Name, cfg.MixinNaming)
	}
	return members, true, nil
}
