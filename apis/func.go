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

// Func is a receiver-aware extension callable.
//
// Static resolution calls it with recv == nil; instance resolution passes the
// calling instance. Funcs close over no hidden receiver state, so binding an
// extension to an instance is plain argument passing.
type Func func(recv any, args ...any) (any, error)

// Provider is implemented by mixin sources that describe their own
// extensions. When a source implements Provider, its map is imported instead
// of the reflected method set. Values follow the same rules as Extend:
// a Func (or func(any, ...any) (any, error)) is receiver-aware, any other
// func is invoked as-is.
type Provider interface {
	Extensions() map[string]any
}

// Namer lets a host type choose the class name used in errors and logs.
type Namer interface {
	EntityName() string
}
