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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/ext/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping containers)
	// does not contain a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no name")
)

// Normalize unwraps containers and returns the nearest named inner type, or
// an error if none is found. The result is the key of a host class: *T, []T
// and T all share the extension table of T.
//
// Unwrapping policy:
//   - ptr/slice/array/chan/map -> Elem()
//   - default: if t.Name() != "", return t; otherwise ErrReflectTypeNotNamed.
//
// If maxUnwrap <= 0, config.DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, maxUnwrap int) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; t != nil && i < maxUnwrap; i++ {
		if t.Name() != "" {
			return t, nil
		}
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan, reflect.Map:
			t = t.Elem()
		default:
			return nil, ErrReflectTypeNotNamed
		}
	}

	// After reaching max depth, ensure we ended on a named type.
	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}
