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

package reflect_test

import (
	"errors"
	"reflect"
	"testing"

	uref "dirpx.dev/ext/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}

func TestNormalize_BasicContainers(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"plain", reflect.TypeOf(A{}), reflect.TypeOf(A{})},
		{"ptr", reflect.TypeOf(&A{}), reflect.TypeOf(A{})},
		{"slice", reflect.TypeOf([]A{}), reflect.TypeOf(A{})},
		{"array", reflect.TypeOf([2]A{}), reflect.TypeOf(A{})},
		{"chan", reflect.TypeOf((chan A)(nil)), reflect.TypeOf(A{})},
		{"map elem", reflect.TypeOf(map[string]A{}), reflect.TypeOf(A{})},
		{"ptr to slice of ptr", reflect.TypeOf(&[]*A{}), reflect.TypeOf(A{})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, 8)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	if _, err := uref.Normalize(nil, 8); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("nil type: want ErrReflectNilType, got %v", err)
	}
	if _, err := uref.Normalize(reflect.TypeOf(struct{}{}), 8); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("anonymous struct: want ErrReflectTypeNotNamed, got %v", err)
	}
	if _, err := uref.Normalize(reflect.TypeOf(func() {}), 8); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("func: want ErrReflectTypeNotNamed, got %v", err)
	}
}

func TestNormalize_MaxUnwrapLimit(t *testing.T) {
	typ := reflect.TypeOf((***A)(nil))
	if _, err := uref.Normalize(typ, 2); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("MaxUnwrap=2: want ErrReflectTypeNotNamed, got %v", err)
	}
	if got, err := uref.Normalize(typ, 3); err != nil || got != reflect.TypeOf(A{}) {
		t.Fatalf("MaxUnwrap=3: got (%v,%v), want (A,nil)", got, err)
	}
	// zero falls back to the default depth
	if got, err := uref.Normalize(typ, 0); err != nil || got != reflect.TypeOf(A{}) {
		t.Fatalf("MaxUnwrap=0: got (%v,%v), want (A,nil)", got, err)
	}
}
