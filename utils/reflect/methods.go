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
	"fmt"
	"reflect"

	"dirpx.dev/ext/apis"
)

// ErrNilValue is returned when methods are requested from a nil value
// or a nil pointer.
var ErrNilValue = errors.New("reflect: cannot introspect nil value")

// Methods returns the exported methods in the method set of v's dynamic type,
// bound to v and adapted to apis.Func, in lexical order. Unexported methods
// are not part of the reflected method set and are never returned.
//
// Methods with pointer receivers are only visible when v is a pointer.
//
// A method taking no arguments and returning a single func is a factory: it
// is called once and the func it returns is registered in its place, so a
// factory returning apis.Func contributes a receiver-aware member.
func Methods(v any) ([]apis.Member, error) {
	if v == nil {
		return nil, ErrNilValue
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil, fmt.Errorf("%w: %s", ErrNilValue, rv.Type())
	}

	rt := rv.Type()
	out := make([]apis.Member, 0, rt.NumMethod())
	for i := 0; i < rt.NumMethod(); i++ {
		m := rt.Method(i)
		mv := rv.Method(i)
		var (
			fn  apis.Func
			err error
		)
		if isFactory(mv.Type()) {
			fn, err = Adapt(mv.Call(nil)[0].Interface())
		} else {
			fn, err = AdaptValue(mv)
		}
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", TypeName(rt), m.Name, err)
		}
		out = append(out, apis.Member{Name: m.Name, Func: fn})
	}
	return out, nil
}

func isFactory(t reflect.Type) bool {
	return t.NumIn() == 0 && t.NumOut() == 1 && t.Out(0).Kind() == reflect.Func
}
