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

var (
	// ErrNilFunc is returned when a nil callable is provided.
	ErrNilFunc = errors.New("reflect: nil func provided")
	// ErrUnsupportedFunc is returned for values that are not funcs.
	ErrUnsupportedFunc = errors.New("reflect: unsupported func")
	// ErrBadArguments is returned when call arguments do not match the
	// parameters of an adapted func.
	ErrBadArguments = errors.New("reflect: arguments do not match func parameters")
)

var (
	funcType  = reflect.TypeOf(apis.Func(nil))
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// Adapt turns fn into an apis.Func.
//
// An apis.Func, or any func whose type is convertible to it, is returned as
// is and stays receiver-aware. Any other func is wrapped by reflection and
// invoked with the call arguments only; the receiver is ignored.
//
// A trailing error result becomes the returned error. The remaining results
// map to nil (none), the value itself (one) or an []any (several).
func Adapt(fn any) (apis.Func, error) {
	switch f := fn.(type) {
	case nil:
		return nil, ErrNilFunc
	case apis.Func:
		if f == nil {
			return nil, ErrNilFunc
		}
		return f, nil
	case func(any, ...any) (any, error):
		if f == nil {
			return nil, ErrNilFunc
		}
		return f, nil
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T is not a func", ErrUnsupportedFunc, fn)
	}
	if v.IsNil() {
		return nil, ErrNilFunc
	}
	return AdaptValue(v)
}

// AdaptValue is Adapt for a func already held in a reflect.Value,
// such as a bound method value.
func AdaptValue(v reflect.Value) (apis.Func, error) {
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s is not a func", ErrUnsupportedFunc, v.Type())
	}
	t := v.Type()
	if t.ConvertibleTo(funcType) {
		return v.Convert(funcType).Interface().(apis.Func), nil
	}
	return func(_ any, args ...any) (any, error) {
		in, err := arguments(t, args)
		if err != nil {
			return nil, err
		}
		return results(t, v.Call(in))
	}, nil
}

// arguments converts args into call values for t. Variadic funcs receive
// their trailing arguments individually; reflect builds the slice.
func arguments(t reflect.Type, args []any) ([]reflect.Value, error) {
	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: %s wants at least %d, got %d", ErrBadArguments, t, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: %s wants %d, got %d", ErrBadArguments, t, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if t.IsVariadic() && i >= n-1 {
			pt = t.In(n - 1).Elem()
		} else {
			pt = t.In(i)
		}
		av, err := argument(a, pt)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %v", ErrBadArguments, i, err)
		}
		in[i] = av
	}
	return in, nil
}

// argument converts a single value to parameter type pt.
// nil becomes the zero value of nillable parameter types.
func argument(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch pt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", pt)
	}
	av := reflect.ValueOf(a)
	if !av.Type().AssignableTo(pt) {
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", av.Type(), pt)
	}
	return av, nil
}

// results maps call results onto (any, error).
func results(t reflect.Type, out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && t.Out(n-1) == errorType {
		err = asError(out[n-1])
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	vals := make([]any, len(out))
	for i, o := range out {
		vals[i] = o.Interface()
	}
	return vals, err
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
