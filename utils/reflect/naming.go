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
	"path"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/ext/apis"
)

// typeNameCache caches TypeName results by type.
var typeNameCache sync.Map // key: reflect.Type, val: string

// TypeName returns a stable "pkg.Type" name for t. Generic instantiation
// parameters are stripped and builtin types keep their bare name.
// A nil type yields "<nil>"; an unnamed type yields its reflect string.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if v, ok := typeNameCache.Load(t); ok {
		return v.(string)
	}

	name := t.String()
	if base, err := Normalize(t, 0); err == nil {
		name = stripTypeParams(base.Name())
		if p := base.PkgPath(); p != "" {
			name = path.Base(p) + "." + name
		}
	}

	typeNameCache.Store(t, name)
	return name
}

// ClassName returns the class name of T for errors and logs. If T (or *T)
// implements apis.Namer its EntityName wins; otherwise TypeName is used.
// For a pointer T the Namer is asked on a fresh *Elem, so T and *T agree.
func ClassName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Ptr {
		if n, ok := reflect.New(t.Elem()).Interface().(apis.Namer); ok {
			return n.EntityName()
		}
		return TypeName(t)
	}
	var zero T
	if n, ok := any(zero).(apis.Namer); ok {
		return n.EntityName()
	}
	if n, ok := any(&zero).(apis.Namer); ok {
		return n.EntityName()
	}
	return TypeName(t)
}

// MethodName spells a Go method name according to n.
func MethodName(name string, n apis.Naming) string {
	switch n {
	case apis.NamingLower:
		r, size := utf8.DecodeRuneInString(name)
		if r == utf8.RuneError {
			return name
		}
		return string(unicode.ToLower(r)) + name[size:]
	case apis.NamingSnake:
		return snakeCase(name)
	default:
		return name
	}
}

// snakeCase converts a camel-case word to snake case. Runs of capitals are
// kept together: "FormatDate" -> "format_date", "HTTPServer" -> "http_server".
func snakeCase(s string) string {
	rs := []rune(s)
	out := make([]rune, 0, len(rs)+4)
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				out = append(out, '_')
			}
		}
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
