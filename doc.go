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

// Package ext provides ad-hoc runtime extension of Go types.
//
// An extension is a named callable registered against a host type. It is
// later invoked by name as if it were a method of that type, either with no
// receiver ("static" call) or with an explicit receiver ("instance" call).
// A mixin copies every exported method of another value into the same table.
//
//	type Invoice struct{ Total int }
//
//	_ = ext.Extend[*Invoice]("greet", func(name string) string {
//		return "hi " + name
//	})
//	_ = ext.Extend[*Invoice]("double", func(recv any, _ ...any) (any, error) {
//		return recv.(*Invoice).Total * 2, nil
//	})
//
//	v, _ := ext.Call[*Invoice]("greet", "Sam")          // "hi Sam"
//	n, _ := ext.CallOn(&Invoice{Total: 21}, "double")   // 42
//	_, err := ext.Call[*Invoice]("missing")             // *resolver.MethodNotFoundError
//
// # Design
//
// Go has no hook for calls to undefined methods, so dispatch is explicit:
// application code calls Call/CallOn (or the same methods on a
// host.Class handle). There is no hidden receiver either. A callable of
// type apis.Func receives the instance as its first parameter; any other
// func is invoked with the call arguments only.
//
// The pieces mirror each other across packages:
//
//   - registry: the extension table, name -> apis.Func. Entries are added or
//     replaced, never removed. What a second registration of a name does is
//     the table's OverwritePolicy: allow (last write wins), warn (last write
//     wins and a warning is logged) or deny.
//
//   - resolver: turns a name and arguments into a call, or a
//     MethodNotFoundError naming the class and the method.
//
//   - strategy: mixin import strategies, tried in order. A source that
//     implements apis.Provider describes its own extensions; otherwise its
//     exported methods are harvested by reflection. Sources that cannot be
//     introspected fail with an IntrospectionError.
//
//   - builder: constructs the three above from an apis.Config.
//
//   - host: Class[T], the handle that composes a table, a resolver and a
//     mixer for host type T. It can be built over an explicit table so that
//     related types share one.
//
// # Process-wide tables
//
// This package keeps one table per host type, keyed by the nearest named
// type (*T, []T and T share a table). Tables are created on first use and
// live for the process lifetime. Inherit makes a type resolve against the
// table of another type, the way a subclass sees its parent's extensions
// until it defines its own.
//
// The global configuration, builder and logger form an immutable snapshot
// published through an atomic pointer, as are the tables themselves held in
// a concurrent map. Registration and resolution are safe for concurrent use.
//
// # Logging
//
// All packages log through github.com/rs/zerolog. The default logger
// discards everything; SetLogger installs a real one.
package ext
