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

// Registry is the extension table of a host class: a mapping from method
// name to callable. Entries are only ever added or replaced, never removed.
// Implementations must be safe for concurrent use.
type Registry interface {
	// Owner returns the class name the table was created for.
	Owner() string
	// Register inserts or replaces the entry for e.Name, subject to the
	// table's OverwritePolicy.
	Register(e Entry) error
	// RegisterIfAbsent stores e only if e.Name is not registered yet.
	// The check and the store are atomic.
	RegisterIfAbsent(e Entry) (stored bool, err error)
	// IsRegistered reports whether name has an entry.
	IsRegistered(name string) bool
	// Lookup returns the callable registered under name.
	Lookup(name string) (Func, bool)
	// Entries returns a snapshot sorted by name.
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
}

// Entry is a single (name, callable) association.
type Entry struct {
	// Name is the method name the callable answers to.
	Name string
	// Func is the registered callable.
	Func Func
	// Origin records where the entry came from: OriginExtend for explicit
	// registration, or the type name of a mixin source.
	Origin string
}

// OriginExtend marks entries registered through Extend.
const OriginExtend = "extend"
