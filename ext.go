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

package ext

import (
	"errors"
	"hash/fnv"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/maruel/natural"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/rs/zerolog"

	"dirpx.dev/ext/apis"
	"dirpx.dev/ext/builder"
	"dirpx.dev/ext/config"
	"dirpx.dev/ext/host"
	uref "dirpx.dev/ext/utils/reflect"
)

// init initializes the global ext state.
func init() {
	st.Store(&state{
		cfg: config.DefaultConfig(),
		bld: builder.New(),
		log: zerolog.Nop(),
	})
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("ext: builder returned nil registry")
	// ErrClassExists is returned by Inherit when the child already owns a table.
	ErrClassExists = errors.New("ext: class already has an extension table")
)

// ClassOf returns the handle of T bound to the process-wide table of T.
// *T, []T and T share one table.
func ClassOf[T any]() *host.Class[T] {
	s := st.Load()
	return host.New[T](table[T](s),
		host.WithConfig(s.cfg),
		host.WithBuilder(s.bld),
		host.WithLogger(s.log),
	)
}

// Extend registers fn under name in the table of T.
// This is a convenience wrapper around ClassOf.
func Extend[T any](name string, fn any) error {
	return ClassOf[T]().Extend(name, fn)
}

// IsExtended reports whether name is registered in the table of T.
func IsExtended[T any](name string) bool {
	return ClassOf[T]().IsExtended(name)
}

// Mixin copies the members of src into the table of T.
// This is a convenience wrapper around ClassOf.
func Mixin[T any](src any, replace ...bool) error {
	return ClassOf[T]().Mixin(src, replace...)
}

// Call invokes the extension name of T with no receiver.
func Call[T any](name string, args ...any) (any, error) {
	return ClassOf[T]().Call(name, args...)
}

// CallOn invokes the extension name of T with recv as the receiver.
func CallOn[T any](recv T, name string, args ...any) (any, error) {
	return ClassOf[T]().CallOn(recv, name, args...)
}

// Inherit makes Child resolve against the table of Parent. It fails with
// ErrClassExists if Child already has a table of its own.
func Inherit[Child, Parent any]() error {
	s := st.Load()
	preg := table[Parent](s)
	if !classes.SetIfAbsent(classKey[Child](s), preg) {
		return ErrClassExists
	}
	s.log.Debug().
		Str("class", uref.ClassName[Child]()).
		Str("parent", preg.Owner()).
		Msg("class inherits extension table")
	return nil
}

// Classes returns the names of all classes that have a table, in natural order.
func Classes() []string {
	keys := classes.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = uref.TypeName(k)
	}
	sort.Slice(names, func(i, j int) bool {
		return natural.Less(names[i], names[j])
	})
	return names
}

// ResetClasses drops every process-wide table. Handles obtained earlier keep
// the tables they were built with.
func ResetClasses() {
	classes.Clear()
}

// SetAll replaces the global state in one shot and drops every table.
//
// Nil arguments leave the corresponding component unchanged.
// This is mainly used by tests to get a clean deterministic state.
func SetAll(cfg *apis.Config, bld apis.Builder, log *zerolog.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	if cfg != nil {
		next.cfg = *cfg
	}
	if bld != nil {
		next.bld = bld
	}
	if log != nil {
		next.log = *log
	}
	classes.Clear()
	st.Store(&next)
}

// Config returns the global ext configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global ext configuration. It applies to handles
// obtained afterwards; existing tables keep the overwrite policy they were
// built with.
func SetConfig(cfg apis.Config) {
	update(func(s *state) { s.cfg = cfg })
}

// Builder returns the global ext builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global ext builder. Nil is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(s *state) { s.bld = b })
}

// Logger returns the global ext logger.
func Logger() zerolog.Logger {
	return st.Load().log
}

// SetLogger sets the global ext logger.
func SetLogger(log zerolog.Logger) {
	update(func(s *state) { s.log = log })
}

// update publishes a modified copy of the current state.
func update(fn func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	fn(&next)
	st.Store(&next)
}

// table returns the table of T, creating it on first use.
func table[T any](s *state) apis.Registry {
	k := classKey[T](s)
	if reg, ok := classes.Get(k); ok {
		return reg
	}

	reg := s.bld.BuildRegistry(s.cfg, uref.ClassName[T](), s.log)
	if reg == nil {
		panic(ErrNilRegistry)
	}
	if !classes.SetIfAbsent(k, reg) {
		// Another goroutine won the race; use its table.
		reg, _ = classes.Get(k)
	}
	return reg
}

// classKey returns the nearest named type of T. Unnamed types key by
// themselves.
func classKey[T any](s *state) reflect.Type {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if k, err := uref.Normalize(t, s.cfg.MaxUnwrap); err == nil {
		return k
	}
	return t
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global ext state.
var st atomic.Pointer[state]

// classes maps a class key to its extension table.
var classes = cmap.NewWithCustomShardingFunction[reflect.Type, apis.Registry](shardType)

// shardType spreads class keys over the map shards.
func shardType(t reflect.Type) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(t.PkgPath()))
	_, _ = h.Write([]byte(t.String()))
	return h.Sum32()
}

// state is the global ext state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers copy the state and swap it atomically.
type state struct {
	// cfg is the global ext configuration.
	cfg apis.Config
	// bld is the global ext builder.
	bld apis.Builder
	// log is the global ext logger.
	log zerolog.Logger
}
