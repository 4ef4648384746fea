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

package resolver

import (
	"github.com/rs/zerolog"

	"dirpx.dev/ext/apis"
)

// New constructs an apis.Resolver that dispatches calls for class against reg.
// The returned resolver is safe for concurrent use provided reg is.
func New(class string, reg apis.Registry, log zerolog.Logger) apis.Resolver {
	return &dispatcher{
		class: class,
		reg:   reg,
		log:   log.With().Str("class", class).Logger(),
	}
}

// dispatcher resolves extension calls by name.
type dispatcher struct {
	class string
	reg   apis.Registry
	log   zerolog.Logger
}

// ResolveStatic invokes the extension registered under name with no receiver.
func (d *dispatcher) ResolveStatic(name string, args ...any) (any, error) {
	return d.resolve(nil, name, args)
}

// ResolveInstance invokes the extension registered under name with recv
// as its receiver.
func (d *dispatcher) ResolveInstance(recv any, name string, args ...any) (any, error) {
	return d.resolve(recv, name, args)
}

// resolve looks up name and calls it. Errors from the callable are returned
// unchanged.
func (d *dispatcher) resolve(recv any, name string, args []any) (any, error) {
	var fn apis.Func
	ok := false
	if d.reg != nil {
		fn, ok = d.reg.Lookup(name)
	}
	if !ok {
		d.log.Debug().Str("method", name).Msg("extension not found")
		return nil, &MethodNotFoundError{Class: d.class, Method: name}
	}
	return fn(recv, args...)
}
