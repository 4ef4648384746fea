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

// Package host binds an extension table to a host type.
//
// A Class[T] is the explicit stand-in for "static" members of T: it owns (or
// shares) the extension table of T and answers calls to names that T does
// not define as Go methods.
//
//	type Invoice struct{ Total int }
//
//	invoices := host.New[*Invoice](nil)
//	_ = invoices.Extend("double", func(recv any, _ ...any) (any, error) {
//		return recv.(*Invoice).Total * 2, nil
//	})
//	v, err := invoices.CallOn(&Invoice{Total: 21}, "double")
//
// Subtypes share a parent's table by passing its Registry to New.
package host

import (
	"github.com/rs/zerolog"

	"dirpx.dev/ext/apis"
	"dirpx.dev/ext/builder"
	"dirpx.dev/ext/config"
	uref "dirpx.dev/ext/utils/reflect"
)

// Class is the extension handle of host type T.
type Class[T any] struct {
	name string
	cfg  apis.Config
	reg  apis.Registry
	res  apis.Resolver
	mix  apis.Mixer
}

// Option customizes New.
type Option func(*options)

type options struct {
	cfg  apis.Config
	bld  apis.Builder
	log  zerolog.Logger
	name string
}

// WithConfig sets the configuration used for the handle and a table built by New.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithBuilder replaces the default builder.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) {
		if b != nil {
			o.bld = b
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithName overrides the class name used in errors and logs.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// New creates the handle of T over reg. A nil reg gives T a table of its own.
func New[T any](reg apis.Registry, opts ...Option) *Class[T] {
	o := options{
		cfg: config.DefaultConfig(),
		bld: builder.New(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = uref.ClassName[T]()
	}
	if reg == nil {
		reg = o.bld.BuildRegistry(o.cfg, o.name, o.log)
	}
	return &Class[T]{
		name: o.name,
		cfg:  o.cfg,
		reg:  reg,
		res:  o.bld.BuildResolver(o.cfg, o.name, reg, o.log),
		mix:  o.bld.BuildMixer(o.cfg, o.log),
	}
}

// Name returns the class name.
func (c *Class[T]) Name() string {
	return c.name
}

// Registry returns the extension table. Pass it to New to share it.
func (c *Class[T]) Registry() apis.Registry {
	return c.reg
}

// Extend registers fn under name. fn is either receiver-aware (apis.Func or
// func(any, ...any) (any, error)) or any other func, which is invoked with
// the call arguments only.
func (c *Class[T]) Extend(name string, fn any) error {
	f, err := uref.Adapt(fn)
	if err != nil {
		return err
	}
	return c.reg.Register(apis.Entry{Name: name, Func: f, Origin: apis.OriginExtend})
}

// IsExtended reports whether name is registered.
func (c *Class[T]) IsExtended(name string) bool {
	return c.reg.IsRegistered(name)
}

// Mixin copies the members of src into the table. replace defaults to
// Config.MixinReplace; when false, registered names are kept.
func (c *Class[T]) Mixin(src any, replace ...bool) error {
	r := c.cfg.MixinReplace
	if len(replace) > 0 {
		r = replace[0]
	}
	_, err := c.mix.Mixin(c.reg, src, r)
	return err
}

// Call invokes name with no receiver.
func (c *Class[T]) Call(name string, args ...any) (any, error) {
	return c.res.ResolveStatic(name, args...)
}

// CallOn invokes name with recv as the receiver.
func (c *Class[T]) CallOn(recv T, name string, args ...any) (any, error) {
	return c.res.ResolveInstance(recv, name, args...)
}

// Names returns the registered names in natural order.
func (c *Class[T]) Names() []string {
	entries := c.reg.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
