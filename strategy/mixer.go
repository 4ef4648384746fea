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

package strategy

import (
	"reflect"

	"github.com/rs/zerolog"

	"dirpx.dev/ext/apis"
	uref "dirpx.dev/ext/utils/reflect"
)

// NewMixer constructs an apis.Mixer that tries the given strategies in order.
// Nil strategies are ignored.
func NewMixer(cfg apis.Config, log zerolog.Logger, strategies ...apis.Strategy) apis.Mixer {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return &chain{cfg: cfg, log: log, strats: out}
}

// chain is an immutable, order-preserving mixer over a set of strategies.
type chain struct {
	cfg    apis.Config
	log    zerolog.Logger
	strats []apis.Strategy
}

// Mixin imports src into reg using the first strategy that handles it.
// Strategy failures surface as *IntrospectionError; registry failures
// (e.g. under OverwriteDeny) are returned as is, after the entries written
// so far.
func (c *chain) Mixin(reg apis.Registry, src any, replace bool) (int, error) {
	st := reflect.TypeOf(src)
	origin := uref.TypeName(st)
	if src == nil {
		return 0, &IntrospectionError{Type: origin, Err: uref.ErrNilValue}
	}
	if rv := reflect.ValueOf(src); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return 0, &IntrospectionError{Type: origin, Err: uref.ErrNilValue}
	}

	for _, s := range c.strats {
		members, handled, err := s.TryImport(src, c.cfg)
		if err != nil {
			return 0, &IntrospectionError{Type: origin, Err: err}
		}
		if !handled {
			continue
		}
		return c.store(reg, origin, members, replace)
	}
	return 0, &IntrospectionError{Type: origin, Err: ErrNoStrategy}
}

// store writes members into reg under the collision policy.
func (c *chain) store(reg apis.Registry, origin string, members []apis.Member, replace bool) (int, error) {
	n := 0
	for _, m := range members {
		e := apis.Entry{Name: m.Name, Func: m.Func, Origin: origin}
		if replace {
			if err := reg.Register(e); err != nil {
				return n, err
			}
			n++
			continue
		}
		stored, err := reg.RegisterIfAbsent(e)
		if err != nil {
			return n, err
		}
		if stored {
			n++
		}
	}

	c.log.Debug().
		Str("class", reg.Owner()).
		Str("origin", origin).
		Bool("replace", replace).
		Int("members", len(members)).
		Int("written", n).
		Msg("mixin imported")
	return n, nil
}
