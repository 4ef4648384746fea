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

package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/maruel/natural"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/rs/zerolog"

	"dirpx.dev/ext/apis"
)

var (
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("ext(registry): empty name provided")
	// ErrNilFunc is returned when an entry has no callable.
	ErrNilFunc = errors.New("ext(registry): nil func provided")
	// ErrAlreadyRegistered is returned under OverwriteDeny when a name is
	// registered twice.
	ErrAlreadyRegistered = errors.New("ext(registry): name already registered")
)

// New constructs the extension table of the class named owner.
// Only Overwrite is used here.
func New(cfg apis.Config, owner string, log zerolog.Logger) apis.Registry {
	return &registry{
		cfg:   cfg,
		owner: owner,
		log:   log.With().Str("class", owner).Logger(),
		m:     cmap.New[apis.Entry](),
	}
}

// registry is a Registry backed by a sharded concurrent map.
type registry struct {
	// cfg carries the overwrite policy.
	cfg apis.Config
	// owner is the class the table was created for.
	owner string
	// log receives registration and overwrite events.
	log zerolog.Logger
	// m maps method name to entry.
	m cmap.ConcurrentMap[string, apis.Entry]
}

// Owner returns the class name the table was created for.
func (r *registry) Owner() string {
	return r.owner
}

// Register inserts or replaces the entry for e.Name.
func (r *registry) Register(e apis.Entry) error {
	if err := validate(e); err != nil {
		return err
	}

	if r.cfg.Overwrite == apis.OverwriteDeny {
		if !r.m.SetIfAbsent(e.Name, e) {
			return fmt.Errorf("%w: %s.%s", ErrAlreadyRegistered, r.owner, e.Name)
		}
		r.log.Debug().Str("method", e.Name).Str("origin", e.Origin).Msg("extension registered")
		return nil
	}

	var prev apis.Entry
	replaced := false
	r.m.Upsert(e.Name, e, func(exist bool, old, nv apis.Entry) apis.Entry {
		prev, replaced = old, exist
		return nv
	})

	if replaced && r.cfg.Overwrite == apis.OverwriteWarn {
		r.log.Warn().
			Str("method", e.Name).
			Str("previous_origin", prev.Origin).
			Str("origin", e.Origin).
			Msg("extension overwritten")
		return nil
	}
	r.log.Debug().Str("method", e.Name).Str("origin", e.Origin).Bool("replaced", replaced).Msg("extension registered")
	return nil
}

// RegisterIfAbsent stores e only if e.Name is not registered yet.
func (r *registry) RegisterIfAbsent(e apis.Entry) (bool, error) {
	if err := validate(e); err != nil {
		return false, err
	}
	stored := r.m.SetIfAbsent(e.Name, e)
	if stored {
		r.log.Debug().Str("method", e.Name).Str("origin", e.Origin).Msg("extension registered")
	}
	return stored, nil
}

// IsRegistered reports whether name has an entry.
func (r *registry) IsRegistered(name string) bool {
	return r.m.Has(name)
}

// Lookup returns the callable registered under name.
func (r *registry) Lookup(name string) (apis.Func, bool) {
	e, ok := r.m.Get(name)
	if !ok {
		return nil, false
	}
	return e.Func, true
}

// Entries returns a snapshot in natural name order.
func (r *registry) Entries() []apis.Entry {
	items := r.m.Items()
	entries := make([]apis.Entry, 0, len(items))
	for _, e := range items {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return natural.Less(entries[i].Name, entries[j].Name)
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	return r.m.Count()
}

func validate(e apis.Entry) error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if e.Func == nil {
		return ErrNilFunc
	}
	return nil
}
