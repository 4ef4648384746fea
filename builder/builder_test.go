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

package builder_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"dirpx.dev/ext/apis"
	"dirpx.dev/ext/builder"
	"dirpx.dev/ext/config"
	"dirpx.dev/ext/resolver"
)

// plain is a mixin source with no special behavior.
// It is used to test fallback via reflection.
type plain struct{}

func (plain) Ping() string { return "pong" }

// described implements apis.Provider and is used to verify that the
// provider strategy takes priority over reflection.
type described struct{}

func (described) Extensions() map[string]any {
	return map[string]any{"ping": func() string { return "described" }}
}

// TestBuildRegistry_Basic asserts that BuildRegistry returns a non-nil,
// working Registry that honors the configured policy.
func TestBuildRegistry_Basic(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig(config.WithOverwrite(apis.OverwriteDeny))

	reg := b.BuildRegistry(cfg, "widget.Widget", zerolog.Nop())
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}
	if reg.Owner() != "widget.Widget" {
		t.Fatalf("Owner() = %q", reg.Owner())
	}

	fn := func(any, ...any) (any, error) { return nil, nil }
	if err := reg.Register(apis.Entry{Name: "x", Func: fn}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := reg.Register(apis.Entry{Name: "x", Func: fn}); err == nil {
		t.Fatalf("deny policy not applied")
	}
}

// TestBuildResolver_DispatchesAgainstRegistry verifies that the built resolver
// reads the registry it was given and reports the class in errors.
func TestBuildResolver_DispatchesAgainstRegistry(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	reg := b.BuildRegistry(cfg, "widget.Widget", zerolog.Nop())
	res := b.BuildResolver(cfg, "widget.Widget", reg, zerolog.Nop())

	_ = reg.Register(apis.Entry{Name: "id", Func: func(recv any, _ ...any) (any, error) { return recv, nil }})

	got, err := res.ResolveInstance("me", "id")
	if err != nil || got != "me" {
		t.Fatalf("id() = (%v,%v), want (me,nil)", got, err)
	}

	_, err = res.ResolveStatic("nope")
	var mnf *resolver.MethodNotFoundError
	if !errors.As(err, &mnf) || mnf.Class != "widget.Widget" || mnf.Method != "nope" {
		t.Fatalf("want MethodNotFoundError{widget.Widget, nope}, got %v", err)
	}
}

// TestBuildMixer_Order_ProviderThenReflect verifies mixin priority:
// 1. If the source implements apis.Provider, use Extensions().
// 2. Otherwise harvest exported methods by reflection.
func TestBuildMixer_Order_ProviderThenReflect(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig(config.WithMixinNaming(apis.NamingLower))
	reg := b.BuildRegistry(cfg, "widget.Widget", zerolog.Nop())
	mix := b.BuildMixer(cfg, zerolog.Nop())

	if _, err := mix.Mixin(reg, plain{}, true); err != nil {
		t.Fatalf("Mixin(plain): %v", err)
	}
	fn, ok := reg.Lookup("ping")
	if !ok {
		t.Fatalf("reflected method not registered under lower naming")
	}
	if got, _ := fn(nil); got != "pong" {
		t.Fatalf("ping() = %v, want pong", got)
	}

	if _, err := mix.Mixin(reg, described{}, true); err != nil {
		t.Fatalf("Mixin(described): %v", err)
	}
	fn, _ = reg.Lookup("ping")
	if got, _ := fn(nil); got != "described" {
		t.Fatalf("ping() = %v, want described", got)
	}
	if reg.IsRegistered("extensions") {
		t.Fatalf("provider source must not be reflected")
	}
}
