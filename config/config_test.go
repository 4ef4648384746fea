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

package config_test

import (
	"testing"

	"dirpx.dev/ext/apis"
	"dirpx.dev/ext/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.Overwrite != config.DefaultOverwrite {
		t.Fatalf("Overwrite = %v, want %v", got.Overwrite, config.DefaultOverwrite)
	}
	if got.MixinReplace != config.DefaultMixinReplace {
		t.Fatalf("MixinReplace = %v, want %v", got.MixinReplace, config.DefaultMixinReplace)
	}
	if got.MixinNaming != config.DefaultMixinNaming {
		t.Fatalf("MixinNaming = %v, want %v", got.MixinNaming, config.DefaultMixinNaming)
	}
	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithOverwrite(t *testing.T) {
	for _, p := range []apis.OverwritePolicy{apis.OverwriteAllow, apis.OverwriteWarn, apis.OverwriteDeny} {
		c := config.NewConfig(config.WithOverwrite(p))
		if c.Overwrite != p {
			t.Fatalf("Overwrite = %v, want %v", c.Overwrite, p)
		}
	}
}

func TestWithMixinReplace(t *testing.T) {
	c := config.NewConfig(config.WithMixinReplace(false))
	if c.MixinReplace {
		t.Fatalf("MixinReplace = %v, want false", c.MixinReplace)
	}
}

func TestWithMixinNaming(t *testing.T) {
	c := config.NewConfig(config.WithMixinNaming(apis.NamingSnake))
	if c.MixinNaming != apis.NamingSnake {
		t.Fatalf("MixinNaming = %v, want snake", c.MixinNaming)
	}
}

func TestWithMaxUnwrap_Negative_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(-1))
	if c.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithOverwrite(apis.OverwriteDeny),
		config.WithOverwrite(apis.OverwriteWarn),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
		config.WithMixinReplace(false),
		config.WithMixinReplace(true),
	)

	if c.Overwrite != apis.OverwriteWarn {
		t.Errorf("Overwrite = %v, want warn (last option wins)", c.Overwrite)
	}
	if c.MaxUnwrap != 5 {
		t.Errorf("MaxUnwrap = %d, want 5 (last option wins)", c.MaxUnwrap)
	}
	if !c.MixinReplace {
		t.Errorf("MixinReplace = %v, want true (last option wins)", c.MixinReplace)
	}
}
