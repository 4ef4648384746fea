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

// Config carries the knobs that shape extension tables and mixins.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Overwrite controls what happens when a name is registered twice.
	Overwrite OverwritePolicy

	// MixinReplace is the collision policy used by Mixin when the caller
	// does not pass one explicitly. If true, source members replace
	// existing entries.
	MixinReplace bool

	// MixinNaming maps Go method names of a mixin source to table names.
	MixinNaming Naming

	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map)
	// when deriving the class key of a host type.
	MaxUnwrap int
}

// OverwritePolicy decides how a table treats re-registration of a name.
type OverwritePolicy int

const (
	// OverwriteAllow replaces the previous entry silently (last write wins).
	OverwriteAllow OverwritePolicy = iota
	// OverwriteWarn replaces the previous entry and logs a warning.
	OverwriteWarn
	// OverwriteDeny rejects the second registration.
	OverwriteDeny
)

// String returns the config-file spelling of p.
func (p OverwritePolicy) String() string {
	switch p {
	case OverwriteAllow:
		return "allow"
	case OverwriteWarn:
		return "warn"
	case OverwriteDeny:
		return "deny"
	default:
		return "unknown"
	}
}

// Naming selects how mixin method names are spelled in the table.
type Naming int

const (
	// NamingExact keeps the Go method name ("FormatDate").
	NamingExact Naming = iota
	// NamingLower lowercases the first rune ("formatDate").
	NamingLower
	// NamingSnake converts to snake case ("format_date").
	NamingSnake
)

// String returns the config-file spelling of n.
func (n Naming) String() string {
	switch n {
	case NamingExact:
		return "exact"
	case NamingLower:
		return "lower"
	case NamingSnake:
		return "snake"
	default:
		return "unknown"
	}
}
