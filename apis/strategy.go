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

// Strategy is a pluggable mixin step. A Mixer chains strategies in order
// (e.g., Provider -> Reflect); the first one that handles a source supplies
// its members.
type Strategy interface {
	// TryImport harvests the members of src according to cfg.
	// It returns handled == false to fall through to the next strategy.
	TryImport(src any, cfg Config) (members []Member, handled bool, err error)
}

// Member is a named callable harvested from a mixin source.
type Member struct {
	Name string
	Func Func
}

// Mixer copies the members of a source value into a Registry.
type Mixer interface {
	// Mixin imports the members of src into reg. When replace is false,
	// names already present in reg are left untouched.
	// It returns the number of entries written.
	Mixin(reg Registry, src any, replace bool) (int, error)
}
