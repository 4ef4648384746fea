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
	"errors"
	"fmt"
)

var (
	// ErrIntrospection matches every IntrospectionError via errors.Is.
	ErrIntrospection = errors.New("ext(strategy): cannot introspect mixin source")
	// ErrNoStrategy is wrapped when no strategy handled a source.
	ErrNoStrategy = errors.New("ext(strategy): no strategy handled source")
)

// IntrospectionError reports a mixin source whose members could not be
// enumerated or adapted.
type IntrospectionError struct {
	// Type is the source's type name.
	Type string
	// Err is the underlying cause.
	Err error
}

func (e *IntrospectionError) Error() string {
	return fmt.Sprintf("ext(strategy): cannot introspect %s: %v", e.Type, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IntrospectionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIntrospection.
func (e *IntrospectionError) Is(target error) bool {
	return target == ErrIntrospection
}
