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
	"errors"
	"fmt"
)

// ErrMethodNotFound matches every MethodNotFoundError via errors.Is.
var ErrMethodNotFound = errors.New("ext(resolver): method not found")

// MethodNotFoundError reports a call to a name that has no extension.
type MethodNotFoundError struct {
	// Class is the host class the call was resolved against.
	Class string
	// Method is the attempted method name.
	Method string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("ext(resolver): method %s.%s does not exist", e.Class, e.Method)
}

// Is reports whether target is ErrMethodNotFound.
func (e *MethodNotFoundError) Is(target error) bool {
	return target == ErrMethodNotFound
}
