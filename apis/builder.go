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

import "reflect"

// Builder stages type/entry pairs and validates them wholesale in Build.
type Builder interface {
	// Append registers e for t. It returns false when t was already
	// registered (the first entry wins) or when t or e is nil.
	Append(t reflect.Type, e Entry) bool
	// Build validates the staged registrations and returns an immutable Registry.
	// All staging problems are reported together; each wraps ErrConfiguration.
	Build() (Registry, error)
}
