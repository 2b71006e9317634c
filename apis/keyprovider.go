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

// InvalidViewType is the reserved view type value. Host list widgets use it to
// mark "no type", so no registered type may ever be assigned it.
const InvalidViewType = -1

// KeyProvider derives the view type of a registered Go type.
// Implementations must be deterministic and should return non-negative values.
type KeyProvider interface {
	// ProvideKey returns the view type for t.
	ProvideKey(t reflect.Type) int
}
