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

package keyprovider

import (
	"reflect"

	"github.com/cespare/xxhash/v2"

	"dirpx.dev/adapt/apis"
	uref "dirpx.dev/adapt/utils/reflect"
)

// Default returns the default apis.KeyProvider.
//
// The key is the xxhash of the fully qualified type name folded to 31 bits,
// so it is non-negative, stable across processes and builds, and never equal
// to apis.InvalidViewType.
func Default() apis.KeyProvider {
	return defaultProvider{}
}

// defaultProvider hashes qualified type names.
type defaultProvider struct{}

// Ensure defaultProvider implements apis.KeyProvider.
var _ apis.KeyProvider = defaultProvider{}

// ProvideKey hashes the qualified name of t.
func (defaultProvider) ProvideKey(t reflect.Type) int {
	h := xxhash.Sum64String(uref.QualifiedName(t))
	return int(uint32(h^(h>>32)) & 0x7fffffff)
}

// Func adapts an ordinary function to apis.KeyProvider.
type Func func(t reflect.Type) int

// Ensure Func implements apis.KeyProvider.
var _ apis.KeyProvider = Func(nil)

// ProvideKey calls f(t).
func (f Func) ProvideKey(t reflect.Type) int {
	return f(t)
}

// Sequential returns a provider that assigns 0, 1, 2... in first-seen order.
// Useful when view types must be small and dense, e.g. as slice indexes.
// The returned provider is not safe for concurrent use.
func Sequential() apis.KeyProvider {
	seen := make(map[reflect.Type]int)
	return Func(func(t reflect.Type) int {
		if k, ok := seen[t]; ok {
			return k
		}
		k := len(seen)
		seen[t] = k
		return k
	})
}
