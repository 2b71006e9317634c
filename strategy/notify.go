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
	"dirpx.dev/adapt/apis"
)

// NotifyChanged returns the default apis.UpdateStrategy: it commits the new
// list first and then emits a single coarse data-set-changed notification.
func NotifyChanged[T any]() apis.UpdateStrategy[T] {
	return notifyChanged[T]{}
}

// notifyChanged performs no diffing at all.
type notifyChanged[T any] struct{}

// Ensure notifyChanged implements apis.UpdateStrategy.
var _ apis.UpdateStrategy[int] = notifyChanged[int]{}

// UpdateItems commits newItems and notifies that everything changed.
func (notifyChanged[T]) UpdateItems(src apis.Source[T], _, newItems []T) {
	src.UpdateItems(newItems)
	src.Adapter().NotifyDataSetChanged()
}

// Func adapts an ordinary function to apis.UpdateStrategy.
// The function owns the commit: it must call src.UpdateItems itself.
type Func[T any] func(src apis.Source[T], oldItems, newItems []T)

// Ensure Func implements apis.UpdateStrategy.
var _ apis.UpdateStrategy[int] = Func[int](nil)

// UpdateItems calls f.
func (f Func[T]) UpdateItems(src apis.Source[T], oldItems, newItems []T) {
	f(src, oldItems, newItems)
}
