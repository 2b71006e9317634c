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

// Package list provides a read-only view over an item slice.
package list

import (
	"iter"
	"slices"
)

// List is a read-only view of a committed item list.
//
// List has no mutating methods, so holders of a List cannot change the
// sequence it exposes. The zero value is an empty list.
type List[T any] struct {
	items []T
}

// Of returns a view over items. The view shares items; the owner of items
// must not mutate it while the view is in use.
func Of[T any](items []T) List[T] {
	return List[T]{items: items}
}

// Len returns the number of items.
func (l List[T]) Len() int {
	return len(l.items)
}

// IsEmpty reports whether the list has no items.
func (l List[T]) IsEmpty() bool {
	return len(l.items) == 0
}

// At returns the item at index i. It panics if i is out of range.
func (l List[T]) At(i int) T {
	return l.items[i]
}

// All iterates over index/item pairs in order.
func (l List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

// Values iterates over items in order.
func (l List[T]) Values() iter.Seq[T] {
	return slices.Values(l.items)
}

// Slice returns a copy of the items. The result never aliases the view and
// is non-nil even for an empty list.
func (l List[T]) Slice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
