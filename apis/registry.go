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

// Registry resolves items and view types to entries.
// A Registry is immutable once built and safe for concurrent reads.
type Registry interface {
	// Entry returns the entry registered for the dynamic type of item.
	Entry(item any) (Entry, error)
	// EntryFor returns the entry registered under viewType.
	EntryFor(viewType int) (Entry, error)
	// AssignedViewType returns the view type of the dynamic type of item.
	AssignedViewType(item any) (int, error)
	// AssignedViewTypeOf returns the view type registered for t.
	AssignedViewTypeOf(t reflect.Type) (int, error)
	// Entries returns a snapshot in registration order.
	Entries() []Registration
	// Count returns the number of registered types.
	Count() int
}

// Registration is a single (type, view type, entry) association.
type Registration struct {
	// Type is the registered Go type.
	Type reflect.Type
	// ViewType is the key derived for Type.
	ViewType int
	// Entry creates and binds holders for Type.
	Entry Entry
}
