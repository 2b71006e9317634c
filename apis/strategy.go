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

//go:generate mockgen -destination=mocks/mock_strategy.go -package=mocks -source=strategy.go UpdateStrategy

// Source is the controller handle passed to an UpdateStrategy.
type Source[T any] interface {
	// UpdateItems commits items as the current list. A nil slice is
	// stored as an empty one.
	UpdateItems(items []T)
	// Adapter returns the host adapter used to emit change notifications.
	Adapter() HostAdapter
	// Registry returns the registry the controller resolves entries with.
	Registry() Registry
}

// UpdateStrategy decides which notifications a list replacement produces.
//
// UpdateItems is called for every replacement with the previously committed
// list (nil if nothing was committed yet) and the new list exactly as passed
// by the caller (nil stays nil). Nothing is committed automatically: the
// strategy must call src.UpdateItems to make the new list visible, ordering
// the commit against its own notifications.
type UpdateStrategy[T any] interface {
	UpdateItems(src Source[T], oldItems, newItems []T)
}
