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

//go:generate mockgen -destination=mocks/mock_adapter.go -package=mocks -source=adapter.go Observer

// HostAdapter is the contract a position-indexed list widget consumes.
type HostAdapter interface {
	// Count returns the number of committed items.
	Count() int
	// ViewTypeAt returns the view type of the item at position.
	ViewTypeAt(position int) (int, error)
	// CreateHolder creates a holder for viewType. container is forwarded
	// untouched to the entry as its UI context.
	CreateHolder(viewType int, container any) (Holder, error)
	// Bind writes the item at position into holder.
	Bind(holder Holder, position int) error

	// RegisterObserver subscribes o to change notifications.
	RegisterObserver(o Observer)
	// UnregisterObserver removes o. Unknown observers are ignored.
	UnregisterObserver(o Observer)

	NotifyDataSetChanged()
	NotifyItemRangeInserted(position, count int)
	NotifyItemRangeRemoved(position, count int)
	NotifyItemRangeChanged(position, count int)
	NotifyItemMoved(from, to int)
}

// Observer receives change notifications emitted through a HostAdapter.
// Positions follow the usual list-widget convention: every notification is
// applied on top of the previous one.
type Observer interface {
	OnChanged()
	OnItemRangeInserted(position, count int)
	OnItemRangeRemoved(position, count int)
	OnItemRangeChanged(position, count int)
	OnItemMoved(from, to int)
}
