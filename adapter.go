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

package adapt

import (
	"fmt"
	"slices"

	"dirpx.dev/adapt/apis"
)

// ErrPositionOutOfRange is returned by the host adapter for positions
// outside the committed list.
var ErrPositionOutOfRange = fmt.Errorf("%w: adapt: position out of range", apis.ErrLookup)

// Adapter returns the host adapter bridging a list widget to a.
// It is created on the first call; later calls return the same instance.
func (a *Adapt[T]) Adapter() apis.HostAdapter {
	if a.adapter == nil {
		a.adapter = &hostAdapter[T]{a: a}
	}
	return a.adapter
}

// hostAdapter answers widget queries from the controller and its registry
// and fans out change notifications to observers.
type hostAdapter[T any] struct {
	a         *Adapt[T]
	observers []apis.Observer
}

// Ensure hostAdapter implements apis.HostAdapter.
var _ apis.HostAdapter = (*hostAdapter[int])(nil)

// Count returns the number of committed items.
func (h *hostAdapter[T]) Count() int {
	return h.a.ItemCount()
}

// ViewTypeAt returns the view type of the item at position.
func (h *hostAdapter[T]) ViewTypeAt(position int) (int, error) {
	item, err := h.itemAt(position)
	if err != nil {
		return apis.InvalidViewType, err
	}
	return h.a.reg.AssignedViewType(item)
}

// CreateHolder delegates to the entry registered under viewType.
func (h *hostAdapter[T]) CreateHolder(viewType int, container any) (apis.Holder, error) {
	e, err := h.a.reg.EntryFor(viewType)
	if err != nil {
		return nil, err
	}
	return e.CreateHolder(container)
}

// Bind delegates to the entry registered for the item at position.
func (h *hostAdapter[T]) Bind(holder apis.Holder, position int) error {
	item, err := h.itemAt(position)
	if err != nil {
		return err
	}
	e, err := h.a.reg.Entry(item)
	if err != nil {
		return err
	}
	return e.BindHolder(holder, item)
}

// itemAt boxes the item at position so the registry sees its dynamic type.
func (h *hostAdapter[T]) itemAt(position int) (any, error) {
	if position < 0 || position >= h.a.ItemCount() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrPositionOutOfRange, position, h.a.ItemCount())
	}
	return any(h.a.items[position]), nil
}

// RegisterObserver subscribes o. Registering the same observer twice is a no-op.
func (h *hostAdapter[T]) RegisterObserver(o apis.Observer) {
	if o == nil || slices.Contains(h.observers, o) {
		return
	}
	h.observers = append(h.observers, o)
}

// UnregisterObserver removes o.
func (h *hostAdapter[T]) UnregisterObserver(o apis.Observer) {
	if i := slices.Index(h.observers, o); i >= 0 {
		h.observers = slices.Delete(h.observers, i, i+1)
	}
}

func (h *hostAdapter[T]) NotifyDataSetChanged() {
	h.each(func(o apis.Observer) { o.OnChanged() })
}

func (h *hostAdapter[T]) NotifyItemRangeInserted(position, count int) {
	h.each(func(o apis.Observer) { o.OnItemRangeInserted(position, count) })
}

func (h *hostAdapter[T]) NotifyItemRangeRemoved(position, count int) {
	h.each(func(o apis.Observer) { o.OnItemRangeRemoved(position, count) })
}

func (h *hostAdapter[T]) NotifyItemRangeChanged(position, count int) {
	h.each(func(o apis.Observer) { o.OnItemRangeChanged(position, count) })
}

func (h *hostAdapter[T]) NotifyItemMoved(from, to int) {
	h.each(func(o apis.Observer) { o.OnItemMoved(from, to) })
}

// each calls f for a snapshot of observers, so callbacks may unregister.
func (h *hostAdapter[T]) each(f func(apis.Observer)) {
	for _, o := range slices.Clone(h.observers) {
		f(o)
	}
}
