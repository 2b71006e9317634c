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

// Package adapt binds heterogeneous item lists to position-indexed list
// widgets.
//
// A list widget asks three questions about every position: how many items
// are there, what kind of row does this item need, and how is a row filled
// with this item. adapt answers them from a list of Go values of mixed
// dynamic types and a registry that knows, for each type, how to create and
// fill a row.
//
// # Design
//
// The package is built from four pieces:
//
//   - Registry (package registry, assembled by package builder): an
//     immutable mapping from Go types to view types and entries. A view
//     type is a non-negative integer derived from the type by a
//     KeyProvider; an entry creates holders and binds items into them.
//     Lookup matches the exact dynamic type of an item. There is no
//     fallback to interfaces, embedded types or pointer/value counterparts.
//
//   - Adapt: the controller that owns the committed item list. Readers
//     (ItemCount, IsEmpty, Item, Items) see only committed state; Items
//     returns a read-only list.List, never nil.
//
//   - UpdateStrategy (package strategy): invoked on every SetItems with the
//     previous and the new list. The strategy decides which notifications
//     to emit and when to commit; nothing is committed unless it calls
//     Source.UpdateItems. strategy.NotifyChanged (the default) commits and
//     reports "everything changed"; strategy.Diff emits range
//     notifications computed from item identities.
//
//   - HostAdapter: created lazily by Adapt.Adapter and kept for the
//     controller's lifetime. It serves Count, ViewTypeAt, CreateHolder and
//     Bind to the widget and relays notifications to registered observers.
//
// # Usage
//
//	b := builder.New(config.DefaultConfig())
//	builder.AppendFor[*Header](b, headerEntry)
//	builder.AppendFor[*Task](b, taskEntry)
//	reg, err := b.Build()
//	if err != nil {
//		return err // apis.ErrConfiguration
//	}
//
//	a, err := adapt.New[Item](reg, adapt.WithUpdateStrategy(strategy.Diff[Item](byID)))
//	...
//	widget.SetAdapter(a.Adapter())
//	a.SetItems(items)
//
// # Errors
//
// Every error wraps one of apis.ErrConfiguration (registry setup, reported
// by Build), apis.ErrLookup (unknown types, view types, positions or views)
// or apis.ErrUsage (contract misuse). None of them is transient.
//
// # Concurrency model
//
// Registries are immutable after Build and may be shared freely. Adapt and
// its HostAdapter are single-threaded: they belong to the goroutine that
// drives the widget, do no locking and never block.
package adapt
