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
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"dirpx.dev/adapt/apis"
)

// DiffCallback tells the diff strategy how to compare items.
type DiffCallback[T any] interface {
	// Key returns the identity of item. Items with equal keys in the old
	// and the new list are considered the same item.
	Key(item T) string
	// SameContent reports whether an item kept its identity and its
	// content. A false result produces a changed notification.
	SameContent(oldItem, newItem T) bool
}

// DiffFuncs adapts two functions to DiffCallback.
// A nil SameContentFunc treats every kept item as unchanged.
type DiffFuncs[T any] struct {
	KeyFunc         func(item T) string
	SameContentFunc func(oldItem, newItem T) bool
}

// Key calls KeyFunc.
func (d DiffFuncs[T]) Key(item T) string {
	return d.KeyFunc(item)
}

// SameContent calls SameContentFunc when set.
func (d DiffFuncs[T]) SameContent(oldItem, newItem T) bool {
	if d.SameContentFunc == nil {
		return true
	}
	return d.SameContentFunc(oldItem, newItem)
}

// UpdateKind enumerates fine-grained list notifications.
type UpdateKind int

const (
	// Inserted means Count items were inserted at Position.
	Inserted UpdateKind = iota
	// Removed means Count items were removed at Position.
	Removed
	// Changed means Count items starting at Position changed content.
	Changed
)

// String returns a readable name of k.
func (k UpdateKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return fmt.Sprintf("UpdateKind(%d)", int(k))
	}
}

// Update is a single range notification.
type Update struct {
	Kind     UpdateKind
	Position int
	Count    int
}

// String renders u as "kind@position+count".
func (u Update) String() string {
	return fmt.Sprintf("%s@%d+%d", u.Kind, u.Position, u.Count)
}

// Compute returns the notifications that turn oldItems into newItems.
//
// Updates are ordered for sequential application: each position refers to
// the list as it looks after every preceding update has been applied.
// Identity comes from cb.Key; moves are reported as a removal and an
// insertion.
func Compute[T any](cb DiffCallback[T], oldItems, newItems []T) []Update {
	a, b := keys(cb, oldItems), keys(cb, newItems)
	// Autojunk would treat frequent keys as noise; list keys are identities.
	m := difflib.NewMatcherWithJunk(a, b, false, nil)

	var out []Update
	for _, op := range m.GetOpCodes() {
		// Everything before op is already in its final shape, so the op
		// starts at J1 in the partially updated list.
		switch op.Tag {
		case 'd':
			out = append(out, Update{Kind: Removed, Position: op.J1, Count: op.I2 - op.I1})
		case 'i':
			out = append(out, Update{Kind: Inserted, Position: op.J1, Count: op.J2 - op.J1})
		case 'r':
			out = append(out,
				Update{Kind: Removed, Position: op.J1, Count: op.I2 - op.I1},
				Update{Kind: Inserted, Position: op.J1, Count: op.J2 - op.J1},
			)
		case 'e':
			out = appendChanged(out, cb, oldItems[op.I1:op.I2], newItems[op.J1:op.J2], op.J1)
		}
	}
	return out
}

// appendChanged emits coalesced Changed ranges for kept items whose
// content differs. olds and news have equal length.
func appendChanged[T any](out []Update, cb DiffCallback[T], olds, news []T, base int) []Update {
	start := -1
	for k := range olds {
		if !cb.SameContent(olds[k], news[k]) {
			if start < 0 {
				start = k
			}
			continue
		}
		if start >= 0 {
			out = append(out, Update{Kind: Changed, Position: base + start, Count: k - start})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, Update{Kind: Changed, Position: base + start, Count: len(olds) - start})
	}
	return out
}

func keys[T any](cb DiffCallback[T], items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = cb.Key(it)
	}
	return out
}

// Dispatch sends updates to ad in order.
func Dispatch(ad apis.HostAdapter, updates []Update) {
	for _, u := range updates {
		switch u.Kind {
		case Inserted:
			ad.NotifyItemRangeInserted(u.Position, u.Count)
		case Removed:
			ad.NotifyItemRangeRemoved(u.Position, u.Count)
		case Changed:
			ad.NotifyItemRangeChanged(u.Position, u.Count)
		}
	}
}

// Diff returns an apis.UpdateStrategy that computes fine-grained range
// notifications with cb, commits the new list and then dispatches them.
func Diff[T any](cb DiffCallback[T]) apis.UpdateStrategy[T] {
	return &diffStrategy[T]{cb: cb}
}

// diffStrategy computes updates before the commit so the old list is read
// while it is still the controller's list.
type diffStrategy[T any] struct {
	cb DiffCallback[T]
}

// Ensure diffStrategy implements apis.UpdateStrategy.
var _ apis.UpdateStrategy[int] = (*diffStrategy[int])(nil)

// UpdateItems diffs, commits, then notifies.
func (s *diffStrategy[T]) UpdateItems(src apis.Source[T], oldItems, newItems []T) {
	updates := Compute(s.cb, oldItems, newItems)
	src.UpdateItems(newItems)
	Dispatch(src.Adapter(), updates)
}
