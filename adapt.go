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
	"reflect"

	"github.com/go-logr/logr"

	"dirpx.dev/adapt/apis"
	"dirpx.dev/adapt/list"
	"dirpx.dev/adapt/strategy"
)

var (
	// ErrNilRegistry is returned by New when no registry is provided.
	ErrNilRegistry = fmt.Errorf("%w: adapt: nil registry", apis.ErrConfiguration)
	// ErrStrategyType is returned by New when the update strategy was
	// written for a different item type.
	ErrStrategyType = fmt.Errorf("%w: adapt: update strategy item type mismatch", apis.ErrConfiguration)
)

// Option configures an Adapt at construction.
type Option func(*options)

// options collects Option values before the item type is known.
type options struct {
	// strategy holds an apis.UpdateStrategy[T] for the controller's T.
	strategy any
	logger   logr.Logger
}

// WithUpdateStrategy sets the strategy invoked on every SetItems.
// A nil strategy keeps the default one.
func WithUpdateStrategy[T any](s apis.UpdateStrategy[T]) Option {
	return func(o *options) {
		if s != nil {
			o.strategy = s
		}
	}
}

// WithLogger sets the logger that receives replacement and commit events at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Adapt owns the committed item list of one list widget.
//
// Adapt is not safe for concurrent use. Every method must be called from the
// goroutine that drives the host widget.
type Adapt[T any] struct {
	// reg resolves entries and view types.
	reg apis.Registry
	// update decides notifications and commits on replacement.
	update apis.UpdateStrategy[T]
	// log receives V(1) diagnostics.
	log logr.Logger
	// items is the committed list; nil until the first commit.
	items []T
	// adapter is created on first use by Adapter.
	adapter *hostAdapter[T]
}

// Ensure Adapt implements apis.Source.
var _ apis.Source[int] = (*Adapt[int])(nil)

// New constructs a controller resolving entries with reg. Without
// WithUpdateStrategy it uses strategy.NotifyChanged.
func New[T any](reg apis.Registry, opts ...Option) (*Adapt[T], error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	o := options{logger: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	update := strategy.NotifyChanged[T]()
	if o.strategy != nil {
		s, ok := o.strategy.(apis.UpdateStrategy[T])
		if !ok {
			return nil, fmt.Errorf("%w: %T does not handle %s", ErrStrategyType, o.strategy, reflect.TypeFor[T]())
		}
		update = s
	}

	return &Adapt[T]{
		reg:    reg,
		update: update,
		log:    o.logger,
	}, nil
}

// SetItems replaces the item list through the update strategy.
//
// The strategy receives the committed list (nil if nothing was committed
// yet) and items exactly as given, so nil and empty stay distinguishable.
// The list becomes visible only when the strategy commits it via UpdateItems.
// The controller keeps a reference to items; callers must not mutate it
// afterwards.
func (a *Adapt[T]) SetItems(items []T) {
	old := a.items
	a.log.V(1).Info("replacing items", "old", len(old), "new", len(items), "absent", items == nil)
	a.update.UpdateItems(a, old, items)
}

// UpdateItems commits items as the current list. nil is stored as empty.
// It is meant to be called by the update strategy.
func (a *Adapt[T]) UpdateItems(items []T) {
	if items == nil {
		items = []T{}
	}
	a.items = items
	a.log.V(1).Info("items committed", "count", len(items))
}

// ItemCount returns the number of committed items.
func (a *Adapt[T]) ItemCount() int {
	return len(a.items)
}

// IsEmpty reports whether no items are committed.
func (a *Adapt[T]) IsEmpty() bool {
	return len(a.items) == 0
}

// Item returns the committed item at index. It panics if index is out of
// range, like slice indexing.
func (a *Adapt[T]) Item(index int) T {
	return a.items[index]
}

// Items returns a read-only view of the committed items, empty when
// nothing was committed.
func (a *Adapt[T]) Items() list.List[T] {
	return list.Of(a.items)
}

// Registry returns the registry this controller resolves entries with.
func (a *Adapt[T]) Registry() apis.Registry {
	return a.reg
}

// AssignedViewType returns the view type registered for t.
func (a *Adapt[T]) AssignedViewType(t reflect.Type) (int, error) {
	return a.reg.AssignedViewTypeOf(t)
}
