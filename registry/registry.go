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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"dirpx.dev/adapt/apis"
	uref "dirpx.dev/adapt/utils/reflect"
)

// Configuration errors, reported by New.
var (
	// ErrNoEntries is returned when no registrations were provided.
	ErrNoEntries = fmt.Errorf("%w: registry: no entries were added", apis.ErrConfiguration)
	// ErrInvalidViewType is returned when a type derives apis.InvalidViewType.
	ErrInvalidViewType = fmt.Errorf("%w: registry: view type equals the reserved invalid view type", apis.ErrConfiguration)
	// ErrNegativeViewType is returned when a type derives a negative view type.
	ErrNegativeViewType = fmt.Errorf("%w: registry: view type is negative", apis.ErrConfiguration)
	// ErrViewTypeCollision is returned when two types derive the same view type.
	ErrViewTypeCollision = fmt.Errorf("%w: registry: view type assigned to more than one type", apis.ErrConfiguration)
	// ErrDuplicateType is returned when a type appears twice in the input.
	ErrDuplicateType = fmt.Errorf("%w: registry: type registered more than once", apis.ErrConfiguration)
	// ErrIncomplete is returned for a registration without a type or an entry.
	ErrIncomplete = fmt.Errorf("%w: registry: registration needs both a type and an entry", apis.ErrConfiguration)
)

// Lookup errors, reported by registry reads.
var (
	// ErrUnregisteredType indicates an item or type that was never registered.
	ErrUnregisteredType = fmt.Errorf("%w: registry: specified type is not registered", apis.ErrLookup)
	// ErrUnregisteredViewType indicates a view type that was never assigned.
	ErrUnregisteredViewType = fmt.Errorf("%w: registry: specified view type is not registered", apis.ErrLookup)
	// ErrNilItem is returned when resolving a nil item or a nil type.
	ErrNilItem = fmt.Errorf("%w: registry: nil item has no type", apis.ErrLookup)
)

// New validates regs and returns an immutable apis.Registry.
//
// Validation covers every registration and reports all problems at once
// (errors.Join): an empty input, reserved or negative view types, types
// registered twice and view types shared by two different types.
// The registry keeps regs in the given order for Entries.
func New(regs []apis.Registration) (apis.Registry, error) {
	if len(regs) == 0 {
		return nil, ErrNoEntries
	}

	r := &registry{
		byType:     make(map[reflect.Type]int, len(regs)),
		byViewType: make(map[int]int, len(regs)),
		order:      slices.Clone(regs),
	}

	var errs []error
	for i, reg := range r.order {
		name := uref.QualifiedName(reg.Type)
		switch {
		case reg.Type == nil || reg.Entry == nil:
			errs = append(errs, fmt.Errorf("%w: position %d (%s)", ErrIncomplete, i, name))
			continue
		case reg.ViewType == apis.InvalidViewType:
			errs = append(errs, fmt.Errorf("%w: type %s has view type %d", ErrInvalidViewType, name, reg.ViewType))
			continue
		case reg.ViewType < 0:
			errs = append(errs, fmt.Errorf("%w: type %s has view type %d", ErrNegativeViewType, name, reg.ViewType))
			continue
		}
		if _, ok := r.byType[reg.Type]; ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateType, name))
			continue
		}
		if j, ok := r.byViewType[reg.ViewType]; ok {
			errs = append(errs, fmt.Errorf("%w: types %s and %s share view type %d",
				ErrViewTypeCollision, uref.QualifiedName(r.order[j].Type), name, reg.ViewType))
			continue
		}
		r.byType[reg.Type] = i
		r.byViewType[reg.ViewType] = i
	}
	if len(errs) > 0 {
		return nil, joinErrors(errs)
	}
	return r, nil
}

// registry is an immutable apis.Registry backed by two index maps over
// a registration slice. It is never written after New returns, so reads
// need no synchronization.
type registry struct {
	// byType maps a registered type to its index in order.
	byType map[reflect.Type]int
	// byViewType maps a view type to its index in order.
	byViewType map[int]int
	// order holds registrations in registration order.
	order []apis.Registration
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// Entry returns the entry registered for the dynamic type of item.
func (r *registry) Entry(item any) (apis.Entry, error) {
	reg, err := r.lookupItem(item)
	if err != nil {
		return nil, err
	}
	return reg.Entry, nil
}

// EntryFor returns the entry registered under viewType.
func (r *registry) EntryFor(viewType int) (apis.Entry, error) {
	i, ok := r.byViewType[viewType]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnregisteredViewType, viewType)
	}
	return r.order[i].Entry, nil
}

// AssignedViewType returns the view type of the dynamic type of item.
func (r *registry) AssignedViewType(item any) (int, error) {
	reg, err := r.lookupItem(item)
	if err != nil {
		return apis.InvalidViewType, err
	}
	return reg.ViewType, nil
}

// AssignedViewTypeOf returns the view type registered for t.
func (r *registry) AssignedViewTypeOf(t reflect.Type) (int, error) {
	reg, err := r.lookupType(t)
	if err != nil {
		return apis.InvalidViewType, err
	}
	return reg.ViewType, nil
}

// Entries returns a snapshot in registration order.
func (r *registry) Entries() []apis.Registration {
	return slices.Clone(r.order)
}

// Count returns the number of registered types.
func (r *registry) Count() int {
	return len(r.order)
}

func (r *registry) lookupItem(item any) (*apis.Registration, error) {
	t, err := uref.TypeOf(item)
	if err != nil {
		return nil, ErrNilItem
	}
	return r.lookupType(t)
}

// lookupType matches t exactly; supertypes, interfaces and pointer/value
// counterparts of a registered type are not considered.
func (r *registry) lookupType(t reflect.Type) (*apis.Registration, error) {
	if t == nil {
		return nil, ErrNilItem
	}
	i, ok := r.byType[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnregisteredType, uref.QualifiedName(t))
	}
	return &r.order[i], nil
}

// joinErrors returns the single error as is, or joins several.
func joinErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}
