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

// Package entry adapts typed functions to apis.Entry.
package entry

import (
	"fmt"
	"reflect"

	"dirpx.dev/adapt/apis"
	uref "dirpx.dev/adapt/utils/reflect"
)

var (
	// ErrHolderMismatch is returned when BindHolder receives a holder that
	// was not created by the same entry type.
	ErrHolderMismatch = fmt.Errorf("%w: entry: unexpected holder type", apis.ErrUsage)
	// ErrItemMismatch is returned when BindHolder receives an item of a
	// type the entry was not written for.
	ErrItemMismatch = fmt.Errorf("%w: entry: unexpected item type", apis.ErrUsage)
	// ErrNilCreate is returned by CreateHolder when no create function was given.
	ErrNilCreate = fmt.Errorf("%w: entry: no create function", apis.ErrUsage)
)

// Typed is an apis.Entry for items of type I rendered into holders of type H.
type Typed[I, H any] struct {
	create func(ctx any) (H, error)
	bind   func(holder H, item I) error
}

// Ensure Typed implements apis.Entry.
var _ apis.Entry = (*Typed[int, int])(nil)

// New returns an entry that creates holders with create and fills them
// with bind. A nil bind leaves holders untouched.
func New[I, H any](create func(ctx any) (H, error), bind func(holder H, item I) error) *Typed[I, H] {
	return &Typed[I, H]{create: create, bind: bind}
}

// CreateHolder calls the create function.
func (e *Typed[I, H]) CreateHolder(ctx any) (apis.Holder, error) {
	if e.create == nil {
		return nil, ErrNilCreate
	}
	h, err := e.create(ctx)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// BindHolder checks the dynamic types of holder and item and calls bind.
func (e *Typed[I, H]) BindHolder(holder apis.Holder, item any) error {
	h, ok := holder.(H)
	if !ok {
		return fmt.Errorf("%w: got %s, want %s", ErrHolderMismatch, typeName(holder), uref.QualifiedName(reflect.TypeFor[H]()))
	}
	it, ok := item.(I)
	if !ok {
		return fmt.Errorf("%w: got %s, want %s", ErrItemMismatch, typeName(item), uref.QualifiedName(reflect.TypeFor[I]()))
	}
	if e.bind == nil {
		return nil
	}
	return e.bind(h, it)
}

func typeName(v any) string {
	return uref.QualifiedName(reflect.TypeOf(v))
}
