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

package builder

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/adapt/apis"
	"dirpx.dev/adapt/keyprovider"
	"dirpx.dev/adapt/registry"
	uref "dirpx.dev/adapt/utils/reflect"
)

var (
	// ErrNilType is reported by Build when Append was called with a nil type.
	ErrNilType = fmt.Errorf("%w: builder: nil reflect.Type provided", apis.ErrConfiguration)
	// ErrNilEntry is reported by Build when Append was called with a nil entry.
	ErrNilEntry = fmt.Errorf("%w: builder: nil entry provided", apis.ErrConfiguration)
)

// New creates and returns a new apis.Builder that derives view types with
// cfg.KeyProvider (the default provider when nil).
func New(cfg apis.Config) apis.Builder {
	if cfg.KeyProvider == nil {
		cfg.KeyProvider = keyprovider.Default()
	}
	return &builder{
		cfg:  cfg,
		seen: make(map[reflect.Type]struct{}),
	}
}

// AppendFor registers e for the type I on b.
//
//	builder.AppendFor[*Header](b, headerEntry)
func AppendFor[I any](b apis.Builder, e apis.Entry) bool {
	return b.Append(reflect.TypeFor[I](), e)
}

// builder stages registrations until Build. It is not safe for concurrent use.
type builder struct {
	// cfg is the configuration used for key derivation and logging.
	cfg apis.Config
	// regs holds staged registrations in append order.
	regs []apis.Registration
	// seen tracks staged types so the first registration wins.
	seen map[reflect.Type]struct{}
	// errs collects rejected appends for Build.
	errs []error
}

// Ensure builder implements apis.Builder.
var _ apis.Builder = (*builder)(nil)

// Append registers e for t and derives its view type.
// A repeated type is ignored and e is discarded.
func (b *builder) Append(t reflect.Type, e apis.Entry) bool {
	// Validate inputs early, report them at Build.
	if t == nil {
		b.errs = append(b.errs, ErrNilType)
		return false
	}
	name := uref.QualifiedName(t)
	if e == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrNilEntry, name))
		return false
	}

	if _, ok := b.seen[t]; ok {
		b.cfg.Logger.V(1).Info("type already registered, entry ignored", "type", name)
		return false
	}

	vt := b.cfg.KeyProvider.ProvideKey(t)
	b.seen[t] = struct{}{}
	b.regs = append(b.regs, apis.Registration{Type: t, ViewType: vt, Entry: e})
	b.cfg.Logger.V(1).Info("registered type", "type", name, "viewType", vt)
	return true
}

// Build validates everything staged so far and returns an immutable registry.
func (b *builder) Build() (apis.Registry, error) {
	reg, err := registry.New(b.regs)

	errs := make([]error, 0, len(b.errs)+1)
	errs = append(errs, b.errs...)
	if err != nil {
		errs = append(errs, err)
	}
	switch len(errs) {
	case 0:
		b.cfg.Logger.V(1).Info("registry built", "types", reg.Count())
		return reg, nil
	case 1:
		return nil, errs[0]
	default:
		return nil, errors.Join(errs...)
	}
}
