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
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/adapt/apis"
	"dirpx.dev/adapt/builder"
	uref "dirpx.dev/adapt/utils/reflect"
)

// ErrNotAssignable is reported by Builder.Build for an included type that
// is not assignable to the controller's item type.
var ErrNotAssignable = fmt.Errorf("%w: adapt: type is not assignable to the item type", apis.ErrConfiguration)

// Builder assembles a registry and a controller in one chain:
//
//	a, err := adapt.NewBuilder[Item](config.DefaultConfig()).
//		Include(reflect.TypeFor[*Header](), headerEntry).
//		Include(reflect.TypeFor[*Task](), taskEntry).
//		With(adapt.WithUpdateStrategy(strategy.Diff[Item](byID))).
//		Build()
type Builder[T any] struct {
	b    apis.Builder
	opts []Option
	errs []error
}

// NewBuilder returns a Builder whose registry is configured by cfg.
func NewBuilder[T any](cfg apis.Config) *Builder[T] {
	return &Builder[T]{b: builder.New(cfg)}
}

// Include registers e for t. Duplicate types keep their first entry.
func (b *Builder[T]) Include(t reflect.Type, e apis.Entry) *Builder[T] {
	if t != nil && !t.AssignableTo(reflect.TypeFor[T]()) {
		b.errs = append(b.errs, fmt.Errorf("%w: %s is not a %s",
			ErrNotAssignable, uref.QualifiedName(t), uref.QualifiedName(reflect.TypeFor[T]())))
		return b
	}
	b.b.Append(t, e)
	return b
}

// With appends controller options.
func (b *Builder[T]) With(opts ...Option) *Builder[T] {
	b.opts = append(b.opts, opts...)
	return b
}

// Build builds the registry and the controller on top of it.
func (b *Builder[T]) Build() (*Adapt[T], error) {
	reg, err := b.b.Build()
	if err != nil || len(b.errs) > 0 {
		return nil, errors.Join(append(b.errs, err)...)
	}
	return New[T](reg, b.opts...)
}
