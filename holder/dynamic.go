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

// Package holder provides child-view lookup helpers for holders.
package holder

import (
	"fmt"
	"strconv"

	"dirpx.dev/adapt/apis"
)

var (
	// ErrViewNotFound is returned by RequireView when the root has no view
	// with the requested id.
	ErrViewNotFound = fmt.Errorf("%w: holder: view with specified id is not found", apis.ErrLookup)
	// ErrMixedLookup is returned by RequireView for an id that FindView
	// already looked up and found absent. Use one method per view.
	ErrMixedLookup = fmt.Errorf("%w: holder: view was previously requested by FindView and is absent", apis.ErrUsage)
)

// Finder looks up child views of a rendered unit by id.
type Finder interface {
	FindView(id int) (view any, ok bool)
}

// FinderFunc adapts an ordinary function to Finder.
type FinderFunc func(id int) (any, bool)

// FindView calls f(id).
func (f FinderFunc) FindView(id int) (any, bool) {
	return f(id)
}

// Option configures a Dynamic.
type Option func(*Dynamic)

// WithIDNamer sets the function used to render ids in error messages.
func WithIDNamer(namer func(id int) string) Option {
	return func(d *Dynamic) {
		if namer != nil {
			d.namer = namer
		}
	}
}

// Dynamic caches child views of a root by id, so the root is queried at
// most once per id. It is not safe for concurrent use.
type Dynamic struct {
	root  Finder
	namer func(id int) string
	cache map[int]lookup
}

// lookup is a cached FindView/RequireView result.
type lookup struct {
	view  any
	found bool
}

// NewDynamic returns a Dynamic over root.
func NewDynamic(root Finder, opts ...Option) *Dynamic {
	d := &Dynamic{
		root:  root,
		namer: defaultIDName,
		cache: make(map[int]lookup),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FindView returns the view with id, or (nil, false) if the root has none.
// Both outcomes are cached.
func (d *Dynamic) FindView(id int) (any, bool) {
	if l, ok := d.cache[id]; ok {
		return l.view, l.found
	}
	v, ok := d.root.FindView(id)
	d.cache[id] = lookup{view: v, found: ok}
	return v, ok
}

// RequireView returns the view with id or fails. Successful lookups are
// cached; a missing view is not, except when FindView already recorded it
// as absent, which is reported as ErrMixedLookup.
func (d *Dynamic) RequireView(id int) (any, error) {
	if l, ok := d.cache[id]; ok {
		if !l.found {
			return nil, fmt.Errorf("%w: id: %s", ErrMixedLookup, d.namer(id))
		}
		return l.view, nil
	}
	v, ok := d.root.FindView(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrViewNotFound, d.namer(id))
	}
	d.cache[id] = lookup{view: v, found: true}
	return v, nil
}

func defaultIDName(id int) string {
	return "id(" + strconv.Itoa(id) + ")"
}
