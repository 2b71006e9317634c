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

package reflect

import (
	"errors"
	"reflect"
	"sync"
)

var (
	// ErrReflectNilValue is returned when a nil value has no dynamic type.
	ErrReflectNilValue = errors.New("reflect: nil value has no dynamic type")
)

// TypeOf returns the dynamic type of v. Unlike reflect.TypeOf it reports
// a nil interface as an error instead of returning a nil Type.
func TypeOf(v any) (reflect.Type, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, ErrReflectNilValue
	}
	return t, nil
}

// qualifiedNameCache memoizes QualifiedName results by type.
var qualifiedNameCache sync.Map // key: reflect.Type, val: string

// QualifiedName returns the fully qualified name of t, e.g.
// "dirpx.dev/adapt/internal/sysview.ProcessItem" or "*example.com/pkg.T".
//
// Naming policy:
//   - named type with a package: "<import path>.<Name>";
//   - builtin named type (int, string): its name;
//   - pointer: "*" followed by the qualified name of the element;
//   - anything else (anonymous struct, func, slice...): t.String().
func QualifiedName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if v, ok := qualifiedNameCache.Load(t); ok {
		return v.(string)
	}
	name := qualify(t)
	qualifiedNameCache.Store(t, name)
	return name
}

func qualify(t reflect.Type) string {
	switch {
	case t.Kind() == reflect.Ptr && t.Name() == "":
		return "*" + qualify(t.Elem())
	case t.Name() == "":
		return t.String()
	case t.PkgPath() == "":
		return t.Name()
	default:
		return t.PkgPath() + "." + t.Name()
	}
}
