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

package apis

//go:generate mockgen -destination=mocks/mock_entry.go -package=mocks -source=entry.go Entry

// Holder is a reusable per-slot object owned by the host list widget.
// The core never inspects it; it only travels between Entry methods.
type Holder = any

// Entry creates and binds holders for one registered item type.
type Entry interface {
	// CreateHolder produces a new holder. ctx is the opaque UI context
	// handed over by the host widget (an inflater, a theme, a container).
	CreateHolder(ctx any) (Holder, error)
	// BindHolder writes item into holder. item always has the Go type
	// the entry was registered for.
	BindHolder(holder Holder, item any) error
}
