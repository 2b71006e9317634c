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

import "errors"

// Error categories. Every error produced by this module wraps exactly one of
// them, so callers can classify failures with errors.Is without knowing the
// specific sentinel.
var (
	// ErrConfiguration reports an invalid registry setup detected at build time.
	ErrConfiguration = errors.New("adapt: configuration error")
	// ErrLookup reports a failed resolution of a type, view type, position or view.
	ErrLookup = errors.New("adapt: lookup error")
	// ErrUsage reports a misuse of an API contract.
	ErrUsage = errors.New("adapt: usage error")
)
